// tabcat: a tool for concatenating tabular text files.
// Copyright (c) 2021 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/tabcat/blob/master/LICENSE.txt>.

/*
Package tables concatenates line-oriented text files into a single
delimited table.

Two alignment rules are supported. ByLine pastes the inputs side by
side: output line i joins line i of every input, with a placeholder
for inputs that have fewer lines. ByHeader treats every input as a
table with a header line and stacks their rows under the union of all
headers, with a placeholder in every column a table lacks.

Inputs are read completely, in parallel, before anything is written.
The output is written to a temporary file in the destination directory
and renamed into place, so a failed Merge never leaves an output file
behind.
*/
package tables
