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

package tables

import "fmt"

// A ConfigurationError reports an invalid input list or invalid
// options.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

// ErrNoInputs is returned when Merge is called without input files.
var ErrNoInputs = &ConfigurationError{Msg: "no input files supplied"}

// An InputError reports an input file that cannot be read or parsed.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input file %v: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// An OutputError reports an output file that cannot be created or
// written.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output file %v: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
