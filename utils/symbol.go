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

package utils

import (
	"github.com/exascience/pargo/sync"

	"github.com/exascience/tabcat/internal"
)

type symbolName string

// A Symbol is an interned column name.
type Symbol *string

func (s symbolName) Hash() uint64 {
	return internal.StringHash(string(s))
}

var symbolTable = sync.NewMap(0)

/*
Intern returns a Symbol for the given string.

It always returns the same pointer for strings that are equal, and
different pointers for strings that are not equal, so column names
read from different tables can be matched by comparing Symbols.

Dereferencing the pointer always yields a string that is equal to the
original string: *Intern(s) == s always holds.

It is safe for multiple goroutines to call Intern concurrently.
*/
func Intern(s string) Symbol {
	entry, _ := symbolTable.LoadOrStore(symbolName(s), Symbol(&s))
	return entry.(Symbol)
}
