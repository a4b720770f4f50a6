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

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/exascience/tabcat/utils"
)

// Concat pastes the lines of the inputs side by side into output:
// line i of output is line i of every input, joined by tabs, with "NA"
// for inputs that have fewer than i+1 lines.
func Concat(inputs []string, output string) (*Result, error) {
	return Merge(inputs, output, Options{Align: ByLine})
}

// Stack stacks the rows of the input tables into output under the
// union of their headers, with "NA" in every column a table lacks.
func Stack(inputs []string, output string) (*Result, error) {
	return Merge(inputs, output, Options{Align: ByHeader})
}

// Merge reads all inputs, combines them according to opts, and writes
// the result to output. No output file is created when any input
// cannot be read.
func Merge(inputs []string, output string, opts Options) (*Result, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	files, err := readAll(inputs)
	if err != nil {
		return nil, err
	}
	var rows [][]string
	switch opts.Align {
	case ByLine:
		rows = PasteRows(files, opts.NA)
	case ByHeader:
		tables := make([]*Table, len(files))
		for i, file := range files {
			if tables[i], err = file.ParseTable(opts.Delimiter, opts.Comments); err != nil {
				return nil, err
			}
		}
		rows = StackRows(tables, opts.NA)
	}
	return writeRows(output, rows, string(opts.Delimiter), opts.LineTerminator)
}

// PasteRows aligns the inputs by line index. The number of rows is the
// largest number of lines of any input.
func PasteRows(inputs []*InputFile, na string) (rows [][]string) {
	exhausted := bitset.New(uint(len(inputs)))
	for i := 0; ; i++ {
		row := make([]string, len(inputs))
		for j, input := range inputs {
			if i < len(input.Lines) {
				row[j] = input.Lines[i]
			} else {
				exhausted.Set(uint(j))
				row[j] = na
			}
		}
		if exhausted.All() {
			return rows
		}
		rows = append(rows, row)
	}
}

// StackRows returns the comments of all tables, each once and in the
// order they are first seen, followed by the merged header and the
// rows of all tables in order. The merged header lists every column
// name in the order it first occurs.
func StackRows(tables []*Table, na string) (rows [][]string) {
	seen := make(map[utils.Symbol]bool)
	for _, table := range tables {
		for _, comment := range table.Comments {
			if sym := utils.Intern(comment); !seen[sym] {
				seen[sym] = true
				rows = append(rows, []string{comment})
			}
		}
	}

	var header []string
	index := make(map[utils.Symbol]int)
	columns := make([][]int, len(tables))
	for i, table := range tables {
		columns[i] = make([]int, len(table.Header))
		for k, name := range table.Header {
			sym := utils.Intern(name)
			col, ok := index[sym]
			if !ok {
				col = len(header)
				index[sym] = col
				header = append(header, name)
			}
			columns[i][k] = col
		}
	}
	if header == nil {
		return rows
	}
	rows = append(rows, header)

	for i, table := range tables {
		for _, fields := range table.Rows {
			row := make([]string, len(header))
			for c := range row {
				row[c] = na
			}
			for k, field := range fields {
				row[columns[i][k]] = field
			}
			rows = append(rows, row)
		}
	}
	return rows
}
