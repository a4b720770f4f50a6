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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/exascience/pargo/parallel"
	"github.com/exascience/pargo/pipeline"

	"github.com/exascience/tabcat/utils"
)

const maxLineLength = 64 << 20

// An InputFile holds the lines of one input, without line
// terminators.
type InputFile struct {
	Path  string
	Lines []string
}

// A Table is an InputFile split into header and rows.
type Table struct {
	Path     string
	Comments []string
	Header   []string
	Rows     [][]string
}

// ReadLines reads all lines from r. Only the line terminator, "\n" or
// "\r\n", is removed from each line.
func ReadLines(r io.Reader) (lines []string, err error) {
	scanner := pipeline.NewScanner(r)
	scanner.Buffer(nil, maxLineLength)
	var p pipeline.Pipeline
	p.Source(scanner)
	p.Add(pipeline.Ord(pipeline.Receive(func(_ int, data interface{}) interface{} {
		lines = append(lines, data.([]string)...)
		return data
	})))
	p.Run()
	if err = p.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadFile reads the lines of the named file, decompressing it first
// if it is gzip compressed.
func ReadFile(path string) (input *InputFile, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer func() {
		if nerr := file.Close(); err == nil && nerr != nil {
			input, err = nil, &InputError{Path: path, Err: nerr}
		}
	}()
	r, err := utils.HandleGzip(bufio.NewReader(file))
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	lines, err := ReadLines(r)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return &InputFile{Path: path, Lines: lines}, nil
}

// readAll reads all inputs in parallel. If more than one input fails,
// the error of the first one in paths is returned.
func readAll(paths []string) ([]*InputFile, error) {
	inputs := make([]*InputFile, len(paths))
	errs := make([]error, len(paths))
	parallel.Range(0, len(paths), 0, func(low, high int) {
		for i := low; i < high; i++ {
			inputs[i], errs[i] = ReadFile(paths[i])
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return inputs, nil
}

// ParseTable splits the lines of input into comments, header and rows.
// Empty lines are skipped. The first remaining line is the header. A
// row with more fields than the header is an error.
func (input *InputFile) ParseTable(delimiter rune, comments bool) (*Table, error) {
	sep := string(delimiter)
	table := &Table{Path: input.Path}
	for i, line := range input.Lines {
		if line == "" {
			continue
		}
		if comments && strings.HasPrefix(line, "#") {
			table.Comments = append(table.Comments, line)
			continue
		}
		fields := strings.Split(line, sep)
		if table.Header == nil {
			table.Header = fields
			continue
		}
		if len(fields) > len(table.Header) {
			return nil, &InputError{
				Path: input.Path,
				Err:  fmt.Errorf("line %v has %v fields, but the header has %v", i+1, len(fields), len(table.Header)),
			}
		}
		table.Rows = append(table.Rows, fields)
	}
	return table, nil
}
