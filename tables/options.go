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
	"fmt"
	"strings"

	"dario.cat/mergo"
)

// Alignment selects how lines of the input files are combined.
type Alignment int

const (
	// ByLine joins line i of every input into output line i.
	ByLine Alignment = iota

	// ByHeader stacks the rows of every input under the union of
	// their header lines.
	ByHeader
)

func (a Alignment) String() string {
	switch a {
	case ByLine:
		return "line"
	case ByHeader:
		return "header"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ParseAlignment parses "line" or "header".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "line", "lines":
		return ByLine, nil
	case "header", "headers":
		return ByHeader, nil
	default:
		return 0, &ConfigurationError{Msg: fmt.Sprintf("invalid alignment %q", s)}
	}
}

// ParseDelimiter parses "tab", "comma", or a single character.
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "tab", "tsv", `\t`:
		return '\t', nil
	case "comma", "csv":
		return ',', nil
	}
	if r := []rune(s); len(r) == 1 {
		return r[0], nil
	}
	return 0, &ConfigurationError{Msg: fmt.Sprintf("invalid delimiter %q", s)}
}

// Options control Merge. Zero fields take the defaults of the
// selected Alignment.
type Options struct {
	Align Alignment

	// NA is written where an input has no value. Default "NA".
	NA string

	// Delimiter separates fields. Default tab.
	Delimiter rune

	// LineTerminator ends every output line: "\n" for ByLine and
	// "\r\n" for ByHeader by default.
	LineTerminator string

	// Comments makes ByHeader treat lines starting with '#' as
	// comments, which are written once each before the header.
	Comments bool
}

var (
	lineDefaults = Options{
		NA:             "NA",
		Delimiter:      '\t',
		LineTerminator: "\n",
	}
	headerDefaults = Options{
		Align:          ByHeader,
		NA:             "NA",
		Delimiter:      '\t',
		LineTerminator: "\r\n",
	}
)

func (opts Options) withDefaults() (Options, error) {
	var defaults Options
	switch opts.Align {
	case ByLine:
		defaults = lineDefaults
	case ByHeader:
		defaults = headerDefaults
	default:
		return opts, &ConfigurationError{Msg: fmt.Sprintf("invalid alignment %v", opts.Align)}
	}
	if err := mergo.Merge(&opts, defaults); err != nil {
		return opts, err
	}
	return opts, opts.validate()
}

func (opts Options) validate() error {
	switch opts.Delimiter {
	case '\n', '\r':
		return &ConfigurationError{Msg: "the delimiter cannot be a line break"}
	}
	if strings.ContainsAny(opts.NA, "\r\n") || strings.ContainsRune(opts.NA, opts.Delimiter) {
		return &ConfigurationError{Msg: fmt.Sprintf("invalid placeholder %q", opts.NA)}
	}
	switch opts.LineTerminator {
	case "\n", "\r\n":
		return nil
	default:
		return &ConfigurationError{Msg: fmt.Sprintf("invalid line terminator %q", opts.LineTerminator)}
	}
}
