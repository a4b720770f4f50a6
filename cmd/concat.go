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

package cmd

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/exascience/tabcat/tables"
)

// ConcatHelp is the help string for this command.
const ConcatHelp = "concat parameters:\n" +
	"tabcat concat input-file [input-file ...] output-file\n" +
	"[--na-str string]\n" +
	"[--delimiter tab | comma | character]\n" +
	"[--comments]\n" +
	"[--no-carriage-returns]\n" +
	"[--nr-of-threads n]\n" +
	"[--timed]\n" +
	"[--log-path path]\n"

// Concat implements the tabcat concat command.
func Concat() error {
	var (
		naStr, delimiter, profile, logPath string
		comments, noCarriageReturns, timed bool
		nrOfThreads                        int
	)

	var flags flag.FlagSet

	flags.StringVar(&naStr, "na-str", "NA", "value for columns missing from an input table")
	flags.StringVar(&delimiter, "delimiter", "tab", "field delimiter of inputs and output")
	flags.BoolVar(&comments, "comments", false, "carry lines starting with # over to the top of the output")
	flags.BoolVar(&noCarriageReturns, "no-carriage-returns", false, "end output lines with \\n instead of \\r\\n")
	flags.IntVar(&nrOfThreads, "nr-of-threads", 0, "number of worker threads")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&profile, "profile", "", "write a runtime profile to the specified file(s)")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	filenames := parseFlags(&flags, 2, ConcatHelp)
	inputs, output := filenames[:len(filenames)-1], filenames[len(filenames)-1]

	if logPath != "" {
		if err := setLogOutput(logPath); err != nil {
			return err
		}
	}

	// sanity checks

	var sanityChecksFailed bool

	for _, input := range inputs {
		if !checkExist("", input) {
			sanityChecksFailed = true
		}
	}
	if !checkCreate("", output) {
		sanityChecksFailed = true
	}

	if profile != "" && !checkCreate("--profile", profile) {
		sanityChecksFailed = true
	}

	delim, err := tables.ParseDelimiter(delimiter)
	if err != nil {
		log.Println("Error:", err)
		sanityChecksFailed = true
	}

	if !checkThreads(nrOfThreads) {
		sanityChecksFailed = true
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, ConcatHelp)
		os.Exit(1)
	}

	opts := tables.Options{
		Align:     tables.ByHeader,
		NA:        naStr,
		Delimiter: delim,
		Comments:  comments,
	}
	if noCarriageReturns {
		opts.LineTerminator = "\n"
	}

	// building output command line

	var command bytes.Buffer
	fmt.Fprint(&command, os.Args[0], " concat ", strings.Join(filenames, " "))
	fmt.Fprintf(&command, " --na-str %q --delimiter %q", naStr, delimiter)
	if comments {
		fmt.Fprint(&command, " --comments")
	}
	if noCarriageReturns {
		fmt.Fprint(&command, " --no-carriage-returns")
	}
	if nrOfThreads > 0 {
		fmt.Fprint(&command, " --nr-of-threads ", nrOfThreads)
	}
	if timed {
		fmt.Fprint(&command, " --timed")
	}
	if logPath != "" {
		fmt.Fprint(&command, " --log-path ", logPath)
	}

	// executing command

	log.Println("Executing command:\n", command.String())

	return executeMerge(timed, profile, "Concatenating tables by header.", inputs, output, opts)
}
