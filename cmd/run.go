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
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/exascience/tabcat/manifest"
)

// RunHelp is the help string for this command.
const RunHelp = "\nrun parameters:\n" +
	"tabcat run job-file\n" +
	"[--outdir path]\n" +
	"[--nr-of-threads n]\n" +
	"[--timed]\n" +
	"[--log-path path]\n"

// Run implements the tabcat run command. It executes a JSON job file
// and prints a JSON description of the output file on stdout.
func Run() error {
	var (
		outdir, profile, logPath string
		timed                    bool
		nrOfThreads              int
	)

	var flags flag.FlagSet

	flags.StringVar(&outdir, "outdir", ".", "directory for the output file")
	flags.IntVar(&nrOfThreads, "nr-of-threads", 0, "number of worker threads")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&profile, "profile", "", "write a runtime profile to the specified file(s)")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	filenames := parseFlags(&flags, 1, RunHelp)
	if len(filenames) != 1 {
		fmt.Fprintln(os.Stderr, "Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, RunHelp)
		os.Exit(1)
	}
	jobFile := filenames[0]

	if logPath != "" {
		if err := setLogOutput(logPath); err != nil {
			return err
		}
	}

	var sanityChecksFailed bool

	if !checkExist("", jobFile) {
		sanityChecksFailed = true
	}
	if profile != "" && !checkCreate("--profile", profile) {
		sanityChecksFailed = true
	}
	if !checkThreads(nrOfThreads) {
		sanityChecksFailed = true
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, RunHelp)
		os.Exit(1)
	}

	job, err := manifest.LoadJob(jobFile)
	if err != nil {
		return err
	}

	log.Println("Executing job", jobFile, "with output directory", outdir)

	var output *manifest.Output
	err = timedRun(timed, profile, "Running job.", 1, func() (err error) {
		output, err = manifest.Run(job, outdir)
		return err
	})
	if err != nil {
		return err
	}
	return output.Encode(os.Stdout)
}
