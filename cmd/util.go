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
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/exascience/tabcat/tables"
	"github.com/exascience/tabcat/utils"
)

// ProgramMessage is the first line printed when the tabcat binary is
// called.
var ProgramMessage string

func init() {
	ProgramMessage = fmt.Sprint(
		"\n", utils.ProgramName, " version ", utils.ProgramVersion,
		" compiled with ", runtime.Version(),
		" - see ", utils.ProgramURL, " for more information.\n",
	)
}

// HelpMessage is printed to show the --help flag
const HelpMessage = "Print command details:\n" +
	"[--help]\n"

// splitArgs separates the file names at the start of args from the
// flags that follow them.
func splitArgs(args []string, help string) (filenames, rest []string) {
	for i, arg := range args {
		switch arg {
		case "-h", "--h", "-help", "--help":
			fmt.Fprint(os.Stderr, help)
			os.Exit(0)
		}
		if strings.HasPrefix(arg, "-") {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

func parseFlags(flags *flag.FlagSet, requiredFilenames int, help string) []string {
	filenames, rest := splitArgs(os.Args[2:], help)
	if len(filenames) < requiredFilenames {
		if len(filenames) > 0 || len(rest) == 0 {
			fmt.Fprintln(os.Stderr, "Incorrect number of parameters.")
		} else {
			log.Println("Filename(s) in command line missing.")
		}
		fmt.Fprint(os.Stderr, help)
		os.Exit(1)
	}
	flags.SetOutput(io.Discard)
	if err := flags.Parse(rest); err != nil {
		x := 0
		if err != flag.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			x = 1
		}
		fmt.Fprint(os.Stderr, help)
		os.Exit(x)
	}
	if flags.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Cannot parse remaining parameters:", flags.Args())
		fmt.Fprint(os.Stderr, help)
		os.Exit(1)
	}
	return filenames
}

func logCheckFile(parameter, format string, v ...interface{}) {
	if parameter != "" {
		log.Printf(format+" for command line parameter %v.\n", append(v, parameter)...)
	} else {
		log.Printf(format+".\n", v...)
	}
}

func checkExist(parameter, filename string) bool {
	if len(filename) == 0 {
		logCheckFile(parameter, "Error: Missing filename")
		return false
	}
	if filename[0] == '-' {
		logCheckFile(parameter, "Error: Missing filename before %v", filename)
		return false
	}
	if info, err := os.Stat(filename); err == nil {
		if info.IsDir() {
			logCheckFile(parameter, "Error: %v is a directory", filename)
			return false
		}
		return true
	} else if os.IsNotExist(err) {
		logCheckFile(parameter, "Error: File %v does not exist", filename)
		return false
	} else if os.IsPermission(err) {
		logCheckFile(parameter, "Error: No permission to read file %v", filename)
		return false
	} else {
		logCheckFile(parameter, "Error %v when trying to access file %v", err, filename)
		return false
	}
}

func checkCreate(parameter, filename string) bool {
	if len(filename) == 0 {
		logCheckFile(parameter, "Error: Missing filename")
		return false
	}
	if filename[0] == '-' {
		logCheckFile(parameter, "Error: Missing filename before %v", filename)
		return false
	}
	if _, err := os.Stat(filename); err == nil {
		// Assume that the file has been written by previous tabcat runs, and can be overwritten
		// as long as its directory is writable.
		if err := unix.Access(filepath.Dir(filename), unix.W_OK); err != nil {
			logCheckFile(parameter, "Error: No permission to replace file %v", filename)
			return false
		}
		return true
	}
	err := os.MkdirAll(filepath.Dir(filename), 0700)
	if err == nil {
		err = os.WriteFile(filename, nil, 0666)
	}
	if err != nil {
		if os.IsPermission(err) {
			logCheckFile(parameter, "Error: No permission to create file %v", filename)
		} else {
			logCheckFile(parameter, "Error %v when trying to create file %v", err, filename)
		}
		return false
	}
	_ = os.Remove(filename)
	return true
}

func checkThreads(nrOfThreads int) bool {
	if nrOfThreads < 0 {
		log.Println("Error: Invalid nr-of-threads: ", nrOfThreads)
		return false
	}
	if nrOfThreads > 0 {
		runtime.GOMAXPROCS(nrOfThreads)
	}
	return true
}

func createLogFilename() string {
	t := time.Now()
	zone, _ := t.Zone()
	return fmt.Sprintf("logs/tabcat/tabcat-%d-%02d-%02d-%02d-%02d-%02d-%09d-%v.log", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), zone)
}

// setLogOutput copies everything written to stderr, including the
// log, to a fresh log file below path, or below $HOME if path is
// empty.
func setLogOutput(path string) error {
	logPath := createLogFilename()
	var fullPath string
	if path == "" {
		fullPath = filepath.Join(os.Getenv("HOME"), logPath)
	} else {
		fullPath = filepath.Join(path, logPath)
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0700); err != nil {
		return err
	}
	f, err := os.Create(fullPath)
	if err != nil {
		return err
	}
	fmt.Fprintln(f, ProgramMessage)

	orgStderr, err := unix.Dup(2)
	if err != nil {
		return err
	}
	ferr := os.NewFile(uintptr(orgStderr), "/dev/stderr")
	if err := unix.Dup2(int(f.Fd()), 2); err != nil {
		return err
	}

	multi := io.MultiWriter(f, ferr)

	log.SetOutput(multi)
	log.Println("Created log file at", fullPath)
	log.Println("Command line:", os.Args)
	return nil
}

func timedRun(timed bool, profile, msg string, phase int64, f func() error) error {
	if profile != "" {
		filename := profile + strconv.FormatInt(phase, 10) + ".prof"
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}
	if timed {
		log.Println(msg)
		start := time.Now()
		defer func() {
			end := time.Now()
			log.Println("Elapsed time: ", end.Sub(start))
		}()
	}
	return f()
}

func executeMerge(timed bool, profile, msg string, inputs []string, output string, opts tables.Options) error {
	return timedRun(timed, profile, msg, 1, func() error {
		result, err := tables.Merge(inputs, output, opts)
		if err != nil {
			return err
		}
		log.Printf("Merged %v input files aligned by %v into %v (%v bytes, sha1 %v).\n",
			len(inputs), opts.Align, result.Path, result.Size, result.Checksum)
		return nil
	})
}
