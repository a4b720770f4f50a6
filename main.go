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

// tabcat concatenates tabular text files, either by stacking the rows
// of tables under the union of their headers, or by pasting files side
// by side line by line.
//
// Please see https://github.com/exascience/tabcat for a documentation
// of the tool.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/exascience/tabcat/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: concat, paste, run")
	fmt.Fprint(os.Stderr, "\n", cmd.ConcatHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.PasteHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.RunHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage+"\n")
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "concat", "concat-tables":
		err = cmd.Concat()
	case "paste":
		err = cmd.Paste()
	case "run":
		err = cmd.Run()
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Printf("Unknown command %v.\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
