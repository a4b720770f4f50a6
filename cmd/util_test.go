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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitArgs(t *testing.T) {
	filenames, rest := splitArgs([]string{"a.txt", "b.txt", "out.txt", "--timed", "--na-str", "-"}, "")
	if diff := cmp.Diff([]string{"a.txt", "b.txt", "out.txt"}, filenames); diff != "" {
		t.Errorf("filenames mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"--timed", "--na-str", "-"}, rest); diff != "" {
		t.Errorf("flags mismatch (-want +got):\n%s", diff)
	}

	filenames, rest = splitArgs([]string{"job.json"}, "")
	if len(filenames) != 1 || rest != nil {
		t.Error("splitArgs without flags failed")
	}
}

func TestCheckExist(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("a\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if !checkExist("", file) {
		t.Error("checkExist rejected an existing file")
	}
	if checkExist("", filepath.Join(dir, "missing.txt")) {
		t.Error("checkExist accepted a missing file")
	}
	if checkExist("", dir) {
		t.Error("checkExist accepted a directory")
	}
	if checkExist("", "") || checkExist("", "--timed") {
		t.Error("checkExist accepted a missing filename")
	}
}

func TestCheckCreate(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "sub", "out.txt")
	if !checkCreate("", output) {
		t.Error("checkCreate rejected a creatable file")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("checkCreate left its probe file behind")
	}
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, nil, 0666); err != nil {
		t.Fatal(err)
	}
	if !checkCreate("", file) {
		t.Error("checkCreate rejected an existing file in a writable directory")
	}
	if checkCreate("", filepath.Join(file, "out.txt")) {
		t.Error("checkCreate accepted a file below a regular file")
	}
}
