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

package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCommit(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	tmp, err := CreateTemp(target)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(tmp.Name()) != dir {
		t.Errorf("temporary file %v not created next to %v", tmp.Name(), target)
	}
	if _, err := tmp.WriteString("hello\n"); err != nil {
		t.Fatal(err)
	}
	if err := Commit(tmp, target); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello\n" {
		t.Errorf("Commit wrote %q", data)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %v entries", len(entries))
	}
}

func TestDiscard(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	tmp, err := CreateTemp(target)
	if err != nil {
		t.Fatal(err)
	}
	Discard(tmp)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Error("Discard left files behind")
	}
}

func TestFullPathname(t *testing.T) {
	if p, err := FullPathname("/a/b"); err != nil || p != "/a/b" {
		t.Error("FullPathname of absolute path failed")
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if p, err := FullPathname("x.txt"); err != nil || p != filepath.Join(wd, "x.txt") {
		t.Error("FullPathname of relative path failed")
	}
}
