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

	"github.com/google/uuid"
)

// FullPathname returns filename as an absolute path, relative to the
// current working directory when it is not absolute already.
func FullPathname(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		return filename, nil
	}
	wd, err := os.Getwd()
	return filepath.Join(wd, filename), err
}

// CreateTemp creates a fresh, uniquely named file next to target,
// so that it can later be renamed over target with Commit.
func CreateTemp(target string) (*os.File, error) {
	dir, base := filepath.Split(target)
	name := filepath.Join(dir, "."+base+"."+uuid.New().String()+".tmp")
	return os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
}

// Commit syncs and closes the temporary file and renames it to
// target. The temporary file is removed if any of these steps fails.
func Commit(tmp *os.File, target string) (err error) {
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

// Discard closes and removes a temporary file created with CreateTemp.
func Discard(tmp *os.File) {
	_ = tmp.Close()
	_ = os.Remove(tmp.Name())
}
