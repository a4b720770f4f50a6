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
	"crypto/sha1"
	"encoding/hex"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/exascience/tabcat/internal"
)

// A Result describes a written output file.
type Result struct {
	Path string

	// Checksum is the hexadecimal SHA-1 digest of the file contents.
	Checksum string

	Size int64
}

type countingWriter struct {
	w    io.Writer
	hash hash.Hash
	size int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.hash.Write(p[:n])
	c.size += int64(n)
	return n, err
}

func writeRows(output string, rows [][]string, delimiter, terminator string) (*Result, error) {
	if err := os.MkdirAll(filepath.Dir(output), 0777); err != nil {
		return nil, &OutputError{Path: output, Err: err}
	}
	tmp, err := internal.CreateTemp(output)
	if err != nil {
		return nil, &OutputError{Path: output, Err: err}
	}
	cw := &countingWriter{w: tmp, hash: sha1.New()}
	out := bufio.NewWriter(cw)

	buf := internal.ReserveByteBuffer()
	for _, row := range rows {
		buf = buf[:0]
		for j, field := range row {
			if j > 0 {
				buf = append(buf, delimiter...)
			}
			buf = append(buf, field...)
		}
		buf = append(buf, terminator...)
		if _, err = out.Write(buf); err != nil {
			break
		}
	}
	internal.ReleaseByteBuffer(buf)
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		internal.Discard(tmp)
		return nil, &OutputError{Path: output, Err: err}
	}
	if err = internal.Commit(tmp, output); err != nil {
		return nil, &OutputError{Path: output, Err: err}
	}
	return &Result{
		Path:     output,
		Checksum: hex.EncodeToString(cw.hash.Sum(nil)),
		Size:     cw.size,
	}, nil
}
