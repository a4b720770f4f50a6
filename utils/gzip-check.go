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

package utils

import (
	"bufio"
	"io"

	"github.com/klauspost/compress/gzip"
)

// IsGzip reports whether the buffered input starts with the gzip
// magic number. BGZF files are gzip files and are reported as well.
func IsGzip(buf *bufio.Reader) (bool, error) {
	magic, err := buf.Peek(2)
	if err == io.EOF {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return magic[0] == 0x1f && magic[1] == 0x8b, nil
}

// HandleGzip returns a reader that decompresses buf if it holds gzip
// data, or buf itself otherwise.
func HandleGzip(buf *bufio.Reader) (io.Reader, error) {
	if ok, err := IsGzip(buf); err != nil {
		return nil, err
	} else if ok {
		return gzip.NewReader(buf)
	}
	return buf, nil
}
