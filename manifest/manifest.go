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

// Package manifest reads job descriptions and reports produced files
// as JSON File objects, in the shape workflow runners exchange them.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/exascience/tabcat/internal"
	"github.com/exascience/tabcat/tables"
)

// FileClass is the class tag of File objects.
const FileClass = "File"

// ChecksumPrefix names the digest algorithm of File checksums.
const ChecksumPrefix = "sha1$"

// A File describes an input or output file. Inputs need only Class
// and either Path or Location.
type File struct {
	Location string `json:"location,omitempty"`
	Basename string `json:"basename,omitempty"`
	Class    string `json:"class"`
	Checksum string `json:"checksum,omitempty"`
	Size     int64  `json:"size"`
	Path     string `json:"path,omitempty"`
}

// NewFile describes a file written by tables.Merge.
func NewFile(result *tables.Result) (*File, error) {
	path, err := internal.FullPathname(result.Path)
	if err != nil {
		return nil, err
	}
	return &File{
		Location: (&url.URL{Scheme: "file", Path: path}).String(),
		Basename: filepath.Base(path),
		Class:    FileClass,
		Checksum: ChecksumPrefix + result.Checksum,
		Size:     result.Size,
		Path:     path,
	}, nil
}

// LocalPath returns the file system path of f, relative paths taken
// relative to dir.
func (f *File) LocalPath(dir string) (string, error) {
	if f.Class != "" && f.Class != FileClass {
		return "", &tables.ConfigurationError{Msg: fmt.Sprintf("invalid class %q, expected %q", f.Class, FileClass)}
	}
	path := f.Path
	if path == "" {
		if f.Location == "" {
			return "", &tables.ConfigurationError{Msg: "file object without path or location"}
		}
		u, err := url.Parse(f.Location)
		if err != nil {
			return "", &tables.ConfigurationError{Msg: fmt.Sprintf("invalid location %q: %v", f.Location, err)}
		}
		switch u.Scheme {
		case "":
			path = f.Location
		case "file":
			path = u.Path
		default:
			return "", &tables.ConfigurationError{Msg: fmt.Sprintf("unsupported location %q", f.Location)}
		}
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return path, nil
}

// A Job describes one concatenation: the input files, the name of the
// output file, and the options of tables.Merge.
type Job struct {
	InputFiles        []File `json:"input_files"`
	OutputFilename    string `json:"output_filename"`
	Align             string `json:"align,omitempty"`
	NAString          string `json:"na_str,omitempty"`
	Delimiter         string `json:"delimiter,omitempty"`
	Comments          bool   `json:"comments,omitempty"`
	NoCarriageReturns bool   `json:"no_carriage_returns,omitempty"`

	// dir resolves relative input paths.
	dir string
}

// LoadJob reads a job from a JSON file. Relative input paths are
// resolved against the directory of the job file.
func LoadJob(filename string) (*Job, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	job, err := DecodeJob(file)
	if err != nil {
		return nil, fmt.Errorf("invalid job file %v: %w", filename, err)
	}
	full, err := internal.FullPathname(filename)
	if err != nil {
		return nil, err
	}
	job.dir = filepath.Dir(full)
	return job, nil
}

// DecodeJob reads a job from r. Relative input paths are resolved
// against the current working directory.
func DecodeJob(r io.Reader) (*Job, error) {
	var job Job
	if err := json.NewDecoder(r).Decode(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Inputs returns the paths of the input files in order.
func (job *Job) Inputs() ([]string, error) {
	dir := job.dir
	if dir == "" {
		var err error
		if dir, err = os.Getwd(); err != nil {
			return nil, err
		}
	}
	paths := make([]string, len(job.InputFiles))
	for i := range job.InputFiles {
		path, err := job.InputFiles[i].LocalPath(dir)
		if err != nil {
			return nil, err
		}
		paths[i] = path
	}
	return paths, nil
}

// Options returns the tables.Options selected by the job. The default
// alignment is by header.
func (job *Job) Options() (opts tables.Options, err error) {
	opts.Align = tables.ByHeader
	if job.Align != "" {
		if opts.Align, err = tables.ParseAlignment(job.Align); err != nil {
			return opts, err
		}
	}
	if job.Delimiter != "" {
		if opts.Delimiter, err = tables.ParseDelimiter(job.Delimiter); err != nil {
			return opts, err
		}
	}
	opts.NA = job.NAString
	opts.Comments = job.Comments
	if job.NoCarriageReturns {
		opts.LineTerminator = "\n"
	}
	return opts, nil
}

func checkOutputFilename(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return &tables.ConfigurationError{Msg: fmt.Sprintf("invalid output filename %q", name)}
	case filepath.Base(name) != name:
		return &tables.ConfigurationError{Msg: fmt.Sprintf("output filename %q must not contain a directory", name)}
	}
	return nil
}

// Output is the report of a Run.
type Output struct {
	OutputFile *File `json:"output_file"`
}

// Encode writes o as indented JSON.
func (o *Output) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(o)
}

// Run executes job, writing its output file into outdir, which is
// created when missing.
func Run(job *Job, outdir string) (*Output, error) {
	if err := checkOutputFilename(job.OutputFilename); err != nil {
		return nil, err
	}
	inputs, err := job.Inputs()
	if err != nil {
		return nil, err
	}
	opts, err := job.Options()
	if err != nil {
		return nil, err
	}
	if outdir, err = internal.FullPathname(outdir); err != nil {
		return nil, err
	}
	result, err := tables.Merge(inputs, filepath.Join(outdir, job.OutputFilename), opts)
	if err != nil {
		return nil, err
	}
	file, err := NewFile(result)
	if err != nil {
		return nil, err
	}
	return &Output{OutputFile: file}, nil
}
