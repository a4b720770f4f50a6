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

package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/exascience/tabcat/tables"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		t.Fatal(err)
	}
}

func writeJob(t *testing.T, dir string, job map[string]interface{}) string {
	t.Helper()
	data, err := json.Marshal(job)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "input.json")
	writeFile(t, path, string(data))
	return path
}

func TestRunTwoTables(t *testing.T) {
	dir := t.TempDir()
	input1 := filepath.Join(dir, "input1.txt")
	input2 := filepath.Join(dir, "input2.txt")
	writeFile(t, input1, "HEADER1\nfoo1\nbar1\n")
	writeFile(t, input2, "HEADER2\nfoo2\nbar2\n")
	jobFile := writeJob(t, dir, map[string]interface{}{
		"input_files": []map[string]string{
			{"class": "File", "path": input1},
			{"class": "File", "path": input2},
		},
		"output_filename": "output.txt",
	})

	job, err := LoadJob(jobFile)
	if err != nil {
		t.Fatal(err)
	}
	outdir := filepath.Join(dir, "output")
	output, err := Run(job, outdir)
	if err != nil {
		t.Fatal(err)
	}

	expected := &Output{OutputFile: &File{
		Location: "file://" + filepath.Join(outdir, "output.txt"),
		Basename: "output.txt",
		Class:    "File",
		Checksum: "sha1$d92a4e707cb5dad2ec557edfe976680dfffc5f3f",
		Size:     53,
		Path:     filepath.Join(outdir, "output.txt"),
	}}
	if diff := cmp.Diff(expected, output); diff != "" {
		t.Errorf("Run output mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(output.OutputFile.Path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\r\n"), "\r\n")
	expectedLines := []string{"HEADER1\tHEADER2", "foo1\tNA", "bar1\tNA", "NA\tfoo2", "NA\tbar2"}
	if diff := cmp.Diff(expectedLines, lines); diff != "" {
		t.Errorf("output lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRunOneTable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "input1.txt"), "HEADER1\nfoo1\nbar1\n")
	jobFile := writeJob(t, dir, map[string]interface{}{
		"input_files":     []map[string]string{{"class": "File", "path": "input1.txt"}},
		"output_filename": "output.txt",
	})

	job, err := LoadJob(jobFile)
	if err != nil {
		t.Fatal(err)
	}
	output, err := Run(job, filepath.Join(dir, "output"))
	if err != nil {
		t.Fatal(err)
	}
	if output.OutputFile.Checksum != "sha1$2274c54c24a98e8235e34d78b700d04cb95f48dd" || output.OutputFile.Size != 21 {
		t.Errorf("unexpected output file %+v", output.OutputFile)
	}
}

func TestRunLineAlignment(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.txt")
	writeFile(t, input, "x\ny\n")
	job := &Job{
		InputFiles:     []File{{Class: "File", Location: "file://" + input}, {Path: input}},
		OutputFilename: "out.txt",
		Align:          "line",
	}
	output, err := Run(job, dir)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(output.OutputFile.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "x\tx\ny\ty\n" {
		t.Errorf("Run wrote %q", data)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.txt")
	writeFile(t, input, "x\n")

	for _, job := range []*Job{
		{InputFiles: nil, OutputFilename: "out.txt"},
		{InputFiles: []File{{Path: input}}, OutputFilename: ""},
		{InputFiles: []File{{Path: input}}, OutputFilename: "sub/out.txt"},
		{InputFiles: []File{{Class: "Directory", Path: dir}}, OutputFilename: "out.txt"},
		{InputFiles: []File{{Location: "http://example.com/a.txt"}}, OutputFilename: "out.txt"},
		{InputFiles: []File{{Class: "File"}}, OutputFilename: "out.txt"},
		{InputFiles: []File{{Path: input}}, OutputFilename: "out.txt", Align: "key"},
		{InputFiles: []File{{Path: input}}, OutputFilename: "out.txt", Delimiter: "||"},
	} {
		var cerr *tables.ConfigurationError
		if _, err := Run(job, dir); !errors.As(err, &cerr) {
			t.Errorf("expected a ConfigurationError for %+v, got %v", job, err)
		}
	}

	job := &Job{InputFiles: []File{{Path: filepath.Join(dir, "missing.txt")}}, OutputFilename: "out.txt"}
	var ierr *tables.InputError
	if _, err := Run(job, dir); !errors.As(err, &ierr) {
		t.Errorf("expected an InputError, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.txt")); !os.IsNotExist(err) {
		t.Error("a failed Run left an output file")
	}
}

func TestOutputEncode(t *testing.T) {
	output := &Output{OutputFile: &File{
		Location: "file:///tmp/out/output.txt",
		Basename: "output.txt",
		Class:    "File",
		Checksum: "sha1$2274c54c24a98e8235e34d78b700d04cb95f48dd",
		Size:     21,
		Path:     "/tmp/out/output.txt",
	}}
	var buf bytes.Buffer
	if err := output.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	expected := map[string]map[string]interface{}{
		"output_file": {
			"location": "file:///tmp/out/output.txt",
			"basename": "output.txt",
			"class":    "File",
			"checksum": "sha1$2274c54c24a98e8235e34d78b700d04cb95f48dd",
			"size":     float64(21),
			"path":     "/tmp/out/output.txt",
		},
	}
	if diff := cmp.Diff(expected, decoded); diff != "" {
		t.Errorf("encoded output mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJobOptions(t *testing.T) {
	job, err := DecodeJob(strings.NewReader(`{
		"input_files": [{"class": "File", "path": "/a.csv"}],
		"output_filename": "out.csv",
		"delimiter": "comma",
		"na_str": "-",
		"comments": true,
		"no_carriage_returns": true
	}`))
	if err != nil {
		t.Fatal(err)
	}
	opts, err := job.Options()
	if err != nil {
		t.Fatal(err)
	}
	expected := tables.Options{Align: tables.ByHeader, NA: "-", Delimiter: ',', LineTerminator: "\n", Comments: true}
	if diff := cmp.Diff(expected, opts); diff != "" {
		t.Errorf("Options mismatch (-want +got):\n%s", diff)
	}
	inputs, err := job.Inputs()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"/a.csv"}, inputs); diff != "" {
		t.Errorf("Inputs mismatch (-want +got):\n%s", diff)
	}
}
