// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairfmt

import (
	"io"
	"os"
)

// Files reads pairs from a sequence of files, the way a command reads
// the files named by its arguments. Metadata does not carry over from
// one file to the next.
//
// Every Pair carries a ".file" metadata key holding the path it was
// read from, exactly as it appears in Paths. Input files cannot set
// that key themselves.
type Files struct {
	Paths []string

	// AllowStdin treats the path "-" as standard input, and an empty
	// Paths as the single path "-".
	AllowStdin bool

	// Open opens a path other than standard input. If nil, Files
	// uses os.Open.
	Open func(path string) (io.ReadCloser, error)

	// Stdin is read for "-". If nil, Files reads os.Stdin.
	// Standard input is never closed.
	Stdin io.Reader

	next    int
	reading bool
	closer  io.Closer
	reader  Reader
	stats   []FileStats
	err     error
}

// FileStats counts the data lines one input contributed.
type FileStats struct {
	Path      string
	Pairs     int // Well-formed pair lines
	Malformed int // Data lines that failed to parse
}

// Scan advances to the next data line, moving on to later files as
// earlier ones are exhausted. It returns false after the last file
// or on the first I/O error. Err tells the two apart.
//
// A file is closed as soon as it is exhausted or fails.
func (f *Files) Scan() bool {
	for f.err == nil {
		if !f.reading {
			paths := f.paths()
			if f.next >= len(paths) {
				return false
			}
			path := paths[f.next]
			f.next++
			if f.err = f.openPath(path); f.err != nil {
				return false
			}
		}

		if f.reader.Scan() {
			st := &f.stats[len(f.stats)-1]
			if _, err := f.reader.Pair(); err != nil {
				st.Malformed++
			} else {
				st.Pairs++
			}
			return true
		}
		f.err = f.reader.Err()
		f.closeCurrent()
	}
	return false
}

// Pair returns the pair on the current line, or a *SyntaxError if the
// line was malformed. Syntax errors do not stop Scan.
//
// The Pair is overwritten by the next call to Scan.
func (f *Files) Pair() (*Pair, error) {
	return f.reader.Pair()
}

// Err returns the first error that ended Scan early, or nil if every
// file was read to the end.
func (f *Files) Err() error {
	return f.err
}

// Stats returns what each file opened so far contributed, in the
// order the files were read.
func (f *Files) Stats() []FileStats {
	return append([]FileStats(nil), f.stats...)
}

func (f *Files) paths() []string {
	if f.AllowStdin && len(f.Paths) == 0 {
		return []string{"-"}
	}
	return f.Paths
}

func (f *Files) openPath(path string) error {
	var r io.Reader
	if f.AllowStdin && path == "-" {
		r = f.Stdin
		if r == nil {
			r = os.Stdin
		}
	} else {
		open := f.Open
		if open == nil {
			open = func(path string) (io.ReadCloser, error) { return os.Open(path) }
		}
		rc, err := open(path)
		if err != nil {
			return err
		}
		r, f.closer = rc, rc
	}
	f.reading = true
	f.reader.Reset(r, path, ".file", path)
	f.stats = append(f.stats, FileStats{Path: path})
	return nil
}

func (f *Files) closeCurrent() {
	if f.closer != nil {
		f.closer.Close()
		f.closer = nil
	}
	f.reading = false
}
