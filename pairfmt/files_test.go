// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairfmt

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("title: A\n1 2\n3 4\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("5 6\nbad\n"), 0o644))

	f := &Files{Paths: []string{a, b}}
	var got []string
	for f.Scan() {
		p, err := f.Pair()
		if err != nil {
			got = append(got, "error")
			continue
		}
		got = append(got, filepath.Base(p.Get(".file"))+" "+printPair(&Pair{Reference: p.Reference, New: p.New, Line: p.Line}))
		assert.Equal(t, p.Get(".file"), p.FileName)
	}
	require.NoError(t, f.Err())
	assert.Equal(t, []string{
		"a.txt 1 2 @2",
		"a.txt 3 4 @3",
		"b.txt 5 6 @1",
		"error",
	}, got)
}

func TestFilesMetadataResetsPerFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("title: A\n1 2\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("5 6\n"), 0o644))

	f := &Files{Paths: []string{a, b}}
	var titles []string
	for f.Scan() {
		p, err := f.Pair()
		require.NoError(t, err)
		titles = append(titles, p.Get("title"))
	}
	require.NoError(t, f.Err())
	assert.Equal(t, []string{"A", ""}, titles)
}

func TestFilesMissing(t *testing.T) {
	f := &Files{Paths: []string{filepath.Join(t.TempDir(), "nope")}}
	assert.False(t, f.Scan())
	assert.Error(t, f.Err())
}

func TestFilesStats(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("1 2\nx y\n3,4\n"), 0o644))

	f := &Files{Paths: []string{a, "-"}, AllowStdin: true, Stdin: strings.NewReader("# none\n")}
	for f.Scan() {
	}
	require.NoError(t, f.Err())
	assert.Equal(t, []FileStats{
		{Path: a, Pairs: 2, Malformed: 1},
		{Path: "-"},
	}, f.Stats())
}

func TestFilesStdinDefault(t *testing.T) {
	f := &Files{AllowStdin: true, Stdin: strings.NewReader("1 2\n")}
	require.True(t, f.Scan())
	p, err := f.Pair()
	require.NoError(t, err)
	assert.Equal(t, "-", p.Get(".file"))
	assert.False(t, f.Scan())
	require.NoError(t, f.Err())
}

// trackedFile fails with err after its data and records Close.
type trackedFile struct {
	io.Reader
	closed bool
}

func (t *trackedFile) Close() error {
	t.closed = true
	return nil
}

func TestFilesClosesOnReadError(t *testing.T) {
	errDisk := errors.New("disk on fire")
	opened := map[string]*trackedFile{}
	f := &Files{
		Paths: []string{"good", "bad", "never"},
		Open: func(path string) (io.ReadCloser, error) {
			r := io.Reader(strings.NewReader("1 2\n"))
			if path == "bad" {
				r = io.MultiReader(r, iotest.ErrReader(errDisk))
			}
			tf := &trackedFile{Reader: r}
			opened[path] = tf
			return tf, nil
		},
	}
	n := 0
	for f.Scan() {
		n++
	}
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, f.Err(), errDisk)
	require.Contains(t, opened, "good")
	require.Contains(t, opened, "bad")
	assert.True(t, opened["good"].closed)
	assert.True(t, opened["bad"].closed)
	assert.NotContains(t, opened, "never")

	// Once failed, Files stays failed.
	assert.False(t, f.Scan())
}
