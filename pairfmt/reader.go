// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairfmt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// A Reader reads the paired measurement format.
//
// Its API is modeled on bufio.Scanner. A Reader retains ownership of
// the Pair it returns; a caller should Clone anything it needs to
// retain.
//
// A zero Reader must be Reset before use.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	lineNum  int
	err      error // sticky I/O error

	pair    Pair
	pairErr error
}

// A SyntaxError reports a data line that is not a pair of
// measurements. It does not stop the Reader.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

var noPair = errors.New("Reader.Scan has not been called")

// NewReader constructs a reader to parse paired measurements from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input. This
// also resets all of the file-level metadata.
//
// initConfig is an alternating sequence of keys and values that seed
// the metadata. Lines in the input may override them.
func (r *Reader) Reset(ior io.Reader, fileName string, initConfig ...string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.lineNum = 0
	r.err = nil
	r.pairErr = noPair

	// Wipe the Pair.
	r.pair = Pair{Config: r.pair.Config[:0], FileName: fileName}
	if len(initConfig)%2 != 0 {
		panic("len(initConfig) must be a multiple of 2")
	}
	for i := 0; i < len(initConfig); i += 2 {
		setConfig(&r.pair.Config, initConfig[i], initConfig[i+1])
	}
}

// Scan advances the reader to the next pair and returns true if a
// pair was read. The caller should use the Pair method to get the
// pair. If an I/O error occurs, or this reaches the end of the file,
// it returns false and the caller should use the Err method to check
// for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.s.Scan() {
		r.lineNum++
		line := bytes.TrimSpace(r.s.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if key, val, ok := parseKeyValueLine(line); ok {
			setConfig(&r.pair.Config, string(key), string(val))
			continue
		}
		// Anything else must be a data line.
		r.pairErr = r.parsePairLine(line)
		return true
	}

	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.lineNum, err)
		return false
	}
	r.err = nil
	return false
}

// parseKeyValueLine splits a metadata line "key: value". The key
// starts with a lower-case letter and holds no spaces or upper-case
// letters. Spaces or tabs separate the colon from a non-empty value,
// so "key:value" is not metadata.
func parseKeyValueLine(line []byte) (key, val []byte, ok bool) {
	colon := bytes.IndexByte(line, ':')
	if colon <= 0 {
		return nil, nil, false
	}
	key, val = line[:colon], line[colon+1:]
	if first, _ := utf8.DecodeRune(key); !unicode.IsLower(first) {
		return nil, nil, false
	}
	if bytes.IndexFunc(key, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsUpper(r) }) >= 0 {
		return nil, nil, false
	}
	if len(val) == 0 {
		return key, val, true
	}
	trimmed := bytes.TrimLeft(val, " \t")
	if len(trimmed) == len(val) {
		return nil, nil, false
	}
	return key, trimmed, true
}

// parsePairLine parses line as a reference/new pair and updates
// r.pair.
func (r *Reader) parsePairLine(line []byte) error {
	r.pair.Line = r.lineNum
	r.pair.Reference, r.pair.New = math.NaN(), math.NaN()

	f1, line := splitField(line)
	f2, line := splitField(line)
	if len(f2) == 0 {
		return &SyntaxError{r.fileName, r.lineNum, "missing new measurement"}
	}
	if len(line) != 0 {
		return &SyntaxError{r.fileName, r.lineNum, "unexpected text after new measurement"}
	}

	var err error
	if r.pair.Reference, err = atof(f1); err != nil {
		return &SyntaxError{r.fileName, r.lineNum, "parsing reference measurement: " + err.Error()}
	}
	if r.pair.New, err = atof(f2); err != nil {
		return &SyntaxError{r.fileName, r.lineNum, "parsing new measurement: " + err.Error()}
	}
	return nil
}

// Pair returns the last pair read, or an error if the line was
// malformed.
//
// Parse errors are non-fatal, so the caller can continue to call
// Scan.
//
// The caller should not retain the Pair object, as it will be
// overwritten by the next call to Scan.
func (r *Reader) Pair() (*Pair, error) {
	if r.pairErr != nil {
		return nil, r.pairErr
	}
	return &r.pair, nil
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// Parsing helpers.

// atof parses a measurement. The missing-value spellings parse as
// NaN.
func atof(x []byte) (float64, error) {
	switch string(x) {
	case "NaN", "nan", "NA", "-":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(string(x), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, fmt.Errorf("%q: %w", x, numErr.Err)
		}
		return 0, err
	}
	return v, nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// splitField returns the leading field of x, which ends at white
// space or a comma, and what follows the separators after it.
func splitField(x []byte) (field, rest []byte) {
	end := bytes.IndexFunc(x, isSeparator)
	if end < 0 {
		return x, nil
	}
	return x[:end], bytes.TrimLeftFunc(x[end:], isSeparator)
}
