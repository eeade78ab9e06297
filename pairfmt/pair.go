// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pairfmt reads and writes paired measurements in a simple
// line-oriented text format.
//
// Each data line holds two numbers, the reference measurement and the
// new measurement of one subject, separated by white space or a comma:
//
//	12.5 12.9
//	13.1, NaN
//
// NaN, NA, and "-" mark a missing measurement. Blank lines and lines
// starting with "#" are ignored. A line of the form "key: value" sets
// file-level metadata that applies to the pairs that follow it; an
// empty value deletes the key. Keys begin with a lower case letter and
// contain no spaces or upper case letters.
//
// Commonly used keys are "title", "reference", and "new", which name
// the plot and the two methods.
package pairfmt

// Pair is one subject's reference and new measurements.
type Pair struct {
	// Config is the file-level metadata in effect for this pair.
	Config []Config

	Reference, New float64

	// FileName and Line locate the pair in its input. They are
	// purely diagnostic.
	FileName string
	Line     int
}

// Config is a single key/value metadata pair.
type Config struct {
	Key, Value string
}

// Clone makes a copy of p that shares no state with p.
func (p *Pair) Clone() *Pair {
	p2 := *p
	p2.Config = append([]Config(nil), p.Config...)
	return &p2
}

// Get returns the value of metadata key, or "" if it is not set.
func (p *Pair) Get(key string) string {
	if i, ok := configIndex(p.Config, key); ok {
		return p.Config[i].Value
	}
	return ""
}

func configIndex(cfg []Config, key string) (int, bool) {
	for i := range cfg {
		if cfg[i].Key == key {
			return i, true
		}
	}
	return 0, false
}

// setConfig sets key to val in *cfg, deleting it if val is empty.
func setConfig(cfg *[]Config, key, val string) {
	i, ok := configIndex(*cfg, key)
	switch {
	case ok && val == "":
		*cfg = append((*cfg)[:i], (*cfg)[i+1:]...)
	case ok:
		(*cfg)[i].Value = val
	case val != "":
		*cfg = append(*cfg, Config{key, val})
	}
}
