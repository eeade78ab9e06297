// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairfmt

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/blandaltman/agreement/numfmt"
)

// A Writer writes the paired measurement format.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer

	first  bool
	config map[string]string
	order  []string
}

// NewWriter returns a writer that writes pairs to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, first: true, config: make(map[string]string)}
}

// Write writes pair p to w. If p's metadata differs from the current
// metadata in w, it first emits the appropriate key: value lines.
func (w *Writer) Write(p *Pair) error {
	// If any metadata changed, write out the changes.
	if len(w.config) != len(p.Config) {
		w.writeConfig(p)
	} else {
		for _, cfg := range p.Config {
			if val, ok := w.config[cfg.Key]; !ok || cfg.Value != val {
				w.writeConfig(p)
				break
			}
		}
	}

	fmt.Fprintf(&w.buf, "%s %s\n", formatValue(p.Reference), formatValue(p.New))
	w.first = false

	// Flush the buffer out to the io.Writer. Write to the buffer
	// can't fail, so we only have to check if this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return numfmt.Exact(v)
}

func (w *Writer) writeConfig(p *Pair) {
	if !w.first {
		// Metadata blocks after pairs get an extra blank.
		w.buf.WriteByte('\n')
		w.first = true
	}

	// Walk keys we know to find changes and deletions.
	for i := 0; i < len(w.order); i++ {
		key := w.order[i]
		have := w.config[key]
		idx, ok := configIndex(p.Config, key)
		if !ok {
			// Key was deleted.
			fmt.Fprintf(&w.buf, "%s:\n", key)
			delete(w.config, key)
			copy(w.order[i:], w.order[i+1:])
			w.order = w.order[:len(w.order)-1]
			i--
			continue
		}
		if have == p.Config[idx].Value {
			// Value did not change.
			continue
		}
		// Value changed.
		fmt.Fprintf(&w.buf, "%s: %s\n", key, p.Config[idx].Value)
		w.config[key] = p.Config[idx].Value
	}

	// Find new keys.
	if len(w.config) != len(p.Config) {
		for _, cfg := range p.Config {
			if _, ok := w.config[cfg.Key]; ok {
				continue
			}
			// New key.
			fmt.Fprintf(&w.buf, "%s: %s\n", cfg.Key, cfg.Value)
			w.config[cfg.Key] = cfg.Value
			w.order = append(w.order, cfg.Key)
		}
	}

	w.buf.WriteByte('\n')
}
