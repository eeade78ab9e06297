// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairfmt

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	title := []Config{{"title", "demo"}}
	both := []Config{{"title", "demo"}, {"new", "imu"}}
	pairs := []*Pair{
		{Config: title, Reference: 1, New: 1.5},
		{Config: title, Reference: 2, New: math.NaN()},
		{Config: both, Reference: 123456.789, New: 3},
		{Config: both[1:], Reference: 4, New: 5},
	}
	for _, p := range pairs {
		require.NoError(t, w.Write(p))
	}

	want := `title: demo

1 1.5
2 NaN

new: imu

123456.789 3

title:

4 5
`
	assert.Equal(t, want, buf.String())

	// The output reads back to the same pairs.
	got := parseAll(t, buf.String())
	assert.Equal(t, []string{
		"{title: demo} 1 1.5 @3",
		"{title: demo} 2 NaN @4",
		"{title: demo} {new: imu} 123456.789 3 @8",
		"{new: imu} 4 5 @12",
	}, got)
}
