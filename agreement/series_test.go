// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agreement

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesPresence(t *testing.T) {
	var absent Series
	assert.False(t, absent.Present())
	assert.Equal(t, 0, absent.Len())

	empty := Values(nil)
	assert.True(t, empty.Present())
	assert.Equal(t, 0, empty.Len())

	xs := []float64{1, 2}
	s := Values(xs)
	cp := s.Float64s()
	cp[0] = 99
	assert.Equal(t, 1.0, s.At(0))
}

func TestCoerce(t *testing.T) {
	s, err := Coerce([]any{1, int64(2), float32(2.5), 3.25, uint8(4), nil, json.Number("6.5")})
	require.NoError(t, err)
	require.Equal(t, 7, s.Len())
	assert.Equal(t, []float64{1, 2, 2.5, 3.25, 4}, s.Float64s()[:5])
	assert.True(t, math.IsNaN(s.At(5)))
	assert.Equal(t, 6.5, s.At(6))

	for _, bad := range [][]any{
		{1, "2"},
		{true},
		{[]float64{1}},
		{json.Number("x")},
	} {
		_, err := Coerce(bad)
		assert.ErrorIs(t, err, ErrTypeMismatch, "%v", bad)
	}
}

func TestCoerceThenAnalyze(t *testing.T) {
	ref, err := Coerce([]any{1, nil, 3})
	require.NoError(t, err)
	val, err := Coerce([]any{1.0, 2.0, 5.0})
	require.NoError(t, err)
	res, err := Analyze(ref, val, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Summary.Bias)
}
