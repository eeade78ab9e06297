// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agreement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistribution(t *testing.T) {
	in := []float64{4, nan, 1, 3, 2}
	d := NewDistribution(in)

	assert.Equal(t, []float64{1, 2, 3, 4}, d.Values)
	assert.Equal(t, 4, d.N())
	assert.Equal(t, 2.5, d.Mean)
	assert.Equal(t, 2.5, d.Center)
	assert.InDelta(t, math.Sqrt(1.25), d.SD, 1e-12)

	// The input order is preserved.
	assert.Equal(t, 4.0, in[0])
}

func TestDistributionEmpty(t *testing.T) {
	for _, in := range [][]float64{nil, {nan, nan}} {
		d := NewDistribution(in)
		assert.Equal(t, 0, d.N())
		assert.True(t, math.IsNaN(d.Mean))
		assert.True(t, math.IsNaN(d.SD))
		assert.True(t, math.IsNaN(d.Center))
	}
}

func TestNaNMean2(t *testing.T) {
	assert.Equal(t, 1.5, nanMean2(1, 2))
	assert.Equal(t, 2.0, nanMean2(nan, 2))
	assert.Equal(t, 1.0, nanMean2(1, nan))
	assert.True(t, math.IsNaN(nanMean2(nan, nan)))
}
