// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickScale(t *testing.T) {
	test := func(ticks []float64, want ...string) {
		t.Helper()
		s := TickScale(ticks)
		var got []string
		for _, v := range ticks {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				got = append(got, s.Format(v))
			}
		}
		assert.Equal(t, want, got, "for %v", ticks)
	}

	test([]float64{0, 20, 40, 60}, "0", "20", "40", "60")
	test([]float64{-1, -0.5, 0, 0.5, 1}, "-1.0", "-0.5", "0.0", "0.5", "1.0")
	test([]float64{0.25, 0.5, 0.75}, "0.25", "0.50", "0.75")
	test([]float64{0.001, 0.002, 0.003}, "0.001", "0.002", "0.003")
	// Subtraction noise does not add decimals.
	test([]float64{0.1, 0.2, 0.30000000000000004}, "0.1", "0.2", "0.3")
	test([]float64{1000, 1500, 2000}, "1.0k", "1.5k", "2.0k")
	test([]float64{0, 2e6, 4e6}, "0M", "2M", "4M")
	test([]float64{-5e9, 0, 5e9}, "-5G", "0G", "5G")
	test([]float64{3e12, 4e12}, "3T", "4T")
	// Order and non-finite ticks do not matter.
	test([]float64{30, math.NaN(), 10, math.Inf(1), 20}, "30", "10", "20")
	// A lone tick is its own step.
	test([]float64{2.5}, "2.5")
}

func TestTickScaleDegenerate(t *testing.T) {
	assert.Equal(t, Scaler{0, 1, ""}, TickScale(nil))
	assert.Equal(t, Scaler{0, 1, ""}, TickScale([]float64{math.NaN()}))
	assert.Equal(t, Scaler{0, 1, ""}, TickScale([]float64{0, 0}))
	assert.Equal(t, maxPrec, TickScale([]float64{0, 1e-12}).Prec)
}
