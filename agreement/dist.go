// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agreement

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

// A Distribution summarizes a sample, ignoring missing (NaN) values.
type Distribution struct {
	// Values are the non-missing values, sorted.
	Values []float64

	Mean   float64
	SD     float64 // Population standard deviation (divisor N)
	Center float64 // Median
}

// NewDistribution summarizes values. The caller's slice is not
// modified. If every value is missing, Mean, SD, and Center are NaN.
func NewDistribution(values []float64) *Distribution {
	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}

	samp := stats.Sample{Xs: xs}
	// Speed up order statistics.
	samp.Sort()
	d := &Distribution{
		Values: samp.Xs,
		Mean:   math.NaN(),
		SD:     math.NaN(),
		Center: math.NaN(),
	}
	if len(xs) == 0 {
		return d
	}
	d.Mean = samp.Mean()
	d.SD = math.Sqrt(stat.PopVariance(samp.Xs, nil))
	d.Center = samp.Quantile(0.5)
	return d
}

// N returns the number of non-missing values.
func (d *Distribution) N() int {
	return len(d.Values)
}

// nanMean2 returns the mean of a and b, ignoring whichever is NaN.
func nanMean2(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}
	return (a + b) / 2
}
