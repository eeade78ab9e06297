// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numfmt formats measurement values for plot annotations,
// axis ticks, and data files.
package numfmt

import (
	"math"
	"sort"
	"strconv"
)

// A Scaler formats the values of one axis with a common SI prefix and
// a common number of decimals.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Value of one Prefix (1 k => 1000)
	Prefix string
}

// Format formats val/Factor with Prec decimals and appends Prefix.
func (s Scaler) Format(val float64) string {
	return Fixed(val/s.Factor, s.Prec) + s.Prefix
}

// maxPrec bounds the decimals TickScale will ask for.
const maxPrec = 9

var siPrefixes = []struct {
	factor float64
	prefix string
}{
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
}

// TickScale returns a Scaler for a set of evenly spaced axis ticks.
// The prefix keeps the largest tick below 1000 units. The precision
// is the fewest decimals that still tell adjacent ticks apart.
// Non-finite ticks are ignored.
func TickScale(ticks []float64) Scaler {
	var vals []float64
	for _, v := range ticks {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	sort.Float64s(vals)

	s := Scaler{0, 1, ""}
	if len(vals) == 0 {
		return s
	}
	top := math.Max(math.Abs(vals[0]), math.Abs(vals[len(vals)-1]))
	for _, p := range siPrefixes {
		if top >= p.factor {
			s.Factor, s.Prefix = p.factor, p.prefix
			break
		}
	}

	// The step is the smallest gap between distinct ticks. A lone
	// tick is its own step.
	step := math.Inf(1)
	for i := 1; i < len(vals); i++ {
		if d := vals[i] - vals[i-1]; d > 0 && d < step {
			step = d
		}
	}
	if math.IsInf(step, 1) {
		step = math.Abs(vals[0])
	}
	if step == 0 {
		return s
	}
	s.Prec = decimals(step / s.Factor)
	return s
}

// decimals returns the number of digits after the decimal point in
// the shortest representation of x, after dropping the noise of
// floating-point subtraction.
func decimals(x float64) int {
	x, _ = strconv.ParseFloat(strconv.FormatFloat(x, 'g', 9, 64), 64)
	s := strconv.FormatFloat(x, 'f', -1, 64)
	for i := range s {
		if s[i] == '.' {
			return min(len(s)-i-1, maxPrec)
		}
	}
	return 0
}
