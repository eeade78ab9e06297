// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Fixed formats val with exactly prec digits after the decimal point.
// A value that rounds to zero is printed without a sign.
func Fixed(val float64, prec int) string {
	s := strconv.FormatFloat(val, 'f', prec, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		s = s[1:]
	}
	return s
}

// Exact formats val with the fewest digits that parse back to exactly
// val, and no exponent. It is meant for output another program will
// read, such as a data file.
func Exact(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

// Short rounds val to prec decimals and formats the result with the
// fewest digits that represent it. Whole numbers keep one decimal
// ("1.0"), and magnitudes of 1e16 and up use an exponent ("1e+16").
// Non-finite values print as "nan", "inf", and "-inf".
func Short(val float64, prec int) string {
	switch {
	case math.IsNaN(val):
		return "nan"
	case math.IsInf(val, 1):
		return "inf"
	case math.IsInf(val, -1):
		return "-inf"
	}
	r := Round(val, prec)
	if math.Abs(r) >= 1e16 {
		return strconv.FormatFloat(r, 'g', -1, 64)
	}
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Round rounds val to prec digits after the decimal point. The result
// always agrees with the text produced by Fixed.
func Round(val float64, prec int) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return val
	}
	r, err := strconv.ParseFloat(Fixed(val, prec), 64)
	if err != nil {
		return val
	}
	return r
}
