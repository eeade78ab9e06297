// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agreement

import (
	"encoding/json"
	"fmt"
	"math"
)

// A Series is one side of a paired sample: the measurements of a
// single method, in subject order. NaN marks a missing measurement.
//
// The zero Series is absent, which is distinct from a present Series
// with no values.
type Series struct {
	xs      []float64
	present bool
}

// Values returns a present Series holding xs. The Series shares xs
// with the caller; Analyze never modifies it.
func Values(xs []float64) Series {
	return Series{xs: xs, present: true}
}

// Present reports whether s was supplied.
func (s Series) Present() bool {
	return s.present
}

// Len returns the number of measurements in s, including missing
// ones.
func (s Series) Len() int {
	return len(s.xs)
}

// At returns the i'th measurement.
func (s Series) At(i int) float64 {
	return s.xs[i]
}

// Float64s returns a copy of the measurements in s.
func (s Series) Float64s() []float64 {
	return append([]float64(nil), s.xs...)
}

// Coerce converts loosely typed values, such as those decoded from
// JSON or YAML, into a present Series. Go integer and floating-point
// types and json.Number convert to float64; nil converts to NaN. Any
// other element, including strings and bools, fails with
// ErrTypeMismatch.
func Coerce(vals []any) (Series, error) {
	xs := make([]float64, len(vals))
	for i, v := range vals {
		switch v := v.(type) {
		case nil:
			xs[i] = math.NaN()
		case float64:
			xs[i] = v
		case float32:
			xs[i] = float64(v)
		case int:
			xs[i] = float64(v)
		case int8:
			xs[i] = float64(v)
		case int16:
			xs[i] = float64(v)
		case int32:
			xs[i] = float64(v)
		case int64:
			xs[i] = float64(v)
		case uint:
			xs[i] = float64(v)
		case uint8:
			xs[i] = float64(v)
		case uint16:
			xs[i] = float64(v)
		case uint32:
			xs[i] = float64(v)
		case uint64:
			xs[i] = float64(v)
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return Series{}, fmt.Errorf("%w: element %d: %v", ErrTypeMismatch, i, err)
			}
			xs[i] = f
		default:
			return Series{}, fmt.Errorf("%w: element %d has type %T", ErrTypeMismatch, i, v)
		}
	}
	return Values(xs), nil
}
