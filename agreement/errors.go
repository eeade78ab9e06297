// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agreement

import "errors"

var (
	// ErrMissingArgument is returned when either measurement series
	// is absent.
	ErrMissingArgument = errors.New("missing measurement series")

	// ErrLengthMismatch is returned when the two series differ in
	// length.
	ErrLengthMismatch = errors.New("reference and new data should be the same length")

	// ErrTypeMismatch is returned by Coerce for elements that are not
	// numbers.
	ErrTypeMismatch = errors.New("non-numeric measurement")

	// ErrNoData is returned when no index has both measurements
	// present.
	ErrNoData = errors.New("no paired measurements")

	// ErrInvalidConfig is returned for a Config that fails Validate.
	ErrInvalidConfig = errors.New("invalid plot configuration")
)
