// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package agreement computes Bland-Altman agreement statistics between
// two paired measurement series.
//
// For each subject i, the reference method measured reference[i] and
// the new method measured new[i]. The analysis plots the difference
// new[i]-reference[i] against the mean of the two, and summarizes the
// differences by their mean (the bias) and the 95% limits of
// agreement, bias ± 1.96·SD.
//
// Missing measurements are NaN and are ignored by every statistic.
package agreement

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/blandaltman/agreement/numfmt"
	"github.com/blandaltman/agreement/plot"
)

// LimitsFactor is the multiple of the standard deviation of the
// differences that spans the 95% limits of agreement.
const LimitsFactor = 1.96

// labelPrec is the number of decimals line annotations are rounded
// to.
const labelPrec = 2

// Point is the per-subject statistic.
type Point struct {
	Index int
	// Mean is the mean of the two measurements, or the one that is
	// present, or NaN if both are missing.
	Mean float64
	// Diff is new minus reference, NaN if either is missing.
	Diff float64
}

// Summary holds the statistics over all differences. Only subjects
// with both measurements present contribute.
type Summary struct {
	Bias   float64 // Mean difference
	SD     float64 // Population standard deviation of the differences
	Upper  float64 // Bias + LimitsFactor*SD
	Lower  float64 // Bias - LimitsFactor*SD
	Median float64 // Median difference
	N      int     // Number of differences aggregated
}

// Result is the outcome of Analyze.
type Result struct {
	Summary Summary
	Points  []Point

	// Plot is the renderable description of the Bland-Altman plot.
	Plot *plot.Plot
}

// Bias returns the unrounded mean difference.
func (r *Result) Bias() float64 {
	return r.Summary.Bias
}

// SD returns the unrounded population standard deviation of the
// differences.
func (r *Result) SD() float64 {
	return r.Summary.SD
}

// Analyze performs a Bland-Altman analysis of newMethod against
// reference. A nil cfg uses DefaultConfig.
//
// Analyze fails before computing anything if either series is absent
// (ErrMissingArgument), if their lengths differ (ErrLengthMismatch),
// or if cfg is invalid (ErrInvalidConfig). It fails with ErrNoData if
// no subject has both measurements.
func Analyze(reference, newMethod Series, cfg *Config) (*Result, error) {
	switch {
	case !reference.Present() && !newMethod.Present():
		return nil, fmt.Errorf("%w: reference and new data", ErrMissingArgument)
	case !reference.Present():
		return nil, fmt.Errorf("%w: reference data", ErrMissingArgument)
	case !newMethod.Present():
		return nil, fmt.Errorf("%w: new data", ErrMissingArgument)
	}
	if reference.Len() != newMethod.Len() {
		return nil, fmt.Errorf("%w: %d reference values, %d new values", ErrLengthMismatch, reference.Len(), newMethod.Len())
	}
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := reference.Len()
	points := make([]Point, n)
	diffs := make([]float64, n)
	for i := range points {
		ref, val := reference.At(i), newMethod.At(i)
		diffs[i] = val - ref
		points[i] = Point{Index: i, Mean: nanMean2(ref, val), Diff: diffs[i]}
	}

	dist := NewDistribution(diffs)
	if dist.N() == 0 {
		if n == 0 {
			return nil, fmt.Errorf("%w: empty series", ErrNoData)
		}
		return nil, fmt.Errorf("%w: none of %d subjects has both measurements", ErrNoData, n)
	}
	sum := Summary{
		Bias:   dist.Mean,
		SD:     dist.SD,
		Upper:  dist.Mean + LimitsFactor*dist.SD,
		Lower:  dist.Mean - LimitsFactor*dist.SD,
		Median: dist.Center,
		N:      dist.N(),
	}

	return &Result{
		Summary: sum,
		Points:  points,
		Plot:    cfg.newPlot(points, sum),
	}, nil
}

// newPlot lays out the Bland-Altman plot for points and sum.
func (c *Config) newPlot(points []Point, sum Summary) *plot.Plot {
	small := c.FontSize - 6
	p := &plot.Plot{
		Title:         c.Title,
		TitleFontSize: c.FontSize,
		XLabel:        c.XLabel,
		YLabel:        c.YLabel,
		FontSize:      small,
		XLim:          limRange(c.XLim),
		YLim:          limRange(c.YLim),
		Marker: plot.Marker{
			Color:   c.Color,
			Size:    c.MarkerSize,
			Alpha:   c.Alpha,
			CapSize: c.CapSize,
		},
		Points: make([]plot.Point, len(points)),
	}

	means := make([]float64, 0, len(points))
	for i, pt := range points {
		p.Points[i] = plot.Point{X: pt.Mean, Y: pt.Diff}
		if !math.IsNaN(pt.Mean) && !math.IsInf(pt.Mean, 0) {
			means = append(means, pt.Mean)
		}
	}

	lines := []struct {
		name string
		y    float64
	}{
		{"bias", sum.Bias},
		{"upper", sum.Upper},
		{"lower", sum.Lower},
	}
	for _, l := range lines {
		p.Lines = append(p.Lines, plot.HLine{
			Name:  l.name,
			Y:     l.y,
			Width: c.LineWidth,
			Color: "gray",
			// Dashes scale with the line width.
			Dash: []float64{3.7 * c.LineWidth, 1.6 * c.LineWidth},
		})
	}

	if c.ShowLabels && len(means) > 0 {
		_, right := stats.Bounds(means)
		for _, l := range lines {
			p.Labels = append(p.Labels, plot.Label{
				X:        right,
				Y:        l.y,
				Text:     numfmt.Short(l.y, labelPrec),
				FontSize: small,
			})
		}
	}
	return p
}
