// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot describes a rendered-to-be scatter plot with horizontal
// reference lines and text annotations.
//
// A Plot is plain data. Backends in sub-packages turn it into an image
// or document; none of them block or open a window.
package plot

import (
	"io"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Plot is a 2-D scatter plot annotated with horizontal lines and
// text labels.
type Plot struct {
	Title         string
	TitleFontSize float64

	XLabel, YLabel string

	// FontSize is the size of axis labels, tick labels, and
	// annotations.
	FontSize float64

	// XLim and YLim fix the axis bounds. A nil limit means the
	// backend picks bounds from the data.
	XLim, YLim *Range

	Marker Marker
	Points []Point
	Lines  []HLine
	Labels []Label
}

// Marker is the style of every scatter point.
type Marker struct {
	Color string  // CSS color name or #rrggbb
	Size  float64 // Marker area in points squared
	Alpha float64 // Opacity in [0, 1]

	// CapSize is carried for backends that draw error bar caps.
	CapSize float64
}

// A Point is a single scatter point. Points with a non-finite
// coordinate are kept in the Plot but not drawn.
type Point struct {
	X, Y float64
}

// Finite reports whether both coordinates of p are finite.
func (p Point) Finite() bool {
	return finite(p.X) && finite(p.Y)
}

// An HLine is a horizontal line spanning the whole x axis.
type HLine struct {
	Name  string
	Y     float64
	Width float64
	Color string
	// Dash is an SVG-style dash array. Nil means a solid line.
	Dash []float64
}

// A Label is text anchored at its left baseline at (X, Y) in data
// coordinates.
type Label struct {
	X, Y     float64
	Text     string
	FontSize float64
}

// Finite reports whether l is anchored at a finite position. Backends
// do not draw other labels.
func (l Label) Finite() bool {
	return finite(l.X) && finite(l.Y)
}

// Range is a closed interval of data values.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// A Renderer writes a Plot to w in some concrete format.
type Renderer interface {
	Render(w io.Writer, p *Plot) error
}

// Extents returns the axis ranges for p. Fixed limits are returned
// as-is. Otherwise the range covers every finite point, line, and
// label, widened by margin times its span on each side. A range that
// would be empty is widened around its single value.
func (p *Plot) Extents(margin float64) (x, y Range) {
	var xs, ys []float64
	for _, pt := range p.Points {
		if pt.Finite() {
			xs = append(xs, pt.X)
			ys = append(ys, pt.Y)
		}
	}
	for _, l := range p.Lines {
		if finite(l.Y) {
			ys = append(ys, l.Y)
		}
	}
	for _, l := range p.Labels {
		if l.Finite() {
			xs = append(xs, l.X)
			ys = append(ys, l.Y)
		}
	}

	x = extent(xs, p.XLim, margin)
	y = extent(ys, p.YLim, margin)
	return
}

func extent(vals []float64, lim *Range, margin float64) Range {
	if lim != nil {
		return *lim
	}
	if len(vals) == 0 {
		return Range{0, 1}
	}
	min, max := stats.Bounds(vals)
	if min == max {
		d := math.Abs(min) * 0.05
		if d == 0 {
			d = 1
		}
		return Range{min - d, max + d}
	}
	d := (max - min) * margin
	return Range{min - d, max + d}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
