// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chartplot renders a plot.Plot with go-chart, as PNG or SVG.
package chartplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/blandaltman/agreement/plot"
)

// Format selects the output encoding.
type Format int

const (
	PNG Format = iota
	SVG
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case SVG:
		return "svg"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses "png" or "svg".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	}
	return 0, fmt.Errorf("unknown chart format %q", s)
}

// Renderer renders with go-chart. The zero Renderer writes a 1024x768
// PNG.
type Renderer struct {
	Format        Format
	Width, Height int
}

var _ plot.Renderer = Renderer{}

// margin is the fraction of the data span added around automatic
// axis ranges.
const margin = 0.05

// Render writes p to w.
func (r Renderer) Render(w io.Writer, p *plot.Plot) error {
	ch, err := r.Chart(p)
	if err != nil {
		return err
	}
	provider := chart.PNG
	if r.Format == SVG {
		provider = chart.SVG
	}
	return ch.Render(provider, w)
}

// Chart builds the go-chart description of p without rendering it.
func (r Renderer) Chart(p *plot.Plot) (*chart.Chart, error) {
	mc, err := plot.ParseColor(p.Marker.Color)
	if err != nil {
		return nil, err
	}
	alpha := uint8(math.Round(255 * p.Marker.Alpha))

	// go-chart refuses empty ranges, so the ranges are always
	// fixed here.
	xr, yr := p.Extents(margin)

	var xs, ys []float64
	for _, pt := range p.Points {
		if pt.Finite() {
			xs = append(xs, pt.X)
			ys = append(ys, pt.Y)
		}
	}
	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "points",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: 0,
				StrokeColor: drawing.ColorTransparent,
				DotWidth:    math.Sqrt(p.Marker.Size) / 2,
				DotColor:    drawingColor(mc).WithAlpha(alpha),
			},
		},
	}

	for _, l := range p.Lines {
		if math.IsNaN(l.Y) || math.IsInf(l.Y, 0) {
			continue
		}
		lc, err := plot.ParseColor(l.Color)
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", l.Name, err)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    l.Name,
			XValues: []float64{xr.Min, xr.Max},
			YValues: []float64{l.Y, l.Y},
			Style: chart.Style{
				StrokeWidth:     l.Width,
				StrokeColor:     drawingColor(lc),
				StrokeDashArray: l.Dash,
			},
		})
	}

	ann := chart.AnnotationSeries{Name: "labels"}
	for _, l := range p.Labels {
		if !l.Finite() {
			continue
		}
		ann.Annotations = append(ann.Annotations, chart.Value2{
			XValue: l.X,
			YValue: l.Y,
			Label:  l.Text,
			Style:  chart.Style{FontSize: l.FontSize},
		})
	}
	if len(ann.Annotations) > 0 {
		series = append(series, ann)
	}

	axisStyle := chart.Style{FontSize: p.FontSize}
	ch := &chart.Chart{
		Title:      p.Title,
		TitleStyle: chart.Style{FontSize: p.TitleFontSize},
		Width:      r.Width,
		Height:     r.Height,
		XAxis: chart.XAxis{
			Name:      p.XLabel,
			NameStyle: axisStyle,
			Style:     axisStyle,
			Range:     &chart.ContinuousRange{Min: xr.Min, Max: xr.Max},
		},
		YAxis: chart.YAxis{
			Name:      p.YLabel,
			NameStyle: axisStyle,
			Style:     axisStyle,
			Range:     &chart.ContinuousRange{Min: yr.Min, Max: yr.Max},
		},
		Series: series,
	}
	if ch.Width == 0 {
		ch.Width = 1024
	}
	if ch.Height == 0 {
		ch.Height = 768
	}
	return ch, nil
}

func drawingColor(c color.NRGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
