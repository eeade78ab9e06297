// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgplot renders a plot.Plot as a standalone SVG document.
package svgplot

import (
	"bytes"
	"fmt"
	"html"
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-moremath/scale"

	"github.com/blandaltman/agreement/numfmt"
	"github.com/blandaltman/agreement/plot"
)

// Renderer writes SVG. The zero Renderer uses a 640x480 canvas.
type Renderer struct {
	Width, Height float64
}

var _ plot.Renderer = Renderer{}

// Box is a set of margins around the plot area.
type Box struct {
	Top, Right, Bottom, Left float64
}

const (
	defaultWidth  = 640
	defaultHeight = 480

	// maxTicks bounds the number of major ticks on each axis.
	maxTicks = 8
	// margin is the fraction of the data span added around automatic
	// axis ranges.
	margin = 0.05
	// tickLen is the length of a tick mark in pixels.
	tickLen = 5
)

func fontHeight(size float64) float64 {
	return size * 5 / 4
}

// Render writes p to w as SVG.
func (r Renderer) Render(w io.Writer, p *plot.Plot) error {
	width, height := r.Width, r.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	marker, err := plot.ParseColor(p.Marker.Color)
	if err != nil {
		return err
	}

	// Construct the data scales. Automatic ranges are rounded out
	// to tick boundaries.
	xr, yr := p.Extents(margin)
	xs := scale.Linear{Min: xr.Min, Max: xr.Max}
	ys := scale.Linear{Min: yr.Min, Max: yr.Max}
	ticks := scale.TickOptions{Max: maxTicks}
	if p.XLim == nil {
		xs.Nice(ticks)
	}
	if p.YLim == nil {
		ys.Nice(ticks)
	}
	xTicks, _ := xs.Ticks(ticks)
	yTicks, _ := ys.Ticks(ticks)
	xFmt := numfmt.TickScale(xTicks)
	yFmt := numfmt.TickScale(yTicks)

	// Lay out the plot area, leaving room for the title, tick
	// labels, axis labels, and annotations on the right.
	fh := fontHeight(p.FontSize)
	var widest int
	for _, t := range yTicks {
		if n := len(yFmt.Format(t)); n > widest {
			widest = n
		}
	}
	var labelRoom float64
	for _, l := range p.Labels {
		if w := float64(len(l.Text)) * l.FontSize * 0.6; w > labelRoom {
			labelRoom = w
		}
	}
	m := Box{
		Top:    fontHeight(p.TitleFontSize) * 1.5,
		Right:  labelRoom + fh,
		Bottom: tickLen + 2*fh + fh/2,
		Left:   tickLen + float64(widest)*p.FontSize*0.6 + 2*fh,
	}
	xOut := scale.Linear{Min: m.Left, Max: width - m.Right}
	yOut := scale.Linear{Min: height - m.Bottom, Max: m.Top}
	x := scale.QQ{&xs, &xOut}
	y := scale.QQ{&ys, &yOut}

	// The plot area, as rect attributes, and its center.
	area := fmt.Sprintf(`x="%f" y="%f" width="%f" height="%f"`, xOut.Min, yOut.Max, xOut.Max-xOut.Min, yOut.Min-yOut.Max)
	cx, cy := (xOut.Min+xOut.Max)/2, (yOut.Min+yOut.Max)/2

	svg := new(bytes.Buffer)
	fmt.Fprintf(svg, `  <rect width="%f" height="%f" fill="white" />`+"\n", width, height)

	// Title
	if p.Title != "" {
		fmt.Fprintf(svg, `  <text x="%f" y="%f" font-size="%f" text-anchor="middle">%s</text>`+"\n", cx, fontHeight(p.TitleFontSize), p.TitleFontSize, html.EscapeString(p.Title))
	}

	// Frame and ticks
	fmt.Fprintf(svg, `  <rect %s fill="none" stroke="black" stroke-width="1px" />`+"\n", area)
	for _, t := range xTicks {
		px := x.Map(t)
		fmt.Fprintf(svg, `  <path d="M%f %fV%f" stroke="black" stroke-width="1px" />`+"\n", px, yOut.Min, yOut.Min+tickLen)
		fmt.Fprintf(svg, `  <text x="%f" y="%f" font-size="%f" text-anchor="middle">%s</text>`+"\n", px, yOut.Min+tickLen+fh, p.FontSize, xFmt.Format(t))
	}
	for _, t := range yTicks {
		py := y.Map(t)
		fmt.Fprintf(svg, `  <path d="M%f %fH%f" stroke="black" stroke-width="1px" />`+"\n", xOut.Min-tickLen, py, xOut.Min)
		fmt.Fprintf(svg, `  <text x="%f" y="%f" font-size="%f" text-anchor="end" dy=".35em">%s</text>`+"\n", xOut.Min-tickLen-2, py, p.FontSize, yFmt.Format(t))
	}

	// Axis labels
	if p.XLabel != "" {
		fmt.Fprintf(svg, `  <text x="%f" y="%f" font-size="%f" text-anchor="middle">%s</text>`+"\n", cx, height-fh/2, p.FontSize, html.EscapeString(p.XLabel))
	}
	if p.YLabel != "" {
		fmt.Fprintf(svg, `  <text font-size="%f" text-anchor="middle" transform="translate(%f %f) rotate(-90)">%s</text>`+"\n", p.FontSize, fh, cy, html.EscapeString(p.YLabel))
	}

	// Everything in data space is clipped to the plot area.
	fmt.Fprintf(svg, `  <clipPath id="area"><rect %s /></clipPath>`+"\n", area)
	fmt.Fprintf(svg, `  <g clip-path="url(#area)">`+"\n")

	// Points. Marker size is an area in points squared.
	radius := math.Sqrt(p.Marker.Size) / 2
	fill := hexColor(marker)
	for _, pt := range p.Points {
		if !pt.Finite() {
			continue
		}
		fmt.Fprintf(svg, `    <circle cx="%f" cy="%f" r="%f" fill="%s" fill-opacity="%g" stroke="none" />`+"\n", x.Map(pt.X), y.Map(pt.Y), radius, fill, p.Marker.Alpha)
	}

	// Reference lines
	for _, l := range p.Lines {
		if math.IsNaN(l.Y) || math.IsInf(l.Y, 0) {
			continue
		}
		stroke := "gray"
		if c, err := plot.ParseColor(l.Color); err == nil {
			stroke = hexColor(c)
		}
		dash := ""
		if len(l.Dash) > 0 {
			dash = ` stroke-dasharray="` + dashArray(l.Dash) + `"`
		}
		fmt.Fprintf(svg, `    <path d="M%f %fH%f" stroke="%s" stroke-width="%g"%s><title>%s</title></path>`+"\n", xOut.Min, y.Map(l.Y), xOut.Max, stroke, l.Width, dash, html.EscapeString(l.Name))
	}
	fmt.Fprintf(svg, "  </g>\n")

	renderLabels(svg, p.Labels, x, y)

	_, err = fmt.Fprintf(w,
		`<svg version="1.1" width="%f" height="%f" xmlns="http://www.w3.org/2000/svg">
%s</svg>
`,
		width,
		height,
		svg.Bytes(),
	)
	return err
}

// renderLabels emits the line annotations just right of their
// anchors. Labels whose lines lie close together are pushed apart
// vertically. Labels at a non-finite position are dropped.
func renderLabels(svg io.Writer, labels []plot.Label, x, y scale.QQ) {
	var slots []slot
	for _, l := range labels {
		if !l.Finite() {
			continue
		}
		slots = append(slots, slot{label: l, want: y.Map(l.Y), height: fontHeight(l.FontSize)})
	}
	spreadLabels(slots)
	for _, s := range slots {
		fmt.Fprintf(svg, `  <text x="%f" y="%f" font-size="%f" dominant-baseline="central">%s</text>`+"\n", x.Map(s.label.X)+s.label.FontSize/2, s.pos, s.label.FontSize, html.EscapeString(s.label.Text))
	}
}

// hexColor formats the opaque part of c as #rrggbb. Opacity is
// carried by separate attributes.
func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func dashArray(d []float64) string {
	var buf bytes.Buffer
	for i, v := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%g", v)
	}
	return buf.String()
}
