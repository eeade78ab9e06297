// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agreement

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/blandaltman/agreement/plot"
)

// Config holds the presentation options of a Bland-Altman plot. None
// of them affect the computed statistics.
//
// The zero Config is not valid; start from DefaultConfig, NewConfig,
// or LoadConfig.
type Config struct {
	// Color is the marker color, as a CSS color name or #rrggbb.
	// Default "black".
	Color string `yaml:"color"`
	// MarkerSize is the marker area in points squared. Default 15.
	MarkerSize float64 `yaml:"markerSize"`
	// Alpha is the marker opacity in [0, 1]. Default 0.5.
	Alpha float64 `yaml:"alpha"`
	// LineWidth is the width of the bias and limit lines. Default 3.
	LineWidth float64 `yaml:"lineWidth"`
	// CapSize is passed through to the plot unchanged. Default 15.
	CapSize float64 `yaml:"capSize"`

	// XLim and YLim are [min, max] axis bounds. Nil means
	// automatic.
	XLim []float64 `yaml:"xLim"`
	YLim []float64 `yaml:"yLim"`

	XLabel string `yaml:"xLabel"`
	YLabel string `yaml:"yLabel"`
	Title  string `yaml:"title"`

	// FontSize is the title size. Axis labels, ticks, and
	// annotations use FontSize-6. Default 20.
	FontSize float64 `yaml:"fontSize"`

	// ShowLabels annotates the bias and limit lines with their
	// values rounded to two decimals. Default true.
	ShowLabels bool `yaml:"showLabels"`
}

// DefaultConfig returns the default plot configuration.
func DefaultConfig() Config {
	return Config{
		Color:      "black",
		MarkerSize: 15,
		Alpha:      0.5,
		LineWidth:  3,
		CapSize:    15,
		XLabel:     "Mean reference data, new data",
		YLabel:     "Difference new data - reference data",
		Title:      "Bland-Altman analysis",
		FontSize:   20,
		ShowLabels: true,
	}
}

// An Option overrides one field of a Config.
type Option func(*Config)

func WithColor(c string) Option { return func(cfg *Config) { cfg.Color = c } }
func WithMarkerSize(s float64) Option { return func(cfg *Config) { cfg.MarkerSize = s } }
func WithAlpha(a float64) Option { return func(cfg *Config) { cfg.Alpha = a } }
func WithLineWidth(w float64) Option { return func(cfg *Config) { cfg.LineWidth = w } }
func WithCapSize(s float64) Option { return func(cfg *Config) { cfg.CapSize = s } }
func WithXLabel(l string) Option { return func(cfg *Config) { cfg.XLabel = l } }
func WithYLabel(l string) Option { return func(cfg *Config) { cfg.YLabel = l } }
func WithTitle(t string) Option { return func(cfg *Config) { cfg.Title = t } }
func WithFontSize(s float64) Option { return func(cfg *Config) { cfg.FontSize = s } }
func WithLabels(show bool) Option { return func(cfg *Config) { cfg.ShowLabels = show } }
func WithXLim(min, max float64) Option { return func(cfg *Config) { cfg.XLim = []float64{min, max} } }
func WithYLim(min, max float64) Option { return func(cfg *Config) { cfg.YLim = []float64{min, max} } }

// NewConfig applies opts to DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration from r over DefaultConfig. An
// empty document yields DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Decode(r); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode reads a YAML configuration from r over c and validates the
// result. Keys that are absent keep their value in c and unknown keys
// are ignored. If decoding or validation fails, c is left unchanged.
func (c *Config) Decode(r io.Reader) error {
	next := *c
	next.XLim = slices.Clone(c.XLim)
	next.YLim = slices.Clone(c.YLim)
	if err := yaml.NewDecoder(r).Decode(&next); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Validate reports the first field of c that is out of range. The
// error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}
	if _, err := plot.ParseColor(c.Color); err != nil {
		return bad("color: %v", err)
	}
	switch {
	case !(c.MarkerSize > 0):
		return bad("markerSize %v must be positive", c.MarkerSize)
	case !(c.Alpha >= 0 && c.Alpha <= 1):
		return bad("alpha %v outside [0, 1]", c.Alpha)
	case !(c.LineWidth > 0):
		return bad("lineWidth %v must be positive", c.LineWidth)
	case !(c.CapSize >= 0):
		return bad("capSize %v must not be negative", c.CapSize)
	case !(c.FontSize > 6):
		return bad("fontSize %v must exceed 6", c.FontSize)
	}
	if err := checkLim(c.XLim); err != nil {
		return bad("xLim: %v", err)
	}
	if err := checkLim(c.YLim); err != nil {
		return bad("yLim: %v", err)
	}
	return nil
}

func checkLim(lim []float64) error {
	if lim == nil {
		return nil
	}
	if len(lim) != 2 {
		return fmt.Errorf("want [min, max], got %d values", len(lim))
	}
	for _, v := range lim {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("bound %v is not finite", v)
		}
	}
	if lim[0] >= lim[1] {
		return fmt.Errorf("min %v is not below max %v", lim[0], lim[1])
	}
	return nil
}

func limRange(lim []float64) *plot.Range {
	if lim == nil {
		return nil
	}
	return &plot.Range{Min: lim[0], Max: lim[1]}
}
