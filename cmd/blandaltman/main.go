// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command blandaltman performs a Bland-Altman agreement analysis of
// paired measurements and renders the agreement plot.
//
// Usage:
//
//	blandaltman analyze [flags] [file...]
//	blandaltman demo [flags]
//
// analyze reads pairs of reference and new measurements, one pair per
// line, from the named files or standard input. demo analyzes
// synthetic data. Both write the plot to -o and print the bias,
// standard deviation, and limits of agreement.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blandaltman/agreement/agreement"
	"github.com/blandaltman/agreement/plot"
	"github.com/blandaltman/agreement/plot/chartplot"
	"github.com/blandaltman/agreement/plot/svgplot"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("blandaltman failed", "err", err)
		os.Exit(1)
	}
}

// options are the flags shared by every subcommand.
type options struct {
	configPath string
	renderer   string
	format     string
	out        string
	noLabels   bool
	width      int
	height     int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := new(options)
	root := &cobra.Command{
		Use:           "blandaltman",
		Short:         "Bland-Altman agreement analysis of paired measurements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "read plot options from YAML `file`")
	pf.StringVar(&opts.renderer, "renderer", "svg", "plot backend: svg or chart")
	pf.StringVar(&opts.format, "format", "", "output format of the chart backend: png or svg (default from the -o extension)")
	pf.StringVarP(&opts.out, "out", "o", "blandaltman.svg", "write the plot to `file` (- for stdout)")
	pf.BoolVar(&opts.noLabels, "no-labels", false, "do not annotate the bias and limit lines")
	pf.IntVar(&opts.width, "width", 0, "plot width in pixels (0 for the backend default)")
	pf.IntVar(&opts.height, "height", 0, "plot height in pixels (0 for the backend default)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(newAnalyzeCmd(opts), newDemoCmd(opts))
	return root
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newRenderer returns the backend selected by the flags.
func (o *options) newRenderer() (plot.Renderer, error) {
	switch o.renderer {
	case "svg":
		return svgplot.Renderer{Width: float64(o.width), Height: float64(o.height)}, nil
	case "chart":
		format := o.format
		if format == "" {
			format = "png"
			if hasSuffixFold(o.out, ".svg") {
				format = "svg"
			}
		}
		f, err := chartplot.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		return chartplot.Renderer{Format: f, Width: o.width, Height: o.height}, nil
	}
	return nil, fmt.Errorf("unknown renderer %q", o.renderer)
}

// config builds the plot configuration. Later sources win: defaults,
// then metadata from the input, then the YAML file, then flags.
func (o *options) config(meta metadata) (*agreement.Config, error) {
	cfg := agreement.DefaultConfig()
	meta.apply(&cfg)
	if o.configPath != "" {
		f, err := os.Open(o.configPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := cfg.Decode(f); err != nil {
			return nil, fmt.Errorf("%s: %w", o.configPath, err)
		}
	}
	if o.noLabels {
		cfg.ShowLabels = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// metadata is what the input says about itself.
type metadata struct {
	title, reference, newMethod string
}

func (m metadata) apply(cfg *agreement.Config) {
	if m.title != "" {
		cfg.Title = m.title
	}
	if m.reference != "" && m.newMethod != "" {
		cfg.XLabel = fmt.Sprintf("Mean %s, %s", m.reference, m.newMethod)
		cfg.YLabel = fmt.Sprintf("Difference %s - %s", m.newMethod, m.reference)
	}
}

// run analyzes ref and val, writes the plot, and prints the summary.
func (o *options) run(cmd *cobra.Command, logger *slog.Logger, ref, val []float64, meta metadata) error {
	cfg, err := o.config(meta)
	if err != nil {
		return err
	}
	rend, err := o.newRenderer()
	if err != nil {
		return err
	}

	res, err := agreement.Analyze(agreement.Values(ref), agreement.Values(val), cfg)
	if err != nil {
		return err
	}
	s := res.Summary
	logger.Debug("analyzed", "subjects", len(ref), "n", s.N, "bias", s.Bias, "sd", s.SD)
	if skipped := len(ref) - s.N; skipped > 0 {
		logger.Info("ignored subjects with a missing measurement", "count", skipped)
	}

	if err := o.writePlot(cmd, rend, res.Plot); err != nil {
		return err
	}

	summary := cmd.OutOrStdout()
	if o.out == "-" {
		summary = cmd.ErrOrStderr()
	}
	printSummary(summary, s)
	return nil
}

func (o *options) writePlot(cmd *cobra.Command, rend plot.Renderer, p *plot.Plot) error {
	if o.out == "-" {
		return rend.Render(cmd.OutOrStdout(), p)
	}
	f, err := os.Create(o.out)
	if err != nil {
		return err
	}
	if err := rend.Render(f, p); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", o.out, err)
	}
	return f.Close()
}

func printSummary(w io.Writer, s agreement.Summary) {
	rows := []struct {
		name string
		val  float64
	}{
		{"bias", s.Bias},
		{"sd", s.SD},
		{"upper limit", s.Upper},
		{"lower limit", s.Lower},
		{"median", s.Median},
	}
	fmt.Fprintf(w, "%-12s %d\n", "n", s.N)
	for _, r := range rows {
		fmt.Fprintf(w, "%-12s %v\n", r.name, r.val)
	}
}

func hasSuffixFold(s, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(s), suffix)
}
