// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/blandaltman/agreement/pairfmt"
)

func newAnalyzeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Analyze paired measurements read from files or stdin",
		Long: `Analyze reads pairs of reference and new measurements, one pair per
line, from the named files, or from standard input if there are none
or a file is "-". Malformed lines are reported and skipped.

The metadata keys "title", "reference", and "new" in the input set the
plot title and axis labels unless the --config file overrides them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd.ErrOrStderr())
			ref, val, meta, err := readPairs(args, logger)
			if err != nil {
				return err
			}
			return opts.run(cmd, logger, ref, val, meta)
		},
	}
}

// readPairs reads every well-formed pair in paths. The metadata of the
// last pair wins.
func readPairs(paths []string, logger *slog.Logger) (ref, val []float64, meta metadata, err error) {
	files := &pairfmt.Files{Paths: paths, AllowStdin: true}
	for files.Scan() {
		p, err := files.Pair()
		if err != nil {
			var se *pairfmt.SyntaxError
			if errors.As(err, &se) {
				logger.Warn("skipping malformed line", "file", se.FileName, "line", se.Line, "err", se.Msg)
			} else {
				logger.Warn("skipping malformed line", "err", err)
			}
			continue
		}
		ref = append(ref, p.Reference)
		val = append(val, p.New)
		meta = metadata{
			title:     p.Get("title"),
			reference: p.Get("reference"),
			newMethod: p.Get("new"),
		}
	}
	if err := files.Err(); err != nil {
		return nil, nil, metadata{}, err
	}
	for _, st := range files.Stats() {
		if st.Pairs == 0 {
			logger.Warn("no pairs in input", "file", st.Path, "malformed", st.Malformed)
			continue
		}
		logger.Debug("read input", "file", st.Path, "pairs", st.Pairs, "malformed", st.Malformed)
	}
	return ref, val, meta, nil
}
