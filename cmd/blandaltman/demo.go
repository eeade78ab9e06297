// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/blandaltman/agreement/pairfmt"
)

func newDemoCmd(opts *options) *cobra.Command {
	var (
		seed     uint64
		dataPath string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Analyze synthetic paired measurements",
		Long: `Demo generates 150 synthetic subjects in three bands of reference
values, measures each again with a noisy new method that has a few
outliers, and analyzes the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd.ErrOrStderr())
			ref, val := synthesize(rand.NewPCG(seed, seed))
			if dataPath != "" {
				if err := writePairs(dataPath, ref, val); err != nil {
					return err
				}
				logger.Info("wrote synthetic data", "file", dataPath, "pairs", len(ref))
			}
			return opts.run(cmd, logger, ref, val, metadata{})
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random `seed`")
	cmd.Flags().StringVar(&dataPath, "data", "", "also write the synthetic pairs to `file`")
	return cmd
}

// band describes one group of synthetic subjects.
type band struct {
	offset float64 // reference values are 10*(U(0,1)+offset)
	// The new method adds up*U(0,1) - down*U(0,1).
	up, down float64
	// Outliers: every plusEvery'th subject gets +outlier*U(0,1),
	// every minusEvery'th gets -outlier*U(0,1).
	outlier               float64
	plusEvery, minusEvery int
}

var bands = []band{
	{offset: 2, up: 0.5, down: 0.3, outlier: 4, plusEvery: 7, minusEvery: 8},
	{offset: 3, up: 0.4, down: 0.2, outlier: 2.5, plusEvery: 5, minusEvery: 7},
	{offset: 4, up: 0.4, down: 0, outlier: 3.5, plusEvery: 7, minusEvery: 8},
}

// bandSize is the number of subjects per band.
const bandSize = 50

// synthesize generates reference and new measurements.
func synthesize(src rand.Source) (ref, val []float64) {
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	for _, b := range bands {
		start := len(ref)
		for i := 0; i < bandSize; i++ {
			ref = append(ref, 10*(u.Rand()+b.offset))
		}
		for i := 0; i < bandSize; i++ {
			val = append(val, ref[start+i]+b.up*u.Rand()-b.down*u.Rand())
		}
		for i := 0; i < bandSize; i += b.plusEvery {
			val[start+i] += b.outlier * u.Rand()
		}
		for i := 0; i < bandSize; i += b.minusEvery {
			val[start+i] -= b.outlier * u.Rand()
		}
	}
	return ref, val
}

func writePairs(path string, ref, val []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := pairfmt.NewWriter(f)
	cfg := []pairfmt.Config{{Key: "title", Value: "Synthetic Bland-Altman data"}}
	for i := range ref {
		if err := w.Write(&pairfmt.Pair{Config: cfg, Reference: ref[i], New: val[i]}); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return f.Close()
}
