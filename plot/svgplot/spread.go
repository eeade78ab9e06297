// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"sort"

	"github.com/blandaltman/agreement/plot"
)

// A slot is the vertical extent a label occupies, in pixels.
type slot struct {
	label  plot.Label
	want   float64 // center the label is anchored at
	height float64
	pos    float64 // center assigned by spreadLabels
}

// spreadLabels sorts slots by wanted center and assigns each a center
// so that no two slots overlap.
//
// Slots that would collide are merged into a block. A block is
// centered on the mean of its members' wanted centers and its members
// are stacked in order. Merging continues until adjacent blocks at
// most touch.
func spreadLabels(slots []slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].want < slots[j].want
	})

	type block struct {
		first, n int
		height   float64
		wantSum  float64
	}
	center := func(b block) float64 { return b.wantSum / float64(b.n) }

	var blocks []block
	for i, s := range slots {
		blocks = append(blocks, block{i, 1, s.height, s.want})
		for len(blocks) > 1 {
			prev, last := blocks[len(blocks)-2], blocks[len(blocks)-1]
			if center(prev)+prev.height/2 <= center(last)-last.height/2 {
				break
			}
			prev.n += last.n
			prev.height += last.height
			prev.wantSum += last.wantSum
			blocks = blocks[:len(blocks)-1]
			blocks[len(blocks)-1] = prev
		}
	}

	for _, b := range blocks {
		top := center(b) - b.height/2
		for i := b.first; i < b.first+b.n; i++ {
			slots[i].pos = top + slots[i].height/2
			top += slots[i].height
		}
	}
}
