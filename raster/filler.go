// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"slices"
)

// FillRule selects how winding numbers map to inside/outside.
type FillRule uint8

const (
	// FillRuleNonZero fills where the winding number is non-zero.
	FillRuleNonZero FillRule = iota

	// FillRuleEvenOdd fills where the winding number is odd.
	FillRuleEvenOdd
)

// rowSamples is the number of vertical subsamples per pixel row.
// Horizontal coverage is exact; vertical coverage is averaged over the
// subsamples.
const rowSamples = 4

// crossing is one edge intersection on a subsample scanline.
type crossing struct {
	x       float64
	winding int
}

// Filler rasterizes an EdgeList into per-pixel coverage, one scanline
// at a time. Coverage is exact in X and supersampled in Y.
//
// A Filler holds reusable scanline buffers sized to the target; it is
// not safe for concurrent use.
type Filler struct {
	width, height int

	// coverage holds per-pixel coverage in [0, 1] for the current row.
	coverage []float64

	// crossings holds edge intersections for the current subsample.
	crossings []crossing

	// active holds indices of edges alive at the current subsample.
	active []int
}

// NewFiller creates a filler for the given target dimensions.
func NewFiller(width, height int) *Filler {
	return &Filler{
		width:    width,
		height:   height,
		coverage: make([]float64, width),
	}
}

// Resize adjusts the filler buffers to new target dimensions.
func (f *Filler) Resize(width, height int) {
	f.width = width
	f.height = height
	if cap(f.coverage) < width {
		f.coverage = make([]float64, width)
	} else {
		f.coverage = f.coverage[:width]
	}
}

// Fill rasterizes the edges and invokes row for every scanline that
// received coverage. The coverage slice is reused between rows; callers
// must consume it before returning.
//
// Fill sorts the edge list by top Y as a side effect.
func (f *Filler) Fill(el *EdgeList, rule FillRule, row func(y int, coverage []float64)) {
	if el.IsEmpty() || f.width <= 0 || f.height <= 0 {
		return
	}

	el.SortByTop()
	edges := el.Edges()

	minY, maxY := el.YBounds()
	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))
	if yStart < 0 {
		yStart = 0
	}
	if yEnd > f.height {
		yEnd = f.height
	}

	// next is the index of the first edge not yet activated. Subsample
	// Y advances monotonically, so edges activate in sorted order and
	// expire out of the active set as scanning passes their YMax.
	next := 0
	f.active = f.active[:0]

	for y := yStart; y < yEnd; y++ {
		for i := range f.coverage {
			f.coverage[i] = 0
		}
		touched := false

		for s := 0; s < rowSamples; s++ {
			sy := float64(y) + (float64(s)+0.5)/rowSamples

			for next < len(edges) && edges[next].YMin <= sy {
				f.active = append(f.active, next)
				next++
			}
			f.dropExpired(edges, sy)

			if f.sampleRow(edges, sy, rule) {
				touched = true
			}
		}

		if touched {
			row(y, f.coverage)
		}
	}
}

// dropExpired removes active edges that end at or above the scanline.
func (f *Filler) dropExpired(edges []Edge, sy float64) {
	kept := f.active[:0]
	for _, idx := range f.active {
		if sy < edges[idx].YMax {
			kept = append(kept, idx)
		}
	}
	f.active = kept
}

// sampleRow accumulates the subsample's span coverage into the row
// buffer. It reports whether any coverage was written.
func (f *Filler) sampleRow(edges []Edge, sy float64, rule FillRule) bool {
	f.crossings = f.crossings[:0]
	for _, idx := range f.active {
		e := &edges[idx]
		if !e.CrossesY(sy) {
			continue
		}
		f.crossings = append(f.crossings, crossing{
			x:       e.XAtY(sy),
			winding: int(e.Winding),
		})
	}
	if len(f.crossings) < 2 {
		return false
	}

	slices.SortFunc(f.crossings, func(a, b crossing) int {
		switch {
		case a.x < b.x:
			return -1
		case a.x > b.x:
			return 1
		default:
			return 0
		}
	})

	const weight = 1.0 / rowSamples
	touched := false
	winding := 0
	spanStart := 0.0
	inside := false

	for _, c := range f.crossings {
		winding += c.winding
		nowInside := rule.inside(winding)
		switch {
		case nowInside && !inside:
			spanStart = c.x
		case !nowInside && inside:
			if f.addSpan(spanStart, c.x, weight) {
				touched = true
			}
		}
		inside = nowInside
	}
	return touched
}

// addSpan accumulates weighted coverage for the horizontal span
// [x0, x1), with exact fractional coverage at the partial end pixels.
func (f *Filler) addSpan(x0, x1, weight float64) bool {
	if x0 < 0 {
		x0 = 0
	}
	if x1 > float64(f.width) {
		x1 = float64(f.width)
	}
	if x1 <= x0 {
		return false
	}

	i0 := int(x0)
	i1 := int(x1)
	if i1 >= f.width {
		i1 = f.width - 1
	}

	if i0 == i1 {
		f.coverage[i0] += (x1 - x0) * weight
		return true
	}

	f.coverage[i0] += (float64(i0+1) - x0) * weight
	for i := i0 + 1; i < i1; i++ {
		f.coverage[i] += weight
	}
	f.coverage[i1] += (x1 - float64(i1)) * weight
	return true
}

// inside applies the fill rule to a winding number.
func (r FillRule) inside(winding int) bool {
	if r == FillRuleEvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}
