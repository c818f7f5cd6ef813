// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// flattenTolerance is the maximum distance in pixels between a curve
// and its line-segment approximation.
const flattenTolerance = 0.25

// maxSubdivisionDepth bounds recursive curve splitting.
const maxSubdivisionDepth = 16

// AddQuad adds a quadratic Bezier curve, flattened to line segments.
func (el *EdgeList) AddQuad(x0, y0, cx, cy, x1, y1 float64) {
	el.flattenQuad(x0, y0, cx, cy, x1, y1, 0)
}

func (el *EdgeList) flattenQuad(x0, y0, cx, cy, x1, y1 float64, depth int) {
	if depth >= maxSubdivisionDepth || quadIsFlat(x0, y0, cx, cy, x1, y1) {
		el.AddLine(x0, y0, x1, y1)
		return
	}

	// Split at t=0.5 (de Casteljau).
	mx0, my0 := (x0+cx)/2, (y0+cy)/2
	mx1, my1 := (cx+x1)/2, (cy+y1)/2
	mx, my := (mx0+mx1)/2, (my0+my1)/2

	el.flattenQuad(x0, y0, mx0, my0, mx, my, depth+1)
	el.flattenQuad(mx, my, mx1, my1, x1, y1, depth+1)
}

// AddCubic adds a cubic Bezier curve, flattened to line segments.
func (el *EdgeList) AddCubic(x0, y0, c1x, c1y, c2x, c2y, x1, y1 float64) {
	el.flattenCubic(x0, y0, c1x, c1y, c2x, c2y, x1, y1, 0)
}

func (el *EdgeList) flattenCubic(x0, y0, c1x, c1y, c2x, c2y, x1, y1 float64, depth int) {
	if depth >= maxSubdivisionDepth || cubicIsFlat(x0, y0, c1x, c1y, c2x, c2y, x1, y1) {
		el.AddLine(x0, y0, x1, y1)
		return
	}

	// Split at t=0.5 (de Casteljau).
	ax, ay := (x0+c1x)/2, (y0+c1y)/2
	bx, by := (c1x+c2x)/2, (c1y+c2y)/2
	cx, cy := (c2x+x1)/2, (c2y+y1)/2
	dx, dy := (ax+bx)/2, (ay+by)/2
	ex, ey := (bx+cx)/2, (by+cy)/2
	mx, my := (dx+ex)/2, (dy+ey)/2

	el.flattenCubic(x0, y0, ax, ay, dx, dy, mx, my, depth+1)
	el.flattenCubic(mx, my, ex, ey, cx, cy, x1, y1, depth+1)
}

// quadIsFlat reports whether the control point is within tolerance of
// the chord.
func quadIsFlat(x0, y0, cx, cy, x1, y1 float64) bool {
	return pointLineDistance(cx, cy, x0, y0, x1, y1) <= flattenTolerance
}

// cubicIsFlat reports whether both control points are within tolerance
// of the chord.
func cubicIsFlat(x0, y0, c1x, c1y, c2x, c2y, x1, y1 float64) bool {
	return pointLineDistance(c1x, c1y, x0, y0, x1, y1) <= flattenTolerance &&
		pointLineDistance(c2x, c2y, x0, y0, x1, y1) <= flattenTolerance
}

// pointLineDistance returns the distance from (px, py) to the line
// through (x0, y0) and (x1, y1). Degenerate lines fall back to point
// distance.
func pointLineDistance(px, py, x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	if length < Epsilon {
		return math.Hypot(px-x0, py-y0)
	}
	return math.Abs(dy*px-dx*py+x1*y0-y1*x0) / length
}
