// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts vector outlines into per-pixel coverage for
// CPU rendering. Callers feed line segments and curves into an EdgeList
// and hand it to a Filler, which walks scanlines and reports coverage
// per row.
package raster

import "math"

// Epsilon is the smallest Y extent an edge may have. Shorter edges are
// horizontal for rasterization purposes and are discarded.
const Epsilon = 1e-9

// Edge is a non-horizontal line segment in scanline-normalized form:
// YMin <= YMax, with Winding recording the original direction.
type Edge struct {
	// YMin is the top of the edge.
	YMin float64

	// YMax is the bottom of the edge.
	YMax float64

	// XAtYMin is the X coordinate at YMin.
	XAtYMin float64

	// DXDY is the inverse slope: change in X per unit Y.
	DXDY float64

	// Winding is +1 for edges that originally pointed downward and -1
	// for edges that pointed upward.
	Winding int8
}

// NewEdge creates an edge from two points, normalizing so YMin <= YMax
// and deriving the winding from the original direction. Horizontal
// segments return nil.
func NewEdge(x0, y0, x1, y1 float64) *Edge {
	var winding int8 = 1
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		winding = -1
	}

	dy := y1 - y0
	if dy < Epsilon {
		return nil
	}

	return &Edge{
		YMin:    y0,
		YMax:    y1,
		XAtYMin: x0,
		DXDY:    (x1 - x0) / dy,
		Winding: winding,
	}
}

// XAtY returns the X coordinate where the edge crosses the scanline y.
func (e *Edge) XAtY(y float64) float64 {
	return e.XAtYMin + (y-e.YMin)*e.DXDY
}

// CrossesY reports whether the scanline y intersects the edge. The top
// is inclusive and the bottom exclusive so shared vertices are counted
// exactly once.
func (e *Edge) CrossesY(y float64) bool {
	return y >= e.YMin && y < e.YMax
}

// EdgeList collects edges for one fill operation. The zero value is
// ready to use; Reset allows reuse without reallocating.
type EdgeList struct {
	edges []Edge
}

// NewEdgeList creates an empty edge list.
func NewEdgeList() *EdgeList {
	return &EdgeList{
		edges: make([]Edge, 0, 64),
	}
}

// Reset clears the list for reuse.
func (el *EdgeList) Reset() {
	el.edges = el.edges[:0]
}

// AddLine adds a line segment. Horizontal segments are skipped.
func (el *EdgeList) AddLine(x0, y0, x1, y1 float64) {
	if e := NewEdge(x0, y0, x1, y1); e != nil {
		el.edges = append(el.edges, *e)
	}
}

// Len returns the number of edges.
func (el *EdgeList) Len() int {
	return len(el.edges)
}

// IsEmpty reports whether the list holds no edges.
func (el *EdgeList) IsEmpty() bool {
	return len(el.edges) == 0
}

// Edges returns the underlying slice.
func (el *EdgeList) Edges() []Edge {
	return el.edges
}

// SortByTop sorts edges by YMin. Insertion sort: path edges arrive in
// drawing order and are usually nearly sorted already.
func (el *EdgeList) SortByTop() {
	for i := 1; i < len(el.edges); i++ {
		j := i
		for j > 0 && el.edges[j].YMin < el.edges[j-1].YMin {
			el.edges[j], el.edges[j-1] = el.edges[j-1], el.edges[j]
			j--
		}
	}
}

// YBounds returns the vertical extent covered by the edges.
func (el *EdgeList) YBounds() (minY, maxY float64) {
	if len(el.edges) == 0 {
		return 0, 0
	}
	minY = math.MaxFloat64
	maxY = -math.MaxFloat64
	for i := range el.edges {
		e := &el.edges[i]
		if e.YMin < minY {
			minY = e.YMin
		}
		if e.YMax > maxY {
			maxY = e.YMax
		}
	}
	return minY, maxY
}
