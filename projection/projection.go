// Package projection maps geographic coordinates onto the unit chart
// square and answers clip-region membership. A projection's renderable
// region doubles as the clip predicate that drives marker visibility:
// planar projections render everything, the orthographic globe renders
// its front hemisphere.
package projection

import (
	"github.com/gogpu/charts"
	"github.com/gogpu/charts/geo"
)

// Projection converts geographic coordinates to normalized chart space.
type Projection interface {
	// Project maps a coordinate into [0,1]×[0,1], x east, y south.
	// ok is false on a projection miss: the coordinate has no
	// representation this cycle and dependent placement is skipped.
	Project(c geo.Coord) (pt charts.Point, ok bool)

	// Visible reports whether the coordinate lies inside the
	// projection's renderable clip region.
	Visible(c geo.Coord) bool
}
