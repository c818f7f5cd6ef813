package projection

import (
	"github.com/gogpu/charts"
	"github.com/gogpu/charts/geo"
)

// Equirectangular is the identity plate carrée projection: longitude
// maps linearly to x, latitude to y. Every coordinate is renderable.
type Equirectangular struct{}

// NewEquirectangular creates the plate carrée projection.
func NewEquirectangular() *Equirectangular {
	return &Equirectangular{}
}

// Project implements Projection.
func (*Equirectangular) Project(c geo.Coord) (charts.Point, bool) {
	return charts.Point{
		X: (c.Lon + 180) / 360,
		Y: (90 - c.Lat) / 180,
	}, true
}

// Visible implements Projection. The whole sphere is renderable.
func (*Equirectangular) Visible(geo.Coord) bool {
	return true
}
