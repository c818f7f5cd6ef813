package projection

import (
	"math"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/geo"
)

// Orthographic is the globe-from-space projection centered on a
// reference coordinate. Only the front hemisphere is renderable:
// back-hemisphere coordinates miss projection and fall outside the
// clip region.
type Orthographic struct {
	centerLon, centerLat float64
	sinLat0, cosLat0     float64
}

// NewOrthographic creates a globe projection centered on (lon, lat).
func NewOrthographic(centerLon, centerLat float64) *Orthographic {
	phi0 := centerLat * math.Pi / 180
	return &Orthographic{
		centerLon: centerLon,
		centerLat: centerLat,
		sinLat0:   math.Sin(phi0),
		cosLat0:   math.Cos(phi0),
	}
}

// Center returns the projection center.
func (o *Orthographic) Center() geo.Coord {
	return geo.Coord{Lon: o.centerLon, Lat: o.centerLat}
}

// cosDistance returns the cosine of the angular distance between the
// coordinate and the projection center. Non-negative means front
// hemisphere.
func (o *Orthographic) cosDistance(c geo.Coord) float64 {
	phi := c.Lat * math.Pi / 180
	dLam := (c.Lon - o.centerLon) * math.Pi / 180
	return o.sinLat0*math.Sin(phi) + o.cosLat0*math.Cos(phi)*math.Cos(dLam)
}

// Project implements Projection. Back-hemisphere coordinates return
// ok=false.
func (o *Orthographic) Project(c geo.Coord) (charts.Point, bool) {
	if o.cosDistance(c) < 0 {
		return charts.Point{}, false
	}
	phi := c.Lat * math.Pi / 180
	dLam := (c.Lon - o.centerLon) * math.Pi / 180
	x := math.Cos(phi) * math.Sin(dLam)
	y := o.cosLat0*math.Sin(phi) - o.sinLat0*math.Cos(phi)*math.Cos(dLam)
	// Unit disc to unit square, y flipped to screen orientation.
	return charts.Point{
		X: (x + 1) / 2,
		Y: (1 - y) / 2,
	}, true
}

// Visible implements Projection: front-hemisphere membership.
func (o *Orthographic) Visible(c geo.Coord) bool {
	return o.cosDistance(c) >= 0
}
