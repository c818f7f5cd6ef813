package projection

import (
	"math"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/geo"
)

// maxMercatorLat is the latitude where the Web Mercator square closes.
const maxMercatorLat = 85.05112878

// Mercator is the Web Mercator projection. Latitudes beyond
// ±85.05113° clamp to the square's edge rather than miss.
type Mercator struct{}

// NewMercator creates the Web Mercator projection.
func NewMercator() *Mercator {
	return &Mercator{}
}

// Project implements Projection.
func (*Mercator) Project(c geo.Coord) (charts.Point, bool) {
	lat := math.Max(-maxMercatorLat, math.Min(maxMercatorLat, c.Lat))
	phi := lat * math.Pi / 180
	y := math.Log(math.Tan(math.Pi/4 + phi/2))
	return charts.Point{
		X: (c.Lon + 180) / 360,
		Y: (1 - y/math.Pi) / 2,
	}, true
}

// Visible implements Projection. The whole sphere is renderable.
func (*Mercator) Visible(geo.Coord) bool {
	return true
}
