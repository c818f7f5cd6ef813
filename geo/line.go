package geo

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// Length returns the planar length of the line in degree space.
// Degree-space arithmetic matches the projection pipeline, which maps
// coordinates planar-first; it is not a geodesic distance.
func (l *LineString) Length() float64 {
	var total float64
	for i := 1; i < len(l.Coords); i++ {
		total += dist(l.Coords[i-1], l.Coords[i])
	}
	return total
}

// PositionToPoint returns the coordinate at a fractional arc length
// along the line. The fraction is clamped to [0, 1]: 0 is the first
// coordinate, 1 the last. Between vertices the position interpolates
// linearly in degree space.
//
// Degenerate lines (no coordinates, a single coordinate, or zero total
// length) return their first coordinate, or the zero Coord when empty.
func (l *LineString) PositionToPoint(fraction float64) Coord {
	n := len(l.Coords)
	if n == 0 {
		return Coord{}
	}
	if n == 1 {
		return l.Coords[0]
	}
	fraction = math.Max(0, math.Min(1, fraction))

	// Cumulative arc length per vertex, with consecutive duplicates
	// collapsed so the interpolation knots stay strictly increasing.
	xs := make([]float64, 0, n)
	lons := make([]float64, 0, n)
	lats := make([]float64, 0, n)
	xs = append(xs, 0)
	lons = append(lons, l.Coords[0].Lon)
	lats = append(lats, l.Coords[0].Lat)
	var acc float64
	for i := 1; i < n; i++ {
		d := dist(l.Coords[i-1], l.Coords[i])
		if d == 0 {
			continue
		}
		acc += d
		xs = append(xs, acc)
		lons = append(lons, l.Coords[i].Lon)
		lats = append(lats, l.Coords[i].Lat)
	}
	if acc == 0 {
		return l.Coords[0]
	}
	target := fraction * acc

	var lonInterp, latInterp interp.PiecewiseLinear
	if err := lonInterp.Fit(xs, lons); err != nil {
		return l.Coords[0]
	}
	if err := latInterp.Fit(xs, lats); err != nil {
		return l.Coords[0]
	}
	return Coord{
		Lon: lonInterp.Predict(target),
		Lat: latInterp.Predict(target),
	}
}

func dist(a, b Coord) float64 {
	dx := b.Lon - a.Lon
	dy := b.Lat - a.Lat
	return math.Sqrt(dx*dx + dy*dy)
}
