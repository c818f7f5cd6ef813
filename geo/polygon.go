package geo

import "gonum.org/v1/gonum/floats"

// VisualCentroid returns the area-weighted centroid of the polygon's
// exterior ring (the shoelace formula). This is the visually centered
// anchor for labels and markers; it is not the vertex average, which
// drifts toward densely sampled edges.
//
// Degenerate rings (fewer than three vertices or zero area) fall back to
// the vertex average. An empty polygon returns the zero Coord.
func (p *Polygon) VisualCentroid() Coord {
	ring := p.Coordinates()
	n := len(ring)
	if n == 0 {
		return Coord{}
	}
	if n < 3 {
		return vertexMean(ring)
	}

	// A closing vertex equal to the first is common in GeoJSON rings;
	// drop it so it does not weigh twice.
	if ring[n-1] == ring[0] {
		ring = ring[:n-1]
		n--
		if n < 3 {
			return vertexMean(ring)
		}
	}

	var area, cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := ring[i].Lon*ring[j].Lat - ring[j].Lon*ring[i].Lat
		area += cross
		cx += (ring[i].Lon + ring[j].Lon) * cross
		cy += (ring[i].Lat + ring[j].Lat) * cross
	}
	area /= 2
	if area == 0 {
		return vertexMean(ring)
	}
	return Coord{
		Lon: cx / (6 * area),
		Lat: cy / (6 * area),
	}
}

func vertexMean(ring []Coord) Coord {
	if len(ring) == 0 {
		return Coord{}
	}
	lons := make([]float64, len(ring))
	lats := make([]float64, len(ring))
	for i, c := range ring {
		lons[i] = c.Lon
		lats[i] = c.Lat
	}
	n := float64(len(ring))
	return Coord{
		Lon: floats.Sum(lons) / n,
		Lat: floats.Sum(lats) / n,
	}
}
