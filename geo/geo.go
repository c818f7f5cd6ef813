// Package geo provides geographic geometry variants, the geometry store
// consumed by map charts, and the geodesic helpers used for marker
// placement: fractional positions along lines and area-weighted polygon
// centroids.
package geo

// Coord is a geographic coordinate: longitude and latitude in degrees.
type Coord struct {
	Lon, Lat float64
}

// Kind discriminates geometry variants. Code that needs to branch on a
// geometry's shape switches on Kind or type-asserts the concrete type;
// there is no reflective inspection.
type Kind uint8

// Geometry kinds.
const (
	KindPoint Kind = iota
	KindMultiPoint
	KindLineString
	KindPolygon
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindMultiPoint:
		return "MultiPoint"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Geometry is implemented by *Point, *MultiPoint, *LineString and
// *Polygon. Geometries are referenced by pointer; identity matters to
// the store and to entries caching references.
type Geometry interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Coordinates returns the flat coordinate list. For polygons this
	// is the exterior ring.
	Coordinates() []Coord
}

// Point is a single-coordinate geometry.
type Point struct {
	Coord Coord
}

// NewPoint creates a point geometry at (lon, lat).
func NewPoint(lon, lat float64) *Point {
	return &Point{Coord: Coord{Lon: lon, Lat: lat}}
}

// Kind returns KindPoint.
func (p *Point) Kind() Kind { return KindPoint }

// Coordinates returns the single coordinate.
func (p *Point) Coordinates() []Coord { return []Coord{p.Coord} }

// MultiPoint is a geometry of independent coordinates. Map point series
// bind one marker per coordinate.
type MultiPoint struct {
	Coords []Coord
}

// NewMultiPoint creates a multi-point geometry.
func NewMultiPoint(coords ...Coord) *MultiPoint {
	return &MultiPoint{Coords: coords}
}

// Kind returns KindMultiPoint.
func (m *MultiPoint) Kind() Kind { return KindMultiPoint }

// Coordinates returns the coordinate list.
func (m *MultiPoint) Coordinates() []Coord { return m.Coords }

// LineString is an ordered run of coordinates.
type LineString struct {
	Coords []Coord
}

// NewLineString creates a line geometry through the coordinates.
func NewLineString(coords ...Coord) *LineString {
	return &LineString{Coords: coords}
}

// Kind returns KindLineString.
func (l *LineString) Kind() Kind { return KindLineString }

// Coordinates returns the coordinate list.
func (l *LineString) Coordinates() []Coord { return l.Coords }

// Polygon is a ring set: the first ring is the exterior outline,
// subsequent rings are holes.
type Polygon struct {
	Rings [][]Coord
}

// NewPolygon creates a polygon from its exterior ring.
func NewPolygon(exterior ...Coord) *Polygon {
	return &Polygon{Rings: [][]Coord{exterior}}
}

// Kind returns KindPolygon.
func (p *Polygon) Kind() Kind { return KindPolygon }

// Coordinates returns the exterior ring, or nil for an empty polygon.
func (p *Polygon) Coordinates() []Coord {
	if len(p.Rings) == 0 {
		return nil
	}
	return p.Rings[0]
}
