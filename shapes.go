package charts

import "slices"

// Rectangle is a rounded rectangle sprite. The local origin is the
// top-left corner; rounding is clamped to half the smaller dimension.
type Rectangle struct {
	Sprite
	width, height float64
	cornerRadius  float64
}

// NewRectangle creates a rectangle of the given size with square corners.
func NewRectangle(w, h float64) *Rectangle {
	r := &Rectangle{width: w, height: h}
	r.init(r.draw)
	return r
}

// SetSize sets the rectangle dimensions.
func (r *Rectangle) SetSize(w, h float64) {
	if r.width == w && r.height == h {
		return
	}
	r.width, r.height = w, h
	r.Invalidate()
}

// Size returns the rectangle dimensions.
func (r *Rectangle) Size() (w, h float64) {
	return r.width, r.height
}

// SetCornerRadius sets the corner rounding radius.
func (r *Rectangle) SetCornerRadius(radius float64) {
	if r.cornerRadius == radius {
		return
	}
	r.cornerRadius = radius
	r.Invalidate()
}

// CornerRadius returns the corner rounding radius.
func (r *Rectangle) CornerRadius() float64 {
	return r.cornerRadius
}

func (r *Rectangle) draw(p *Path) {
	if r.width <= 0 || r.height <= 0 {
		return
	}
	p.RoundedRectangle(0, 0, r.width, r.height, r.cornerRadius)
}

// Circle is a circle sprite centered on its position.
type Circle struct {
	Sprite
	radius float64
}

// NewCircle creates a circle with the given radius.
func NewCircle(radius float64) *Circle {
	c := &Circle{radius: radius}
	c.init(c.draw)
	return c
}

// SetRadius sets the circle radius.
func (c *Circle) SetRadius(radius float64) {
	if c.radius == radius {
		return
	}
	c.radius = radius
	c.Invalidate()
}

// Radius returns the circle radius.
func (c *Circle) Radius() float64 {
	return c.radius
}

func (c *Circle) draw(p *Path) {
	if c.radius <= 0 {
		return
	}
	p.Circle(0, 0, c.radius)
}

// Line is a single straight segment between two local points.
type Line struct {
	Sprite
	x0, y0, x1, y1 float64
}

// NewLine creates a line between two local points.
func NewLine(x0, y0, x1, y1 float64) *Line {
	l := &Line{x0: x0, y0: y0, x1: x1, y1: y1}
	l.init(l.draw)
	return l
}

// SetEndpoints replaces both endpoints.
func (l *Line) SetEndpoints(x0, y0, x1, y1 float64) {
	if l.x0 == x0 && l.y0 == y0 && l.x1 == x1 && l.y1 == y1 {
		return
	}
	l.x0, l.y0, l.x1, l.y1 = x0, y0, x1, y1
	l.Invalidate()
}

func (l *Line) draw(p *Path) {
	p.Polyline(Pt(l.x0, l.y0), Pt(l.x1, l.y1))
}

// Polyline is an open run of segments through local points.
type Polyline struct {
	Sprite
	points []Point
}

// NewPolyline creates a polyline through the given points.
func NewPolyline(pts ...Point) *Polyline {
	pl := &Polyline{points: slices.Clone(pts)}
	pl.init(pl.draw)
	return pl
}

// SetPoints replaces the polyline points.
func (pl *Polyline) SetPoints(pts ...Point) {
	if slices.Equal(pl.points, pts) {
		return
	}
	pl.points = slices.Clone(pts)
	pl.Invalidate()
}

// Points returns the polyline points. Callers must not mutate the slice.
func (pl *Polyline) Points() []Point {
	return pl.points
}

func (pl *Polyline) draw(p *Path) {
	p.Polyline(pl.points...)
}

// Polygon is a closed, fillable run of segments through local points.
type Polygon struct {
	Sprite
	rings [][]Point // first ring is the outline, the rest are holes
}

// NewPolygon creates a polygon with the given outline.
func NewPolygon(outline ...Point) *Polygon {
	pg := &Polygon{}
	if len(outline) > 0 {
		pg.rings = [][]Point{slices.Clone(outline)}
	}
	pg.init(pg.draw)
	return pg
}

// SetRings replaces all rings. The first ring is the outline, subsequent
// rings are holes.
func (pg *Polygon) SetRings(rings ...[]Point) {
	pg.rings = make([][]Point, len(rings))
	for i, r := range rings {
		pg.rings[i] = slices.Clone(r)
	}
	pg.Invalidate()
}

// Rings returns the polygon rings. Callers must not mutate them.
func (pg *Polygon) Rings() [][]Point {
	return pg.rings
}

func (pg *Polygon) draw(p *Path) {
	for _, ring := range pg.rings {
		p.Polygon(ring...)
	}
}
