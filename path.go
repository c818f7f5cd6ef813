package charts

import (
	"iter"
	"math"
)

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo moves the current point without drawing.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Path represents a vector path. It stores path commands (verbs) and
// coordinate data separately for efficient processing. A Path is the
// cached drawing artifact of a sprite: invalidating a sprite discards
// its Path, and the next draw pass rebuilds it.
type Path struct {
	verbs  []PathVerb
	points []float64
	bounds Rect
	start  [2]float64 // Start of current subpath for Close
	cursor [2]float64 // Current position
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 16),
		points: make([]float64, 0, 64),
		bounds: EmptyRect(),
	}
}

// Reset clears the path for reuse without deallocating memory.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.bounds = EmptyRect()
	p.start = [2]float64{0, 0}
	p.cursor = [2]float64{0, 0}
}

// MoveTo begins a new subpath at the specified point.
func (p *Path) MoveTo(x, y float64) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.UnionPoint(x, y)
	p.start = [2]float64{x, y}
	p.cursor = [2]float64{x, y}
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.UnionPoint(x, y)
	p.cursor = [2]float64{x, y}
	return p
}

// QuadTo draws a quadratic Bezier curve.
// The curve goes from the current point to (x, y) using (cx, cy) as control point.
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, cx, cy, x, y)
	p.bounds = p.bounds.UnionPoint(cx, cy)
	p.bounds = p.bounds.UnionPoint(x, y)
	// Union with control points is a conservative bounds approximation.
	p.cursor = [2]float64{x, y}
	return p
}

// CubicTo draws a cubic Bezier curve.
// The curve goes from the current point to (x, y) using (c1x, c1y) and (c2x, c2y) as control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	p.bounds = p.bounds.UnionPoint(c1x, c1y)
	p.bounds = p.bounds.UnionPoint(c2x, c2y)
	p.bounds = p.bounds.UnionPoint(x, y)
	p.cursor = [2]float64{x, y}
	return p
}

// Close closes the current subpath by drawing a line back to its start.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	p.cursor = p.start
	return p
}

// Rectangle adds a rectangle path.
func (p *Path) Rectangle(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// RoundedRectangle adds a rounded rectangle path.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) *Path {
	// Clamp radius to half the minimum dimension
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}
	if r <= 0 {
		return p.Rectangle(x, y, w, h)
	}

	// Magic number for approximating circular arcs with cubic beziers
	// k = 4 * (sqrt(2) - 1) / 3 ≈ 0.5523
	const k = 0.5522847498
	kr := k * r

	// Start from top-left corner (after the rounded corner)
	p.MoveTo(x+r, y)

	// Top edge and top-right corner
	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-r+kr, y, x+w, y+r-kr, x+w, y+r)

	// Right edge and bottom-right corner
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+kr, x+w-r+kr, y+h, x+w-r, y+h)

	// Bottom edge and bottom-left corner
	p.LineTo(x+r, y+h)
	p.CubicTo(x+r-kr, y+h, x, y+h-r+kr, x, y+h-r)

	// Left edge and top-left corner
	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-kr, x+r-kr, y, x+r, y)

	return p.Close()
}

// Circle adds a circle path.
func (p *Path) Circle(cx, cy, r float64) *Path {
	const k = 0.5522847498
	kr := k * r

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+kr, cx+kr, cy+r, cx, cy+r) // to bottom
	p.CubicTo(cx-kr, cy+r, cx-r, cy+kr, cx-r, cy) // to left
	p.CubicTo(cx-r, cy-kr, cx-kr, cy-r, cx, cy-r) // to top
	p.CubicTo(cx+kr, cy-r, cx+r, cy-kr, cx+r, cy) // to right (start)

	return p.Close()
}

// Polyline adds an open polyline through the points. A polyline with
// fewer than two points, or with all points equal, adds nothing:
// degenerate segments are drawn as no-ops.
func (p *Path) Polyline(pts ...Point) *Path {
	if len(pts) < 2 {
		return p
	}
	degenerate := true
	for _, q := range pts[1:] {
		if q != pts[0] {
			degenerate = false
			break
		}
	}
	if degenerate {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, q := range pts[1:] {
		p.LineTo(q.X, q.Y)
	}
	return p
}

// Polygon adds a closed polygon through the points.
func (p *Path) Polygon(pts ...Point) *Path {
	if len(pts) < 3 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, q := range pts[1:] {
		p.LineTo(q.X, q.Y)
	}
	return p.Close()
}

// Bounds returns the bounding rectangle of the path.
// Note: This is a conservative approximation that includes control points.
func (p *Path) Bounds() Rect {
	return p.bounds
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb stream.
func (p *Path) Verbs() []PathVerb {
	return p.verbs
}

// Points returns the point data stream.
func (p *Path) Points() []float64 {
	return p.points
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.verbs = make([]PathVerb, len(p.verbs))
	copy(result.verbs, p.verbs)
	result.points = make([]float64, len(p.points))
	copy(result.points, p.points)
	result.bounds = p.bounds
	result.start = p.start
	result.cursor = p.cursor
	return result
}

// Transformed returns a new path with every point translated by (tx, ty)
// after rotating by angle radians around the origin. This is the sprite
// local-to-scene transform used by renderers.
func (p *Path) Transformed(tx, ty, angle float64) *Path {
	result := NewPath()
	result.verbs = make([]PathVerb, len(p.verbs))
	copy(result.verbs, p.verbs)
	result.points = make([]float64, 0, len(p.points))

	cos := math.Cos(angle)
	sin := math.Sin(angle)
	for i := 0; i < len(p.points); i += 2 {
		x := p.points[i]
		y := p.points[i+1]
		nx := x*cos - y*sin + tx
		ny := x*sin + y*cos + ty
		result.points = append(result.points, nx, ny)
		result.bounds = result.bounds.UnionPoint(nx, ny)
	}
	return result
}

// PathElement represents a single path command with its associated points.
// This type is used by the Elements() iterator for ergonomic path traversal.
type PathElement struct {
	// Verb is the path command type.
	Verb PathVerb

	// Points contains the coordinates for this element.
	// The number of points depends on the verb:
	//   - MoveTo: 1 point (destination)
	//   - LineTo: 1 point (destination)
	//   - QuadTo: 2 points (control, destination)
	//   - CubicTo: 3 points (control1, control2, destination)
	//   - Close: 0 points
	Points []Point
}

// Elements returns an iterator over all path elements.
//
// Example:
//
//	for elem := range path.Elements() {
//	    switch elem.Verb {
//	    case charts.VerbMoveTo:
//	        fmt.Printf("Move to %v\n", elem.Points[0])
//	    case charts.VerbLineTo:
//	        fmt.Printf("Line to %v\n", elem.Points[0])
//	    }
//	}
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		pointIdx := 0

		for _, verb := range p.verbs {
			var elem PathElement
			elem.Verb = verb

			switch verb {
			case VerbMoveTo, VerbLineTo:
				elem.Points = []Point{
					{p.points[pointIdx], p.points[pointIdx+1]},
				}
				pointIdx += 2

			case VerbQuadTo:
				elem.Points = []Point{
					{p.points[pointIdx], p.points[pointIdx+1]},
					{p.points[pointIdx+2], p.points[pointIdx+3]},
				}
				pointIdx += 4

			case VerbCubicTo:
				elem.Points = []Point{
					{p.points[pointIdx], p.points[pointIdx+1]},
					{p.points[pointIdx+2], p.points[pointIdx+3]},
					{p.points[pointIdx+4], p.points[pointIdx+5]},
				}
				pointIdx += 6

			case VerbClose:
				elem.Points = nil
			}

			if !yield(elem) {
				return
			}
		}
	}
}
