package charts

import "testing"

func TestRectangle_Size(t *testing.T) {
	r := NewRectangle(10, 20)
	if w, h := r.Size(); w != 10 || h != 20 {
		t.Errorf("Size() = (%v, %v), want (10, 20)", w, h)
	}

	b := r.Path().Bounds()
	if !floatEq(b.Width(), 10) || !floatEq(b.Height(), 20) {
		t.Errorf("path bounds = %+v, want 10x20", b)
	}
}

func TestRectangle_CornerRadius(t *testing.T) {
	r := NewRectangle(10, 10)
	_ = r.Path()

	r.SetCornerRadius(3)
	if !r.NeedsRedraw() {
		t.Errorf("SetCornerRadius did not invalidate the path cache")
	}
	if r.CornerRadius() != 3 {
		t.Errorf("CornerRadius() = %v, want 3", r.CornerRadius())
	}

	_ = r.Path()
	r.SetCornerRadius(3) // unchanged value
	if r.NeedsRedraw() {
		t.Errorf("SetCornerRadius with unchanged value invalidated the path cache")
	}
}

func TestRectangle_DegenerateDrawsNothing(t *testing.T) {
	r := NewRectangle(0, 10)
	if !r.Path().Bounds().IsEmpty() {
		t.Errorf("zero-width rectangle produced a non-empty path")
	}
}

func TestCircle_SetRadius(t *testing.T) {
	c := NewCircle(4)
	_ = c.Path()

	c.SetRadius(6)
	if !c.NeedsRedraw() {
		t.Errorf("SetRadius did not invalidate the path cache")
	}
	if c.Radius() != 6 {
		t.Errorf("Radius() = %v, want 6", c.Radius())
	}

	b := c.Path().Bounds()
	if !floatEq(b.MinX, -6) || !floatEq(b.MaxX, 6) {
		t.Errorf("circle bounds = %+v, want [-6, 6]", b)
	}

	c.SetRadius(6) // unchanged value
	if c.NeedsRedraw() {
		t.Errorf("SetRadius with unchanged value invalidated the path cache")
	}
}

func TestLine_SetEndpoints(t *testing.T) {
	l := NewLine(0, 0, 10, 0)
	_ = l.Path()

	l.SetEndpoints(0, 0, 10, 0) // unchanged value
	if l.NeedsRedraw() {
		t.Errorf("SetEndpoints with unchanged value invalidated the path cache")
	}

	l.SetEndpoints(0, 0, 0, 10)
	if !l.NeedsRedraw() {
		t.Errorf("SetEndpoints did not invalidate the path cache")
	}
	b := l.Path().Bounds()
	if !floatEq(b.MaxY, 10) || !floatEq(b.MaxX, 0) {
		t.Errorf("line bounds = %+v, want vertical span to 10", b)
	}
}

func TestPolyline_SetPoints(t *testing.T) {
	pl := NewPolyline(Pt(0, 0), Pt(5, 5))
	_ = pl.Path()

	pl.SetPoints(Pt(0, 0), Pt(5, 5)) // unchanged value
	if pl.NeedsRedraw() {
		t.Errorf("SetPoints with unchanged value invalidated the path cache")
	}

	pl.SetPoints(Pt(0, 0), Pt(5, 5), Pt(10, 0))
	if !pl.NeedsRedraw() {
		t.Errorf("SetPoints did not invalidate the path cache")
	}
	if got := len(pl.Points()); got != 3 {
		t.Errorf("len(Points()) = %d, want 3", got)
	}
}

func TestPolygon_Rings(t *testing.T) {
	pg := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	if got := len(pg.Rings()); got != 1 {
		t.Fatalf("len(Rings()) = %d, want 1", got)
	}

	outline := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	hole := []Point{Pt(4, 4), Pt(6, 4), Pt(6, 6), Pt(4, 6)}
	pg.SetRings(outline, hole)
	if got := len(pg.Rings()); got != 2 {
		t.Fatalf("len(Rings()) = %d, want 2", got)
	}
	if !pg.NeedsRedraw() {
		t.Errorf("SetRings did not invalidate the path cache")
	}

	// The hole lies inside the outline, so bounds stay the outline's.
	b := pg.Path().Bounds()
	if !floatEq(b.MaxX, 10) || !floatEq(b.MaxY, 10) {
		t.Errorf("polygon bounds = %+v, want 10x10", b)
	}
}

func TestPolygon_Empty(t *testing.T) {
	pg := NewPolygon()
	if len(pg.Rings()) != 0 {
		t.Errorf("empty polygon has %d rings", len(pg.Rings()))
	}
	if !pg.Path().Bounds().IsEmpty() {
		t.Errorf("empty polygon produced a non-empty path")
	}
}
