package charts

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestPath_Build(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2).LineTo(3, 4).Close()

	wantVerbs := []PathVerb{VerbMoveTo, VerbLineTo, VerbClose}
	if len(p.Verbs()) != len(wantVerbs) {
		t.Fatalf("verb count = %d, want %d", len(p.Verbs()), len(wantVerbs))
	}
	for i, v := range p.Verbs() {
		if v != wantVerbs[i] {
			t.Errorf("verb[%d] = %v, want %v", i, v, wantVerbs[i])
		}
	}

	b := p.Bounds()
	if !floatEq(b.MinX, 1) || !floatEq(b.MinY, 2) || !floatEq(b.MaxX, 3) || !floatEq(b.MaxY, 4) {
		t.Errorf("bounds = %+v, want {1 2 3 4}", b)
	}
}

func TestPath_Polyline(t *testing.T) {
	tests := []struct {
		name      string
		pts       []Point
		wantVerbs int
	}{
		{"two points", []Point{{0, 0}, {5, 5}}, 2},
		{"three points", []Point{{0, 0}, {5, 5}, {10, 0}}, 3},
		{"single point", []Point{{3, 3}}, 0},
		{"empty", nil, 0},
		{"degenerate segment", []Point{{2, 2}, {2, 2}}, 0},
		{"all points equal", []Point{{1, 1}, {1, 1}, {1, 1}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			p.Polyline(tt.pts...)
			if got := len(p.Verbs()); got != tt.wantVerbs {
				t.Errorf("verb count = %d, want %d", got, tt.wantVerbs)
			}
			// Open polylines must never close.
			for _, v := range p.Verbs() {
				if v == VerbClose {
					t.Errorf("polyline emitted Close")
				}
			}
		})
	}
}

func TestPath_RoundedRectangle(t *testing.T) {
	t.Run("zero radius falls back to rectangle", func(t *testing.T) {
		p := NewPath()
		p.RoundedRectangle(0, 0, 10, 20, 0)
		for _, v := range p.Verbs() {
			if v == VerbCubicTo {
				t.Fatalf("square rectangle emitted cubic segments")
			}
		}
	})

	t.Run("radius clamped to half min dimension", func(t *testing.T) {
		p := NewPath()
		p.RoundedRectangle(0, 0, 10, 20, 100)
		b := p.Bounds()
		if b.MinX < -epsilon || b.MinY < -epsilon || b.MaxX > 10+epsilon || b.MaxY > 20+epsilon {
			t.Errorf("bounds %+v exceed rectangle", b)
		}
	})
}

func TestPath_Transformed(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 0).LineTo(2, 0)

	t.Run("translate", func(t *testing.T) {
		q := p.Transformed(10, 20, 0)
		pts := q.Points()
		want := []float64{11, 20, 12, 20}
		for i := range want {
			if !floatEq(pts[i], want[i]) {
				t.Errorf("points = %v, want %v", pts, want)
				break
			}
		}
	})

	t.Run("rotate quarter turn", func(t *testing.T) {
		q := p.Transformed(0, 0, math.Pi/2)
		pts := q.Points()
		// (1,0) -> (0,1), (2,0) -> (0,2)
		want := []float64{0, 1, 0, 2}
		for i := range want {
			if math.Abs(pts[i]-want[i]) > 1e-12 {
				t.Errorf("points = %v, want %v", pts, want)
				break
			}
		}
	})

	t.Run("original untouched", func(t *testing.T) {
		_ = p.Transformed(5, 5, 1)
		pts := p.Points()
		want := []float64{1, 0, 2, 0}
		for i := range want {
			if !floatEq(pts[i], want[i]) {
				t.Errorf("source points mutated: %v", pts)
				break
			}
		}
	})
}

func TestPath_Elements(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0).LineTo(1, 1).QuadTo(2, 2, 3, 3).Close()

	var verbs []PathVerb
	for elem := range p.Elements() {
		verbs = append(verbs, elem.Verb)
	}
	want := []PathVerb{VerbMoveTo, VerbLineTo, VerbQuadTo, VerbClose}
	if len(verbs) != len(want) {
		t.Fatalf("element count = %d, want %d", len(verbs), len(want))
	}
	for i := range want {
		if verbs[i] != want[i] {
			t.Errorf("element[%d] = %v, want %v", i, verbs[i], want[i])
		}
	}
}

func TestPath_Reset(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 5, 5)
	p.Reset()
	if !p.IsEmpty() {
		t.Errorf("path not empty after Reset")
	}
	if !p.Bounds().IsEmpty() {
		t.Errorf("bounds not empty after Reset")
	}
}
