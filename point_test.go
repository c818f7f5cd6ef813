package charts

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)

	if got := p.Add(Pt(1, 2)); got != Pt(4, 6) {
		t.Errorf("Add = %+v, want (4, 6)", got)
	}
	if got := p.Sub(Pt(1, 2)); got != Pt(2, 2) {
		t.Errorf("Sub = %+v, want (2, 2)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %+v, want (6, 8)", got)
	}
	if got := p.Length(); !floatEq(got, 5) {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt(0, 0).Distance(p); !floatEq(got, 5) {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPoint_Rotate(t *testing.T) {
	got := Pt(1, 0).Rotate(math.Pi / 2)
	if !floatEq(got.X, 0) || !floatEq(got.Y, 1) {
		t.Errorf("Rotate(pi/2) = %+v, want (0, 1)", got)
	}
}

func TestPoint_Lerp(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 20)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %+v, want %+v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != Pt(5, 10) {
		t.Errorf("Lerp(0.5) = %+v, want (5, 10)", got)
	}
}

func TestPoint_Bearing(t *testing.T) {
	tests := []struct {
		name string
		to   Point
		want float64
	}{
		{"east", Pt(1, 0), 0},
		{"south", Pt(0, 1), math.Pi / 2}, // y grows downward in screen space
		{"west", Pt(-1, 0), math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pt(0, 0).Bearing(tt.to); !floatEq(got, tt.want) {
				t.Errorf("Bearing = %v, want %v", got, tt.want)
			}
		})
	}
}
