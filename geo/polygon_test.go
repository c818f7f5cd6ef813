package geo

import (
	"math"
	"testing"
)

func coordEq(a, b Coord) bool {
	return math.Abs(a.Lon-b.Lon) < 1e-9 && math.Abs(a.Lat-b.Lat) < 1e-9
}

func TestPolygon_VisualCentroid(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		p := NewPolygon(
			Coord{0, 0}, Coord{2, 0}, Coord{2, 2}, Coord{0, 2},
		)
		got := p.VisualCentroid()
		if !coordEq(got, Coord{1, 1}) {
			t.Errorf("centroid = %+v, want {1 1}", got)
		}
	})

	t.Run("L-shape differs from vertex mean", func(t *testing.T) {
		// 4x1 bar plus 1x3 upright: area 7.
		p := NewPolygon(
			Coord{0, 0}, Coord{4, 0}, Coord{4, 1},
			Coord{1, 1}, Coord{1, 4}, Coord{0, 4},
		)
		got := p.VisualCentroid()
		want := Coord{9.5 / 7, 9.5 / 7}
		if !coordEq(got, want) {
			t.Errorf("centroid = %+v, want %+v", got, want)
		}

		mean := vertexMean(p.Coordinates())
		if coordEq(got, mean) {
			t.Errorf("area-weighted centroid %+v equals vertex mean %+v", got, mean)
		}
	})

	t.Run("closed ring drops duplicate vertex", func(t *testing.T) {
		p := NewPolygon(
			Coord{0, 0}, Coord{2, 0}, Coord{2, 2}, Coord{0, 2}, Coord{0, 0},
		)
		got := p.VisualCentroid()
		if !coordEq(got, Coord{1, 1}) {
			t.Errorf("centroid = %+v, want {1 1}", got)
		}
	})

	t.Run("winding order does not matter", func(t *testing.T) {
		cw := NewPolygon(
			Coord{0, 2}, Coord{2, 2}, Coord{2, 0}, Coord{0, 0},
		)
		got := cw.VisualCentroid()
		if !coordEq(got, Coord{1, 1}) {
			t.Errorf("clockwise centroid = %+v, want {1 1}", got)
		}
	})

	t.Run("degenerate falls back to vertex mean", func(t *testing.T) {
		tests := []struct {
			name string
			ring []Coord
			want Coord
		}{
			{"empty", nil, Coord{}},
			{"single vertex", []Coord{{3, 4}}, Coord{3, 4}},
			{"two vertices", []Coord{{0, 0}, {2, 2}}, Coord{1, 1}},
			{"collinear", []Coord{{0, 0}, {1, 1}, {2, 2}}, Coord{1, 1}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p := NewPolygon(tt.ring...)
				if got := p.VisualCentroid(); !coordEq(got, tt.want) {
					t.Errorf("centroid = %+v, want %+v", got, tt.want)
				}
			})
		}
	})

	t.Run("holes do not move the anchor", func(t *testing.T) {
		p := &Polygon{Rings: [][]Coord{
			{{0, 0}, {4, 0}, {4, 4}, {0, 4}},
			{{1, 1}, {2, 1}, {2, 2}, {1, 2}}, // hole, ignored
		}}
		if got := p.VisualCentroid(); !coordEq(got, Coord{2, 2}) {
			t.Errorf("centroid = %+v, want {2 2}", got)
		}
	})
}

func TestGeometry_Kinds(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want Kind
	}{
		{"Point", NewPoint(1, 2), KindPoint},
		{"MultiPoint", NewMultiPoint(Coord{1, 2}), KindMultiPoint},
		{"LineString", NewLineString(Coord{0, 0}, Coord{1, 1}), KindLineString},
		{"Polygon", NewPolygon(Coord{0, 0}, Coord{1, 0}, Coord{0, 1}), KindPolygon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
			if got := tt.g.Kind().String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}
