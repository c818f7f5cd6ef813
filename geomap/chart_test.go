package geomap

import (
	"math"
	"testing"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/geo"
	"github.com/gogpu/charts/projection"
)

const epsilon = 1e-9

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func ptEq(p charts.Point, x, y float64) bool {
	return floatEq(p.X, x) && floatEq(p.Y, y)
}

// testChart maps one degree to one pixel: longitude -180..180 covers
// x 0..360 and latitude 90..-90 covers y 0..180.
func testChart() *Chart {
	return NewChart(projection.NewEquirectangular(), 360, 180)
}

func dotFactory() charts.Item {
	return charts.NewCircle(2)
}

func TestNewChart_Defaults(t *testing.T) {
	c := NewChart(nil, 100, 50)
	if _, ok := c.Projection().(*projection.Equirectangular); !ok {
		t.Errorf("Projection() = %T, want *projection.Equirectangular", c.Projection())
	}
	if c.Store() == nil {
		t.Error("Store() = nil")
	}
	if c.Scene() == nil {
		t.Error("Scene() = nil")
	}
	w, h := c.Size()
	if w != 100 || h != 50 {
		t.Errorf("Size() = %v, %v, want 100, 50", w, h)
	}
}

func TestChart_Project(t *testing.T) {
	c := testChart()
	tests := []struct {
		name  string
		coord geo.Coord
		x, y  float64
	}{
		{"origin", geo.Coord{Lon: 0, Lat: 0}, 180, 90},
		{"offset", geo.Coord{Lon: 10, Lat: 20}, 190, 70},
		{"north west corner", geo.Coord{Lon: -180, Lat: 90}, 0, 0},
		{"south east corner", geo.Coord{Lon: 180, Lat: -90}, 360, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, ok := c.Project(tt.coord)
			if !ok {
				t.Fatalf("Project(%v) not ok", tt.coord)
			}
			if !ptEq(pt, tt.x, tt.y) {
				t.Errorf("Project(%v) = %v, want (%v, %v)", tt.coord, pt, tt.x, tt.y)
			}
		})
	}
}

func TestChart_SetSizeReprojects(t *testing.T) {
	c := testChart()
	lines := c.NewLineSeries()
	it := lines.Push("l", geo.NewLineString(geo.Coord{Lon: 0, Lat: 0}, geo.Coord{Lon: 10, Lat: 0}))
	c.ApplyChanges()
	pts := it.Sprite().Points()
	if len(pts) != 2 || !ptEq(pts[0], 180, 90) || !ptEq(pts[1], 190, 90) {
		t.Fatalf("points before resize = %v", pts)
	}

	c.SetSize(720, 360)
	c.ApplyChanges()
	pts = it.Sprite().Points()
	if len(pts) != 2 || !ptEq(pts[0], 360, 180) || !ptEq(pts[1], 380, 180) {
		t.Errorf("points after resize = %v", pts)
	}
}

func TestChart_SetProjectionNilIgnored(t *testing.T) {
	c := testChart()
	before := c.Projection()
	c.SetProjection(nil)
	if c.Projection() != before {
		t.Error("SetProjection(nil) replaced the projection")
	}
}

func TestChart_GeoBounds(t *testing.T) {
	c := testChart()
	if _, _, ok := c.GeoBounds(); ok {
		t.Error("GeoBounds() ok on empty store")
	}

	lines := c.NewLineSeries()
	lines.Push("l", geo.NewLineString(geo.Coord{Lon: 0, Lat: 0}, geo.Coord{Lon: 10, Lat: 5}))
	points := c.NewPointSeries()
	points.Push(PointData{Longitude: Float(-20), Latitude: Float(30)})

	min, max, ok := c.GeoBounds()
	if !ok {
		t.Fatal("GeoBounds() not ok")
	}
	if !floatEq(min.Lon, -20) || !floatEq(min.Lat, 0) {
		t.Errorf("min = %v, want {-20 0}", min)
	}
	if !floatEq(max.Lon, 10) || !floatEq(max.Lat, 30) {
		t.Errorf("max = %v, want {10 30}", max)
	}
}

func TestChart_SeriesCreationOrder(t *testing.T) {
	c := testChart()
	c.NewPolygonSeries()
	c.NewLineSeries()
	c.NewPointSeries()

	got := c.Series()
	if len(got) != 3 {
		t.Fatalf("len(Series()) = %d, want 3", len(got))
	}
	if _, ok := got[0].(*PolygonSeries); !ok {
		t.Errorf("series[0] = %T, want *PolygonSeries", got[0])
	}
	if _, ok := got[1].(*LineSeries); !ok {
		t.Errorf("series[1] = %T, want *LineSeries", got[1])
	}
	if _, ok := got[2].(*PointSeries); !ok {
		t.Errorf("series[2] = %T, want *PointSeries", got[2])
	}
}
