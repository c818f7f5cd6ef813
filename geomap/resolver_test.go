package geomap

import (
	"testing"

	"github.com/gogpu/charts/geo"
)

func TestResolve_LineCachedAfterFirstScan(t *testing.T) {
	c := testChart()
	lines := c.NewLineSeries()
	route := lines.Push("route", geo.NewLineString(geo.Coord{Lon: 0, Lat: 0}, geo.Coord{Lon: 10, Lat: 0}))
	points := c.NewPointSeries()
	points.AddMarkerFactory(dotFactory)
	it := points.Push(PointData{LineID: "route", PositionOnLine: Float(0.5)})

	c.ApplyChanges()
	if it.LineRef() != route {
		t.Fatalf("LineRef() = %v, want the pushed line entry", it.LineRef())
	}
	if it.lineGeom != route.Geometry() {
		t.Error("line geometry reference not cached")
	}
	if c.scans != 1 {
		t.Fatalf("scans after first pass = %d, want 1", c.scans)
	}

	c.ApplyChanges()
	if c.scans != 1 {
		t.Errorf("scans after second pass = %d, want 1 (cached reference reused)", c.scans)
	}
}

func TestResolve_PolygonCachedAfterFirstScan(t *testing.T) {
	c := testChart()
	polys := c.NewPolygonSeries()
	zone := polys.Push("zone", geo.NewPolygon(
		geo.Coord{Lon: 0, Lat: 0},
		geo.Coord{Lon: 10, Lat: 0},
		geo.Coord{Lon: 10, Lat: 10},
		geo.Coord{Lon: 0, Lat: 10},
	))
	points := c.NewPointSeries()
	points.AddMarkerFactory(dotFactory)
	it := points.Push(PointData{PolygonID: "zone"})

	c.ApplyChanges()
	if it.PolygonRef() != zone {
		t.Fatalf("PolygonRef() = %v, want the pushed polygon entry", it.PolygonRef())
	}
	if it.polygonGeom != zone.Geometry() {
		t.Error("polygon geometry reference not cached")
	}
	if c.scans != 1 {
		t.Fatalf("scans after first pass = %d, want 1", c.scans)
	}

	c.ApplyChanges()
	if c.scans != 1 {
		t.Errorf("scans after second pass = %d, want 1 (cached reference reused)", c.scans)
	}
}

func TestResolve_CreationOrderBreaksTies(t *testing.T) {
	c := testChart()
	first := c.NewLineSeries()
	a := first.Push("dup", geo.NewLineString(geo.Coord{Lon: 0, Lat: 0}, geo.Coord{Lon: 10, Lat: 0}))
	second := c.NewLineSeries()
	second.Push("dup", geo.NewLineString(geo.Coord{Lon: 0, Lat: 10}, geo.Coord{Lon: 10, Lat: 10}))

	points := c.NewPointSeries()
	points.AddMarkerFactory(dotFactory)
	it := points.Push(PointData{LineID: "dup", PositionOnLine: Float(0)})

	c.ApplyChanges()
	if it.LineRef() != a {
		t.Errorf("LineRef() resolved to the second series, want the first")
	}
}

func TestResolve_WrongTypeSeriesSkipped(t *testing.T) {
	c := testChart()
	polys := c.NewPolygonSeries()
	polys.Push("x", geo.NewPolygon(
		geo.Coord{Lon: 0, Lat: 0},
		geo.Coord{Lon: 10, Lat: 0},
		geo.Coord{Lon: 10, Lat: 10},
	))
	points := c.NewPointSeries()
	points.AddMarkerFactory(dotFactory)
	it := points.Push(PointData{LineID: "x", Longitude: Float(10), Latitude: Float(20)})

	c.ApplyChanges()
	if it.LineRef() != nil {
		t.Errorf("LineRef() = %v, want nil (identifier names a polygon)", it.LineRef())
	}
	x, y := it.Markers()[0].Item().AsSprite().Position()
	if !floatEq(x, 190) || !floatEq(y, 70) {
		t.Errorf("marker at (%v, %v), want the direct projection (190, 70)", x, y)
	}
}

func TestResolve_RetriesUntilSiblingArrives(t *testing.T) {
	c := testChart()
	lines := c.NewLineSeries()
	points := c.NewPointSeries()
	points.AddMarkerFactory(dotFactory)
	it := points.Push(PointData{LineID: "ghost", PositionOnLine: Float(0.5)})

	c.ApplyChanges()
	if it.LineRef() != nil {
		t.Fatal("LineRef() resolved before the sibling exists")
	}
	if c.scans != 1 {
		t.Fatalf("scans = %d, want 1", c.scans)
	}

	lines.Push("ghost", geo.NewLineString(geo.Coord{Lon: 0, Lat: 0}, geo.Coord{Lon: 10, Lat: 0}))
	c.ApplyChanges()
	if it.LineRef() == nil {
		t.Fatal("LineRef() still unresolved after the sibling arrived")
	}
	if c.scans != 2 {
		t.Fatalf("scans = %d, want 2", c.scans)
	}
	x, y := it.Markers()[0].Item().AsSprite().Position()
	if !floatEq(x, 185) || !floatEq(y, 90) {
		t.Errorf("marker at (%v, %v), want (185, 90)", x, y)
	}

	c.ApplyChanges()
	if c.scans != 2 {
		t.Errorf("scans after resolution = %d, want 2", c.scans)
	}
}

func TestResolve_NoIdentifierNoScan(t *testing.T) {
	c := testChart()
	c.NewLineSeries()
	points := c.NewPointSeries()
	points.AddMarkerFactory(dotFactory)
	points.Push(PointData{Longitude: Float(10), Latitude: Float(20)})

	c.ApplyChanges()
	c.ApplyChanges()
	if c.scans != 0 {
		t.Errorf("scans = %d, want 0", c.scans)
	}
}

func TestResolve_SetLineIDClearsCache(t *testing.T) {
	c := testChart()
	lines := c.NewLineSeries()
	lines.Push("a", geo.NewLineString(geo.Coord{Lon: 0, Lat: 0}, geo.Coord{Lon: 10, Lat: 0}))
	b := lines.Push("b", geo.NewLineString(geo.Coord{Lon: 0, Lat: 10}, geo.Coord{Lon: 10, Lat: 10}))

	points := c.NewPointSeries()
	points.AddMarkerFactory(dotFactory)
	it := points.Push(PointData{LineID: "a", PositionOnLine: Float(0.5)})

	c.ApplyChanges()
	x, y := it.Markers()[0].Item().AsSprite().Position()
	if !floatEq(x, 185) || !floatEq(y, 90) {
		t.Fatalf("marker at (%v, %v), want (185, 90)", x, y)
	}

	it.SetLineID("b")
	if it.LineRef() != nil {
		t.Fatal("SetLineID kept the cached reference")
	}
	c.ApplyChanges()
	if it.LineRef() != b {
		t.Fatalf("LineRef() = %v, want entry b", it.LineRef())
	}
	if c.scans != 2 {
		t.Errorf("scans = %d, want 2", c.scans)
	}
	x, y = it.Markers()[0].Item().AsSprite().Position()
	if !floatEq(x, 185) || !floatEq(y, 80) {
		t.Errorf("marker at (%v, %v), want (185, 80)", x, y)
	}
}
