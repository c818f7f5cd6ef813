package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/geo"
	"github.com/gogpu/charts/projection"
)

const testGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"id": "island",
			"properties": {},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[0, 0], [20, 0], [20, 15], [0, 15], [0, 0]]]
			}
		},
		{
			"type": "Feature",
			"id": "capital",
			"properties": {"name": "Oslo"},
			"geometry": {"type": "Point", "coordinates": [10.75, 59.91]}
		}
	]
}`

func TestParseProjection(t *testing.T) {
	tests := []struct {
		name    string
		proj    string
		wantErr bool
	}{
		{"equirectangular", "equirectangular", false},
		{"mercator", "mercator", false},
		{"orthographic", "orthographic", false},
		{"empty defaults", "", false},
		{"unknown", "globular", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := parseProjection(tt.proj, 0, 0)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseProjection(%q) error = %v, wantErr %v", tt.proj, err, tt.wantErr)
			}
			if !tt.wantErr && p == nil {
				t.Errorf("parseProjection(%q) returned nil projection", tt.proj)
			}
		})
	}
}

func TestBuildMapScene(t *testing.T) {
	features, err := geo.ParseGeoJSON([]byte(testGeoJSON))
	if err != nil {
		t.Fatal(err)
	}

	opts := geomapOpts{width: 400, height: 300, labels: "name"}
	scene := buildMapScene(features, projection.NewEquirectangular(), DefaultConfig(), &opts)

	var polygons, circles, labelTexts []string
	for _, it := range scene.Items() {
		switch v := it.(type) {
		case *charts.Polygon:
			polygons = append(polygons, "polygon")
		case *charts.Circle:
			circles = append(circles, "circle")
		case *charts.Label:
			labelTexts = append(labelTexts, v.Text())
		}
	}
	if len(polygons) != 1 {
		t.Errorf("polygons = %d, want 1", len(polygons))
	}
	if len(circles) != 1 {
		t.Errorf("markers = %d, want 1", len(circles))
	}
	if len(labelTexts) != 1 || labelTexts[0] != "Oslo" {
		t.Errorf("labels = %v, want [Oslo]", labelTexts)
	}
}

func TestBuildMapSceneGraticule(t *testing.T) {
	features, err := geo.ParseGeoJSON([]byte(testGeoJSON))
	if err != nil {
		t.Fatal(err)
	}

	plain := geomapOpts{width: 400, height: 300}
	withGrid := geomapOpts{width: 400, height: 300, graticule: 30}

	base := buildMapScene(features, projection.NewEquirectangular(), DefaultConfig(), &plain)
	grid := buildMapScene(features, projection.NewEquirectangular(), DefaultConfig(), &withGrid)

	if grid.Len() <= base.Len() {
		t.Errorf("graticule scene has %d items, want more than %d", grid.Len(), base.Len())
	}
}

func TestRunGeomap(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "world.geojson")
	if err := os.WriteFile(input, []byte(testGeoJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	output := filepath.Join(dir, "world.svg")
	opts := geomapOpts{
		output: output, format: formatSVG,
		width: 200, height: 150,
		projection: "mercator", labels: "name",
	}

	if err := c.runGeomap(input, &opts); err != nil {
		t.Fatalf("runGeomap() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, "<svg") {
		t.Error("output does not contain an <svg> element")
	}
	if !strings.Contains(got, ">Oslo</text>") {
		t.Error("output does not contain the feature label")
	}
}

func TestRunGeomapBadProjection(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "world.geojson")
	if err := os.WriteFile(input, []byte(testGeoJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	opts := geomapOpts{format: formatSVG, width: 100, height: 80, projection: "globular"}
	if err := c.runGeomap(input, &opts); err == nil {
		t.Error("runGeomap() error = nil, want error")
	}
}
