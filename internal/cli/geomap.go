package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/geo"
	"github.com/gogpu/charts/geomap"
	"github.com/gogpu/charts/projection"
)

// geomapOpts holds the command-line flags for the geomap command.
type geomapOpts struct {
	output     string  // output file path
	format     string  // output format: "svg" or "png"
	config     string  // TOML styling config path
	width      int     // viewport width in pixels
	height     int     // viewport height in pixels
	projection string  // projection name
	centerLon  float64 // orthographic center longitude in degrees
	centerLat  float64 // orthographic center latitude in degrees
	graticule  float64 // meridian/parallel spacing in degrees (0 = off)
	labels     string  // property key for point labels ("" = off)
}

// geomapCommand creates the geomap command for rendering GeoJSON data
// as a map chart.
func (c *CLI) geomapCommand() *cobra.Command {
	opts := geomapOpts{format: formatSVG, width: defaultWidth, height: defaultHeight}

	cmd := &cobra.Command{
		Use:   "geomap [data.geojson]",
		Short: "Render GeoJSON data as a geographic map chart",
		Long: `Render GeoJSON data as a geographic map chart.

Polygon features draw as land, line features as strokes, and point
features as circle markers. The --labels flag annotates point features
with the value of a property key, and --graticule draws meridians and
parallels under the data.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runGeomap(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to the input name with the format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg or png")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML styling config")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "viewport width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "viewport height in pixels")
	cmd.Flags().StringVarP(&opts.projection, "projection", "p", "equirectangular", "projection: equirectangular, mercator, or orthographic")
	cmd.Flags().Float64Var(&opts.centerLon, "center-lon", 0, "orthographic center longitude")
	cmd.Flags().Float64Var(&opts.centerLat, "center-lat", 0, "orthographic center latitude")
	cmd.Flags().Float64Var(&opts.graticule, "graticule", 0, "meridian/parallel spacing in degrees (0 disables)")
	cmd.Flags().StringVar(&opts.labels, "labels", "", "annotate point features with this property key")

	return cmd
}

// parseProjection resolves a projection name to a projection instance.
func parseProjection(name string, centerLon, centerLat float64) (projection.Projection, error) {
	switch name {
	case "equirectangular", "":
		return projection.NewEquirectangular(), nil
	case "mercator":
		return projection.NewMercator(), nil
	case "orthographic":
		return projection.NewOrthographic(centerLon, centerLat), nil
	default:
		return nil, fmt.Errorf("unknown projection: %s (must be 'equirectangular', 'mercator', or 'orthographic')", name)
	}
}

// runGeomap loads the features, assembles the map chart, and writes
// the scene to the requested format.
func (c *CLI) runGeomap(input string, opts *geomapOpts) error {
	cfg, err := loadConfigOrDefault(opts.config)
	if err != nil {
		return err
	}
	proj, err := parseProjection(opts.projection, opts.centerLon, opts.centerLat)
	if err != nil {
		return err
	}

	p := newProgress(c.Logger)
	features, err := geo.LoadGeoJSON(input)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Loaded %d features from %s", len(features), input)

	scene := buildMapScene(features, proj, cfg, opts)

	path := outputPath(opts.output, input, opts.format)
	if err := writeScene(scene, opts.width, opts.height, opts.format, path); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d features to %s", len(features), path))
	return nil
}

// buildMapScene assembles the map: a water background, an optional
// graticule, then polygon, line, and point series fed from the
// features. Scene order is paint order, so the background goes in
// before any series sprite.
func buildMapScene(features []geo.Feature, proj projection.Projection, cfg Config, opts *geomapOpts) *charts.Scene {
	w, h := float64(opts.width), float64(opts.height)
	chart := geomap.NewChart(proj, w, h)

	bg := charts.NewRectangle(w, h)
	bg.SetStyle(charts.Style{Fill: hexColor(cfg.Map.Water, charts.White)})
	chart.Scene().Add(bg)

	strokeCol := hexColor(cfg.Map.Stroke, charts.Black)
	if opts.graticule > 0 {
		addGraticule(chart, opts.graticule, strokeCol)
	}

	polys := chart.NewPolygonSeries()
	polys.SetStyle(charts.Style{
		Fill:        hexColor(cfg.Map.Land, charts.White),
		Stroke:      strokeCol,
		StrokeWidth: cfg.Map.StrokeWidth,
	})
	lines := chart.NewLineSeries()
	lines.SetStyle(charts.Style{Stroke: strokeCol, StrokeWidth: max(cfg.Map.StrokeWidth, 1)})

	points := chart.NewPointSeries()
	markerCol := hexColor(cfg.Map.Marker, charts.Red)
	markerRadius := cfg.Map.MarkerRadius
	points.AddMarkerFactory(func() charts.Item {
		dot := charts.NewCircle(markerRadius)
		dot.SetStyle(charts.Style{Fill: markerCol})
		return dot
	})

	for _, f := range features {
		switch g := f.Geometry.(type) {
		case *geo.Polygon:
			polys.Push(f.ID, g)
		case *geo.LineString:
			lines.Push(f.ID, g)
		default:
			points.Push(geomap.PointData{ID: f.ID, Geometry: g})
		}
	}

	chart.ApplyChanges()

	if opts.labels != "" {
		addFeatureLabels(chart, features, opts.labels, cfg.Map.LabelSize, markerRadius)
	}

	return chart.Scene()
}

// addGraticule draws meridians and parallels every spacing degrees.
// Vertices are sampled densely so curved projections stay smooth.
func addGraticule(chart *geomap.Chart, spacing float64, col charts.RGBA) {
	s := chart.NewLineSeries()
	s.SetStyle(charts.Style{Stroke: col.WithAlpha(0.35), StrokeWidth: 0.5})

	const step = 2.0
	for lon := -180.0; lon <= 180.0+1e-9; lon += spacing {
		coords := make([]geo.Coord, 0, int(170/step)+1)
		for lat := -85.0; lat <= 85.0+1e-9; lat += step {
			coords = append(coords, geo.Coord{Lon: lon, Lat: lat})
		}
		s.Push(fmt.Sprintf("meridian%+.0f", lon), geo.NewLineString(coords...))
	}
	for lat := -80.0; lat <= 80.0+1e-9; lat += spacing {
		coords := make([]geo.Coord, 0, int(360/step)+1)
		for lon := -180.0; lon <= 180.0+1e-9; lon += step {
			coords = append(coords, geo.Coord{Lon: lon, Lat: lat})
		}
		s.Push(fmt.Sprintf("parallel%+.0f", lat), geo.NewLineString(coords...))
	}
}

// addFeatureLabels annotates point features that carry the given
// property with a label beside the marker. Labels are placed once,
// after the chart pass, so they track the projection active at render
// time.
func addFeatureLabels(chart *geomap.Chart, features []geo.Feature, key string, size, gap float64) {
	for _, f := range features {
		if f.Geometry == nil || f.Geometry.Kind() != geo.KindPoint {
			continue
		}
		text, ok := f.Property(key)
		if !ok || text == "" {
			continue
		}
		coord := f.Geometry.Coordinates()[0]
		if !chart.Visible(coord) {
			continue
		}
		pt, ok := chart.Project(coord)
		if !ok {
			continue
		}
		lbl := charts.NewLabel(text, size)
		lbl.SetAnchor(0, 0.5)
		lbl.SetPosition(pt.X+gap+3, pt.Y)
		lbl.SetStyle(charts.Style{Fill: charts.Black.WithAlpha(0.85)})
		chart.Scene().Add(lbl)
	}
}
