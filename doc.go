// Package charts provides a declarative 2D charting core for Go.
//
// # Overview
//
// charts is the display-object layer of the GoGPU charting stack. Shapes
// ("sprites") carry settings; changing a geometry setting invalidates the
// sprite's cached vector path, and the next draw pass rebuilds it. Higher
// layers (geomap, candle) drive sprites from data; the render package
// rasterizes scenes to pixmaps, SVG, or a GPU surface.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/charts"
//	    "github.com/gogpu/charts/render"
//	)
//
//	scene := charts.NewScene()
//
//	c := charts.NewCandlestick()
//	c.SetSize(8, 40)
//	c.SetLowY0(40)
//	c.SetLowY1(55)
//	c.SetPosition(100, 60)
//	scene.Add(c)
//
//	target := render.NewPixmapTarget(256, 256)
//	if err := render.NewSoftwareRenderer().Render(target, scene); err != nil {
//	    log.Fatal(err)
//	}
//	render.SavePNG("candle.png", target)
//
// # Threading Model
//
// A scene and everything attached to it belong to a single goroutine.
// Settings writes, the per-frame apply-changes pass, and rendering must
// not be interleaved from multiple goroutines. SetLogger is the only
// function safe for concurrent use.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases clockwise on screen
//
// # Architecture
//
// The module is organized into:
//   - charts: sprites, paths, styles, text measurement
//   - geo: geometry variants, geometry store, geodesic helpers
//   - projection: geographic projections and clip predicates
//   - geomap: map chart, series, reference resolution, marker placement
//   - candle: OHLC series driving candlestick sprites
//   - render: software, GPU, SVG and PNG back ends
package charts

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
