// Package geomap assembles geographic map charts from projection-driven
// series. A Chart owns the projection, the geometry store, and the
// scene; polygon, line, and point series feed sprites into the scene,
// and the chart's ApplyChanges pass keeps marker placement in step with
// data and projection state.
package geomap

import (
	"math"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/geo"
	"github.com/gogpu/charts/projection"
)

// Chart is a geographic map: a projection, a plot size in pixels, the
// geometry store shared by all series, and the scene that renderers
// consume. Series are created on the chart and kept in creation order;
// that order is the documented tie-break when an identifier matches
// entries in more than one series.
//
// A Chart and its series must be used from a single goroutine.
type Chart struct {
	proj   projection.Projection
	width  float64
	height float64

	store  *geo.Store
	scene  *charts.Scene
	series []Series

	// projVersion increments whenever the projection or the plot size
	// changes, so series can skip reprojection when nothing moved.
	projVersion uint64

	// scans counts full sibling-series scans performed by identifier
	// resolution. Cached references keep this flat across passes.
	scans int
}

// NewChart creates a map chart with the given projection and plot size
// in pixels. A nil projection defaults to equirectangular.
func NewChart(proj projection.Projection, width, height float64) *Chart {
	if proj == nil {
		proj = projection.NewEquirectangular()
	}
	return &Chart{
		proj:   proj,
		width:  width,
		height: height,
		store:  geo.NewStore(),
		scene:  charts.NewScene(),
	}
}

// Projection returns the active projection.
func (c *Chart) Projection() projection.Projection { return c.proj }

// SetProjection swaps the active projection. Nil is ignored. Series
// reproject on the next ApplyChanges.
func (c *Chart) SetProjection(p projection.Projection) {
	if p == nil {
		return
	}
	c.proj = p
	c.projVersion++
}

// Size returns the plot size in pixels.
func (c *Chart) Size() (width, height float64) {
	return c.width, c.height
}

// SetSize resizes the plot. Series reproject on the next ApplyChanges.
func (c *Chart) SetSize(width, height float64) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	c.projVersion++
}

// Store returns the chart's geometry store. Every series entry
// registers its geometry here.
func (c *Chart) Store() *geo.Store { return c.store }

// Scene returns the scene the chart's series render into.
func (c *Chart) Scene() *charts.Scene { return c.scene }

// Series returns the chart's series in creation order.
func (c *Chart) Series() []Series { return c.series }

// Project maps a geographic coordinate to plot pixels. ok is false when
// the active projection cannot represent the coordinate; callers leave
// the dependent position untouched in that case.
func (c *Chart) Project(coord geo.Coord) (charts.Point, bool) {
	pt, ok := c.proj.Project(coord)
	if !ok {
		return charts.Point{}, false
	}
	return charts.Pt(pt.X*c.width, pt.Y*c.height), true
}

// Visible reports whether a coordinate lies inside the projection's
// renderable region. Marker clipping builds on this predicate.
func (c *Chart) Visible(coord geo.Coord) bool {
	return c.proj.Visible(coord)
}

// ApplyChanges runs one synchronous frame pass: each series processes
// entries flagged invalid, then recomputes placement for every bound
// marker. Calling it again with unchanged inputs writes the same state.
func (c *Chart) ApplyChanges() {
	for _, s := range c.series {
		s.applyChanges(c)
	}
}

// GeoBounds returns the bounding box over every geometry in the store.
// ok is false when the store is empty. Polygon holes do not widen the
// box.
func (c *Chart) GeoBounds() (min, max geo.Coord, ok bool) {
	for _, g := range c.store.All() {
		for _, co := range g.Coordinates() {
			if !ok {
				min, max = co, co
				ok = true
				continue
			}
			min.Lon = math.Min(min.Lon, co.Lon)
			min.Lat = math.Min(min.Lat, co.Lat)
			max.Lon = math.Max(max.Lon, co.Lon)
			max.Lat = math.Max(max.Lat, co.Lat)
		}
	}
	return min, max, ok
}
