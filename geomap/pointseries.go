package geomap

import (
	"slices"

	"github.com/gogpu/charts/geo"
)

// Float returns a pointer to v. Convenient for PointData's optional
// fields.
func Float(v float64) *float64 { return &v }

// PointData is the raw input for one point entry. Optional scalar
// fields are pointers so that absent and zero stay distinct; placement
// fallbacks depend on the difference.
type PointData struct {
	// ID identifies the entry for lookups. Optional.
	ID string

	// Geometry is the authoritative shape. When nil, a point geometry
	// is synthesized from Longitude and Latitude, with absent scalars
	// treated as 0.
	Geometry geo.Geometry

	// Longitude and Latitude place the entry directly when no line or
	// polygon attachment resolves.
	Longitude *float64
	Latitude  *float64

	// LineID attaches the entry to a line entry in a sibling series.
	LineID string
	// PositionOnLine is the fractional position along the attached
	// line, 0 through 1.
	PositionOnLine *float64
	// AutoRotate aligns markers with the line's local bearing at
	// PositionOnLine.
	AutoRotate bool

	// PolygonID attaches the entry to a polygon entry in a sibling
	// series; markers sit at the polygon's visual centroid.
	PolygonID string
}

// PointItem is one processed point entry. Resolution caches and bound
// markers live here; the raw data stays as pushed until a setter
// changes it.
type PointItem struct {
	series *PointSeries
	data   PointData

	// geometry is authoritative for marker binding and the final
	// placement fallback. Synthesized when the data carries none.
	geometry geo.Geometry

	// Resolution caches. Populated at most once unless explicitly
	// cleared; placement reuses them without re-scanning sibling
	// series.
	lineRef     *LineItem
	lineGeom    *geo.LineString
	polygonRef  *PolygonItem
	polygonGeom *geo.Polygon

	// autoRotateAngle is the cached screen-space bearing, meaningful
	// only while hasAngle is set.
	autoRotateAngle float64
	hasAngle        bool

	markers []*Marker

	// invalid flags the entry for reprocessing (geometry synthesis and
	// marker rebind) on the next pass.
	invalid bool
}

// Data returns the entry's current raw fields.
func (it *PointItem) Data() PointData { return it.data }

// Geometry returns the entry's authoritative geometry.
func (it *PointItem) Geometry() geo.Geometry { return it.geometry }

// Markers returns the bound markers in binding order.
func (it *PointItem) Markers() []*Marker { return it.markers }

// LineRef returns the resolved line attachment, or nil before
// resolution.
func (it *PointItem) LineRef() *LineItem { return it.lineRef }

// PolygonRef returns the resolved polygon attachment, or nil before
// resolution.
func (it *PointItem) PolygonRef() *PolygonItem { return it.polygonRef }

// AutoRotateAngle returns the cached screen-space bearing and whether
// one has been computed.
func (it *PointItem) AutoRotateAngle() (float64, bool) {
	return it.autoRotateAngle, it.hasAngle
}

// SetLongitude sets the direct longitude. Placement picks it up on the
// next pass.
func (it *PointItem) SetLongitude(lon float64) {
	it.data.Longitude = &lon
}

// SetLatitude sets the direct latitude. Placement picks it up on the
// next pass.
func (it *PointItem) SetLatitude(lat float64) {
	it.data.Latitude = &lat
}

// SetPositionOnLine moves the entry along its attached line.
func (it *PointItem) SetPositionOnLine(fraction float64) {
	it.data.PositionOnLine = &fraction
}

// SetAutoRotate toggles bearing alignment for line-attached entries.
// Turning it off drops the cached bearing.
func (it *PointItem) SetAutoRotate(rotate bool) {
	it.data.AutoRotate = rotate
	if !rotate {
		it.hasAngle = false
	}
}

// SetLineID re-targets the line attachment and clears the cached
// reference so the next pass resolves the new identifier.
func (it *PointItem) SetLineID(id string) {
	it.data.LineID = id
	it.lineRef = nil
	it.lineGeom = nil
	it.hasAngle = false
}

// SetPolygonID re-targets the polygon attachment and clears the cached
// reference.
func (it *PointItem) SetPolygonID(id string) {
	it.data.PolygonID = id
	it.polygonRef = nil
	it.polygonGeom = nil
}

// SetGeometry replaces the entry's geometry and flags it for
// reprocessing; marker cardinality follows the geometry.
func (it *PointItem) SetGeometry(g geo.Geometry) {
	it.data.Geometry = g
	it.invalid = true
}

// Invalidate flags the entry for full reprocessing: cached references
// and the cached bearing clear, and markers rebind on the next pass.
func (it *PointItem) Invalidate() {
	it.lineRef, it.lineGeom = nil, nil
	it.polygonRef, it.polygonGeom = nil, nil
	it.hasAngle = false
	it.invalid = true
}

// PointSeries binds point entries to visual markers and keeps the
// markers placed under the chart's projection. Entries may sit at
// explicit coordinates, attach to sibling line or polygon entries by
// identifier, or carry point or multi-point geometry.
type PointSeries struct {
	chart     *Chart
	items     []*PointItem
	index     map[string]*PointItem
	factories []MarkerFactory

	// clipFront hides markers inside the renderable region; clipBack
	// hides markers outside it, which keeps far-side markers of
	// globe-like projections off screen.
	clipFront bool
	clipBack  bool
}

// NewPointSeries creates a point series on the chart. Back clipping
// starts enabled.
func (c *Chart) NewPointSeries() *PointSeries {
	s := &PointSeries{
		chart:    c,
		index:    make(map[string]*PointItem),
		clipBack: true,
	}
	c.series = append(c.series, s)
	return s
}

// AddMarkerFactory registers a marker template. Every entry binds one
// marker per factory per geometry coordinate. Existing entries rebind
// on the next pass.
func (s *PointSeries) AddMarkerFactory(f MarkerFactory) {
	if f == nil {
		return
	}
	s.factories = append(s.factories, f)
	for _, it := range s.items {
		it.invalid = true
	}
}

// Push ingests one entry. The entry is processed immediately: geometry
// (synthesized when the data carries none) registers with the chart's
// store and markers bind. Placement happens on the next ApplyChanges.
// When two entries share an identifier, the one pushed first wins
// lookups.
func (s *PointSeries) Push(data PointData) *PointItem {
	it := &PointItem{series: s, data: data}
	s.items = append(s.items, it)
	if data.ID != "" {
		if _, exists := s.index[data.ID]; !exists {
			s.index[data.ID] = it
		}
	}
	s.process(s.chart, it)
	return it
}

// Remove destroys an entry: its geometry leaves the store and its
// markers leave the scene.
func (s *PointSeries) Remove(it *PointItem) {
	i := slices.Index(s.items, it)
	if i < 0 {
		return
	}
	s.items = slices.Delete(s.items, i, i+1)
	if it.data.ID != "" && s.index[it.data.ID] == it {
		delete(s.index, it.data.ID)
		for _, other := range s.items {
			if other.data.ID == it.data.ID {
				s.index[it.data.ID] = other
				break
			}
		}
	}
	if it.geometry != nil {
		s.chart.store.Remove(it.geometry)
		it.geometry = nil
	}
	s.unbind(it)
}

// ItemByID returns the entry with the identifier, or nil.
func (s *PointSeries) ItemByID(id string) *PointItem {
	if id == "" {
		return nil
	}
	return s.index[id]
}

// Items returns the entries in insertion order.
func (s *PointSeries) Items() []*PointItem { return s.items }

// SetClipFront hides markers that fall inside the renderable region.
// Off by default.
func (s *PointSeries) SetClipFront(clip bool) { s.clipFront = clip }

// ClipFront reports whether front clipping is enabled.
func (s *PointSeries) ClipFront() bool { return s.clipFront }

// SetClipBack hides markers that fall outside the renderable region.
// On by default.
func (s *PointSeries) SetClipBack(clip bool) { s.clipBack = clip }

// ClipBack reports whether back clipping is enabled.
func (s *PointSeries) ClipBack() bool { return s.clipBack }

func (s *PointSeries) applyChanges(c *Chart) {
	for _, it := range s.items {
		if it.invalid {
			s.process(c, it)
		}
		for _, m := range it.markers {
			s.place(c, it, m)
		}
	}
}

// process installs the entry's authoritative geometry and rebinds its
// markers. Any previously installed geometry leaves the store first, so
// reprocessing never leaks store entries.
func (s *PointSeries) process(c *Chart, it *PointItem) {
	if it.geometry != nil {
		c.store.Remove(it.geometry)
		it.geometry = nil
	}
	it.hasAngle = false
	s.unbind(it)

	it.geometry = it.data.Geometry
	if it.geometry == nil {
		var lon, lat float64
		if it.data.Longitude != nil {
			lon = *it.data.Longitude
		}
		if it.data.Latitude != nil {
			lat = *it.data.Latitude
		}
		it.geometry = geo.NewPoint(lon, lat)
	}
	c.store.Add(it.geometry)
	s.bind(it)
	it.invalid = false
}

// bind creates the entry's marker set. A point geometry binds one
// marker per factory. Any other geometry takes the multi-point path,
// one marker per coordinate per factory, each marker recording its
// coordinate index. Line or polygon geometry pushed into a point series
// therefore grows a marker per vertex.
func (s *PointSeries) bind(it *PointItem) {
	if it.geometry == nil || len(s.factories) == 0 {
		return
	}
	if it.geometry.Kind() == geo.KindPoint {
		for _, f := range s.factories {
			s.addMarker(it, f, 0)
		}
		return
	}
	for i := range it.geometry.Coordinates() {
		for _, f := range s.factories {
			s.addMarker(it, f, i)
		}
	}
}

func (s *PointSeries) addMarker(it *PointItem, f MarkerFactory, index int) {
	item := f()
	if item == nil {
		return
	}
	s.chart.scene.Add(item)
	it.markers = append(it.markers, &Marker{item: item, index: index})
}

func (s *PointSeries) unbind(it *PointItem) {
	for _, m := range it.markers {
		s.chart.scene.Remove(m.item)
	}
	it.markers = nil
}
