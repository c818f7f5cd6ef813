package geomap

import (
	"slices"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/geo"
)

// PolygonSeries renders geographic polygons and exposes its entries to
// identifier resolution, so point entries can anchor to a polygon's
// visual centroid.
type PolygonSeries struct {
	chart *Chart
	items []*PolygonItem
	index map[string]*PolygonItem
	style charts.Style

	dirty    bool
	projSeen uint64
}

// NewPolygonSeries creates a polygon series on the chart.
func (c *Chart) NewPolygonSeries() *PolygonSeries {
	s := &PolygonSeries{chart: c, index: make(map[string]*PolygonItem)}
	c.series = append(c.series, s)
	return s
}

// PolygonItem is one polygon entry: an identifier, the geographic
// polygon, and the sprite the series keeps projected.
type PolygonItem struct {
	id      string
	polygon *geo.Polygon
	sprite  *charts.Polygon
}

// ID returns the entry identifier.
func (pi *PolygonItem) ID() string { return pi.id }

// Geometry returns the underlying polygon.
func (pi *PolygonItem) Geometry() *geo.Polygon { return pi.polygon }

// Sprite returns the projected polygon rendered for this entry.
func (pi *PolygonItem) Sprite() *charts.Polygon { return pi.sprite }

// VisualCentroid returns the polygon's area-weighted centroid, the
// anchor used for markers attached to this entry.
func (pi *PolygonItem) VisualCentroid() geo.Coord {
	return pi.polygon.VisualCentroid()
}

// Push adds a polygon entry. The geometry registers with the chart's
// store. A nil polygon is ignored and returns nil. When two entries
// share an identifier, the one pushed first wins lookups.
func (s *PolygonSeries) Push(id string, polygon *geo.Polygon) *PolygonItem {
	if polygon == nil {
		return nil
	}
	it := &PolygonItem{id: id, polygon: polygon, sprite: charts.NewPolygon()}
	it.sprite.SetStyle(s.style)
	s.items = append(s.items, it)
	if id != "" {
		if _, exists := s.index[id]; !exists {
			s.index[id] = it
		}
	}
	s.chart.store.Add(polygon)
	s.chart.scene.Add(it.sprite)
	s.dirty = true
	return it
}

// Remove deletes an entry, its geometry, and its sprite. When the entry
// shadowed another with the same identifier, the next one pushed takes
// over lookups.
func (s *PolygonSeries) Remove(it *PolygonItem) {
	i := slices.Index(s.items, it)
	if i < 0 {
		return
	}
	s.items = slices.Delete(s.items, i, i+1)
	if it.id != "" && s.index[it.id] == it {
		delete(s.index, it.id)
		for _, other := range s.items {
			if other.id == it.id {
				s.index[it.id] = other
				break
			}
		}
	}
	s.chart.store.Remove(it.polygon)
	s.chart.scene.Remove(it.sprite)
}

// PolygonByID returns the entry with the identifier, or nil.
func (s *PolygonSeries) PolygonByID(id string) *PolygonItem {
	if id == "" {
		return nil
	}
	return s.index[id]
}

// Items returns the entries in insertion order.
func (s *PolygonSeries) Items() []*PolygonItem { return s.items }

// SetStyle sets the style applied to entry sprites, existing and
// future.
func (s *PolygonSeries) SetStyle(st charts.Style) {
	s.style = st
	for _, it := range s.items {
		it.sprite.SetStyle(st)
	}
}

// Style returns the series style.
func (s *PolygonSeries) Style() charts.Style { return s.style }

func (s *PolygonSeries) applyChanges(c *Chart) {
	if !s.dirty && s.projSeen == c.projVersion {
		return
	}
	for _, it := range s.items {
		rings := make([][]charts.Point, 0, len(it.polygon.Rings))
		for _, ring := range it.polygon.Rings {
			pts := make([]charts.Point, 0, len(ring))
			for _, co := range ring {
				if pt, ok := c.Project(co); ok {
					pts = append(pts, pt)
				}
			}
			rings = append(rings, pts)
		}
		it.sprite.SetRings(rings...)
	}
	s.dirty = false
	s.projSeen = c.projVersion
}
