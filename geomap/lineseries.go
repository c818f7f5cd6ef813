package geomap

import (
	"slices"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/geo"
)

// LineSeries renders geographic lines and exposes its entries to
// identifier resolution, so point entries can anchor to a line.
type LineSeries struct {
	chart *Chart
	items []*LineItem
	index map[string]*LineItem
	style charts.Style

	dirty    bool
	projSeen uint64
}

// NewLineSeries creates a line series on the chart.
func (c *Chart) NewLineSeries() *LineSeries {
	s := &LineSeries{chart: c, index: make(map[string]*LineItem)}
	c.series = append(c.series, s)
	return s
}

// LineItem is one line entry: an identifier, the geographic line, and
// the sprite the series keeps projected.
type LineItem struct {
	id     string
	line   *geo.LineString
	sprite *charts.Polyline
}

// ID returns the entry identifier.
func (li *LineItem) ID() string { return li.id }

// Geometry returns the underlying line.
func (li *LineItem) Geometry() *geo.LineString { return li.line }

// Sprite returns the projected polyline rendered for this entry.
func (li *LineItem) Sprite() *charts.Polyline { return li.sprite }

// PositionToGeoPoint returns the geographic point the given fraction of
// the way along the line, 0 at the first vertex and 1 at the last.
func (li *LineItem) PositionToGeoPoint(fraction float64) geo.Coord {
	return li.line.PositionToPoint(fraction)
}

// Push adds a line entry. The geometry registers with the chart's
// store. A nil line is ignored and returns nil. When two entries share
// an identifier, the one pushed first wins lookups.
func (s *LineSeries) Push(id string, line *geo.LineString) *LineItem {
	if line == nil {
		return nil
	}
	it := &LineItem{id: id, line: line, sprite: charts.NewPolyline()}
	it.sprite.SetStyle(s.style)
	s.items = append(s.items, it)
	if id != "" {
		if _, exists := s.index[id]; !exists {
			s.index[id] = it
		}
	}
	s.chart.store.Add(line)
	s.chart.scene.Add(it.sprite)
	s.dirty = true
	return it
}

// Remove deletes an entry, its geometry, and its sprite. When the entry
// shadowed another with the same identifier, the next one pushed takes
// over lookups.
func (s *LineSeries) Remove(it *LineItem) {
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
	s.chart.store.Remove(it.line)
	s.chart.scene.Remove(it.sprite)
}

// LineByID returns the entry with the identifier, or nil.
func (s *LineSeries) LineByID(id string) *LineItem {
	if id == "" {
		return nil
	}
	return s.index[id]
}

// Items returns the entries in insertion order.
func (s *LineSeries) Items() []*LineItem { return s.items }

// SetStyle sets the style applied to entry sprites, existing and
// future.
func (s *LineSeries) SetStyle(st charts.Style) {
	s.style = st
	for _, it := range s.items {
		it.sprite.SetStyle(st)
	}
}

// Style returns the series style.
func (s *LineSeries) Style() charts.Style { return s.style }

func (s *LineSeries) applyChanges(c *Chart) {
	if !s.dirty && s.projSeen == c.projVersion {
		return
	}
	for _, it := range s.items {
		pts := make([]charts.Point, 0, len(it.line.Coords))
		for _, co := range it.line.Coords {
			if pt, ok := c.Project(co); ok {
				pts = append(pts, pt)
			}
		}
		it.sprite.SetPoints(pts...)
	}
	s.dirty = false
	s.projSeen = c.projVersion
}
