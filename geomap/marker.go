package geomap

import "github.com/gogpu/charts"

// MarkerFactory produces one visual marker per invocation. Factories
// registered on a point series act as templates: every entry binds one
// marker per factory, or one per coordinate for multi-coordinate
// geometry.
type MarkerFactory func() charts.Item

// Marker binds one visual item to a point-series entry. For
// multi-coordinate geometry the marker records which coordinate it was
// created for; placement reads the index back when no higher-priority
// anchor applies.
type Marker struct {
	item  charts.Item
	index int
}

// Item returns the bound visual.
func (m *Marker) Item() charts.Item { return m.item }

// Index returns the coordinate index this marker was created for.
// Markers of single-point entries use index 0.
func (m *Marker) Index() int { return m.index }
