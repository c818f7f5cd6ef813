package geomap

// Series is one layer of map data: polygons, lines, or point markers.
// Implementations live in this package and are created through the
// Chart's constructor methods.
type Series interface {
	// applyChanges processes entries flagged invalid and recomputes
	// projection-dependent sprite state. The chart context is passed
	// explicitly; series never reach for ambient state.
	applyChanges(c *Chart)
}

// LineLookup is the capability identifier resolution needs from a
// series holding line entries. Series without it are skipped during
// resolution, so an identifier naming an entry of the wrong type is
// ignored rather than an error.
type LineLookup interface {
	// LineByID returns the entry with the given identifier, or nil.
	LineByID(id string) *LineItem
}

// PolygonLookup is the capability counterpart for polygon entries.
type PolygonLookup interface {
	// PolygonByID returns the entry with the given identifier, or nil.
	PolygonByID(id string) *PolygonItem
}
