package geomap

import (
	"github.com/gogpu/charts"
	"github.com/gogpu/charts/geo"
)

// bearingEpsilon is the fraction offset used to sample a line's local
// direction for auto-rotated markers.
const bearingEpsilon = 0.002

// resolveLine returns the entry's line attachment. A cached reference
// wins without touching the chart. Otherwise the chart's series are
// scanned in creation order and the first entry matching the identifier
// is cached together with its geometry. Series without line entries are
// skipped; an identifier that matches nothing stays unresolved and is
// retried on the next pass.
func resolveLine(c *Chart, it *PointItem) *LineItem {
	if it.lineRef != nil {
		return it.lineRef
	}
	if it.data.LineID == "" {
		return nil
	}
	c.scans++
	for _, s := range c.series {
		lookup, ok := s.(LineLookup)
		if !ok {
			continue
		}
		if ref := lookup.LineByID(it.data.LineID); ref != nil {
			it.lineRef = ref
			it.lineGeom = ref.Geometry()
			return ref
		}
	}
	charts.Logger().Debug("geomap: line id unresolved", "id", it.data.LineID)
	return nil
}

// resolvePolygon is the polygon counterpart of resolveLine.
func resolvePolygon(c *Chart, it *PointItem) *PolygonItem {
	if it.polygonRef != nil {
		return it.polygonRef
	}
	if it.data.PolygonID == "" {
		return nil
	}
	c.scans++
	for _, s := range c.series {
		lookup, ok := s.(PolygonLookup)
		if !ok {
			continue
		}
		if ref := lookup.PolygonByID(it.data.PolygonID); ref != nil {
			it.polygonRef = ref
			it.polygonGeom = ref.Geometry()
			return ref
		}
	}
	charts.Logger().Debug("geomap: polygon id unresolved", "id", it.data.PolygonID)
	return nil
}

// place computes and writes one marker's screen position, visibility,
// and rotation. Every anchor branch funnels into this single write, so
// the marker's final state has one source of truth. Without an anchor
// the marker is left exactly as the previous pass placed it.
func (s *PointSeries) place(c *Chart, it *PointItem, m *Marker) {
	coord, ok := s.anchor(c, it, m)
	if !ok {
		return
	}
	sp := m.item.AsSprite()
	if pt, hit := c.Project(coord); hit {
		sp.SetPosition(pt.X, pt.Y)
	}
	inside := c.Visible(coord)
	switch {
	case inside && s.clipFront:
		sp.SetVisible(false)
	case !inside && s.clipBack:
		sp.SetVisible(false)
	default:
		sp.SetVisible(true)
	}
	if it.data.AutoRotate {
		sp.SetRotation(it.autoRotateAngle)
	}
}

// anchor picks the geographic coordinate the marker sits at, in strict
// fallback order: resolved polygon centroid, then position along a
// resolved line, then explicit longitude/latitude, then the entry's
// stored geometry at the marker's coordinate index.
func (s *PointSeries) anchor(c *Chart, it *PointItem, m *Marker) (geo.Coord, bool) {
	if resolvePolygon(c, it) != nil {
		return it.polygonGeom.VisualCentroid(), true
	}
	if resolveLine(c, it) != nil && it.data.PositionOnLine != nil {
		fraction := *it.data.PositionOnLine
		if it.data.AutoRotate {
			s.cacheBearing(c, it, fraction)
		}
		return it.lineGeom.PositionToPoint(fraction), true
	}
	if it.data.Longitude != nil && it.data.Latitude != nil {
		return geo.Coord{Lon: *it.data.Longitude, Lat: *it.data.Latitude}, true
	}
	return geometryCoord(it.geometry, m.index)
}

// cacheBearing samples the attached line slightly before and after the
// fraction, projects both samples, and caches the screen-space bearing
// for the final placement write.
func (s *PointSeries) cacheBearing(c *Chart, it *PointItem, fraction float64) {
	before, okB := c.Project(it.lineGeom.PositionToPoint(fraction - bearingEpsilon))
	after, okA := c.Project(it.lineGeom.PositionToPoint(fraction + bearingEpsilon))
	if !okB || !okA {
		return
	}
	it.autoRotateAngle = before.Bearing(after)
	it.hasAngle = true
}

// geometryCoord resolves the stored-geometry fallback: a point's single
// coordinate, or the coordinate recorded for the marker at binding
// time. Indices outside the coordinate list yield no anchor.
func geometryCoord(g geo.Geometry, index int) (geo.Coord, bool) {
	if g == nil {
		return geo.Coord{}, false
	}
	coords := g.Coordinates()
	if g.Kind() == geo.KindPoint {
		if len(coords) == 0 {
			return geo.Coord{}, false
		}
		return coords[0], true
	}
	if index < 0 || index >= len(coords) {
		return geo.Coord{}, false
	}
	return coords[index], true
}
