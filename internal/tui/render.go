package tui

import (
	"strings"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/candle"
	"github.com/gogpu/charts/geo"
	"github.com/gogpu/charts/geomap"
	"github.com/gogpu/charts/projection"
	"github.com/gogpu/charts/render"
)

// renderChart rasterizes the loaded chart into a w by h cell braille
// canvas. The scene lays out at the zoomed size; the braille buffer
// reads back a centered window shifted by the pan offsets.
func (m Model) renderChart(w, h int) string {
	if m.kind == kindNone {
		return dimStyle.Render("  no data loaded · Tab opens the file list")
	}

	pxW, pxH := w*2, h*4
	targetW := max(1, int(float64(pxW)*m.zoom))
	targetH := max(1, int(float64(pxH)*m.zoom))

	scene := m.buildScene(float64(targetW), float64(targetH))
	if scene == nil {
		return dimStyle.Render("  nothing to draw")
	}

	target := render.NewPixmapTarget(targetW, targetH)
	if err := m.renderer.Render(target, scene); err != nil {
		return dimStyle.Render("  render error: " + err.Error())
	}

	br := newBrailleBuf(w, h)
	originX := (targetW-pxW)/2 + m.offsetX*2
	originY := (targetH-pxH)/2 + m.offsetY*4
	br.fromPixmap(target, originX, originY)
	return strings.Join(br.toLines(), "\n")
}

// buildScene assembles a preview scene at the given pixel size. Braille
// conversion only reads alpha, so sprites use plain white paint.
func (m Model) buildScene(w, h float64) *charts.Scene {
	switch m.kind {
	case kindCandles:
		scene := charts.NewScene()
		series := candle.NewSeries(scene)
		series.SetBars(m.bars)
		series.Layout(charts.NewRect(0, 0, w, h).Inset(2))
		return scene

	case kindGeomap:
		chart := geomap.NewChart(m.projection(), w, h)

		polys := chart.NewPolygonSeries()
		polys.SetStyle(charts.Style{Fill: charts.White, Stroke: charts.White, StrokeWidth: 1})
		lines := chart.NewLineSeries()
		lines.SetStyle(charts.Style{Stroke: charts.White, StrokeWidth: 1.5})
		points := chart.NewPointSeries()
		points.AddMarkerFactory(func() charts.Item {
			dot := charts.NewCircle(2.5)
			dot.SetStyle(charts.Style{Fill: charts.White})
			return dot
		})

		for _, f := range m.features {
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
		return chart.Scene()
	}
	return nil
}

// projection returns the active preview projection. The orthographic
// view centers on the loaded data.
func (m Model) projection() projection.Projection {
	switch m.projIndex % 3 {
	case 1:
		return projection.NewMercator()
	case 2:
		return projection.NewOrthographic(m.centerLon, m.centerLat)
	default:
		return projection.NewEquirectangular()
	}
}

// projName names the active preview projection for the status line.
func (m Model) projName() string {
	switch m.projIndex % 3 {
	case 1:
		return "mercator"
	case 2:
		return "orthographic"
	default:
		return "equirectangular"
	}
}
