// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/charts"
)

// WriteSVG serializes the scene's visible items as an SVG document.
//
// Shape paths are emitted in scene coordinates with fills and strokes
// from the sprite style. Labels become <text> elements; their anchor
// fractions snap to the nearest SVG text-anchor and dominant-baseline.
//
// The first write error aborts serialization and is returned.
func WriteSVG(w io.Writer, scene *charts.Scene, width, height int) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)

	if scene != nil {
		for _, it := range scene.Items() {
			sp := it.AsSprite()
			if !sp.Visible() {
				continue
			}

			if lbl, ok := it.(*charts.Label); ok {
				writeSVGLabel(canvas, lbl)
				continue
			}
			writeSVGPath(canvas, it)

			if ew.err != nil {
				return ew.err
			}
		}
	}

	canvas.End()
	return ew.err
}

// writeSVGPath emits one shape as a <path> element.
func writeSVGPath(canvas *svg.SVG, it charts.Item) {
	sp := it.AsSprite()
	path := sp.ScenePath()
	if path.IsEmpty() {
		return
	}

	attrs := make([]string, 0, 4)
	style := sp.Style()

	if style.Fill.IsTransparent() {
		attrs = append(attrs, `fill="none"`)
	} else {
		attrs = append(attrs, fmt.Sprintf(`fill="%s"`, svgHex(style.Fill)))
		if style.Fill.A < 1 {
			attrs = append(attrs, fmt.Sprintf(`fill-opacity="%.3g"`, style.Fill.A))
		}
		if _, multiRing := it.(*charts.Polygon); multiRing {
			attrs = append(attrs, `fill-rule="evenodd"`)
		}
	}

	if style.StrokeWidth > 0 && !style.Stroke.IsTransparent() {
		attrs = append(attrs,
			fmt.Sprintf(`stroke="%s"`, svgHex(style.Stroke)),
			fmt.Sprintf(`stroke-width="%g"`, style.StrokeWidth),
		)
		if style.Stroke.A < 1 {
			attrs = append(attrs, fmt.Sprintf(`stroke-opacity="%.3g"`, style.Stroke.A))
		}
	}

	canvas.Path(svgPathData(path), attrs...)
}

// writeSVGLabel emits one label as a <text> element wrapped in a
// translate/rotate transform.
func writeSVGLabel(canvas *svg.SVG, lbl *charts.Label) {
	text := lbl.Text()
	style := lbl.Style()
	if text == "" || lbl.FontSize() <= 0 || style.Fill.IsTransparent() {
		return
	}

	x, y := lbl.Position()
	transform := fmt.Sprintf("translate(%g,%g)", x, y)
	if angle := lbl.Rotation(); angle != 0 {
		transform += fmt.Sprintf(" rotate(%g)", angle*180/math.Pi)
	}

	ax, ay := lbl.Anchor()
	attrs := []string{
		fmt.Sprintf(`fill="%s"`, svgHex(style.Fill)),
		fmt.Sprintf(`font-size="%gpx"`, lbl.FontSize()),
		`font-family="sans-serif"`,
		fmt.Sprintf(`text-anchor="%s"`, svgTextAnchor(ax)),
		fmt.Sprintf(`dominant-baseline="%s"`, svgBaseline(ay)),
	}
	if style.Fill.A < 1 {
		attrs = append(attrs, fmt.Sprintf(`fill-opacity="%.3g"`, style.Fill.A))
	}

	canvas.Gtransform(transform)
	canvas.Text(0, 0, text, attrs...)
	canvas.Gend()
}

// svgPathData renders a path as SVG path data.
func svgPathData(path *charts.Path) string {
	var b strings.Builder

	for elem := range path.Elements() {
		switch elem.Verb {
		case charts.VerbMoveTo:
			fmt.Fprintf(&b, "M%g %g", elem.Points[0].X, elem.Points[0].Y)
		case charts.VerbLineTo:
			fmt.Fprintf(&b, "L%g %g", elem.Points[0].X, elem.Points[0].Y)
		case charts.VerbQuadTo:
			fmt.Fprintf(&b, "Q%g %g %g %g",
				elem.Points[0].X, elem.Points[0].Y,
				elem.Points[1].X, elem.Points[1].Y)
		case charts.VerbCubicTo:
			fmt.Fprintf(&b, "C%g %g %g %g %g %g",
				elem.Points[0].X, elem.Points[0].Y,
				elem.Points[1].X, elem.Points[1].Y,
				elem.Points[2].X, elem.Points[2].Y)
		case charts.VerbClose:
			b.WriteString("Z")
		}
	}

	return b.String()
}

// svgHex formats a color as #rrggbb, dropping alpha (emitted separately
// as an opacity attribute).
func svgHex(c charts.RGBA) string {
	n := c.Color().(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// svgTextAnchor snaps an anchor fraction to an SVG text-anchor value.
func svgTextAnchor(ax float64) string {
	switch {
	case ax < 0.25:
		return "start"
	case ax < 0.75:
		return "middle"
	default:
		return "end"
	}
}

// svgBaseline snaps an anchor fraction to an SVG dominant-baseline value.
func svgBaseline(ay float64) string {
	switch {
	case ay < 0.25:
		return "hanging"
	case ay < 0.75:
		return "central"
	default:
		return "auto"
	}
}

// errWriter captures the first write error so serialization can abort.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
