// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/raster"
)

// faceKey identifies a cached rasterization face by font and size.
type faceKey struct {
	font *charts.Font
	size float64
}

// SoftwareRenderer is a CPU-based renderer using the raster package.
//
// It rasterizes each visible scene item in z-order: fills first, then
// strokes, with anti-aliased coverage. Labels are drawn through
// x/image/font; labels without a parsed font fall back to a built-in
// bitmap face. Label rotation is ignored; labels draw axis-aligned.
//
// Multi-ring polygons fill with the even-odd rule so holes render
// regardless of ring winding; all other shapes fill non-zero.
type SoftwareRenderer struct {
	// edges is reused for path-to-edge conversion.
	edges *raster.EdgeList

	// filler is reused for scanline coverage.
	filler *raster.Filler

	// lastWidth and lastHeight track the filler dimensions.
	lastWidth, lastHeight int

	// fonts caches parsed fonts; faces caches sized rasterization faces.
	fonts map[*charts.Font]*opentype.Font
	faces map[faceKey]font.Face
}

// NewSoftwareRenderer creates a new CPU-based software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{
		edges: raster.NewEdgeList(),
		fonts: make(map[*charts.Font]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// Render draws the scene to the target.
//
// Returns an error if the target is GPU-only (no Pixels() support).
func (r *SoftwareRenderer) Render(target RenderTarget, scene *charts.Scene) error {
	if target == nil {
		return errors.New("render: nil target")
	}

	pixels := target.Pixels()
	if pixels == nil {
		return errors.New("render: target does not support CPU rendering")
	}

	if scene == nil || scene.Len() == 0 {
		return nil
	}

	width := target.Width()
	height := target.Height()
	stride := target.Stride()

	r.ensureFiller(width, height)

	for _, it := range scene.Items() {
		sp := it.AsSprite()
		if !sp.Visible() {
			continue
		}

		if lbl, ok := it.(*charts.Label); ok {
			r.drawLabel(target, lbl)
			continue
		}

		path := sp.ScenePath()
		if path.IsEmpty() {
			continue
		}
		style := sp.Style()

		if !style.Fill.IsTransparent() {
			rule := raster.FillRuleNonZero
			if _, multiRing := it.(*charts.Polygon); multiRing {
				rule = raster.FillRuleEvenOdd
			}
			r.fillPath(pixels, stride, path, style.Fill, rule)
		}
		if style.StrokeWidth > 0 && !style.Stroke.IsTransparent() {
			r.strokePath(pixels, stride, path, style.Stroke, style.StrokeWidth)
		}
	}

	return nil
}

// Flush ensures all rendering is complete.
// For the software renderer, this is a no-op as operations are synchronous.
func (r *SoftwareRenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                false,
		SupportsAntialiasing: true,
		SupportsText:         true,
		MaxTextureSize:       0, // No limit
	}
}

// ensureFiller sizes the filler to the target dimensions.
func (r *SoftwareRenderer) ensureFiller(width, height int) {
	if r.filler == nil {
		r.filler = raster.NewFiller(width, height)
		r.lastWidth = width
		r.lastHeight = height
		return
	}
	if r.lastWidth != width || r.lastHeight != height {
		r.filler.Resize(width, height)
		r.lastWidth = width
		r.lastHeight = height
	}
}

// fillPath fills a path with a solid color. The filler clips to the
// dimensions set by ensureFiller.
func (r *SoftwareRenderer) fillPath(pixels []byte, stride int, path *charts.Path, c charts.RGBA, rule raster.FillRule) {
	r.edges.Reset()
	appendPathEdges(r.edges, path)
	if r.edges.IsEmpty() {
		return
	}

	pr, pg, pb, pa := colorBytes(c)

	r.filler.Fill(r.edges, rule, func(y int, coverage []float64) {
		rowOffset := y * stride

		for x, cov := range coverage {
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}

			// Coverage modulates the premultiplied source uniformly.
			m := uint16(math.Round(cov * 255))
			sa := (uint16(pa)*m + 127) / 255
			if sa == 0 {
				continue
			}

			offset := rowOffset + x*4

			if sa == 255 {
				pixels[offset] = pr
				pixels[offset+1] = pg
				pixels[offset+2] = pb
				pixels[offset+3] = pa
				continue
			}

			sr := (uint16(pr)*m + 127) / 255
			sg := (uint16(pg)*m + 127) / 255
			sb := (uint16(pb)*m + 127) / 255

			// Source-over in premultiplied space.
			inv := 255 - sa
			dstR := uint16(pixels[offset])
			dstG := uint16(pixels[offset+1])
			dstB := uint16(pixels[offset+2])
			dstA := uint16(pixels[offset+3])

			//nolint:gosec // G115: arithmetic stays within uint8 range
			pixels[offset] = uint8(sr + (dstR*inv+127)/255)
			//nolint:gosec // G115: arithmetic stays within uint8 range
			pixels[offset+1] = uint8(sg + (dstG*inv+127)/255)
			//nolint:gosec // G115: arithmetic stays within uint8 range
			pixels[offset+2] = uint8(sb + (dstB*inv+127)/255)
			//nolint:gosec // G115: arithmetic stays within uint8 range
			pixels[offset+3] = uint8(sa + (dstA*inv+127)/255)
		}
	})
}

// strokePath strokes a path with a solid color.
//
// Strokes are converted to fills by expanding each segment into a
// rectangle. Caps and joins are not applied; segments are expanded
// independently.
func (r *SoftwareRenderer) strokePath(pixels []byte, stride int, path *charts.Path, c charts.RGBA, strokeWidth float64) {
	expanded := expandStroke(path, strokeWidth)
	if expanded == nil || expanded.IsEmpty() {
		return
	}
	r.fillPath(pixels, stride, expanded, c, raster.FillRuleNonZero)
}

// drawLabel rasterizes a label at its sprite position. The label is
// painted with the sprite fill color.
func (r *SoftwareRenderer) drawLabel(target RenderTarget, lbl *charts.Label) {
	text := lbl.Text()
	style := lbl.Style()
	if text == "" || lbl.FontSize() <= 0 || style.Fill.IsTransparent() {
		return
	}

	face, err := r.face(lbl)
	if err != nil {
		charts.Logger().Debug("render: label face unavailable", "err", err)
		return
	}

	x, y := lbl.Position()
	dx, dy := lbl.Offset()

	d := &font.Drawer{
		Dst:  targetImage(target),
		Src:  image.NewUniform(style.Fill.Color()),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(x + dx),
			Y: floatToFixed(y+dy) + face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
}

// face resolves the rasterization face for a label, caching parsed
// fonts and sized faces. Labels without a font use a built-in bitmap
// face.
func (r *SoftwareRenderer) face(lbl *charts.Label) (font.Face, error) {
	f := lbl.Font()
	if f == nil {
		return basicfont.Face7x13, nil
	}

	key := faceKey{font: f, size: lbl.FontSize()}
	if face, ok := r.faces[key]; ok {
		return face, nil
	}

	parsed, ok := r.fonts[f]
	if !ok {
		var err error
		parsed, err = opentype.Parse(f.Data())
		if err != nil {
			return nil, fmt.Errorf("render: parse font: %w", err)
		}
		r.fonts[f] = parsed
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    lbl.FontSize(),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create face: %w", err)
	}
	r.faces[key] = face
	return face, nil
}

// appendPathEdges converts a path into fill edges. Subpaths are
// implicitly closed: filling treats every subpath as a closed loop.
func appendPathEdges(el *raster.EdgeList, path *charts.Path) {
	var cur, start charts.Point
	open := false

	for elem := range path.Elements() {
		switch elem.Verb {
		case charts.VerbMoveTo:
			if open && cur != start {
				el.AddLine(cur.X, cur.Y, start.X, start.Y)
			}
			start = elem.Points[0]
			cur = start
			open = true

		case charts.VerbLineTo:
			pt := elem.Points[0]
			el.AddLine(cur.X, cur.Y, pt.X, pt.Y)
			cur = pt

		case charts.VerbQuadTo:
			ctrl, pt := elem.Points[0], elem.Points[1]
			el.AddQuad(cur.X, cur.Y, ctrl.X, ctrl.Y, pt.X, pt.Y)
			cur = pt

		case charts.VerbCubicTo:
			c1, c2, pt := elem.Points[0], elem.Points[1], elem.Points[2]
			el.AddCubic(cur.X, cur.Y, c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
			cur = pt

		case charts.VerbClose:
			if open && cur != start {
				el.AddLine(cur.X, cur.Y, start.X, start.Y)
			}
			cur = start
		}
	}

	if open && cur != start {
		el.AddLine(cur.X, cur.Y, start.X, start.Y)
	}
}

// expandStroke creates a filled path from a stroked path. Each segment
// becomes a rectangle; curves are simplified to their endpoint chord.
func expandStroke(path *charts.Path, width float64) *charts.Path {
	if path.IsEmpty() || width <= 0 {
		return nil
	}

	halfWidth := width / 2
	expanded := charts.NewPath()

	var cur, start charts.Point

	for elem := range path.Elements() {
		switch elem.Verb {
		case charts.VerbMoveTo:
			start = elem.Points[0]
			cur = start

		case charts.VerbLineTo:
			addLineStroke(expanded, cur, elem.Points[0], halfWidth)
			cur = elem.Points[0]

		case charts.VerbQuadTo:
			addLineStroke(expanded, cur, elem.Points[1], halfWidth)
			cur = elem.Points[1]

		case charts.VerbCubicTo:
			addLineStroke(expanded, cur, elem.Points[2], halfWidth)
			cur = elem.Points[2]

		case charts.VerbClose:
			addLineStroke(expanded, cur, start, halfWidth)
			cur = start
		}
	}

	return expanded
}

// addLineStroke adds a stroked line segment as a rectangle.
func addLineStroke(path *charts.Path, p0, p1 charts.Point, halfWidth float64) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return // Degenerate segment
	}

	// Perpendicular vector (normalized and scaled by half width)
	px := -dy / length * halfWidth
	py := dx / length * halfWidth

	path.MoveTo(p0.X+px, p0.Y+py).
		LineTo(p1.X+px, p1.Y+py).
		LineTo(p1.X-px, p1.Y-py).
		LineTo(p0.X-px, p0.Y-py).
		Close()
}

// colorBytes converts a color to premultiplied 8-bit channels.
func colorBytes(c charts.RGBA) (pr, pg, pb, pa uint8) {
	r16, g16, b16, a16 := c.RGBA()
	//nolint:gosec // G115: shift keeps values within uint8 range
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}

// targetImage wraps the target's pixel buffer as an *image.RGBA without
// copying.
func targetImage(target RenderTarget) *image.RGBA {
	if pt, ok := target.(*PixmapTarget); ok {
		return pt.Image()
	}
	return &image.RGBA{
		Pix:    target.Pixels(),
		Stride: target.Stride(),
		Rect:   image.Rect(0, 0, target.Width(), target.Height()),
	}
}

// floatToFixed converts a float64 to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// Ensure SoftwareRenderer implements Renderer and CapableRenderer.
var (
	_ Renderer        = (*SoftwareRenderer)(nil)
	_ CapableRenderer = (*SoftwareRenderer)(nil)
)
