// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"slices"

	"github.com/gogpu/gputypes"
)

// LayeredTarget is a render target with z-ordered overlay layers.
//
// Charts draw the plot once to the base and put tooltips, crosshairs,
// and legend overlays on separate layers, so pointer-driven overlays
// repaint without re-rendering the scene. Layers composite in ascending
// z-order (lower z values behind higher ones).
type LayeredTarget interface {
	RenderTarget

	// CreateLayer creates a new layer at the specified z-order.
	// Higher z values composite on top of lower values.
	// Returns an error if a layer with the same z-order already exists.
	CreateLayer(z int) (RenderTarget, error)

	// RemoveLayer removes a layer by z-order.
	// Returns an error if the layer does not exist.
	RemoveLayer(z int) error

	// SetLayerVisible controls layer visibility without removing it.
	// Invisible layers are not composited but retain their content.
	SetLayerVisible(z int, visible bool)

	// Layers returns all layer z-orders in composite order (ascending).
	Layers() []int

	// Composite blends all visible layers onto the base target.
	// Call after drawing to layers is complete.
	Composite()
}

// overlay is a single compositing layer.
type overlay struct {
	target  *PixmapTarget
	visible bool
}

// LayeredPixmapTarget is a CPU-backed LayeredTarget. The base and every
// layer are PixmapTargets of the same dimensions.
type LayeredPixmapTarget struct {
	base   *PixmapTarget
	layers map[int]*overlay
	zOrder []int // cached sorted z-orders, nil after structural change
	width  int
	height int
}

// NewLayeredPixmapTarget creates a new layered CPU render target.
func NewLayeredPixmapTarget(width, height int) *LayeredPixmapTarget {
	return &LayeredPixmapTarget{
		base:   NewPixmapTarget(width, height),
		layers: make(map[int]*overlay),
		width:  width,
		height: height,
	}
}

// Width returns the target width in pixels.
func (t *LayeredPixmapTarget) Width() int {
	return t.width
}

// Height returns the target height in pixels.
func (t *LayeredPixmapTarget) Height() int {
	return t.height
}

// Format returns the pixel format (RGBA8).
func (t *LayeredPixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// TextureView returns nil as this is a CPU-only target.
func (t *LayeredPixmapTarget) TextureView() TextureView {
	return nil
}

// Pixels returns direct access to the base layer pixel data.
// Call Composite first to fold overlays into the base.
func (t *LayeredPixmapTarget) Pixels() []byte {
	return t.base.Pixels()
}

// Stride returns the number of bytes per row.
func (t *LayeredPixmapTarget) Stride() int {
	return t.base.Stride()
}

// Image returns the base layer image.
// Call Composite first to fold overlays into the base.
func (t *LayeredPixmapTarget) Image() *image.RGBA {
	return t.base.Image()
}

// Clear fills the base layer with the given color.
// Other layers are not affected.
func (t *LayeredPixmapTarget) Clear(c color.Color) {
	t.base.Clear(c)
}

// CreateLayer creates a new transparent layer at the specified z-order
// and returns it as a render target.
func (t *LayeredPixmapTarget) CreateLayer(z int) (RenderTarget, error) {
	if _, exists := t.layers[z]; exists {
		return nil, fmt.Errorf("render: layer z=%d already exists", z)
	}

	l := &overlay{
		target:  NewPixmapTarget(t.width, t.height),
		visible: true,
	}
	t.layers[z] = l
	t.zOrder = nil

	return l.target, nil
}

// RemoveLayer removes a layer by z-order.
func (t *LayeredPixmapTarget) RemoveLayer(z int) error {
	if _, exists := t.layers[z]; !exists {
		return fmt.Errorf("render: layer z=%d does not exist", z)
	}

	delete(t.layers, z)
	t.zOrder = nil
	return nil
}

// SetLayerVisible controls layer visibility.
func (t *LayeredPixmapTarget) SetLayerVisible(z int, visible bool) {
	if l, exists := t.layers[z]; exists {
		l.visible = visible
	}
}

// Layers returns all layer z-orders in composite order (ascending).
func (t *LayeredPixmapTarget) Layers() []int {
	if t.zOrder == nil {
		t.zOrder = make([]int, 0, len(t.layers))
		for z := range t.layers {
			t.zOrder = append(t.zOrder, z)
		}
		slices.Sort(t.zOrder)
	}
	return slices.Clone(t.zOrder)
}

// GetLayer returns the render target for a specific layer, or nil if
// the layer does not exist.
func (t *LayeredPixmapTarget) GetLayer(z int) RenderTarget {
	l, exists := t.layers[z]
	if !exists {
		return nil
	}
	return l.target
}

// ClearLayer fills a specific layer with a color. Clearing with a
// transparent color erases the layer.
func (t *LayeredPixmapTarget) ClearLayer(z int, c color.Color) error {
	l, exists := t.layers[z]
	if !exists {
		return fmt.Errorf("render: layer z=%d does not exist", z)
	}
	l.target.Clear(c)
	return nil
}

// Composite blends all visible layers onto the base in z-order using
// source-over alpha compositing.
func (t *LayeredPixmapTarget) Composite() {
	base := t.base.Image()
	for _, z := range t.Layers() {
		l := t.layers[z]
		if l.visible {
			draw.Draw(base, base.Bounds(), l.target.Image(), image.Point{}, draw.Over)
		}
	}
}

// Ensure LayeredPixmapTarget implements both RenderTarget and LayeredTarget.
var (
	_ RenderTarget  = (*LayeredPixmapTarget)(nil)
	_ LayeredTarget = (*LayeredPixmapTarget)(nil)
)
