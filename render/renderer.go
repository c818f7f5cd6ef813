// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/charts"

// Renderer draws a scene to a render target.
//
// Renderers are stateless between Render calls, allowing the same
// renderer to be used with different targets and scenes.
//
// Example:
//
//	renderer := render.NewSoftwareRenderer()
//	target := render.NewPixmapTarget(800, 600)
//	if err := renderer.Render(target, scene); err != nil {
//	    log.Printf("render failed: %v", err)
//	}
type Renderer interface {
	// Render draws the scene's visible items to the target in z-order.
	//
	// The scene is not modified and can be rendered multiple times to
	// different targets. Returns an error if the target is incompatible
	// with the renderer (e.g. a GPU-only target handed to a CPU
	// renderer).
	Render(target RenderTarget, scene *charts.Scene) error

	// Flush ensures all pending rendering operations are complete.
	//
	// For CPU renderers this is a no-op as operations are synchronous.
	// For GPU renderers this may submit command buffers and wait for
	// completion.
	Flush() error
}

// RendererCapabilities describes the features supported by a renderer.
type RendererCapabilities struct {
	// IsGPU indicates if this is a GPU-accelerated renderer.
	IsGPU bool

	// SupportsAntialiasing indicates if anti-aliased rendering is supported.
	SupportsAntialiasing bool

	// SupportsText indicates if label rasterization is supported.
	SupportsText bool

	// MaxTextureSize is the maximum target dimension (0 = unlimited).
	MaxTextureSize int
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() RendererCapabilities
}
