// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws chart scenes to pixel and vector targets.
//
// # Key Principle
//
// The charts library RECEIVES a GPU device from the host application, it
// does NOT create its own. This follows the Vello/femtovg/Skia pattern
// where the rendering library is injected with GPU resources rather than
// managing them itself.
//
// # Core Interfaces
//
//   - DeviceHandle: Provides GPU device access from the host application
//   - RenderTarget: Defines where rendering output goes (Pixmap, Texture)
//   - Renderer: Draws a charts.Scene to a target
//
// # Renderer Implementations
//
//   - SoftwareRenderer: CPU rasterization via the raster package
//   - GPURenderer: GPU-accelerated rendering (software fallback for CPU
//     targets; GPU surface output is staged behind shader compilation)
//
// # RenderTarget Implementations
//
//   - PixmapTarget: CPU-backed *image.RGBA target
//   - TextureTarget: GPU texture target (stub)
//   - LayeredPixmapTarget: CPU target with z-ordered overlay layers for
//     tooltips and crosshairs
//
// # Usage
//
// Software rendering to an image:
//
//	target := render.NewPixmapTarget(800, 600)
//	target.Clear(color.White)
//
//	renderer := render.NewSoftwareRenderer()
//	if err := renderer.Render(target, chart.Scene()); err != nil {
//	    log.Fatal(err)
//	}
//	render.SavePNG("chart.png", target)
//
// Vector output:
//
//	var buf bytes.Buffer
//	render.WriteSVG(&buf, chart.Scene(), 800, 600)
//
// # Thread Safety
//
// Renderers are NOT thread-safe. Each renderer should be used from a
// single goroutine, or external synchronization must be used.
package render
