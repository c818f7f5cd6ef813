// Package gpu compiles the embedded WGSL shaders and manages HAL
// resources for GPU-backed chart rendering.
package gpu

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
)

// Embedded WGSL shader sources.

//go:embed shaders/fill.wgsl
var fillShaderWGSL string

// CompileToSPIRV compiles WGSL source to a SPIR-V uint32 slice.
func CompileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}

var (
	fillOnce  sync.Once
	fillWords []uint32
	fillErr   error
)

// FillShader returns the compiled SPIR-V words of the scanline fill
// compositor. Compilation runs once; subsequent calls return the cached
// result.
func FillShader() ([]uint32, error) {
	fillOnce.Do(func() {
		fillWords, fillErr = CompileToSPIRV(fillShaderWGSL)
	})
	return fillWords, fillErr
}
