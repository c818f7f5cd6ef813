package gpu

import "github.com/gogpu/wgpu/hal"

// NewShaderModule creates a HAL shader module from SPIR-V code.
func NewShaderModule(device hal.Device, label string, spirvCode []uint32) (hal.ShaderModule, error) {
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
}

// Resources holds the HAL objects of one compute pipeline so they can
// be destroyed together.
type Resources struct {
	Device         hal.Device
	ShaderModule   hal.ShaderModule
	PipelineLayout hal.PipelineLayout
	BindLayouts    []hal.BindGroupLayout
	Pipelines      []hal.ComputePipeline
}

// Destroy cleans up all GPU resources in the correct order.
func (r *Resources) Destroy() {
	if r.Device == nil {
		return
	}

	// Pipelines first, then layouts, then the module.
	for _, p := range r.Pipelines {
		if p != nil {
			r.Device.DestroyComputePipeline(p)
		}
	}

	if r.PipelineLayout != nil {
		r.Device.DestroyPipelineLayout(r.PipelineLayout)
	}

	for _, l := range r.BindLayouts {
		if l != nil {
			r.Device.DestroyBindGroupLayout(l)
		}
	}

	if r.ShaderModule != nil {
		r.Device.DestroyShaderModule(r.ShaderModule)
	}
}
