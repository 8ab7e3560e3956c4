package hal

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
	gpuhal "github.com/gogpu/wgpu/hal"
)

// fixedFunctionWGSL draws position-only vertices, the vertex format new
// devices start with, in a constant color.
const fixedFunctionWGSL = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
}

@vertex
fn vs_main(@location(0) position: vec3<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(position, 1.0);
    return out;
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 1.0, 1.0);
}
`

var (
	fixedFunctionOnce  sync.Once
	fixedFunctionSPIRV []uint32
	fixedFunctionErr   error
)

// fixedFunctionCode compiles fixedFunctionWGSL once per process.
func fixedFunctionCode() ([]uint32, error) {
	fixedFunctionOnce.Do(func() {
		spirv, err := naga.Compile(fixedFunctionWGSL)
		if err != nil {
			fixedFunctionErr = fmt.Errorf("hal: compile fixed-function shader: %w", err)
			return
		}
		fixedFunctionSPIRV = spirvWords(spirv)
	})
	return fixedFunctionSPIRV, fixedFunctionErr
}

// spirvWords converts little-endian SPIR-V bytes to words.
func spirvWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return words
}

func createFixedFunctionModule(dev gpuhal.Device) (gpuhal.ShaderModule, error) {
	code, err := fixedFunctionCode()
	if err != nil {
		return nil, err
	}
	return dev.CreateShaderModule(&gpuhal.ShaderModuleDescriptor{
		Label:  "d3d8_fixed_function",
		Source: gpuhal.ShaderSource{SPIRV: code},
	})
}
