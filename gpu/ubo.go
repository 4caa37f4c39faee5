package gpu

import (
	"log"

	vk "github.com/goki/vulkan"

	vm "liblac/vecmath"
)

const mat4Size = 16 * 4

// UniformBufferObject is the per frame uniform block, tightly packed as three
// consecutive mat4.
type UniformBufferObject struct {
	Model      vm.Mat4
	View       vm.Mat4
	Projection vm.Mat4
}

// SizeOfUbo returns the byte size of UniformBufferObject on the GPU.
func SizeOfUbo() vk.DeviceSize {
	return vk.DeviceSize(3 * mat4Size)
}

func (u *UniformBufferObject) Bytes() []byte {
	b, err := RawBytes(u)
	if err != nil {
		log.Printf("Failed to serialize uniform buffer object: %v", err)
		return nil
	}
	return b
}

// ModelPushConstantRange covers a single model matrix pushed to the vertex stage.
func ModelPushConstantRange() vk.PushConstantRange {
	return vk.PushConstantRange{
		StageFlags: vk.ShaderStageFlags(vk.ShaderStageVertexBit),
		Offset:     0,
		Size:       mat4Size,
	}
}
