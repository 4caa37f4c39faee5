package gpu

import (
	"unsafe"

	vk "github.com/goki/vulkan"

	"liblac/scene"
)

func VertexBindingDescription() vk.VertexInputBindingDescription {
	return vk.VertexInputBindingDescription{
		Binding:   0,
		Stride:    uint32(unsafe.Sizeof(scene.Vertex{})),
		InputRate: vk.VertexInputRateVertex,
	}
}

func VertexAttributeDescriptions() []vk.VertexInputAttributeDescription {
	return []vk.VertexInputAttributeDescription{
		{
			Location: 0,
			Binding:  0,
			Format:   FormatOf(len(scene.Vertex{}.Pos)),
			Offset:   uint32(unsafe.Offsetof(scene.Vertex{}.Pos)),
		},
		{
			Location: 1,
			Binding:  0,
			Format:   FormatOf(len(scene.Vertex{}.Color)),
			Offset:   uint32(unsafe.Offsetof(scene.Vertex{}.Color)),
		},
	}
}

// FormatOf maps a float32 vector width to its Vulkan format.
func FormatOf(components int) vk.Format {
	switch components {
	case 2:
		return vk.FormatR32g32Sfloat
	case 3:
		return vk.FormatR32g32b32Sfloat
	case 4:
		return vk.FormatR32g32b32a32Sfloat
	default:
		return vk.FormatUndefined
	}
}
