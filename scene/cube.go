package scene

import vm "liblac/vecmath"

func NewCube() *Mesh {
	v := []Vertex{
		{Pos: vm.Vec3{-0.5, -0.5, -0.5}, Color: vm.Vec3{1, 0, 0}},
		{Pos: vm.Vec3{0.5, -0.5, -0.5}, Color: vm.Vec3{0, 1, 0}},
		{Pos: vm.Vec3{0.5, 0.5, -0.5}, Color: vm.Vec3{0, 0, 1}},
		{Pos: vm.Vec3{-0.5, 0.5, -0.5}, Color: vm.Vec3{1, 0.5, 1}},
		{Pos: vm.Vec3{-0.5, -0.5, 0.5}, Color: vm.Vec3{1, 0.5, 0.5}},
		{Pos: vm.Vec3{0.5, -0.5, 0.5}, Color: vm.Vec3{0.5, 1, 0.5}},
		{Pos: vm.Vec3{0.5, 0.5, 0.5}, Color: vm.Vec3{0.5, 0.5, 1}},
		{Pos: vm.Vec3{-0.5, 0.5, 0.5}, Color: vm.Vec3{0, 0.5, 0}},
	}

	id := []uint32{
		2, 1, 0, 0, 3, 2, // front
		5, 1, 6, 1, 2, 6, // right
		4, 5, 6, 7, 4, 6, // back
		4, 7, 0, 0, 7, 3, // left
		0, 1, 5, 5, 4, 0, // top
		3, 7, 6, 2, 3, 6, // bottom
	}

	return NewMesh(v, id)
}
