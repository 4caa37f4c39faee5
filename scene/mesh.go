package scene

import (
	vm "liblac/vecmath"
)

type Vertex struct {
	Pos   vm.Vec3
	Color vm.Vec3
}

// Mesh is an indexed triangle list with its model transform.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Model    vm.Mat4
}

func NewMesh(v []Vertex, id []uint32) *Mesh {
	return &Mesh{
		Vertices: v,
		Indices:  id,
		Model:    vm.Ident4(),
	}
}

// Edge is a pair of vertex indices with A < B.
type Edge struct {
	A, B uint32
}

// Edges returns every triangle edge once, in order of first appearance.
// Incomplete trailing triangles are ignored.
func (m *Mesh) Edges() []Edge {
	seen := make(map[Edge]struct{}, len(m.Indices))
	var edges []Edge
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tri := [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]}
		for k := 0; k < 3; k++ {
			e := Edge{tri[k], tri[(k+1)%3]}
			if e.A > e.B {
				e.A, e.B = e.B, e.A
			}
			if e.A == e.B {
				continue
			}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// Bounds returns the axis aligned box around all vertex positions.
func (m *Mesh) Bounds() (min vm.Vec3, max vm.Vec3) {
	if len(m.Vertices) == 0 {
		return vm.Vec3{}, vm.Vec3{}
	}
	min, max = m.Vertices[0].Pos, m.Vertices[0].Pos
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Pos[i] < min[i] {
				min[i] = v.Pos[i]
			}
			if v.Pos[i] > max[i] {
				max[i] = v.Pos[i]
			}
		}
	}
	return min, max
}

// Normalize centers the mesh on the origin and scales it to fit a unit cube
// through its model matrix. Vertex data stays untouched.
func (m *Mesh) Normalize() {
	min, max := m.Bounds()
	size := max.Sub(min)
	extent := size[0]
	if size[1] > extent {
		extent = size[1]
	}
	if size[2] > extent {
		extent = size[2]
	}
	if extent == 0 {
		return
	}
	center := min.Add(size.Mul(0.5))
	s := 1 / extent
	m.Model = vm.Translation(-center[0], -center[1], -center[2]).Mul(vm.Scale(s, s, s))
}
