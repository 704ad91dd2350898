// Package models provides the triangle meshes the viewer pushes through a
// transform stack, along with a glTF loader.
package models

import (
	"github.com/taigrr/libmatrix/pkg/math3d"
)

// Mesh represents a triangle mesh in model space.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Faces    [][3]int // Indices into Vertices, counterclockwise

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Vertex holds the per-vertex attributes.
type Vertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// NewCube creates an axis-aligned cube of the given edge length centered at
// the origin.
func NewCube(size float32) *Mesh {
	h := size / 2
	m := NewMesh("cube")
	for _, p := range [8]math3d.Vec3{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	} {
		m.Vertices = append(m.Vertices, Vertex{Position: p})
	}
	m.Faces = [][3]int{
		{4, 5, 6}, {4, 6, 7}, // front
		{1, 0, 3}, {1, 3, 2}, // back
		{0, 4, 7}, {0, 7, 3}, // left
		{5, 1, 2}, {5, 2, 6}, // right
		{7, 6, 2}, {7, 2, 3}, // top
		{0, 1, 5}, {0, 5, 4}, // bottom
	}
	m.CalculateSmoothNormals()
	m.CalculateBounds()
	return m
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// CalculateSmoothNormals computes area-weighted averaged vertex normals.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}

	for _, f := range m.Faces {
		v0 := m.Vertices[f[0]].Position
		v1 := m.Vertices[f[1]].Position
		v2 := m.Vertices[f[2]].Position
		n := v1.Sub(v0).Cross(v2.Sub(v0))

		for _, idx := range f {
			m.Vertices[idx].Normal = m.Vertices[idx].Normal.Add(n)
		}
	}

	for i := range m.Vertices {
		if m.Vertices[i].Normal.Length() > 0 {
			m.Vertices[i].Normal = math3d.Normalize3(m.Vertices[i].Normal)
		}
	}
}

// HasNormals reports whether any vertex carries a non-zero normal.
func (m *Mesh) HasNormals() bool {
	for _, v := range m.Vertices {
		if v.Normal.Length() > 0.001 {
			return true
		}
	}
	return false
}

// Transform applies an affine transform to every vertex in place. Normals
// go through the upper 3x3 only, so non-uniform scales skew them.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = mat.MulPoint(v.Position)
		if n := mat.MulDir(v.Normal); n.Length() > 0 {
			v.Normal = math3d.Normalize3(n)
		}
	}
	m.CalculateBounds()
}

// Fit returns the transform that centers the mesh at the origin and scales
// its largest dimension to size.
func (m *Mesh) Fit(size float32) math3d.Mat4 {
	dims := m.Size()
	maxDim := max(dims.X, dims.Y, dims.Z)
	if maxDim <= 0 {
		return math3d.Identity4[float32]()
	}
	s := size / maxDim
	c := m.Center()
	return math3d.Scale(s, s, s).Mul(math3d.Translate(-c.X, -c.Y, -c.Z))
}

// Edges returns every distinct triangle edge once, with the lower index
// first.
func (m *Mesh) Edges() [][2]int {
	seen := make(map[[2]int]struct{}, len(m.Faces)*3/2)
	edges := make([][2]int, 0, len(m.Faces)*3/2)
	for _, f := range m.Faces {
		for i := range 3 {
			a, b := f[i], f[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]Vertex, len(m.Vertices)),
		Faces:     make([][3]int, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) math3d.Vec3 {
	return m.Vertices[i].Position
}

// Bounds returns the axis-aligned bounding box.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}
