package models

import (
	"math"
	"testing"

	"github.com/taigrr/libmatrix/pkg/math3d"
)

func TestNewCube(t *testing.T) {
	cube := NewCube(2)

	if cube.VertexCount() != 8 || cube.TriangleCount() != 12 {
		t.Fatalf("got %d vertices, %d triangles; want 8, 12", cube.VertexCount(), cube.TriangleCount())
	}
	if cube.BoundsMin != math3d.V3(-1, -1, -1) || cube.BoundsMax != math3d.V3(1, 1, 1) {
		t.Errorf("bounds = %v..%v, want (-1,-1,-1)..(1,1,1)", cube.BoundsMin, cube.BoundsMax)
	}
	// 12 cube edges plus one diagonal per face
	if n := len(cube.Edges()); n != 18 {
		t.Errorf("edges = %d, want 18", n)
	}

	// Smooth normals point away from the center
	for i, v := range cube.Vertices {
		if v.Normal.Dot(v.Position) <= 0 {
			t.Errorf("vertex %d normal %v points inward", i, v.Normal)
		}
	}
}

func TestEdgesAreUnique(t *testing.T) {
	m := NewMesh("pair")
	m.Faces = [][3]int{{0, 1, 2}, {2, 1, 3}}

	edges := m.Edges()
	if len(edges) != 5 {
		t.Fatalf("edges = %v, want 5 distinct", edges)
	}
	for _, e := range edges {
		if e[0] >= e[1] {
			t.Errorf("edge %v is not ordered", e)
		}
	}
}

func TestMeshTransform(t *testing.T) {
	cube := NewCube(2)
	cube.Transform(math3d.Translate(5, 0, 0).Mul(math3d.Scale(2, 2, 2)))

	if cube.BoundsMin != math3d.V3(3, -2, -2) || cube.BoundsMax != math3d.V3(7, 2, 2) {
		t.Errorf("bounds = %v..%v, want (3,-2,-2)..(7,2,2)", cube.BoundsMin, cube.BoundsMax)
	}
	for i, v := range cube.Vertices {
		if math.Abs(v.Normal.Length()-1) > 1e-5 {
			t.Errorf("vertex %d normal length = %v, want 1", i, v.Normal.Length())
		}
	}
}

func TestFit(t *testing.T) {
	m := NewMesh("box")
	for _, p := range []math3d.Vec3{math3d.V3(10, 10, 10), math3d.V3(14, 12, 11)} {
		m.Vertices = append(m.Vertices, Vertex{Position: p})
	}
	m.CalculateBounds()

	m.Transform(m.Fit(2))
	if m.Center() != math3d.Zero3() {
		t.Errorf("center = %v, want origin", m.Center())
	}
	if size := m.Size(); size.X != 2 {
		t.Errorf("largest dimension = %v, want 2", size.X)
	}

	if NewMesh("empty").Fit(2) != math3d.Identity4[float32]() {
		t.Error("Fit of an empty mesh should be identity")
	}
}

func TestClone(t *testing.T) {
	cube := NewCube(1)
	c := cube.Clone()
	c.Vertices[0].Position = math3d.V3(9, 9, 9)
	c.Faces[0][0] = 7

	if cube.Vertices[0].Position == c.Vertices[0].Position || cube.Faces[0][0] == 7 {
		t.Error("Clone shares storage with the original")
	}
}
