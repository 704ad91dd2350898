package models

import (
	"encoding/binary"
	"math"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/libmatrix/pkg/math3d"
)

// quadDocument builds a two-triangle unit quad with ushort indices.
func quadDocument() *gltf.Document {
	positions := []float32{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 1, 0,
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}

	data := make([]byte, 0, len(positions)*4+len(indices)*2)
	for _, p := range positions {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(p))
	}
	idxOffset := len(data)
	for _, i := range indices {
		data = binary.LittleEndian.AppendUint16(data, i)
	}

	return &gltf.Document{
		Buffers: []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: idxOffset},
			{Buffer: 0, ByteOffset: idxOffset, ByteLength: len(indices) * 2},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: gltf.Index(0), ComponentType: gltf.ComponentFloat, Count: 4, Type: gltf.AccessorVec3},
			{BufferView: gltf.Index(1), ComponentType: gltf.ComponentUshort, Count: 6, Type: gltf.AccessorScalar},
		},
		Meshes: []*gltf.Mesh{{
			Name: "quad",
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]int{gltf.POSITION: 0},
				Indices:    gltf.Index(1),
				Mode:       gltf.PrimitiveTriangles,
			}},
		}},
	}
}

func TestLoadGLBInvalidPath(t *testing.T) {
	if _, err := LoadGLB("/nonexistent/path.glb"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if !loader.CalculateNormals {
		t.Error("CalculateNormals should default to true")
	}
}

func TestFromDocument(t *testing.T) {
	mesh, err := NewGLTFLoader().FromDocument(quadDocument())
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}

	if mesh.VertexCount() != 4 || mesh.TriangleCount() != 2 {
		t.Fatalf("got %d vertices, %d triangles; want 4, 2", mesh.VertexCount(), mesh.TriangleCount())
	}
	if mesh.Faces[1] != [3]int{0, 2, 3} {
		t.Errorf("second face = %v, want [0 2 3]", mesh.Faces[1])
	}
	if mesh.Vertices[2].Position != math3d.V3(1, 1, 0) {
		t.Errorf("vertex 2 = %v, want (1, 1, 0)", mesh.Vertices[2].Position)
	}
	if mesh.BoundsMax != math3d.V3(1, 1, 0) {
		t.Errorf("bounds max = %v, want (1, 1, 0)", mesh.BoundsMax)
	}

	// Counterclockwise in XY, so generated normals face +Z
	for i, v := range mesh.Vertices {
		if v.Normal != math3d.V3(0, 0, 1) {
			t.Errorf("vertex %d normal = %v, want (0, 0, 1)", i, v.Normal)
		}
	}
}

func TestFromDocumentBadIndex(t *testing.T) {
	doc := quadDocument()
	doc.Accessors[1].Count = 7 // reads past the index data
	if _, err := NewGLTFLoader().FromDocument(doc); err == nil {
		t.Error("expected error for an accessor overrunning its buffer")
	}
}

func TestFromDocumentMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*gltf.Document)
	}{
		{"index accessor out of range", func(d *gltf.Document) { d.Meshes[0].Primitives[0].Indices = gltf.Index(9) }},
		{"position accessor out of range", func(d *gltf.Document) { d.Meshes[0].Primitives[0].Attributes[gltf.POSITION] = 5 }},
		{"buffer view out of range", func(d *gltf.Document) { d.Accessors[0].BufferView = gltf.Index(7) }},
		{"index buffer view out of range", func(d *gltf.Document) { d.Accessors[1].BufferView = gltf.Index(-1) }},
		{"buffer out of range", func(d *gltf.Document) { d.BufferViews[1].Buffer = 3 }},
		{"offset past buffer end", func(d *gltf.Document) { d.Accessors[1].ByteOffset = 4096 }},
		{"missing buffer view", func(d *gltf.Document) { d.Accessors[0].BufferView = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := quadDocument()
			tt.mutate(doc)
			if _, err := NewGLTFLoader().FromDocument(doc); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestLoadGLBRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.glb")
	if err := gltf.SaveBinary(quadDocument(), path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}

	mesh, err := LoadGLB(path)
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}
	if mesh.Name != "quad.glb" {
		t.Errorf("name = %q, want quad.glb", mesh.Name)
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("triangles = %d, want 2", mesh.TriangleCount())
	}
}
