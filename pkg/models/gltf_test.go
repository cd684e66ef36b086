package models

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/qmuntal/gltf"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if loader == nil {
		t.Fatal("NewGLTFLoader returned nil")
	}
	if !loader.SkipDegenerate {
		t.Error("SkipDegenerate should default to true")
	}
}

func index(i int) *int { return &i }

// quadDocument returns a document holding a unit square in the XY plane as
// two triangles, followed by one degenerate triangle.
func quadDocument() *gltf.Document {
	var data []byte
	for _, p := range [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}} {
		for _, c := range p {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(c))
		}
	}
	for _, i := range []uint16{0, 1, 2, 0, 2, 3, 0, 1, 1} {
		data = binary.LittleEndian.AppendUint16(data, i)
	}

	return &gltf.Document{
		Buffers: []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: 48},
			{Buffer: 0, ByteOffset: 48, ByteLength: 18},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: index(0), Count: 4, Type: gltf.AccessorVec3, ComponentType: gltf.ComponentFloat},
			{BufferView: index(1), Count: 9, Type: gltf.AccessorScalar, ComponentType: gltf.ComponentUshort},
		},
		Meshes: []*gltf.Mesh{{
			Name: "quad",
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]int{gltf.POSITION: 0},
				Indices:    index(1),
			}},
		}},
	}
}

func TestFromDocument(t *testing.T) {
	mesh, err := NewGLTFLoader().FromDocument(quadDocument(), "quad.glb")
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if mesh.Name != "quad.glb" {
		t.Errorf("Name = %q", mesh.Name)
	}
	if mesh.VertexCount() != 4 {
		t.Errorf("VertexCount = %d, want 4", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 2 {
		t.Fatalf("TriangleCount = %d, want 2 (degenerate face skipped)", mesh.TriangleCount())
	}
	if got := mesh.Area(); math.Abs(got-1) > 1e-6 {
		t.Errorf("Area = %v, want 1", got)
	}
	if n := mesh.FaceNormal(0); n.Z != 1 {
		t.Errorf("FaceNormal = %v, want +Z", n)
	}

	keep := &GLTFLoader{}
	all, err := keep.FromDocument(quadDocument(), "quad.glb")
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if all.TriangleCount() != 3 {
		t.Errorf("TriangleCount = %d, want 3 with degenerate faces kept", all.TriangleCount())
	}
}

func TestFromDocumentErrors(t *testing.T) {
	t.Run("no meshes", func(t *testing.T) {
		_, err := NewGLTFLoader().FromDocument(&gltf.Document{}, "empty.glb")
		if !errors.Is(err, ErrNoTriangles) {
			t.Errorf("err = %v, want ErrNoTriangles", err)
		}
	})

	t.Run("external buffer", func(t *testing.T) {
		doc := quadDocument()
		doc.Buffers[0].Data = nil
		doc.Buffers[0].URI = "quad.bin"
		if _, err := NewGLTFLoader().FromDocument(doc, "quad.gltf"); err == nil {
			t.Error("expected an error for an unresolved external buffer")
		}
	})

	t.Run("overrun", func(t *testing.T) {
		doc := quadDocument()
		doc.Accessors[0].Count = 100
		if _, err := NewGLTFLoader().FromDocument(doc, "quad.glb"); err == nil {
			t.Error("expected an error for an accessor past the buffer end")
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		doc := quadDocument()
		doc.Accessors[0].Count = 2
		if _, err := NewGLTFLoader().FromDocument(doc, "quad.glb"); err == nil {
			t.Error("expected an error for indices past the positions")
		}
	})
}
