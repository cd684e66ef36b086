package models

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/typedgeo/pkg/linalg"
)

// GLTFLoader loads the triangle primitives of glTF/GLB files.
type GLTFLoader struct {
	// SkipDegenerate drops faces whose vertices are collinear.
	SkipDegenerate bool
}

// NewGLTFLoader creates a loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{SkipDegenerate: true}
}

// LoadGLB loads a glTF or binary glTF file with the default loader.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load opens a glTF or GLB file and merges all of its meshes into one.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.FromDocument(doc, filepath.Base(path))
}

// FromDocument merges the triangle primitives of every mesh in doc.
func (l *GLTFLoader) FromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("load %s: %w", name, ErrNoTriangles)
	}
	return mesh, nil
}

func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// lines and points have no area
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readPositions(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var indices []int
		if prim.Indices != nil {
			if indices, err = readIndices(doc, *prim.Indices); err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}

		base := len(mesh.Positions)
		mesh.Positions = append(mesh.Positions, positions...)
		for i := 0; i+2 < len(indices); i += 3 {
			f := [3]int{indices[i], indices[i+1], indices[i+2]}
			for _, v := range f {
				if v >= len(positions) {
					return fmt.Errorf("index %d out of range for %d positions", v, len(positions))
				}
			}
			f = [3]int{base + f[0], base + f[1], base + f[2]}
			mesh.Faces = append(mesh.Faces, f)
			if l.SkipDegenerate && mesh.Triangle(len(mesh.Faces)-1).Cross().IsZero() {
				mesh.Faces = mesh.Faces[:len(mesh.Faces)-1]
			}
		}
	}
	return nil
}

// accessorBytes returns the buffer backing a, the offset of its first
// element, and the element stride.
func accessorBytes(doc *gltf.Document, a *gltf.Accessor, size int) ([]byte, int, int, error) {
	if a.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor has no buffer view")
	}
	bv := doc.BufferViews[*a.BufferView]
	buf := doc.Buffers[bv.Buffer]
	if buf.Data == nil {
		// external .bin files are not resolved
		return nil, 0, 0, fmt.Errorf("buffer %d has no embedded data", bv.Buffer)
	}
	stride := bv.ByteStride
	if stride == 0 {
		stride = size
	}
	start := bv.ByteOffset + a.ByteOffset
	if a.Count > 0 && start+(a.Count-1)*stride+size > len(buf.Data) {
		return nil, 0, 0, fmt.Errorf("accessor overruns buffer %d", bv.Buffer)
	}
	return buf.Data, start, stride, nil
}

func readPositions(doc *gltf.Document, idx int) ([]linalg.Pos3[float32], error) {
	a := doc.Accessors[idx]
	if a.Type != gltf.AccessorVec3 || a.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v of %v", a.Type, a.ComponentType)
	}
	data, start, stride, err := accessorBytes(doc, a, 12)
	if err != nil {
		return nil, err
	}

	out := make([]linalg.Pos3[float32], a.Count)
	for i := range out {
		b := data[start+i*stride:]
		out[i] = linalg.P3(readFloat32(b), readFloat32(b[4:]), readFloat32(b[8:]))
	}
	return out, nil
}

func readIndices(doc *gltf.Document, idx int) ([]int, error) {
	a := doc.Accessors[idx]
	if a.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", a.Type)
	}

	var size int
	switch a.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type: %v", a.ComponentType)
	}
	data, start, stride, err := accessorBytes(doc, a, size)
	if err != nil {
		return nil, err
	}

	out := make([]int, a.Count)
	for i := range out {
		b := data[start+i*stride:]
		switch size {
		case 1:
			out[i] = int(b[0])
		case 2:
			out[i] = int(binary.LittleEndian.Uint16(b))
		case 4:
			out[i] = int(binary.LittleEndian.Uint32(b))
		}
	}
	return out, nil
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
