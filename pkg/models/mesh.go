// Package models holds indexed triangle meshes and loads them from glTF.
// Vertices are stored as float32, the precision glTF ships them in; all
// geometric queries promote to float64 and go through the g3 kernel.
package models

import (
	"errors"

	"github.com/taigrr/typedgeo/pkg/geom"
	"github.com/taigrr/typedgeo/pkg/geom/g3"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// ErrNoTriangles is returned when a mesh or file holds no triangles.
var ErrNoTriangles = errors.New("no triangles")

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name      string
	Positions []linalg.Pos3[float32]
	Faces     [][3]int // indices into Positions, counter-clockwise when seen from outside
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// FromTriangles builds a mesh from a triangle soup. Vertices are not
// shared between faces.
func FromTriangles(name string, tris []g3.Triangle[float64]) (*Mesh, error) {
	if len(tris) == 0 {
		return nil, ErrNoTriangles
	}
	m := &Mesh{
		Name:      name,
		Positions: make([]linalg.Pos3[float32], 0, 3*len(tris)),
		Faces:     make([][3]int, 0, len(tris)),
	}
	for _, t := range tris {
		m.AddTriangle(t)
	}
	return m, nil
}

// AddTriangle appends t as a new face with its own three vertices.
func (m *Mesh) AddTriangle(t g3.Triangle[float64]) {
	base := len(m.Positions)
	for i := range 3 {
		m.Positions = append(m.Positions, linalg.ConvertPos3[float32](t.Vertex(i)))
	}
	m.Faces = append(m.Faces, [3]int{base, base + 1, base + 2})
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int { return len(m.Faces) }

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// Triangle returns face i in float64.
func (m *Mesh) Triangle(i int) g3.Triangle[float64] {
	f := m.Faces[i]
	return g3.Tri(m.pos(f[0]), m.pos(f[1]), m.pos(f[2]))
}

// Triangles returns every face in float64.
func (m *Mesh) Triangles() []g3.Triangle[float64] {
	out := make([]g3.Triangle[float64], len(m.Faces))
	for i := range m.Faces {
		out[i] = m.Triangle(i)
	}
	return out
}

func (m *Mesh) pos(i int) linalg.Pos3[float64] { return linalg.ConvertPos3[float64](m.Positions[i]) }

// Bounds returns the axis-aligned box around all vertices. An empty mesh
// has the zero box.
func (m *Mesh) Bounds() g3.Aabb[float32] {
	if len(m.Positions) == 0 {
		return g3.Aabb[float32]{}
	}
	return g3.AabbOf(m.Positions...)
}

// Area returns the total surface area.
func (m *Mesh) Area() float64 {
	var a float64
	for i := range m.Faces {
		a += m.Triangle(i).Area()
	}
	return a
}

// Centroid returns the area-weighted mean of the face centroids. Meshes
// without area yield NaN.
func (m *Mesh) Centroid() linalg.Pos3[float64] {
	var sum linalg.Vec3[float64]
	var total float64
	for i := range m.Faces {
		t := m.Triangle(i)
		a := t.Area()
		sum = sum.Add(t.Centroid().Vec().Scale(a))
		total += a
	}
	return linalg.Pos3[float64](sum.Div(total))
}

// FaceNormal returns the unit normal of face i. Degenerate faces yield the
// zero vector.
func (m *Mesh) FaceNormal(i int) linalg.Vec3[float64] {
	return linalg.NormalizeSafe3(m.Triangle(i).Cross(), 0)
}

// VertexNormals returns one normal per vertex: the area-weighted average of
// the normals of the faces sharing it.
func (m *Mesh) VertexNormals() []linalg.Vec3[float64] {
	acc := make([]linalg.Vec3[float64], len(m.Positions))
	for i, f := range m.Faces {
		// the unnormalized cross product weights by area
		n := m.Triangle(i).Cross()
		for _, v := range f {
			acc[v] = acc[v].Add(n)
		}
	}
	for i := range acc {
		acc[i] = linalg.NormalizeSafe3(acc[i], 0)
	}
	return acc
}

// Transform applies mat to every vertex.
func (m *Mesh) Transform(mat linalg.Mat4[float32]) {
	for i, p := range m.Positions {
		m.Positions[i] = mat.MulPos3(p)
	}
}

// Normalize moves the mesh so its bounding box is centered on the origin
// and scales it so the longest side has length size.
func (m *Mesh) Normalize(size float32) {
	b := m.Bounds()
	extent := b.Size().MaxExtent()
	if extent == 0 {
		return
	}
	c := linalg.ConvertPos3[float32](b.Centroid())
	k := size / extent
	scale := linalg.Scaling(linalg.Size3[float32]{Width: k, Height: k, Depth: k})
	m.Transform(scale.Mul(linalg.Translation(c.Vec().Neg())))
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Name:      m.Name,
		Positions: append([]linalg.Pos3[float32](nil), m.Positions...),
		Faces:     append([][3]int(nil), m.Faces...),
	}
}

// Pick returns the face first hit by r and the hit point. The result is
// empty if r misses the mesh.
func (m *Mesh) Pick(r g3.Ray[float64]) (int, geom.Result[linalg.Pos3[float64]]) {
	b := m.Bounds()
	box := g3.NewAabb(linalg.ConvertPos3[float64](b.Min), linalg.ConvertPos3[float64](b.Max))
	if len(m.Faces) == 0 || !r.IntersectsAabb(box) {
		return -1, geom.Miss[linalg.Pos3[float64]]()
	}

	face, best := -1, scalar.Squared(0)
	var hit linalg.Pos3[float64]
	for i := range m.Faces {
		res := r.IntersectionTriangle(m.Triangle(i))
		if res.Empty {
			continue
		}
		if d := r.Origin.Distance2To(res.Value); face < 0 || d < best {
			face, best, hit = i, d, res.Value
		}
	}
	if face < 0 {
		return -1, geom.Miss[linalg.Pos3[float64]]()
	}
	return face, geom.Hit(hit)
}
