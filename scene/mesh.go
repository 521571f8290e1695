package scene

import (
	"fmt"

	"mesh-viewer/core"
	"mesh-viewer/math"
)

// DefaultVertexColor is given to every vertex of a newly assembled mesh.
var DefaultVertexColor = core.ColorWhite

// Primitive says how a mesh's index list is assembled.
type Primitive int

const (
	// Triangles takes every three indices as one counter-clockwise triangle.
	Triangles Primitive = iota
	// Lines takes every two indices as one line segment.
	Lines
)

// IndicesPer is the number of indices one primitive consumes.
func (p Primitive) IndicesPer() int {
	if p == Lines {
		return 2
	}
	return 3
}

func (p Primitive) String() string {
	if p == Lines {
		return "lines"
	}
	return "triangles"
}

// Mesh is stored as parallel per-vertex slices plus an index list. With the
// default Triangles mode every three consecutive Indices form one
// counter-clockwise triangle.
//
// A Mesh is treated as immutable once built; renderers and exporters only
// read from it.
type Mesh struct {
	Name      string
	Mode      Primitive
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
	Colors    []core.Color
	Indices   []uint32

	// Tight local-space bounds of Positions, zero for an empty mesh.
	Bounds AABB
}

// NewMesh assembles a mesh from geometry, fills every vertex with
// DefaultVertexColor and computes the bounds. The slices are not copied.
func NewMesh(name string, positions, normals []math.Vec3, uvs []math.Vec2, indices []uint32) *Mesh {
	return &Mesh{
		Name:      name,
		Positions: positions,
		Normals:   normals,
		UVs:       uvs,
		Colors:    uniformColors(len(positions), DefaultVertexColor),
		Indices:   indices,
		Bounds:    computeBounds(positions),
	}
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount is zero for a line mesh.
func (m *Mesh) TriangleCount() int {
	if m.Mode != Triangles {
		return 0
	}
	return len(m.Indices) / 3
}

// LineCount is zero for a triangle mesh.
func (m *Mesh) LineCount() int {
	if m.Mode != Lines {
		return 0
	}
	return len(m.Indices) / 2
}

// Line returns the two vertex indices of segment i of a line mesh.
func (m *Mesh) Line(i int) [2]uint32 {
	return [2]uint32{m.Indices[2*i], m.Indices[2*i+1]}
}

// Triangle returns the three vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]}
}

// FaceNormal is the unnormalized geometric normal of triangle i, following
// its winding: (b-a) x (c-a).
func (m *Mesh) FaceNormal(i int) math.Vec3 {
	t := m.Triangle(i)
	a, b, c := m.Positions[t[0]], m.Positions[t[1]], m.Positions[t[2]]
	return b.Sub(a).Cross(c.Sub(a))
}

// Validate checks that the per-vertex slices line up and that the index
// list describes whole primitives referencing existing vertices.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != n || len(m.UVs) != n || len(m.Colors) != n {
		return fmt.Errorf("%w: mesh %q has %d positions, %d normals, %d uvs, %d colors",
			ErrAttributeMismatch, m.Name, n, len(m.Normals), len(m.UVs), len(m.Colors))
	}
	if len(m.Indices)%m.Mode.IndicesPer() != 0 {
		return fmt.Errorf("%w: mesh %q has %d indices for %s",
			ErrIndexCount, m.Name, len(m.Indices), m.Mode)
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: mesh %q index %d at position %d, %d vertices",
				ErrIndexRange, m.Name, idx, i, n)
		}
	}
	return nil
}

// Vertices interleaves the per-vertex slices into the GPU upload layout.
func (m *Mesh) Vertices() []core.Vertex {
	out := make([]core.Vertex, len(m.Positions))
	for i := range out {
		out[i] = core.Vertex{
			Position: m.Positions[i],
			Normal:   m.Normals[i],
			UV:       m.UVs[i],
			Color:    m.Colors[i],
		}
	}
	return out
}

// WithColor returns a copy of m whose vertices all have color c. Geometry
// slices are shared with m.
func (m *Mesh) WithColor(c core.Color) *Mesh {
	cp := *m
	cp.Colors = uniformColors(len(m.Positions), c)
	return &cp
}

func uniformColors(n int, c core.Color) []core.Color {
	colors := make([]core.Color, n)
	for i := range colors {
		colors[i] = c
	}
	return colors
}
