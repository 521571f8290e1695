package scene

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-viewer/core"
	"mesh-viewer/math"
)

const eps = 1e-5

var (
	segmentCounts = []int{3, 4, 5, 8, 20, 64, 257}
	heights       = []float32{0.25, 1, 2, 3, 10}
)

func forEachCylinder(t *testing.T, fn func(t *testing.T, m *Mesh, segments int, height float32)) {
	for _, n := range segmentCounts {
		for _, h := range heights {
			t.Run(fmt.Sprintf("n=%d/h=%g", n, h), func(t *testing.T) {
				fn(t, BuildCylinder(n, h), n, h)
			})
		}
	}
}

func TestCylinderCounts(t *testing.T) {
	forEachCylinder(t, func(t *testing.T, m *Mesh, n int, _ float32) {
		want := 2 * (n + 1)
		assert.Len(t, m.Positions, want)
		assert.Len(t, m.Normals, want)
		assert.Len(t, m.UVs, want)
		assert.Len(t, m.Colors, want)
		assert.Len(t, m.Indices, 6*n)
		assert.Equal(t, 2*n, m.TriangleCount())
		require.NoError(t, m.Validate())
	})
}

func TestCylinderIndicesInRange(t *testing.T) {
	forEachCylinder(t, func(t *testing.T, m *Mesh, n int, _ float32) {
		limit := uint32(2 * (n + 1))
		for i, idx := range m.Indices {
			assert.Less(t, idx, limit, "index %d", i)
		}
	})
}

func TestCylinderRadiusAndHeight(t *testing.T) {
	forEachCylinder(t, func(t *testing.T, m *Mesh, _ int, h float32) {
		for i, p := range m.Positions {
			assert.InDelta(t, 1, p.RadialLength(), eps, "vertex %d", i)
			if i%2 == 0 {
				assert.Equal(t, h/2, p.Y, "top vertex %d", i)
			} else {
				assert.Equal(t, -h/2, p.Y, "bottom vertex %d", i)
			}
		}
	})
}

func TestCylinderNormalsAreRadial(t *testing.T) {
	forEachCylinder(t, func(t *testing.T, m *Mesh, _ int, _ float32) {
		for i, n := range m.Normals {
			p := m.Positions[i]
			assert.Equal(t, float32(0), n.Y)
			assert.InDelta(t, 1, n.Length(), eps)
			assert.Equal(t, p.X, n.X)
			assert.Equal(t, p.Z, n.Z)
		}
	})
}

func TestCylinderUVs(t *testing.T) {
	forEachCylinder(t, func(t *testing.T, m *Mesh, n int, _ float32) {
		for i := 0; i <= n; i++ {
			u := 1 - float32(i)/float32(n)
			assert.Equal(t, math.Vec2{X: u, Y: 0}, m.UVs[2*i])
			assert.Equal(t, math.Vec2{X: u, Y: 1}, m.UVs[2*i+1])
		}
	})
}

func TestCylinderSeamClosure(t *testing.T) {
	forEachCylinder(t, func(t *testing.T, m *Mesh, n int, _ float32) {
		first, last := 0, 2*n
		for k := 0; k < 2; k++ {
			assert.True(t, m.Positions[first+k].ApproxEqual(m.Positions[last+k], eps),
				"position %v vs %v", m.Positions[first+k], m.Positions[last+k])
			assert.True(t, m.Normals[first+k].ApproxEqual(m.Normals[last+k], eps))
			assert.Equal(t, m.UVs[first+k].Y, m.UVs[last+k].Y)
		}
		assert.Equal(t, float32(1), m.UVs[first].X)
		assert.Equal(t, float32(0), m.UVs[last].X)
	})
}

func TestCylinderWindingFacesOutward(t *testing.T) {
	forEachCylinder(t, func(t *testing.T, m *Mesh, _ int, _ float32) {
		for i := 0; i < m.TriangleCount(); i++ {
			tri := m.Triangle(i)
			avg := m.Normals[tri[0]].Add(m.Normals[tri[1]]).Add(m.Normals[tri[2]])
			assert.Greater(t, m.FaceNormal(i).Dot(avg), float32(0), "triangle %d %v", i, tri)
		}
	})
}

func TestCylinderFourSegments(t *testing.T) {
	m := BuildCylinder(4, 2)

	require.Len(t, m.Positions, 10)
	require.Len(t, m.Indices, 24)

	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 0}, m.Positions[0])
	assert.Equal(t, math.Vec3{X: 1, Y: -1, Z: 0}, m.Positions[1])
	assert.True(t, m.Positions[8].ApproxEqual(m.Positions[0], eps), "got %v", m.Positions[8])
	assert.True(t, m.Positions[2].ApproxEqual(math.Vec3{X: 0, Y: 1, Z: 1}, eps), "got %v", m.Positions[2])

	assert.Equal(t, math.Vec2{X: 1, Y: 0}, m.UVs[0])
	assert.Equal(t, math.Vec2{X: 0, Y: 0}, m.UVs[8])
	assert.Equal(t, math.Vec2{X: 0.75, Y: 1}, m.UVs[3])

	assert.Equal(t, []uint32{
		0, 2, 1, 1, 2, 3,
		2, 4, 3, 3, 4, 5,
		4, 6, 5, 5, 6, 7,
		6, 8, 7, 7, 8, 9,
	}, m.Indices)

	assert.True(t, m.Bounds.Min.ApproxEqual(math.Vec3{X: -1, Y: -1, Z: -1}, eps), "min %v", m.Bounds.Min)
	assert.True(t, m.Bounds.Max.ApproxEqual(math.Vec3{X: 1, Y: 1, Z: 1}, eps), "max %v", m.Bounds.Max)
}

func TestCylinderDefaultColors(t *testing.T) {
	m := BuildCylinder(6, 1)
	for _, c := range m.Colors {
		assert.Equal(t, core.ColorWhite, c)
	}
}

func TestCylinderDegenerateSegments(t *testing.T) {
	for _, n := range []int{0, -1, -20} {
		m := BuildCylinder(n, 2)
		assert.Zero(t, m.VertexCount(), "n=%d", n)
		assert.Empty(t, m.Indices)
		assert.NoError(t, m.Validate())
	}

	for _, n := range []int{1, 2} {
		m := BuildCylinder(n, 2)
		assert.Len(t, m.Positions, 2*(n+1))
		assert.Len(t, m.Indices, 6*n)
		assert.NoError(t, m.Validate(), "n=%d", n)
	}
}

func TestCylinderNegativeHeightFlips(t *testing.T) {
	up := BuildCylinder(8, 2)
	down := BuildCylinder(8, -2)

	require.NoError(t, down.Validate())
	for i := range up.Positions {
		assert.Equal(t, -up.Positions[i].Y, down.Positions[i].Y)
		assert.Equal(t, up.Positions[i].X, down.Positions[i].X)
	}
	assert.Equal(t, float32(-1), down.Positions[0].Y)
}

func BenchmarkBuildCylinder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = BuildCylinder(256, 3)
	}
}
