package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-viewer/core"
	"mesh-viewer/math"
)

func TestBuildAxes(t *testing.T) {
	m := BuildAxes(4)
	require.NoError(t, m.Validate())

	assert.Equal(t, "Axes", m.Name)
	assert.Equal(t, Lines, m.Mode)
	assert.Equal(t, 6, m.VertexCount())
	assert.Equal(t, 3, m.LineCount())
	assert.Zero(t, m.TriangleCount())
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, m.Indices)

	assert.Equal(t, []math.Vec3{
		{}, {X: 4},
		{}, {Y: 4},
		{}, {Z: 4},
	}, m.Positions)
	assert.Equal(t, []core.Color{
		core.ColorRed, core.ColorRed,
		core.ColorGreen, core.ColorGreen,
		core.ColorBlue, core.ColorBlue,
	}, m.Colors)
	assert.Equal(t, AABB{Max: math.Vec3{X: 4, Y: 4, Z: 4}}, m.Bounds)

	for i := 0; i < m.LineCount(); i++ {
		l := m.Line(i)
		assert.Equal(t, math.Vec3Zero, m.Positions[l[0]])
		assert.InDelta(t, 4, m.Positions[l[1]].Length(), 1e-6)
	}
}

func TestBuildAxesNegativeLength(t *testing.T) {
	m := BuildAxes(-2)
	require.NoError(t, m.Validate())
	assert.Equal(t, math.Vec3{X: -2}, m.Positions[1])
}
