package scene

import (
	"mesh-viewer/core"
	"mesh-viewer/math"
)

// BuildAxes returns a line mesh of the three coordinate axes, each running
// from the origin to length along +X (red), +Y (green) and +Z (blue).
// Normals and UVs are zero; the lines are drawn unlit.
func BuildAxes(length float32) *Mesh {
	axes := []struct {
		dir   math.Vec3
		color core.Color
	}{
		{math.Vec3Right, core.ColorRed},
		{math.Vec3Up, core.ColorGreen},
		{math.Vec3Front, core.ColorBlue},
	}

	n := 2 * len(axes)
	positions := make([]math.Vec3, 0, n)
	colors := make([]core.Color, 0, n)
	indices := make([]uint32, 0, n)
	for i, a := range axes {
		positions = append(positions, math.Vec3Zero, a.dir.Mul(length))
		colors = append(colors, a.color, a.color)
		indices = append(indices, uint32(2*i), uint32(2*i+1))
	}

	m := NewMesh("Axes", positions, make([]math.Vec3, n), make([]math.Vec2, n), indices)
	m.Mode = Lines
	m.Colors = colors
	return m
}
