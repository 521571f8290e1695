package scene

import (
	"github.com/chewxy/math32"

	"mesh-viewer/math"
)

// BuildCylinder generates the open barrel of a unit-radius cylinder centred
// on the origin along the Y axis, spanning y in [-height/2, height/2].
// No caps are generated.
//
// Vertices are stored in (top, bottom) pairs, one pair per column. The first
// column is repeated at the end with U=0 instead of U=1 so a wrapped texture
// has no seam; that column is only ever the far edge of the last quad.
//
// The inputs are not validated. numSegments below 1 yields an empty mesh and
// fewer than 3 gives a flat, degenerate barrel. A negative height flips the
// barrel upside down.
func BuildCylinder(numSegments int, height float32) *Mesh {
	if numSegments < 1 {
		return NewMesh("Cylinder", nil, nil, nil, nil)
	}

	columns := numSegments + 1
	positions := make([]math.Vec3, 0, 2*columns)
	normals := make([]math.Vec3, 0, 2*columns)
	uvs := make([]math.Vec2, 0, 2*columns)
	indices := make([]uint32, 0, 6*numSegments)

	angleIncrement := 2 * math32.Pi / float32(numSegments)
	halfHeight := height / 2

	for i := 0; i <= numSegments; i++ {
		angle := float32(i) * angleIncrement
		cosA := math32.Cos(angle)
		sinA := math32.Sin(angle)

		positions = append(positions,
			math.Vec3{X: cosA, Y: halfHeight, Z: sinA},
			math.Vec3{X: cosA, Y: -halfHeight, Z: sinA},
		)

		// Radius is 1, so the radial direction is already unit length.
		normal := math.Vec3{X: cosA, Y: 0, Z: sinA}
		normals = append(normals, normal, normal)

		// U runs backwards so the texture is not mirrored; V=0 is the top.
		u := 1 - float32(i)/float32(numSegments)
		uvs = append(uvs, math.Vec2{X: u, Y: 0}, math.Vec2{X: u, Y: 1})
	}

	for col := 0; col < numSegments; col++ {
		top := uint32(col * 2)
		indices = append(indices, top, top+2, top+1)
		indices = append(indices, top+1, top+2, top+3)
	}

	return NewMesh("Cylinder", positions, normals, uvs, indices)
}
