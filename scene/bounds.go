package scene

import "mesh-viewer/math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

func computeBounds(positions []math.Vec3) AABB {
	if len(positions) == 0 {
		return AABB{}
	}
	box := AABB{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}
