package app

import (
	"github.com/chewxy/math32"

	"mesh-viewer/core"
	"mesh-viewer/math"
)

// CameraEye places the eye at the configured distance from the origin,
// raised by the elevation angle, looking along -Z.
func CameraEye(c core.CameraConfig) math.Vec3 {
	e := math.DegToRad(c.Elevation)
	return math.Vec3{X: 0, Y: c.Distance * math32.Sin(e), Z: c.Distance * math32.Cos(e)}
}

// ViewProjection is the combined view and projection matrix for the
// configured camera at the given aspect ratio.
func ViewProjection(c core.CameraConfig, aspect float32) math.Mat4 {
	view := math.Mat4LookAt(CameraEye(c), math.Vec3Zero, math.Vec3Up)
	proj := math.Mat4Perspective(math.DegToRad(c.FOV), aspect, c.Near, c.Far)
	return view.Mul(proj)
}
