package mathutil

import "github.com/go-gl/mathgl/mgl64"

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return mgl64.DegToRad(d)
}

// HeadingFromAngles returns the unit view direction for a yaw measured in the
// horizontal plane from +X toward +Y and a pitch above the horizon. Degrees.
//
// Rz(yaw) @ Ry(-pitch) applied to +X.
func HeadingFromAngles(yaw, pitch float64) Vec3 {
	r := mgl64.Rotate3DZ(Deg2Rad(yaw)).Mul3(mgl64.Rotate3DY(-Deg2Rad(pitch)))
	return r.Mul3x1(Vec3{1, 0, 0})
}
