package mathutil

import "math"

// RotationMatrix returns the rotation by the angle with the given sine and
// cosine about the axis (x, y, z). The axis must already be unit length.
func RotationMatrix(sin, cos, x, y, z float32) Mat4 {
	return Mat4{
		{x*x + cos*(1-x*x), x*y - cos*(x*y) + sin*z, x*z - cos*(x*z) - sin*y, 0},
		{y*x - cos*(y*x) - sin*z, y*y + cos*(1-y*y), y*z - cos*(y*z) + sin*x, 0},
		{z*x - cos*(z*x) + sin*y, z*y - cos*(z*y) - sin*x, z*z + cos*(1-z*z), 0},
		{0, 0, 0, 1},
	}
}

// Rotate returns RotationMatrix for angle a (radians) about a unit axis.
func Rotate(a float64, axis Vec3) Mat4 {
	s, c := math.Sincos(a)
	return RotationMatrix(float32(s), float32(c), axis[0], axis[1], axis[2])
}

// RotX returns a rotation around the X axis. Angle in radians.
func RotX(a float64) Mat4 { return Rotate(a, AxisX) }

// RotY returns a rotation around the Y axis.
func RotY(a float64) Mat4 { return Rotate(a, AxisY) }

// RotZ returns a rotation around the Z axis.
func RotZ(a float64) Mat4 { return Rotate(a, AxisZ) }

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
