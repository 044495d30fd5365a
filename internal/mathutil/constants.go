package mathutil

import "math"

// MaxFloat is the largest finite float32. It doubles as the "no hit"
// distance and as the reciprocal of zero.
const MaxFloat float32 = math.MaxFloat32

// World axes.
var (
	AxisX = Vec3{1, 0, 0}
	AxisY = Vec3{0, 1, 0}
	AxisZ = Vec3{0, 0, 1}
)
