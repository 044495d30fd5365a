package geom

import "voxel-raycaster/internal/mathutil"

// Ray stores the reciprocal of its direction; the slab test only needs 1/d.
type Ray struct {
	Origin mathutil.Vec3
	RcpDir mathutil.Vec3
}

var (
	rcpLo = mathutil.Splat3(-mathutil.MaxFloat / 2)
	rcpHi = mathutil.Splat3(mathutil.MaxFloat / 2)
)

// NewRay builds a ray from an origin and a (not necessarily unit) direction.
// The reciprocal direction is clamped to ±MaxFloat/2 so axis-aligned
// directions stay finite.
func NewRay(origin, dir mathutil.Vec3) Ray {
	return Ray{
		Origin: origin,
		RcpDir: mathutil.Clamp3(dir.Rcp(), rcpLo, rcpHi),
	}
}
