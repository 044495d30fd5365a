package geom

import "voxel-raycaster/internal/mathutil"

// Hit is the result of a ray/box test. Dist is MaxFloat on a miss.
// A and B record which slab supplied the entry boundary:
//
//	B && A   X slab
//	B && !A  Y slab
//	!B       Z slab
type Hit struct {
	Dist float32
	A    bool
	B    bool
}

// Miss is the "no intersection" hit.
var Miss = Hit{Dist: mathutil.MaxFloat}

// IsHit reports whether h is an actual intersection.
func (h Hit) IsHit() bool {
	return h.Dist != mathutil.MaxFloat
}

// Normal returns the unit normal of the entry face. Only the axis is
// recovered; the sign is always positive.
func (h Hit) Normal() mathutil.Vec3 {
	switch {
	case h.B && h.A:
		return mathutil.AxisX
	case h.B:
		return mathutil.AxisY
	default:
		return mathutil.AxisZ
	}
}

// Intersect runs the slab test of ray against box. The box is hit when
// 0 < entry < exit; a ray starting inside the box reports a miss.
func Intersect(box Box, ray Ray) Hit {
	t0 := box.Min.Sub(ray.Origin).Mul(ray.RcpDir)
	t1 := box.Max.Sub(ray.Origin).Mul(ray.RcpDir)

	axialMin := mathutil.Min3(t0, t1)
	axialMax := mathutil.Max3(t0, t1)

	a := axialMin[0] >= axialMin[1]
	b := max(axialMin[0], axialMin[1]) >= axialMin[2]

	entry := axialMin.MaxComponent()
	exit := axialMax.MinComponent()

	dist := mathutil.MaxFloat
	if 0 < entry && entry < exit {
		dist = entry
	}
	return Hit{Dist: dist, A: a, B: b}
}
