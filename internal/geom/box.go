package geom

import "voxel-raycaster/internal/mathutil"

// Box is an axis-aligned box with Min <= Max componentwise.
type Box struct {
	Min mathutil.Vec3
	Max mathutil.Vec3
}

// Voxel is a box used as a scene primitive.
type Voxel = Box

// Center returns the midpoint of the box.
func (b Box) Center() mathutil.Vec3 {
	return b.Max.Add(b.Min).Mul(mathutil.Splat3(.5))
}

// Extent returns the half-diagonal of the box.
func (b Box) Extent() mathutil.Vec3 {
	return b.Max.Sub(b.Min).Mul(mathutil.Splat3(.5))
}

// Contains reports whether p lies strictly inside the box.
func (b Box) Contains(p mathutil.Vec3) bool {
	for k := 0; k < 3; k++ {
		if p[k] <= b.Min[k] || p[k] >= b.Max[k] {
			return false
		}
	}
	return true
}

// Bounds returns the smallest box enclosing all boxes. For an empty list
// the result is inverted (Min = +MaxFloat, Max = -MaxFloat).
func Bounds(boxes []Box) Box {
	bb := Box{
		Min: mathutil.Splat3(mathutil.MaxFloat),
		Max: mathutil.Splat3(-mathutil.MaxFloat),
	}
	for _, b := range boxes {
		bb.Min = mathutil.Min3(bb.Min, b.Min)
		bb.Max = mathutil.Max3(bb.Max, b.Max)
	}
	return bb
}
