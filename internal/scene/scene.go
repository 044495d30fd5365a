// Package scene holds the voxel list and the metadata the camera is fitted to.
package scene

import (
	"voxel-raycaster/internal/geom"
	"voxel-raycaster/internal/mathutil"
)

// Scene is an ordered list of voxels. Order decides which of two voxels hit
// at exactly the same distance is kept (the earlier one).
type Scene []geom.Voxel

// Default returns the two overlapping voxels rendered by the presets.
func Default() Scene {
	return Scene{
		{Min: mathutil.Vec3{-.75, -.75, -.75}, Max: mathutil.Vec3{.25, .25, .25}},
		{Min: mathutil.Vec3{-.25, -.25, -.25}, Max: mathutil.Vec3{.75, .75, .75}},
	}
}

// Meta is the scene bounding box and the values derived from it.
type Meta struct {
	BBox      geom.Box
	Centre    mathutil.Vec3
	Extent    mathutil.Vec3
	MaxExtent float32
}

// ComputeMeta reduces the scene to its bounding box.
func (s Scene) ComputeMeta() Meta {
	bb := geom.Bounds(s)
	ext := bb.Extent()
	return Meta{
		BBox:      bb,
		Centre:    bb.Center(),
		Extent:    ext,
		MaxExtent: ext.MaxComponent(),
	}
}

// Trace returns the closest hit of ray over all voxels. A later voxel
// replaces the current hit only when strictly closer.
func (s Scene) Trace(ray geom.Ray) geom.Hit {
	closest := geom.Miss
	for i := range s {
		if h := geom.Intersect(s[i], ray); h.Dist < closest.Dist {
			closest = h
		}
	}
	return closest
}
