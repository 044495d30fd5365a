package viewmatrix

import (
	"voxel-raycaster/internal/mathutil"
	"voxel-raycaster/internal/scene"
)

// Params places the camera. Angles are in radians.
type Params struct {
	Roll        float64       // about +Z
	Azimuth     float64       // about +Y
	Declination float64       // about +X
	Position    mathutil.Vec3 // eye position before the scene fit
}

// Rotation returns R(roll, Z) × R(azimuth, Y) × R(declination, X).
func (p Params) Rotation() mathutil.Mat4 {
	return mathutil.RotZ(p.Roll).
		Mul(mathutil.RotY(p.Azimuth)).
		Mul(mathutil.RotX(p.Declination))
}

// InverseView builds the camera-to-world matrix fitted to the scene:
//
//	eye × rotᵀ × zoomAndPan
//
// The forward transform is pan × zoom × rot × eye; rotations are
// orthonormal, so the transpose stands in for the inverse. The order is
// part of the contract: swapping factors renders a different view.
func InverseView(meta scene.Meta, p Params) mathutil.Mat4 {
	eye := mathutil.Translation(p.Position)
	zoomAndPan := mathutil.Mat4Diag(meta.MaxExtent, meta.Centre)
	return eye.Mul(p.Rotation().Transpose()).Mul(zoomAndPan)
}

// Camera is the basis rays are generated from.
type Camera struct {
	Right   mathutil.Vec3
	Up      mathutil.Vec3 // aspect corrected
	Forward mathutil.Vec3 // flipped: rows point backwards
	Origin  mathutil.Vec3
}

// NewCamera extracts the ray basis from an inverse view matrix for a
// width×height image.
func NewCamera(inv mathutil.Mat4, width, height int) Camera {
	return Camera{
		Right:   inv.Row3(0),
		Up:      inv.Row3(1).Mul(mathutil.Splat3(float32(height) / float32(width))),
		Forward: inv.Row3(2).Mul(mathutil.Splat3(-1)),
		Origin:  inv.Row3(3),
	}
}

// ComputeCamera fits a camera to s and returns its basis.
func ComputeCamera(s scene.Scene, p Params, width, height int) Camera {
	return NewCamera(InverseView(s.ComputeMeta(), p), width, height)
}

// Direction returns the un-normalised ray direction through normalised
// device coordinates (ndcX, ndcY).
func (c Camera) Direction(ndcX, ndcY float32) mathutil.Vec3 {
	return c.Right.Scale(ndcX).
		Add(c.Up.Scale(ndcY)).
		Add(c.Forward)
}
