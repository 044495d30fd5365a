package raster

import (
	"voxel-raycaster/internal/geom"
	"voxel-raycaster/internal/mathutil"
)

// Shader turns the closest hit of a pixel's ray into a pixel record.
type Shader interface {
	Format() Format
	// Shade writes Format().RecordSize() bytes to dst. h may be geom.Miss.
	Shade(h geom.Hit, dst []uint8)
	Name() string
}

// NormalShader colours a hit by its entry face axis: n*0.5+0.5 as RGB.
// Misses are black.
type NormalShader struct{}

func (NormalShader) Format() Format { return RGB }
func (NormalShader) Name() string   { return "normal" }

func (NormalShader) Shade(h geom.Hit, dst []uint8) {
	if !h.IsHit() {
		dst[0], dst[1], dst[2] = 0, 0, 0
		return
	}
	c := h.Normal().Mul(mathutil.Splat3(.5)).Add(mathutil.Splat3(.5))
	dst[0] = uint8(c[0] * 255)
	dst[1] = uint8(c[1] * 255)
	dst[2] = uint8(c[2] * 255)
}

// DefaultDistanceScale is the distance mapped to full white.
const DefaultDistanceScale = 4

// DistanceShader maps hit distance to gray: clamp(d/Scale, 0, 1) * 255.
// Misses are 0. A zero Scale uses DefaultDistanceScale.
type DistanceShader struct {
	Scale float32
}

func (DistanceShader) Format() Format { return Gray }
func (DistanceShader) Name() string   { return "distance" }

func (s DistanceShader) Shade(h geom.Hit, dst []uint8) {
	if !h.IsHit() {
		dst[0] = 0
		return
	}
	scale := s.Scale
	if scale == 0 {
		scale = DefaultDistanceScale
	}
	v := min(max(h.Dist/scale, 0), 1)
	dst[0] = uint8(v * 255)
}

// ShaderByName returns the shading policy with the given name.
func ShaderByName(name string) (Shader, bool) {
	switch name {
	case "normal":
		return NormalShader{}, true
	case "distance":
		return DistanceShader{Scale: DefaultDistanceScale}, true
	}
	return nil, false
}
