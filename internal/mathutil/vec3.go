package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float32

// Splat3 returns a vector with all components set to s.
func Splat3(s float32) Vec3 {
	return Vec3{s, s, s}
}

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Rcp returns the per-component reciprocal. A zero component maps to
// MaxFloat carrying the zero's sign, so the result is always finite.
func (v Vec3) Rcp() Vec3 {
	return Vec3{rcp(v[0]), rcp(v[1]), rcp(v[2])}
}

func rcp(x float32) float32 {
	if x == 0 {
		if math.Signbit(float64(x)) {
			return -MaxFloat
		}
		return MaxFloat
	}
	return 1 / x
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return a.Add(b.Neg())
}

// Mul multiplies elementwise.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Div divides elementwise as a * b.Rcp().
func (a Vec3) Div(b Vec3) Vec3 {
	return a.Mul(b.Rcp())
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// MaxComponent returns the largest of the three components.
func (v Vec3) MaxComponent() float32 {
	return max(v[0], v[1], v[2])
}

// MinComponent returns the smallest of the three components.
func (v Vec3) MinComponent() float32 {
	return min(v[0], v[1], v[2])
}

// Min3 returns the componentwise minimum.
func Min3(a, b Vec3) Vec3 {
	return Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

// Max3 returns the componentwise maximum.
func Max3(a, b Vec3) Vec3 {
	return Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}

// Clamp3 limits every component of v to [lo, hi].
func Clamp3(v, lo, hi Vec3) Vec3 {
	return Max3(Min3(v, hi), lo)
}
