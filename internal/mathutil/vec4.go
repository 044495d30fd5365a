package mathutil

// Vec4 is a homogeneous matrix row. Only the elementwise algebra needed by
// Mat4 is provided.
type Vec4 [4]float32

// Splat4 returns a vector with all components set to s.
func Splat4(s float32) Vec4 {
	return Vec4{s, s, s, s}
}

func (v Vec4) Neg() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Vec4) Sub(b Vec4) Vec4 {
	return a.Add(b.Neg())
}

// Mul multiplies elementwise.
func (a Vec4) Mul(b Vec4) Vec4 {
	return Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (v Vec4) Scale(s float32) Vec4 {
	return v.Mul(Splat4(s))
}

// XYZ drops the homogeneous component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
