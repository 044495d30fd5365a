package mathutil

// Mat4 is a 4×4 matrix stored as four rows. Vectors multiply it from the
// left (row vectors), so translations live in row 3.
type Mat4 [4]Vec4

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4Diag returns diag(s, s, s, 1) with t in the translation row.
func Mat4Diag(s float32, t Vec3) Mat4 {
	return Mat4{
		{s, 0, 0, 0},
		{0, s, 0, 0},
		{0, 0, s, 0},
		{t[0], t[1], t[2], 1},
	}
}

// Translation returns the identity with t in the translation row.
func Translation(t Vec3) Mat4 {
	return Mat4Diag(1, t)
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

// Mul returns m × b. Row i of the result is the combination of b's rows
// weighted by row i of m.
func (m Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		r[i] = b[0].Scale(m[i][0]).
			Add(b[1].Scale(m[i][1])).
			Add(b[2].Scale(m[i][2])).
			Add(b[3].Scale(m[i][3]))
	}
	return r
}

// MulPoint transforms the point v (w=1) as v × m.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	r := m[0].Mul(Splat4(v[0])).
		Add(m[1].Mul(Splat4(v[1]))).
		Add(m[2].Mul(Splat4(v[2]))).
		Add(m[3])
	return r.XYZ()
}

// Row3 returns row i without its homogeneous component.
func (m Mat4) Row3(i int) Vec3 {
	return m[i].XYZ()
}

// ApproxEqual reports whether every element of m and b differs by at most eps.
func (m Mat4) ApproxEqual(b Mat4, eps float32) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			d := m[r][c] - b[r][c]
			if d > eps || d < -eps {
				return false
			}
		}
	}
	return true
}
