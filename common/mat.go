package common

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a column-major homogeneous transform.
type Mat4 mgl64.Mat4

func Mat4Identity() Mat4 {
	return Mat4(mgl64.Ident4())
}

// Mat4Diagonal returns a scale matrix with s on the first three diagonal
// entries and 1 on the last.
func Mat4Diagonal(s Vec3) Mat4 {
	return Mat4(mgl64.Diag4(s.Mgl().Vec4(1)))
}

// MulPoint transforms p as a point (w = 1).
func (m Mat4) MulPoint(p Vec3) Vec3 {
	return Vec3From(mgl64.TransformCoordinate(p.Mgl(), mgl64.Mat4(m)))
}

// Diagonal returns the first three diagonal entries.
func (m Mat4) Diagonal() Vec3 {
	return Vec3From(mgl64.Mat4(m).Diag().Vec3())
}

func (m Mat4) At(row, col int) float64 {
	return mgl64.Mat4(m).At(row, col)
}
