package common

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a point or direction in world space. Arithmetic goes through
// mgl64; the named fields keep YAML specs and literals readable.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Vec3Zero  = Vec3{}
	Vec3One   = Vec3{1, 1, 1}
	Vec3Right = Vec3{1, 0, 0}
	Vec3Up    = Vec3{0, 1, 0}
	Vec3Fwd   = Vec3{0, 0, 1}
)

func Vec3From(v mgl64.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3From(v.Mgl().Add(o.Mgl()))
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3From(v.Mgl().Sub(o.Mgl()))
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3From(v.Mgl().Mul(s))
}

// Mul multiplies component-wise.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3From(mgl64.Diag3(o.Mgl()).Mul3x1(v.Mgl()))
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.Mgl().Dot(o.Mgl())
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3From(v.Mgl().Cross(o.Mgl()))
}

func (v Vec3) Length() float64 {
	return v.Mgl().Len()
}

// Distance returns the euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
