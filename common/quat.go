package common

import "github.com/go-gl/mathgl/mgl64"

// Quat is a rotation quaternion. The zero value is not a valid rotation; use
// QuatIdentity.
type Quat struct {
	X, Y, Z, W float64
}

var QuatIdentity = QuatFrom(mgl64.QuatIdent())

func QuatFrom(q mgl64.Quat) Quat {
	return Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

func (q Quat) Mgl() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// QuatAxisAngle returns a rotation of rad radians around axis.
func QuatAxisAngle(axis Vec3, rad float64) Quat {
	if axis.Length() == 0 {
		return QuatIdentity
	}
	return QuatFrom(mgl64.QuatRotate(rad, axis.Mgl().Normalize()))
}

// QuatEuler builds a rotation from euler angles in degrees. Rotations apply
// around Z first, then X, then Y.
func QuatEuler(deg Vec3) Quat {
	return QuatFrom(mgl64.AnglesToQuat(
		mgl64.DegToRad(deg.Y),
		mgl64.DegToRad(deg.X),
		mgl64.DegToRad(deg.Z),
		mgl64.YXZ,
	))
}

// Mul returns q*o, the rotation that applies o first and then q.
func (q Quat) Mul(o Quat) Quat {
	return QuatFrom(q.Mgl().Mul(o.Mgl()))
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	return Vec3From(q.Mgl().Rotate(v.Mgl()))
}

func (q Quat) IsZero() bool {
	return q == Quat{}
}
