package math

import "math"

// Quaternion represents a unit quaternion W + X*i + Y*j + Z*k describing
// the orientation of the co-precessing orbital frame. Sequences of frame
// quaternions are spline-interpolated component-wise during resampling, so
// instances are not guaranteed to be normalized; Rotate renormalizes.
type Quaternion struct {
	W, X, Y, Z float64
}

// FromAxisAngle builds the quaternion for a rotation of angle radians about
// the given axis.
func FromAxisAngle(axis Vector3, angle float64) Quaternion {
	a := axis.Normalize()
	s, c := math.Sincos(angle * 0.5)
	return Quaternion{W: c, X: a.X * s, Y: a.Y * s, Z: a.Z * s}
}

// Mul returns the Hamilton product q*other.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
}

// Conjugate returns the quaternion conjugate.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Norm returns the quaternion norm.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns the unit quaternion in the same direction.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n == 0 {
		return Quaternion{W: 1}
	}
	return Quaternion{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
}

// Rotate applies the rotation described by q to v: q v q^-1, after
// renormalizing q.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	u := q.Normalize()
	p := Quaternion{X: v.X, Y: v.Y, Z: v.Z}
	r := u.Mul(p).Mul(u.Conjugate())
	return Vector3{X: r.X, Y: r.Y, Z: r.Z}
}

// ZAxis returns the rotated z unit vector, the orbital angular momentum
// direction when q tracks the co-precessing frame.
func (q Quaternion) ZAxis() Vector3 {
	return q.Rotate(Vector3{Z: 1})
}
