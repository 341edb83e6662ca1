package math

import (
	"math"
	"testing"
)

func vecClose(t *testing.T, got, want Vector3, tol float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol ||
		math.Abs(got.Y-want.Y) > tol ||
		math.Abs(got.Z-want.Z) > tol {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFromAxisAngleRotate(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vector3
		angle float64
		in    Vector3
		want  Vector3
	}{
		{
			name:  "quarter turn about z",
			axis:  Vector3{Z: 1},
			angle: math.Pi / 2,
			in:    Vector3{X: 1},
			want:  Vector3{Y: 1},
		},
		{
			name:  "half turn about x",
			axis:  Vector3{X: 1},
			angle: math.Pi,
			in:    Vector3{Y: 1},
			want:  Vector3{Y: -1},
		},
		{
			name:  "full turn is identity",
			axis:  Vector3{X: 1, Y: 1, Z: 1},
			angle: 2 * math.Pi,
			in:    Vector3{X: 0.3, Y: -0.4, Z: 0.5},
			want:  Vector3{X: 0.3, Y: -0.4, Z: 0.5},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := FromAxisAngle(tc.axis, tc.angle)
			vecClose(t, q.Rotate(tc.in), tc.want, 1e-12)
		})
	}
}

func TestRotateRenormalizes(t *testing.T) {
	// A scaled quaternion must rotate, not scale-and-rotate. This is the
	// contract that keeps component-wise spline interpolation safe.
	q := FromAxisAngle(Vector3{Z: 1}, math.Pi/3)
	scaled := Quaternion{W: 2 * q.W, X: 2 * q.X, Y: 2 * q.Y, Z: 2 * q.Z}
	vecClose(t, scaled.Rotate(Vector3{X: 1}), q.Rotate(Vector3{X: 1}), 1e-12)
}

func TestMulComposesRotations(t *testing.T) {
	a := FromAxisAngle(Vector3{Z: 1}, math.Pi/2)
	b := FromAxisAngle(Vector3{X: 1}, math.Pi/2)
	// a.Mul(b) applies b first, then a: y goes to z under b, and z is
	// fixed by the z-axis rotation a.
	got := a.Mul(b).Rotate(Vector3{Y: 1})
	want := a.Rotate(b.Rotate(Vector3{Y: 1}))
	vecClose(t, got, want, 1e-12)
	vecClose(t, got, Vector3{Z: 1}, 1e-12)
}

func TestConjugateInverts(t *testing.T) {
	q := FromAxisAngle(Vector3{X: 1, Y: 2, Z: -1}, 0.77)
	v := Vector3{X: 0.1, Y: 0.2, Z: 0.3}
	vecClose(t, q.Conjugate().Rotate(q.Rotate(v)), v, 1e-12)
}

func TestNormalize(t *testing.T) {
	q := Quaternion{W: 3, X: 4}
	u := q.Normalize()
	if math.Abs(u.Norm()-1) > 1e-15 {
		t.Errorf("norm after Normalize: got %g", u.Norm())
	}
	zero := Quaternion{}
	if got := zero.Normalize(); got != (Quaternion{W: 1}) {
		t.Errorf("zero quaternion should normalize to identity, got %+v", got)
	}
}

func TestZAxis(t *testing.T) {
	// Tilting the frame by beta about y carries z to
	// (sin beta, 0, cos beta).
	beta := 0.25
	q := FromAxisAngle(Vector3{Y: 1}, beta)
	vecClose(t, q.ZAxis(), Vector3{X: math.Sin(beta), Z: math.Cos(beta)}, 1e-12)
}
