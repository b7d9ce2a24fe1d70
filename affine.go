package morph

import "math"

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Thus, in a Y-down coordinate
// system (as is common for graphics), it is a clockwise rotation.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateDegrees creates a rotation by deg degrees. Shape states store their
// rotation in degrees, so alignment goes through this helper.
func RotateDegrees(deg float64) Affine {
	return Rotate(deg * math.Pi / 180)
}

// RotateAbout creates an affine transform representing a rotation of th
// radians about center.
//
// See [Rotate] for more info.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate creates aff followed by a rotation of th.
//
// Equivalent to "Rotate(th) * aff"
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// TransformInPlace applies aff to every point in pts, overwriting the slice
// contents. Alignment uses this on working copies so the originals keep
// their local coordinates.
func TransformInPlace(pts []Point, aff Affine) {
	for i, pt := range pts {
		pts[i] = pt.Transform(aff)
	}
}
