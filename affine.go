package roadgeom

import "math"

// Affine describes a planar affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v). Road primitives are defined
// in a local frame anchored at their start pose; an Affine built with
// [PoseTransform] places their evaluations into the global plane.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation by th radians
// about the origin. A positive angle rotates the positive x direction into
// positive y.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// PoseTransform creates the transform that maps the local frame anchored at
// the given position and heading into the global plane: a rotation by
// heading followed by a translation to position.
func PoseTransform(position Point, heading float64) Affine {
	return Translate(Vec2(position)).Mul(Rotate(heading))
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

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Translation returns the translation component of this affine
// transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}

// RotationAngle returns the rotation angle of the transform in radians,
// assuming the linear part is a pure rotation.
func (aff Affine) RotationAngle() float64 {
	return math.Atan2(aff.N1, aff.N0)
}

// FuzzyEquals reports whether all coefficients of aff and o differ by at
// most tolerance.
func (aff Affine) FuzzyEquals(o Affine, tolerance float64) bool {
	return FuzzyEquals(aff.N0, o.N0, tolerance) &&
		FuzzyEquals(aff.N1, o.N1, tolerance) &&
		FuzzyEquals(aff.N2, o.N2, tolerance) &&
		FuzzyEquals(aff.N3, o.N3, tolerance) &&
		FuzzyEquals(aff.N4, o.N4, tolerance) &&
		FuzzyEquals(aff.N5, o.N5, tolerance)
}

// IsFinite reports whether all coefficients are finite.
func (aff Affine) IsFinite() bool {
	return allFinite(aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5)
}
