package roadgeom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation3 is a spatial orientation given as heading (about z), pitch
// (about y), and roll (about x), applied in that order.
type Rotation3 struct {
	Heading float64
	Pitch   float64
	Roll    float64
}

// Quat returns the orientation as a quaternion.
func (r Rotation3) Quat() mgl64.Quat {
	return mgl64.AnglesToQuat(r.Heading, r.Pitch, r.Roll, mgl64.ZYX)
}

// FuzzyEquals reports whether all three angles of r and o differ by at most
// tolerance.
func (r Rotation3) FuzzyEquals(o Rotation3, tolerance float64) bool {
	return FuzzyEquals(r.Heading, o.Heading, tolerance) &&
		FuzzyEquals(r.Pitch, o.Pitch, tolerance) &&
		FuzzyEquals(r.Roll, o.Roll, tolerance)
}

// Affine3 is a rigid spatial transform: a rotation followed by a
// translation. The inverse is computed eagerly at construction, so both
// directions of transformation are cheap and the value stays immutable.
type Affine3 struct {
	mat mgl64.Mat4
	inv mgl64.Mat4
}

// Identity3 is the identity transform.
var Identity3 = Affine3{mat: mgl64.Ident4(), inv: mgl64.Ident4()}

// NewAffine3 returns the transform that rotates by rotation and then
// translates by translation. It maps the local frame anchored at the given
// pose into the global frame.
func NewAffine3(rotation Rotation3, translation mgl64.Vec3) Affine3 {
	rot := rotation.Quat().Mat4()
	mat := mgl64.Translate3D(translation[0], translation[1], translation[2]).Mul4(rot)
	// Rigid inverse: transposed rotation, negated rotated translation.
	invRot := rot.Transpose()
	it := invRot.Mul4x1(mgl64.Vec4{-translation[0], -translation[1], -translation[2], 1})
	inv := invRot
	inv[12], inv[13], inv[14] = it[0], it[1], it[2]
	return Affine3{mat: mat, inv: inv}
}

// Translation3 returns a pure translation by v.
func Translation3(v mgl64.Vec3) Affine3 {
	return NewAffine3(Rotation3{}, v)
}

// RotationOnly3 returns a pure rotation.
func RotationOnly3(r Rotation3) Affine3 {
	return NewAffine3(r, mgl64.Vec3{})
}

// Mul composes the two transforms: the result applies o first, then a.
func (a Affine3) Mul(o Affine3) Affine3 {
	return Affine3{
		mat: a.mat.Mul4(o.mat),
		inv: o.inv.Mul4(a.inv),
	}
}

// Transform applies the transform to the point p.
func (a Affine3) Transform(p mgl64.Vec3) mgl64.Vec3 {
	return a.mat.Mul4x1(p.Vec4(1)).Vec3()
}

// InverseTransform applies the inverse of the transform to the point p.
func (a Affine3) InverseTransform(p mgl64.Vec3) mgl64.Vec3 {
	return a.inv.Mul4x1(p.Vec4(1)).Vec3()
}

// Invert returns the inverse transform.
func (a Affine3) Invert() Affine3 {
	return Affine3{mat: a.inv, inv: a.mat}
}

// Translation returns the translation component of the transform.
func (a Affine3) Translation() mgl64.Vec3 {
	return mgl64.Vec3{a.mat[12], a.mat[13], a.mat[14]}
}

// ExtractRotation returns the transform with its translation removed,
// isolating the rotational component.
func (a Affine3) ExtractRotation() Affine3 {
	mat := a.mat
	mat[12], mat[13], mat[14] = 0, 0, 0
	inv := mat.Transpose()
	return Affine3{mat: mat, inv: inv}
}

// Rotation returns the heading/pitch/roll angles of the rotational
// component.
func (a Affine3) Rotation() Rotation3 {
	// ZYX Tait-Bryan extraction from the column-major rotation block.
	sinPitch := -a.mat[2]
	if sinPitch > 1 {
		sinPitch = 1
	} else if sinPitch < -1 {
		sinPitch = -1
	}
	return Rotation3{
		Heading: math.Atan2(a.mat[1], a.mat[0]),
		Pitch:   math.Asin(sinPitch),
		Roll:    math.Atan2(a.mat[6], a.mat[10]),
	}
}

// AffineSequence3 is an ordered chain of rigid transforms. Each subsequent
// transform is expressed in the frame established by the previous one, so
// solving the chain composes them left to right.
type AffineSequence3 struct {
	transforms []Affine3
}

// NewAffineSequence3 returns the sequence of the given transforms. An empty
// sequence behaves as identity.
func NewAffineSequence3(transforms ...Affine3) AffineSequence3 {
	ts := make([]Affine3, len(transforms))
	copy(ts, transforms)
	return AffineSequence3{transforms: ts}
}

// Solve folds the ordered transform list into one effective transform.
func (s AffineSequence3) Solve() Affine3 {
	out := Identity3
	for _, t := range s.transforms {
		out = out.Mul(t)
	}
	return out
}

// Transform applies the solved chain to the point p.
func (s AffineSequence3) Transform(p mgl64.Vec3) mgl64.Vec3 {
	return s.Solve().Transform(p)
}

// InverseTransform applies the inverse of the solved chain to the point p.
func (s AffineSequence3) InverseTransform(p mgl64.Vec3) mgl64.Vec3 {
	return s.Solve().InverseTransform(p)
}
