package roadgeom

import (
	"fmt"
	"math"
)

// Arc2 is a circular arc segment with constant curvature, parameterized by
// arc length. Its local frame is anchored at the arc's start, heading along
// the positive x axis; positive curvature bends towards positive y.
type Arc2 struct {
	curvature float64
	domain    Interval
	tolerance float64
	affine    Affine
}

var _ Curve2 = Arc2{}

// NewArc2 returns the arc with the given constant curvature and length,
// placed by the given affine transform. The curvature must be fuzzily
// non-zero (a zero-curvature arc is a line segment) and the length must
// exceed the tolerance.
func NewArc2(curvature, length, tolerance float64, affine Affine) (Arc2, error) {
	if !allFinite(curvature, length) || !affine.IsFinite() {
		return Arc2{}, fmt.Errorf("%w: curvature %g, length %g", ErrNonFiniteCoefficient, curvature, length)
	}
	if FuzzyZero(curvature, tolerance) {
		return Arc2{}, fmt.Errorf("%w: curvature %g", ErrDegenerateCurve, curvature)
	}
	domain := ClosedInterval(0, length)
	if err := validCurveDomain(domain, tolerance); err != nil {
		return Arc2{}, fmt.Errorf("%w: length %g", err, length)
	}
	return Arc2{
		curvature: curvature,
		domain:    domain,
		tolerance: tolerance,
		affine:    affine,
	}, nil
}

func (a Arc2) Domain() Interval   { return a.domain }
func (a Arc2) Tolerance() float64 { return a.tolerance }
func (a Arc2) Affine() Affine     { return a.affine }

// Curvature returns the arc's constant curvature. Its reciprocal is the
// signed radius.
func (a Arc2) Curvature() float64 { return a.curvature }

func (a Arc2) EvalUnbounded(position float64) Point {
	th := position * a.curvature
	sin, cos := math.Sincos(th)
	return Pt(sin/a.curvature, (1-cos)/a.curvature)
}

func (a Arc2) TangentUnbounded(position float64) float64 {
	return position * a.curvature
}
