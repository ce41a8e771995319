package roadgeom

import (
	"fmt"
	"math"
)

// horner evaluates the degree-3 polynomial with the given coefficients
// (constant term first) at t.
func horner(c [4]float64, t float64) float64 {
	return c[0] + t*(c[1]+t*(c[2]+t*c[3]))
}

// hornerDeriv evaluates the derivative of the degree-3 polynomial at t.
func hornerDeriv(c [4]float64, t float64) float64 {
	return c[1] + t*(2*c[2]+t*3*c[3])
}

// Cubic2 is a planar curve y = a + b·x + c·x² + d·x³ over x in [0, length],
// placed by an affine transform. The curve position doubles as the local x
// coordinate.
type Cubic2 struct {
	coeffs    [4]float64
	domain    Interval
	tolerance float64
	affine    Affine
}

var _ Curve2 = Cubic2{}

// NewCubic2 returns the cubic polynomial curve with the given coefficients
// (constant term first). Construction requires exactly four finite
// coefficients and a finite length exceeding the tolerance.
func NewCubic2(coeffs [4]float64, length, tolerance float64, affine Affine) (Cubic2, error) {
	if !allFinite(coeffs[:]...) || !isFinite(length) || !affine.IsFinite() {
		return Cubic2{}, fmt.Errorf("%w: %v", ErrNonFiniteCoefficient, coeffs)
	}
	domain := ClosedInterval(0, length)
	if err := validCurveDomain(domain, tolerance); err != nil {
		return Cubic2{}, fmt.Errorf("%w: length %g", err, length)
	}
	return Cubic2{
		coeffs:    coeffs,
		domain:    domain,
		tolerance: tolerance,
		affine:    affine,
	}, nil
}

func (c Cubic2) Domain() Interval   { return c.domain }
func (c Cubic2) Tolerance() float64 { return c.tolerance }
func (c Cubic2) Affine() Affine     { return c.affine }

// Coefficients returns the polynomial coefficients, constant term first.
func (c Cubic2) Coefficients() [4]float64 { return c.coeffs }

func (c Cubic2) EvalUnbounded(position float64) Point {
	return Pt(position, horner(c.coeffs, position))
}

func (c Cubic2) TangentUnbounded(position float64) float64 {
	return math.Atan(hornerDeriv(c.coeffs, position))
}

// ParamCubic2 is a planar curve with independent cubic polynomials for x(t)
// and y(t), placed by an affine transform.
type ParamCubic2 struct {
	xCoeffs, yCoeffs [4]float64
	domain           Interval
	tolerance        float64
	affine           Affine
}

var _ Curve2 = ParamCubic2{}

// NewParamCubic2 returns the parametric cubic curve with the given
// coefficient sets (constant terms first). Construction requires exactly
// four finite coefficients per axis and a finite length exceeding the
// tolerance.
func NewParamCubic2(xCoeffs, yCoeffs [4]float64, length, tolerance float64, affine Affine) (ParamCubic2, error) {
	if !allFinite(xCoeffs[:]...) || !allFinite(yCoeffs[:]...) || !isFinite(length) || !affine.IsFinite() {
		return ParamCubic2{}, fmt.Errorf("%w: x %v, y %v", ErrNonFiniteCoefficient, xCoeffs, yCoeffs)
	}
	domain := ClosedInterval(0, length)
	if err := validCurveDomain(domain, tolerance); err != nil {
		return ParamCubic2{}, fmt.Errorf("%w: length %g", err, length)
	}
	return ParamCubic2{
		xCoeffs:   xCoeffs,
		yCoeffs:   yCoeffs,
		domain:    domain,
		tolerance: tolerance,
		affine:    affine,
	}, nil
}

func (c ParamCubic2) Domain() Interval   { return c.domain }
func (c ParamCubic2) Tolerance() float64 { return c.tolerance }
func (c ParamCubic2) Affine() Affine     { return c.affine }

func (c ParamCubic2) EvalUnbounded(position float64) Point {
	return Pt(horner(c.xCoeffs, position), horner(c.yCoeffs, position))
}

func (c ParamCubic2) TangentUnbounded(position float64) float64 {
	return math.Atan2(hornerDeriv(c.yCoeffs, position), hornerDeriv(c.xCoeffs, position))
}
