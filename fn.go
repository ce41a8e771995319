package roadgeom

import "fmt"

// Fn describes a univariate function over a parameter domain. Road
// profiles such as lane widths, elevation, and superelevation arrive as
// such functions and feed the offset and lifting curve kinds.
type Fn interface {
	Domain() Interval
	Tolerance() float64

	// EvalUnbounded returns the function value at x without checking the
	// domain.
	EvalUnbounded(x float64) float64
}

// EvalFnBounded evaluates the function at x, failing with a [DomainError]
// if x lies outside the function's domain beyond tolerance.
func EvalFnBounded(f Fn, x float64) (float64, error) {
	if err := checkDomain(f.Domain(), x, f.Tolerance()); err != nil {
		return 0, err
	}
	return f.EvalUnbounded(x), nil
}

// ConstantFn is a function with a constant value.
type ConstantFn struct {
	value     float64
	domain    Interval
	tolerance float64
}

var _ Fn = ConstantFn{}

// NewConstantFn returns the constant function over the given domain.
func NewConstantFn(value float64, domain Interval, tolerance float64) (ConstantFn, error) {
	if !isFinite(value) {
		return ConstantFn{}, fmt.Errorf("%w: %g", ErrNonFiniteCoefficient, value)
	}
	return ConstantFn{value: value, domain: domain, tolerance: tolerance}, nil
}

func (f ConstantFn) Domain() Interval                { return f.domain }
func (f ConstantFn) Tolerance() float64              { return f.tolerance }
func (f ConstantFn) EvalUnbounded(x float64) float64 { return f.value }

// LinearFn is a function of the form intercept + slope·x.
type LinearFn struct {
	intercept, slope float64
	domain           Interval
	tolerance        float64
}

var _ Fn = LinearFn{}

// NewLinearFn returns the linear function over the given domain.
func NewLinearFn(intercept, slope float64, domain Interval, tolerance float64) (LinearFn, error) {
	if !allFinite(intercept, slope) {
		return LinearFn{}, fmt.Errorf("%w: %g + %g·x", ErrNonFiniteCoefficient, intercept, slope)
	}
	return LinearFn{intercept: intercept, slope: slope, domain: domain, tolerance: tolerance}, nil
}

func (f LinearFn) Domain() Interval                { return f.domain }
func (f LinearFn) Tolerance() float64              { return f.tolerance }
func (f LinearFn) EvalUnbounded(x float64) float64 { return f.intercept + f.slope*x }

// CubicFn is a degree-3 polynomial function, coefficients constant term
// first.
type CubicFn struct {
	coeffs    [4]float64
	domain    Interval
	tolerance float64
}

var _ Fn = CubicFn{}

// NewCubicFn returns the cubic polynomial function over the given domain.
// Construction requires exactly four finite coefficients.
func NewCubicFn(coeffs [4]float64, domain Interval, tolerance float64) (CubicFn, error) {
	if !allFinite(coeffs[:]...) {
		return CubicFn{}, fmt.Errorf("%w: %v", ErrNonFiniteCoefficient, coeffs)
	}
	return CubicFn{coeffs: coeffs, domain: domain, tolerance: tolerance}, nil
}

func (f CubicFn) Domain() Interval                { return f.domain }
func (f CubicFn) Tolerance() float64              { return f.tolerance }
func (f CubicFn) EvalUnbounded(x float64) float64 { return horner(f.coeffs, x) }

// ConcatFn is a piecewise function built on the [Concatenation] container:
// members are evaluated at the global position rebased to their local
// parameter.
type ConcatFn struct {
	concat    *Concatenation[Fn]
	tolerance float64
}

var _ Fn = ConcatFn{}

// NewConcatFn returns the piecewise function over the given members, their
// absolute sub-domains, and absolute start offsets. Validation follows
// [NewConcatenation].
func NewConcatFn(members []Fn, domains []Interval, starts []float64, tolerance float64) (ConcatFn, error) {
	concat, err := NewConcatenation(members, domains, starts, tolerance)
	if err != nil {
		return ConcatFn{}, err
	}
	return ConcatFn{concat: concat, tolerance: tolerance}, nil
}

func (f ConcatFn) Domain() Interval   { return f.concat.Total() }
func (f ConcatFn) Tolerance() float64 { return f.tolerance }

func (f ConcatFn) EvalUnbounded(x float64) float64 {
	member, local := f.concat.selectSaturated(x)
	return member.EvalUnbounded(local)
}
