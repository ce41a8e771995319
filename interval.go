package roadgeom

import (
	"fmt"
	"iter"
	"math"
)

// BoundType states whether an interval endpoint belongs to the interval.
type BoundType uint8

const (
	Closed BoundType = iota
	Open
)

func (b BoundType) String() string {
	if b == Open {
		return "open"
	}
	return "closed"
}

// Interval is a 1D parameter range. The lower endpoint is always finite;
// the upper endpoint may be unbounded. An interval of zero length is a
// valid, empty value.
type Interval struct {
	lower, upper           float64
	lowerBound, upperBound BoundType
}

// NewInterval returns the interval from lower to upper with the given bound
// types. lower must be finite and must not exceed upper; upper may be
// +infinity, in which case its bound type is forced open.
func NewInterval(lower, upper float64, lowerBound, upperBound BoundType) (Interval, error) {
	if !isFinite(lower) || math.IsNaN(upper) || math.IsInf(upper, -1) {
		return Interval{}, fmt.Errorf("%w: [%g, %g]", ErrNonFiniteCoefficient, lower, upper)
	}
	if lower > upper {
		return Interval{}, fmt.Errorf("%w: lower %g exceeds upper %g", ErrEmptyDomain, lower, upper)
	}
	if math.IsInf(upper, 1) {
		upperBound = Open
	}
	return Interval{lower, upper, lowerBound, upperBound}, nil
}

// ClosedInterval returns the closed interval [lower, upper]. It swaps the
// endpoints if given in reverse order.
func ClosedInterval(lower, upper float64) Interval {
	if lower > upper {
		lower, upper = upper, lower
	}
	return Interval{lower: lower, upper: upper}
}

// UnboundedInterval returns the interval [lower, ∞).
func UnboundedInterval(lower float64) Interval {
	return Interval{lower: lower, upper: math.Inf(1), upperBound: Open}
}

func (r Interval) String() string {
	lb, rb := "[", "]"
	if r.lowerBound == Open {
		lb = "("
	}
	if r.upperBound == Open {
		rb = ")"
	}
	return fmt.Sprintf("%s%g, %g%s", lb, r.lower, r.upper, rb)
}

// Length returns upper − lower. It is +infinity for unbounded intervals.
func (r Interval) Length() float64 {
	return r.upper - r.lower
}

// IsEmpty reports whether the interval has zero length.
func (r Interval) IsEmpty() bool {
	return r.upper == r.lower
}

// IsBounded reports whether the upper endpoint is finite.
func (r Interval) IsBounded() bool {
	return !math.IsInf(r.upper, 1)
}

// LowerEndpoint returns the lower endpoint, which is always bounded.
func (r Interval) LowerEndpoint() float64 {
	return r.lower
}

// UpperEndpoint returns the upper endpoint, or a [DomainError] if the
// interval is unbounded above.
func (r Interval) UpperEndpoint() (float64, error) {
	if !r.IsBounded() {
		return 0, &DomainError{Position: math.Inf(1), Domain: r}
	}
	return r.upper, nil
}

// Contains reports whether x lies in the interval, honoring the bound
// types exactly, without tolerance.
func (r Interval) Contains(x float64) bool {
	if x < r.lower || (x == r.lower && r.lowerBound == Open) {
		return false
	}
	if x > r.upper || (x == r.upper && r.upperBound == Open) {
		return false
	}
	return true
}

// FuzzyContains reports whether x lies in the interval with both bounds
// extended outward by tolerance. Bound types are ignored: fuzzy containment
// treats every endpoint as closed.
func (r Interval) FuzzyContains(x, tolerance float64) bool {
	return fuzzyGreaterEq(x, r.lower, tolerance) && fuzzyLessEq(x, r.upper, tolerance)
}

// FuzzyEncloses reports whether the interval fuzzily contains both
// endpoints of o. o must be bounded.
func (r Interval) FuzzyEncloses(o Interval, tolerance float64) bool {
	return o.IsBounded() &&
		r.FuzzyContains(o.lower, tolerance) &&
		r.FuzzyContains(o.upper, tolerance)
}

// Intersect returns the overlap of two intervals. The second return value
// is false if the intervals do not overlap at all. Bound types of the
// surviving endpoints are preserved.
func (r Interval) Intersect(o Interval) (Interval, bool) {
	out := r
	if o.lower > out.lower || (o.lower == out.lower && o.lowerBound == Open) {
		out.lower, out.lowerBound = o.lower, o.lowerBound
	}
	if o.upper < out.upper || (o.upper == out.upper && o.upperBound == Open) {
		out.upper, out.upperBound = o.upper, o.upperBound
	}
	if out.lower > out.upper {
		return Interval{}, false
	}
	return out, true
}

// Arrange returns a lazy, finite sequence of sample positions spaced by
// step, starting at the lower endpoint. The lower endpoint is always
// included (unless the interval is empty); the upper endpoint is included
// only if includeEnd is true, in which case the final spacing may be
// shorter than step. A sample that would land within tolerance of the
// upper endpoint is dropped in favor of the endpoint itself.
//
// step must be finite and > 0, and the interval must be bounded. The
// returned sequence is single-use.
func (r Interval) Arrange(step float64, includeEnd bool, tolerance float64) (iter.Seq[float64], error) {
	if !(step > 0) || !isFinite(step) {
		return nil, fmt.Errorf("%w: %g", ErrNonPositiveStep, step)
	}
	if !r.IsBounded() {
		return nil, fmt.Errorf("%w: %v", ErrUnboundedDomain, r)
	}
	lower, upper := r.lower, r.upper
	return func(yield func(float64) bool) {
		if upper == lower {
			return
		}
		for i := 0; ; i++ {
			pos := lower + float64(i)*step
			if i > 0 && pos > upper-tolerance {
				break
			}
			if !yield(pos) {
				return
			}
		}
		if includeEnd {
			yield(upper)
		}
	}, nil
}
