package roadgeom

import (
	"fmt"
	"sort"
)

// Concatenation stitches an ordered list of locally defined members, such
// as curves or functions, into one object addressable by a single global
// curve position. Every piecewise kind in this package is a thin layer
// over it.
//
// Each member owns an absolute sub-domain and an absolute start offset; the
// sub-domains must fuzzily tile the total domain with no gaps or overlaps
// beyond tolerance. Member lookup is a binary search over the sorted
// sub-domain ends.
type Concatenation[M any] struct {
	members   []M
	domains   []Interval
	starts    []float64
	total     Interval
	tolerance float64
}

// NewConcatenation returns a container over the given members. domains[i]
// is the absolute sub-domain owned by members[i] and starts[i] its absolute
// start offset. Construction fails if the three lists differ in length, are
// empty, or the sub-domains do not fuzzily tile the total domain.
func NewConcatenation[M any](members []M, domains []Interval, starts []float64, tolerance float64) (*Concatenation[M], error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: no members", ErrDomainMismatch)
	}
	if len(members) != len(domains) || len(members) != len(starts) {
		return nil, fmt.Errorf("%w: %d members, %d domains, %d starts",
			ErrDomainMismatch, len(members), len(domains), len(starts))
	}
	for i, d := range domains {
		if !d.IsBounded() {
			return nil, fmt.Errorf("%w: sub-domain %d is unbounded", ErrDomainMismatch, i)
		}
		if i > 0 {
			prev, _ := domains[i-1].UpperEndpoint()
			if !FuzzyEquals(prev, d.LowerEndpoint(), tolerance) {
				return nil, fmt.Errorf("%w: gap or overlap between sub-domains %d and %d (%g vs %g)",
					ErrDomainMismatch, i-1, i, prev, d.LowerEndpoint())
			}
		}
		if !FuzzyEquals(starts[i], d.LowerEndpoint(), tolerance) {
			return nil, fmt.Errorf("%w: start %d (%g) does not match sub-domain lower endpoint %g",
				ErrDomainMismatch, i, starts[i], d.LowerEndpoint())
		}
	}
	upper, _ := domains[len(domains)-1].UpperEndpoint()
	c := &Concatenation[M]{
		members:   append([]M(nil), members...),
		domains:   append([]Interval(nil), domains...),
		starts:    append([]float64(nil), starts...),
		total:     ClosedInterval(domains[0].LowerEndpoint(), upper),
		tolerance: tolerance,
	}
	return c, nil
}

// Total returns the overall domain covered by the container.
func (c *Concatenation[M]) Total() Interval { return c.total }

// Tolerance returns the tolerance shared by all members.
func (c *Concatenation[M]) Tolerance() float64 { return c.tolerance }

// Len returns the number of members.
func (c *Concatenation[M]) Len() int { return len(c.members) }

// At returns member i and its absolute sub-domain.
func (c *Concatenation[M]) At(i int) (M, Interval) {
	return c.members[i], c.domains[i]
}

// Select locates the member whose absolute sub-domain contains the global
// position and returns it together with the position rebased to the
// member's local parameter (globalPosition − memberStart).
//
// A position exactly on the boundary shared by two members resolves to the
// later member; the final point of the total domain resolves to the last
// member. A position outside the total domain beyond tolerance yields a
// [DomainError].
func (c *Concatenation[M]) Select(globalPosition float64) (M, float64, error) {
	if !c.total.FuzzyContains(globalPosition, c.tolerance) {
		var zero M
		return zero, 0, &DomainError{Position: globalPosition, Domain: c.total}
	}
	i := sort.Search(len(c.domains), func(i int) bool {
		end, _ := c.domains[i].UpperEndpoint()
		return globalPosition < end
	})
	if i == len(c.domains) {
		// At or fuzzily beyond the final point of the total domain: the
		// last member owns it.
		i = len(c.domains) - 1
	}
	return c.members[i], globalPosition - c.starts[i], nil
}

// selectSaturated is Select without the domain check: positions outside the
// total domain are delegated to the first or last member. Unbounded
// evaluation paths use it after bounded callers have already vetted the
// position.
func (c *Concatenation[M]) selectSaturated(globalPosition float64) (M, float64) {
	member, local, err := c.Select(globalPosition)
	if err == nil {
		return member, local
	}
	if globalPosition < c.total.LowerEndpoint() {
		return c.members[0], globalPosition - c.starts[0]
	}
	last := len(c.members) - 1
	return c.members[last], globalPosition - c.starts[last]
}
