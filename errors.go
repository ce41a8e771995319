package roadgeom

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction-time invariant violations.
var (
	// ErrDegenerateCurve indicates a curve whose length does not exceed its
	// tolerance.
	ErrDegenerateCurve = errors.New("roadgeom: curve length does not exceed tolerance")

	// ErrNonFiniteCoefficient indicates a non-finite polynomial coefficient
	// or geometric parameter.
	ErrNonFiniteCoefficient = errors.New("roadgeom: non-finite coefficient")

	// ErrNotEnoughVertices indicates that too few valid vertices remain
	// after input repair.
	ErrNotEnoughVertices = errors.New("roadgeom: not enough valid vertices")

	// ErrColinearVertices indicates that an outline's vertices span fewer
	// than two dimensions.
	ErrColinearVertices = errors.New("roadgeom: vertices are colinear")

	// ErrEmptyDomain indicates an empty or degenerate parameter domain.
	ErrEmptyDomain = errors.New("roadgeom: empty domain")

	// ErrDomainMismatch indicates member domains that do not fuzzily tile or
	// cover the required domain.
	ErrDomainMismatch = errors.New("roadgeom: domains do not match")

	// ErrToleranceMismatch indicates members of a composite object that do
	// not share one tolerance.
	ErrToleranceMismatch = errors.New("roadgeom: members do not share one tolerance")

	// ErrNonPositiveStep indicates a discretization step that is not a
	// finite, strictly positive number.
	ErrNonPositiveStep = errors.New("roadgeom: step must be finite and positive")

	// ErrUnboundedDomain indicates an operation that requires a bounded
	// domain was given an unbounded one.
	ErrUnboundedDomain = errors.New("roadgeom: domain is unbounded")
)

// DomainError reports a curve position outside an object's domain beyond
// tolerance, or a request for an endpoint the domain does not have.
type DomainError struct {
	Position float64
	Domain   Interval
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("roadgeom: position %g outside domain %v", e.Position, e.Domain)
}

// TriangulationError reports a linear ring that could not be decomposed
// into faces.
type TriangulationError struct {
	Reason string
}

func (e *TriangulationError) Error() string {
	return "roadgeom: triangulation failed: " + e.Reason
}

// IssueKind enumerates the non-fatal input repairs the kernel applies.
type IssueKind uint8

const (
	DroppedClosingVertex IssueKind = iota
	DroppedDuplicateVertex
	DroppedRedundantVertex
	ReversedOrientation
	DroppedDegenerateRing
)

func (k IssueKind) String() string {
	switch k {
	case DroppedClosingVertex:
		return "dropped closing vertex"
	case DroppedDuplicateVertex:
		return "dropped duplicate vertex"
	case DroppedRedundantVertex:
		return "dropped redundant vertex"
	case ReversedOrientation:
		return "reversed orientation"
	case DroppedDegenerateRing:
		return "dropped degenerate ring"
	default:
		return fmt.Sprintf("IssueKind(%d)", k)
	}
}

// Issue records a non-fatal repair applied to input geometry during
// construction. Index refers to the position in the caller's input at which
// the repair took place.
type Issue struct {
	Kind  IssueKind
	Index int
}

func (i Issue) String() string {
	return fmt.Sprintf("%v at index %d", i.Kind, i.Index)
}
