package roadgeom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LinearRing is a closed loop of at least three vertices describing the
// boundary of a possibly non-planar polygon. Construction repairs messy
// real-world input (duplicated, redundant, or clockwise vertices) and
// reports every repair as an [Issue]; input that cannot be repaired into a
// valid loop is rejected.
//
// The stored vertex order is counter-clockwise about the loop's normal as
// seen from the positive side of its dominant axis.
type LinearRing struct {
	vertices  []mgl64.Vec3
	tolerance float64
	normal    mgl64.Vec3
	planar    bool
}

// NewLinearRing builds a ring from a raw vertex list. The pipeline drops a
// trailing vertex that fuzzily closes the loop, removes consecutive
// fuzzy-duplicate vertices, removes vertices lying on the segment between
// their neighbors within tolerance, and reverses clockwise loops. It fails
// if fewer than three vertices remain or the remaining vertices are
// colinear.
func NewLinearRing(vertices []mgl64.Vec3, tolerance float64) (LinearRing, []Issue, error) {
	var issues []Issue
	kept := append([]mgl64.Vec3(nil), vertices...)

	// De-close the loop.
	if len(kept) > 1 && Vec3FuzzyEquals(kept[0], kept[len(kept)-1], tolerance) {
		issues = append(issues, Issue{Kind: DroppedClosingVertex, Index: len(kept) - 1})
		kept = kept[:len(kept)-1]
	}

	kept, dupes := filterDuplicateVertices(kept, func(a, b mgl64.Vec3) bool {
		return Vec3FuzzyEquals(a, b, tolerance)
	})
	issues = append(issues, dupes...)

	// Remove vertices that are redundant because they lie between their
	// cyclic neighbors. Removal can expose new redundancy, so iterate
	// until stable.
	for changed := true; changed && len(kept) > 2; {
		changed = false
		for i := 0; i < len(kept) && len(kept) > 2; i++ {
			prev := kept[(i+len(kept)-1)%len(kept)]
			next := kept[(i+1)%len(kept)]
			if pointLineDistance(kept[i], prev, next) <= tolerance {
				issues = append(issues, Issue{Kind: DroppedRedundantVertex, Index: i})
				kept = append(kept[:i], kept[i+1:]...)
				changed = true
				i--
			}
		}
	}

	if len(kept) < 3 {
		return LinearRing{}, issues, fmt.Errorf("%w: %d after repair", ErrNotEnoughVertices, len(kept))
	}
	if spanRank(kept, tolerance) < 2 {
		return LinearRing{}, issues, fmt.Errorf("%w: %d vertices span a line", ErrColinearVertices, len(kept))
	}

	normal := newellNormal(kept)
	if normal.Len() == 0 {
		return LinearRing{}, issues, fmt.Errorf("%w: vanishing loop normal", ErrColinearVertices)
	}
	// Orient counter-clockwise about the dominant axis: a loop whose
	// Newell normal points into the negative half of its dominant axis is
	// clockwise when projected onto the reference plane.
	if normal[dominantAxis(normal)] < 0 {
		issues = append(issues, Issue{Kind: ReversedOrientation, Index: 0})
		for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
			kept[i], kept[j] = kept[j], kept[i]
		}
		normal = normal.Mul(-1)
	}
	unit := normal.Normalize()

	return LinearRing{
		vertices:  kept,
		tolerance: tolerance,
		normal:    unit,
		planar:    ringIsPlanar(kept, unit, tolerance),
	}, issues, nil
}

// dominantAxis returns the index of the component with the largest
// magnitude.
func dominantAxis(v mgl64.Vec3) int {
	axis := 0
	for i := 1; i < 3; i++ {
		if math.Abs(v[i]) > math.Abs(v[axis]) {
			axis = i
		}
	}
	return axis
}

func ringIsPlanar(vertices []mgl64.Vec3, unitNormal mgl64.Vec3, tolerance float64) bool {
	var centroid mgl64.Vec3
	for _, v := range vertices {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Mul(1 / float64(len(vertices)))
	for _, v := range vertices {
		if math.Abs(v.Sub(centroid).Dot(unitNormal)) > tolerance {
			return false
		}
	}
	return true
}

// Vertices returns the repaired, counter-clockwise vertex loop.
func (r LinearRing) Vertices() []mgl64.Vec3 {
	return append([]mgl64.Vec3(nil), r.vertices...)
}

// Tolerance returns the ring's tolerance.
func (r LinearRing) Tolerance() float64 { return r.tolerance }

// Normal returns the unit normal of the loop (Newell's method). For
// non-planar rings this is the normal of the best projection plane.
func (r LinearRing) Normal() mgl64.Vec3 { return r.normal }

// IsPlanar reports whether all vertices lie within tolerance of one plane.
// Triangulation does not require planarity.
func (r LinearRing) IsPlanar() bool { return r.planar }

// RingLadder builds one quadrilateral ring per adjacent vertex pair across
// two parallel chains of equal cardinality, e.g. the left and right
// boundary of a surface strip. Any invalid quad fails the whole ladder; see
// [TolerantRingLadder] for the variant that drops degenerate quads.
func RingLadder(left, right []mgl64.Vec3, tolerance float64) ([]LinearRing, []Issue, error) {
	if len(left) != len(right) {
		return nil, nil, fmt.Errorf("%w: chains of %d and %d vertices",
			ErrDomainMismatch, len(left), len(right))
	}
	if len(left) < 2 {
		return nil, nil, fmt.Errorf("%w: chains of %d vertices", ErrNotEnoughVertices, len(left))
	}
	rings := make([]LinearRing, 0, len(left)-1)
	var issues []Issue
	for i := 0; i+1 < len(left); i++ {
		ring, ringIssues, err := NewLinearRing(quadVertices(left, right, i), tolerance)
		issues = append(issues, ringIssues...)
		if err != nil {
			return nil, issues, fmt.Errorf("quad %d: %w", i, err)
		}
		rings = append(rings, ring)
	}
	return rings, issues, nil
}

// TolerantRingLadder is [RingLadder] for degenerate input: quads that
// collapse below three distinct, non-colinear vertices are dropped with an
// [Issue] instead of failing. It fails only if no valid ring remains.
func TolerantRingLadder(left, right []mgl64.Vec3, tolerance float64) ([]LinearRing, []Issue, error) {
	if len(left) != len(right) {
		return nil, nil, fmt.Errorf("%w: chains of %d and %d vertices",
			ErrDomainMismatch, len(left), len(right))
	}
	if len(left) < 2 {
		return nil, nil, fmt.Errorf("%w: chains of %d vertices", ErrNotEnoughVertices, len(left))
	}
	rings := make([]LinearRing, 0, len(left)-1)
	var issues []Issue
	for i := 0; i+1 < len(left); i++ {
		ring, ringIssues, err := NewLinearRing(quadVertices(left, right, i), tolerance)
		issues = append(issues, ringIssues...)
		if err != nil {
			issues = append(issues, Issue{Kind: DroppedDegenerateRing, Index: i})
			continue
		}
		rings = append(rings, ring)
	}
	if len(rings) == 0 {
		return nil, issues, fmt.Errorf("%w: no valid ring in ladder", ErrNotEnoughVertices)
	}
	return rings, issues, nil
}

func quadVertices(left, right []mgl64.Vec3, i int) []mgl64.Vec3 {
	return []mgl64.Vec3{left[i], right[i], right[i+1], left[i+1]}
}
