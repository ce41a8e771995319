package roadgeom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// curveDomains derives absolute sub-domains and start offsets for members
// addressed consecutively by their own lengths.
func curveDomains(lengths []float64) (domains []Interval, starts []float64) {
	sums := cumulativeSum(lengths)
	domains = make([]Interval, len(lengths))
	for i := range lengths {
		domains[i] = ClosedInterval(sums[i], sums[i+1])
	}
	return domains, sums[:len(lengths)]
}

// CompositeCurve2 concatenates planar curves end to end into one curve
// addressed by a global curve position. Member lookup delegates to the
// [Concatenation] container; each member evaluates in its own local frame
// and places itself via its own affine transform, so the composite's affine
// is the identity.
type CompositeCurve2 struct {
	concat    *Concatenation[Curve2]
	tolerance float64
}

var _ Curve2 = CompositeCurve2{}

// NewCompositeCurve2 returns the composite of the given members, laid out
// consecutively by their lengths. All members must share the given
// tolerance.
func NewCompositeCurve2(members []Curve2, tolerance float64) (CompositeCurve2, error) {
	lengths := make([]float64, len(members))
	for i, m := range members {
		if m.Tolerance() != tolerance {
			return CompositeCurve2{}, fmt.Errorf("%w: member %d has tolerance %g, want %g",
				ErrToleranceMismatch, i, m.Tolerance(), tolerance)
		}
		lengths[i] = m.Domain().Length()
	}
	domains, starts := curveDomains(lengths)
	concat, err := NewConcatenation(members, domains, starts, tolerance)
	if err != nil {
		return CompositeCurve2{}, err
	}
	return CompositeCurve2{concat: concat, tolerance: tolerance}, nil
}

func (c CompositeCurve2) Domain() Interval   { return c.concat.Total() }
func (c CompositeCurve2) Tolerance() float64 { return c.tolerance }
func (c CompositeCurve2) Affine() Affine     { return Identity }

func (c CompositeCurve2) EvalUnbounded(position float64) Point {
	member, local := c.concat.selectSaturated(position)
	return member.EvalUnbounded(local).Transform(member.Affine())
}

func (c CompositeCurve2) TangentUnbounded(position float64) float64 {
	member, local := c.concat.selectSaturated(position)
	return member.TangentUnbounded(local) + member.Affine().RotationAngle()
}

// filterDuplicateVertices drops consecutive fuzzy-duplicate entries,
// reporting one [Issue] per dropped vertex. equal decides fuzzy equality of
// neighbors.
func filterDuplicateVertices[V any](vertices []V, equal func(a, b V) bool) ([]V, []Issue) {
	var issues []Issue
	out := make([]V, 0, len(vertices))
	for i, v := range vertices {
		if i > 0 && equal(out[len(out)-1], v) {
			issues = append(issues, Issue{Kind: DroppedDuplicateVertex, Index: i})
			continue
		}
		out = append(out, v)
	}
	return out, issues
}

// LineString2 is a planar polyline over a raw vertex list, addressed by
// cumulative arc length.
type LineString2 struct {
	vertices  []Point
	composite CompositeCurve2
}

var _ Curve2 = LineString2{}

// NewLineString2 returns the polyline through the given vertices.
// Consecutive fuzzy-duplicate vertices are filtered out before segment
// derivation; each removal is reported as an [Issue]. At least two distinct
// vertices must remain.
func NewLineString2(vertices []Point, tolerance float64) (LineString2, []Issue, error) {
	kept, issues := filterDuplicateVertices(vertices, func(a, b Point) bool {
		return a.FuzzyEquals(b, tolerance)
	})
	if len(kept) < 2 {
		return LineString2{}, issues, fmt.Errorf("%w: %d distinct vertices", ErrNotEnoughVertices, len(kept))
	}
	members := make([]Curve2, len(kept)-1)
	for i := range members {
		seg, err := NewLineSegment2(kept[i], kept[i+1], tolerance)
		if err != nil {
			return LineString2{}, issues, fmt.Errorf("segment %d: %w", i, err)
		}
		members[i] = seg
	}
	composite, err := NewCompositeCurve2(members, tolerance)
	if err != nil {
		return LineString2{}, issues, err
	}
	return LineString2{vertices: kept, composite: composite}, issues, nil
}

func (l LineString2) Domain() Interval   { return l.composite.Domain() }
func (l LineString2) Tolerance() float64 { return l.composite.Tolerance() }
func (l LineString2) Affine() Affine     { return Identity }

// Vertices returns the polyline's vertices after duplicate filtering.
func (l LineString2) Vertices() []Point {
	return append([]Point(nil), l.vertices...)
}

func (l LineString2) EvalUnbounded(position float64) Point {
	return l.composite.EvalUnbounded(position)
}

func (l LineString2) TangentUnbounded(position float64) float64 {
	return l.composite.TangentUnbounded(position)
}

// LineString3 is a spatial polyline over a raw vertex list, addressed by
// cumulative arc length.
type LineString3 struct {
	vertices  []mgl64.Vec3
	concat    *Concatenation[Curve3]
	tolerance float64
}

var _ Curve3 = LineString3{}

// NewLineString3 returns the polyline through the given vertices.
// Consecutive fuzzy-duplicate vertices are filtered out before segment
// derivation; each removal is reported as an [Issue]. At least two distinct
// vertices must remain.
func NewLineString3(vertices []mgl64.Vec3, tolerance float64) (LineString3, []Issue, error) {
	kept, issues := filterDuplicateVertices(vertices, func(a, b mgl64.Vec3) bool {
		return Vec3FuzzyEquals(a, b, tolerance)
	})
	if len(kept) < 2 {
		return LineString3{}, issues, fmt.Errorf("%w: %d distinct vertices", ErrNotEnoughVertices, len(kept))
	}
	members := make([]Curve3, len(kept)-1)
	lengths := make([]float64, len(kept)-1)
	for i := range members {
		seg, err := NewLineSegment3(kept[i], kept[i+1], tolerance)
		if err != nil {
			return LineString3{}, issues, fmt.Errorf("segment %d: %w", i, err)
		}
		members[i] = seg
		lengths[i] = seg.Domain().Length()
	}
	domains, starts := curveDomains(lengths)
	concat, err := NewConcatenation(members, domains, starts, tolerance)
	if err != nil {
		return LineString3{}, issues, err
	}
	return LineString3{vertices: kept, concat: concat, tolerance: tolerance}, issues, nil
}

func (l LineString3) Domain() Interval   { return l.concat.Total() }
func (l LineString3) Tolerance() float64 { return l.tolerance }

// Vertices returns the polyline's vertices after duplicate filtering.
func (l LineString3) Vertices() []mgl64.Vec3 {
	return append([]mgl64.Vec3(nil), l.vertices...)
}

func (l LineString3) EvalUnbounded(position float64) mgl64.Vec3 {
	member, local := l.concat.selectSaturated(position)
	return member.EvalUnbounded(local)
}
