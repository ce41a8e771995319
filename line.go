package roadgeom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// LineSegment2 is a straight planar curve between two points, parameterized
// by arc length. Its local frame is anchored at the start point heading
// along the segment, so EvalUnbounded(s) is simply (s, 0).
type LineSegment2 struct {
	start, end Point
	domain     Interval
	tolerance  float64
	affine     Affine
}

var _ Curve2 = LineSegment2{}

// NewLineSegment2 returns the line segment from start to end. Construction
// fails if the two points are fuzzily equal.
func NewLineSegment2(start, end Point, tolerance float64) (LineSegment2, error) {
	if !start.IsFinite() || !end.IsFinite() {
		return LineSegment2{}, fmt.Errorf("%w: %v -> %v", ErrNonFiniteCoefficient, start, end)
	}
	if start.FuzzyEquals(end, tolerance) {
		return LineSegment2{}, fmt.Errorf("%w: %v -> %v", ErrDegenerateCurve, start, end)
	}
	dir := end.Sub(start)
	return LineSegment2{
		start:     start,
		end:       end,
		domain:    ClosedInterval(0, dir.Hypot()),
		tolerance: tolerance,
		affine:    PoseTransform(start, dir.Angle()),
	}, nil
}

func (l LineSegment2) Domain() Interval   { return l.domain }
func (l LineSegment2) Tolerance() float64 { return l.tolerance }
func (l LineSegment2) Affine() Affine     { return l.affine }

// Start returns the global start point.
func (l LineSegment2) Start() Point { return l.start }

// End returns the global end point.
func (l LineSegment2) End() Point { return l.end }

// Direction returns the normalized direction from start to end.
func (l LineSegment2) Direction() Vec2 {
	return l.end.Sub(l.start).Normalize()
}

func (l LineSegment2) EvalUnbounded(position float64) Point {
	return Pt(position, 0)
}

func (l LineSegment2) TangentUnbounded(position float64) float64 {
	return 0
}

// LineSegment3 is a straight spatial curve between two points,
// parameterized by arc length.
type LineSegment3 struct {
	start, end mgl64.Vec3
	dir        mgl64.Vec3
	domain     Interval
	tolerance  float64
}

var _ Curve3 = LineSegment3{}

// NewLineSegment3 returns the line segment from start to end. Construction
// fails if the two points are fuzzily equal.
func NewLineSegment3(start, end mgl64.Vec3, tolerance float64) (LineSegment3, error) {
	if !vec3IsFinite(start) || !vec3IsFinite(end) {
		return LineSegment3{}, fmt.Errorf("%w: %v -> %v", ErrNonFiniteCoefficient, start, end)
	}
	if Vec3FuzzyEquals(start, end, tolerance) {
		return LineSegment3{}, fmt.Errorf("%w: %v -> %v", ErrDegenerateCurve, start, end)
	}
	d := end.Sub(start)
	return LineSegment3{
		start:     start,
		end:       end,
		dir:       d.Normalize(),
		domain:    ClosedInterval(0, d.Len()),
		tolerance: tolerance,
	}, nil
}

func (l LineSegment3) Domain() Interval   { return l.domain }
func (l LineSegment3) Tolerance() float64 { return l.tolerance }

// Start returns the start point.
func (l LineSegment3) Start() mgl64.Vec3 { return l.start }

// End returns the end point.
func (l LineSegment3) End() mgl64.Vec3 { return l.end }

// Direction returns the normalized direction from start to end.
func (l LineSegment3) Direction() mgl64.Vec3 { return l.dir }

func (l LineSegment3) EvalUnbounded(position float64) mgl64.Vec3 {
	return l.start.Add(l.dir.Mul(position))
}
