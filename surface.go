package roadgeom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Surface3 describes a curve-relative surface: every point is addressed by
// a curve position along a reference line plus a lateral and a height
// offset in the local frame at that position.
type Surface3 interface {
	Domain() Interval
	Tolerance() float64

	// EvalUnbounded returns the global-frame point at the given curve
	// position, lateral offset, and height offset, without checking the
	// domain.
	EvalUnbounded(position, lateral, height float64) mgl64.Vec3
}

// SweptSurface3 sweeps the pose frame of a reference line: lateral offsets
// run along the local y axis, height offsets along the local z axis. Road
// carriageways are modeled this way, with lanes as offset curves riding on
// the swept surface of the road's reference line.
type SweptSurface3 struct {
	reference PoseCurve3
}

var _ Surface3 = SweptSurface3{}

// NewSweptSurface3 returns the surface swept by the reference line's pose
// frame. The reference curve's domain must be bounded with a length
// exceeding its tolerance.
func NewSweptSurface3(reference PoseCurve3) (SweptSurface3, error) {
	if err := validCurveDomain(reference.Domain(), reference.Tolerance()); err != nil {
		return SweptSurface3{}, fmt.Errorf("reference line: %w", err)
	}
	return SweptSurface3{reference: reference}, nil
}

func (s SweptSurface3) Domain() Interval   { return s.reference.Domain() }
func (s SweptSurface3) Tolerance() float64 { return s.reference.Tolerance() }

func (s SweptSurface3) EvalUnbounded(position, lateral, height float64) mgl64.Vec3 {
	return s.reference.PoseUnbounded(position).Transform().Transform(V3(0, lateral, height))
}

// IsoCurve returns the curve traced on the surface at a fixed lateral and
// height offset.
func (s SweptSurface3) IsoCurve(lateral, height float64, tolerance float64) (CurveOnSurface3, error) {
	lat, err := NewConstantFn(lateral, UnboundedInterval(0), tolerance)
	if err != nil {
		return CurveOnSurface3{}, err
	}
	h, err := NewConstantFn(height, UnboundedInterval(0), tolerance)
	if err != nil {
		return CurveOnSurface3{}, err
	}
	return NewCurveOnSurface3(s, lat, h)
}

// CurveOnSurface3 is a spatial curve defined by a base surface, a lateral
// offset function, and a height offset function. Its domain is the
// intersection of the base surface's domain and both offset function
// domains.
type CurveOnSurface3 struct {
	base    Surface3
	lateral Fn
	height  Fn
	domain  Interval
}

var _ Curve3 = CurveOnSurface3{}

// NewCurveOnSurface3 returns the offset curve on the base surface.
// Construction fails if the intersected domain is empty or degenerate.
func NewCurveOnSurface3(base Surface3, lateral, height Fn) (CurveOnSurface3, error) {
	domain, ok := base.Domain().Intersect(lateral.Domain())
	if ok {
		domain, ok = domain.Intersect(height.Domain())
	}
	if !ok {
		return CurveOnSurface3{}, fmt.Errorf("%w: offset function domains do not overlap surface domain %v",
			ErrEmptyDomain, base.Domain())
	}
	if err := validCurveDomain(domain, base.Tolerance()); err != nil {
		return CurveOnSurface3{}, fmt.Errorf("intersected domain %v: %w", domain, err)
	}
	return CurveOnSurface3{base: base, lateral: lateral, height: height, domain: domain}, nil
}

func (c CurveOnSurface3) Domain() Interval   { return c.domain }
func (c CurveOnSurface3) Tolerance() float64 { return c.base.Tolerance() }

func (c CurveOnSurface3) EvalUnbounded(position float64) mgl64.Vec3 {
	return c.base.EvalUnbounded(position,
		c.lateral.EvalUnbounded(position),
		c.height.EvalUnbounded(position))
}
