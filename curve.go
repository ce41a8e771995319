package roadgeom

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Curve2 describes a planar curve parameterized by a curve position: an
// arc-length-like coordinate measured from the curve's start.
//
// EvalUnbounded and TangentUnbounded evaluate in the curve's local frame
// without checking the domain; they are the raw mapping used internally by
// composition. Callers evaluate through [EvalBounded2] and [PoseBounded2],
// which check the domain fuzzily and place the result into the global plane
// via the curve's affine transform.
type Curve2 interface {
	Domain() Interval
	Tolerance() float64
	Affine() Affine

	// EvalUnbounded returns the local-frame point at the given curve
	// position.
	EvalUnbounded(position float64) Point
	// TangentUnbounded returns the local-frame tangent angle in radians at
	// the given curve position.
	TangentUnbounded(position float64) float64
}

// Curve3 describes a spatial curve parameterized by a curve position.
// Unlike [Curve2], spatial curves evaluate directly in the global frame:
// their placement is baked into the kinds that compose them.
type Curve3 interface {
	Domain() Interval
	Tolerance() float64

	// EvalUnbounded returns the global-frame point at the given curve
	// position without checking the domain.
	EvalUnbounded(position float64) mgl64.Vec3
}

// PoseCurve3 is a spatial curve that additionally carries an orientation at
// every curve position.
type PoseCurve3 interface {
	Curve3
	// PoseUnbounded returns the global-frame pose at the given curve
	// position without checking the domain.
	PoseUnbounded(position float64) Pose3
}

// Pose2 is a planar position with a heading angle in radians.
type Pose2 struct {
	Point Point
	Angle float64
}

// Pose3 is a spatial position with an orientation.
type Pose3 struct {
	Point    mgl64.Vec3
	Rotation Rotation3
}

// Transform returns the rigid transform mapping the pose's local frame into
// the global frame.
func (p Pose3) Transform() Affine3 {
	return NewAffine3(p.Rotation, p.Point)
}

// Length returns the length of the curve's domain.
func Length(c interface{ Domain() Interval }) float64 {
	return c.Domain().Length()
}

// checkDomain validates the position against the domain under the given
// tolerance.
func checkDomain(domain Interval, position, tolerance float64) error {
	if !domain.FuzzyContains(position, tolerance) {
		return &DomainError{Position: position, Domain: domain}
	}
	return nil
}

// EvalBounded2 evaluates the curve at the given position and places the
// result into the global plane. It returns a [DomainError] if the position
// lies outside the curve's domain beyond tolerance.
func EvalBounded2(c Curve2, position float64) (Point, error) {
	if err := checkDomain(c.Domain(), position, c.Tolerance()); err != nil {
		return Point{}, err
	}
	return c.EvalUnbounded(position).Transform(c.Affine()), nil
}

// PoseBounded2 evaluates the curve's global-frame pose (point plus tangent
// heading) at the given position.
func PoseBounded2(c Curve2, position float64) (Pose2, error) {
	if err := checkDomain(c.Domain(), position, c.Tolerance()); err != nil {
		return Pose2{}, err
	}
	return Pose2{
		Point: c.EvalUnbounded(position).Transform(c.Affine()),
		Angle: c.TangentUnbounded(position) + c.Affine().RotationAngle(),
	}, nil
}

// EvalBounded3 evaluates the spatial curve at the given position. It
// returns a [DomainError] if the position lies outside the curve's domain
// beyond tolerance.
func EvalBounded3(c Curve3, position float64) (mgl64.Vec3, error) {
	if err := checkDomain(c.Domain(), position, c.Tolerance()); err != nil {
		return mgl64.Vec3{}, err
	}
	return c.EvalUnbounded(position), nil
}

// PoseBounded3 evaluates the spatial curve's pose at the given position.
func PoseBounded3(c PoseCurve3, position float64) (Pose3, error) {
	if err := checkDomain(c.Domain(), position, c.Tolerance()); err != nil {
		return Pose3{}, err
	}
	return c.PoseUnbounded(position), nil
}

// Discretize2 samples the curve at the given step size into a global-frame
// vertex chain, always including both endpoints.
func Discretize2(c Curve2, step float64) ([]Point, error) {
	positions, err := c.Domain().Arrange(step, true, c.Tolerance())
	if err != nil {
		return nil, err
	}
	var points []Point
	for pos := range positions {
		points = append(points, c.EvalUnbounded(pos).Transform(c.Affine()))
	}
	return points, nil
}

// Discretize3 samples the spatial curve at the given step size into a
// vertex chain, always including both endpoints.
func Discretize3(c Curve3, step float64) ([]mgl64.Vec3, error) {
	positions, err := c.Domain().Arrange(step, true, c.Tolerance())
	if err != nil {
		return nil, err
	}
	var points []mgl64.Vec3
	for pos := range positions {
		points = append(points, c.EvalUnbounded(pos))
	}
	return points, nil
}

// validCurveDomain checks the construction invariant shared by all curve
// kinds: a bounded domain whose length exceeds the tolerance.
func validCurveDomain(domain Interval, tolerance float64) error {
	if !domain.IsBounded() {
		return ErrUnboundedDomain
	}
	if domain.Length() <= tolerance {
		return ErrDegenerateCurve
	}
	return nil
}
