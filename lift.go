package roadgeom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// LiftedCurve3 lifts a planar curve into space by combining it with a
// height function and a torsion function over the same curve positions. The
// pose at a position takes its heading from the planar tangent, its roll
// from the torsion value, and a pitch of zero.
type LiftedCurve3 struct {
	planar  Curve2
	height  Fn
	torsion Fn
}

var (
	_ Curve3     = LiftedCurve3{}
	_ PoseCurve3 = LiftedCurve3{}
)

// NewLiftedCurve3 returns the lifted curve. The height and torsion function
// domains must fuzzily cover the planar curve's domain.
func NewLiftedCurve3(planar Curve2, height, torsion Fn) (LiftedCurve3, error) {
	tol := planar.Tolerance()
	if !height.Domain().FuzzyEncloses(planar.Domain(), tol) {
		return LiftedCurve3{}, fmt.Errorf("%w: height domain %v does not cover curve domain %v",
			ErrDomainMismatch, height.Domain(), planar.Domain())
	}
	if !torsion.Domain().FuzzyEncloses(planar.Domain(), tol) {
		return LiftedCurve3{}, fmt.Errorf("%w: torsion domain %v does not cover curve domain %v",
			ErrDomainMismatch, torsion.Domain(), planar.Domain())
	}
	return LiftedCurve3{planar: planar, height: height, torsion: torsion}, nil
}

func (l LiftedCurve3) Domain() Interval   { return l.planar.Domain() }
func (l LiftedCurve3) Tolerance() float64 { return l.planar.Tolerance() }

func (l LiftedCurve3) EvalUnbounded(position float64) mgl64.Vec3 {
	p := l.planar.EvalUnbounded(position).Transform(l.planar.Affine())
	return V3(p.X, p.Y, l.height.EvalUnbounded(position))
}

func (l LiftedCurve3) PoseUnbounded(position float64) Pose3 {
	return Pose3{
		Point: l.EvalUnbounded(position),
		Rotation: Rotation3{
			Heading: l.planar.TangentUnbounded(position) + l.planar.Affine().RotationAngle(),
			Roll:    l.torsion.EvalUnbounded(position),
		},
	}
}
