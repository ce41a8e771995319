package roadgeom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func liftedLine(t *testing.T, height, torsion float64) LiftedCurve3 {
	t.Helper()
	planar, err := NewLineSegment2(Pt(0, 0), Pt(10, 0), DefaultTolerance)
	require.NoError(t, err)
	h, err := NewConstantFn(height, UnboundedInterval(0), DefaultTolerance)
	require.NoError(t, err)
	tor, err := NewConstantFn(torsion, UnboundedInterval(0), DefaultTolerance)
	require.NoError(t, err)
	lifted, err := NewLiftedCurve3(planar, h, tor)
	require.NoError(t, err)
	return lifted
}

func TestLiftedCurve3Eval(t *testing.T) {
	lifted := liftedLine(t, 5, 0.1)
	diff(t, 10.0, lifted.Domain().Length())

	got, err := EvalBounded3(lifted, 3)
	require.NoError(t, err)
	diff(t, V3(3, 0, 5), got, cmpopts.EquateApprox(0, 1e-12))
}

func TestLiftedCurve3Pose(t *testing.T) {
	lifted := liftedLine(t, 5, 0.1)

	pose, err := PoseBounded3(lifted, 3)
	require.NoError(t, err)
	diff(t, V3(3, 0, 5), pose.Point, cmpopts.EquateApprox(0, 1e-12))
	if !pose.Rotation.FuzzyEquals(Rotation3{Heading: 0, Pitch: 0, Roll: 0.1}, 1e-12) {
		t.Errorf("got rotation %+v", pose.Rotation)
	}
}

func TestLiftedCurve3HeadingFollowsPlanarTangent(t *testing.T) {
	planar, err := NewLineSegment2(Pt(0, 0), Pt(0, 8), DefaultTolerance)
	require.NoError(t, err)
	h, err := NewLinearFn(0, 0.5, UnboundedInterval(0), DefaultTolerance)
	require.NoError(t, err)
	tor, err := NewConstantFn(0, UnboundedInterval(0), DefaultTolerance)
	require.NoError(t, err)
	lifted, err := NewLiftedCurve3(planar, h, tor)
	require.NoError(t, err)

	pose, err := PoseBounded3(lifted, 4)
	require.NoError(t, err)
	diff(t, V3(0, 4, 2), pose.Point, cmpopts.EquateApprox(0, 1e-12))
	if !FuzzyEquals(pose.Rotation.Heading, math.Pi/2, 1e-12) {
		t.Errorf("got heading %g, want %g", pose.Rotation.Heading, math.Pi/2)
	}
}

func TestLiftedCurve3RejectsShortFnDomains(t *testing.T) {
	planar, err := NewLineSegment2(Pt(0, 0), Pt(10, 0), DefaultTolerance)
	require.NoError(t, err)
	short, err := NewConstantFn(1, ClosedInterval(0, 5), DefaultTolerance)
	require.NoError(t, err)
	full, err := NewConstantFn(1, ClosedInterval(0, 10), DefaultTolerance)
	require.NoError(t, err)

	_, err = NewLiftedCurve3(planar, short, full)
	require.ErrorIs(t, err, ErrDomainMismatch)

	_, err = NewLiftedCurve3(planar, full, short)
	require.ErrorIs(t, err, ErrDomainMismatch)

	_, err = NewLiftedCurve3(planar, full, full)
	require.NoError(t, err)
}
