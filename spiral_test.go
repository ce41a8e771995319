package roadgeom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestFresnel(t *testing.T) {
	c, s := Fresnel(0)
	diff(t, 0.0, c)
	diff(t, 0.0, s)

	c, s = Fresnel(1)
	diff(t, 0.7798934003768228, c, cmpopts.EquateApprox(0, 1e-12))
	diff(t, 0.4382591473903548, s, cmpopts.EquateApprox(0, 1e-12))

	c, s = Fresnel(5)
	diff(t, 0.5636311887040122, c, cmpopts.EquateApprox(0, 1e-9))
	diff(t, 0.4991913819171168, s, cmpopts.EquateApprox(0, 1e-9))
}

func TestFresnelOddSymmetry(t *testing.T) {
	for _, x := range []float64{0.25, 1, 2.5, 4} {
		pc, ps := Fresnel(x)
		nc, ns := Fresnel(-x)
		diff(t, -pc, nc)
		diff(t, -ps, ns)
	}
}

func TestSpiralStartPose(t *testing.T) {
	sp, err := NewSpiral2(0.01, 0.05, 30, DefaultTolerance, Identity)
	require.NoError(t, err)

	approx := cmpopts.EquateApprox(0, 1e-9)
	got, err := EvalBounded2(sp, 0)
	require.NoError(t, err)
	diff(t, Pt(0, 0), got, approx)

	pose, err := PoseBounded2(sp, 0)
	require.NoError(t, err)
	diff(t, 0.0, pose.Angle, approx)
}

func TestSpiralEndHeading(t *testing.T) {
	// The heading change over a clothoid of length L is κ₀·L + a·L²/2.
	sp, err := NewSpiral2(0.01, 0.05, 30, DefaultTolerance, Identity)
	require.NoError(t, err)

	pose, err := PoseBounded2(sp, 30)
	require.NoError(t, err)
	diff(t, 0.05*30+0.01*30*30/2, pose.Angle, cmpopts.EquateApprox(0, 1e-9))
}

func TestSpiralCurvature(t *testing.T) {
	sp, err := NewSpiral2(0.01, 0.05, 30, DefaultTolerance, Identity)
	require.NoError(t, err)

	diff(t, 0.05, sp.CurvatureStart())
	diff(t, 0.01, sp.CurvatureSlope())
	diff(t, 0.15, sp.CurvatureAt(10), cmpopts.EquateApprox(0, 1e-12))

	// The curvature is the derivative of the tangent angle.
	h := 1e-5
	numeric := (sp.TangentUnbounded(10+h) - sp.TangentUnbounded(10-h)) / (2 * h)
	diff(t, sp.CurvatureAt(10), numeric, cmpopts.EquateApprox(0, 1e-8))
}

func TestSpiralArcLengthParameterization(t *testing.T) {
	sp, err := NewSpiral2(0.02, 0, 40, DefaultTolerance, Identity)
	require.NoError(t, err)

	// The distance along small steps approximates the step itself.
	h := 1e-3
	for s := 0.0; s < 40; s += 5 {
		d := sp.EvalUnbounded(s + h).Distance(sp.EvalUnbounded(s))
		diff(t, h, d, cmpopts.EquateApprox(0, 1e-8))
	}
}

func TestSpiralNegativeSlope(t *testing.T) {
	pos, err := NewSpiral2(0.01, 0, 50, DefaultTolerance, Identity)
	require.NoError(t, err)
	neg, err := NewSpiral2(-0.01, 0, 50, DefaultTolerance, Identity)
	require.NoError(t, err)

	// Mirroring the curvature slope mirrors the curve about the x axis.
	approx := cmpopts.EquateApprox(0, 1e-9)
	for s := 0.0; s <= 50; s += 12.5 {
		p := pos.EvalUnbounded(s)
		n := neg.EvalUnbounded(s)
		diff(t, Pt(p.X, -p.Y), n, approx)
		diff(t, -pos.TangentUnbounded(s), neg.TangentUnbounded(s), approx)
	}
}

func TestSpiralPlaced(t *testing.T) {
	sp, err := NewSpiral2(0.01, 0, 50, DefaultTolerance, PoseTransform(Pt(1, 2), math.Pi/2))
	require.NoError(t, err)

	got, err := EvalBounded2(sp, 0)
	require.NoError(t, err)
	diff(t, Pt(1, 2), got, cmpopts.EquateApprox(0, 1e-9))

	pose, err := PoseBounded2(sp, 0)
	require.NoError(t, err)
	diff(t, math.Pi/2, pose.Angle, cmpopts.EquateApprox(0, 1e-9))
}

func TestSpiralRejectsDegenerateInput(t *testing.T) {
	_, err := NewSpiral2(0, 0.1, 30, DefaultTolerance, Identity)
	require.ErrorIs(t, err, ErrDegenerateCurve)

	_, err = NewSpiral2(0.01, 0.1, 0, DefaultTolerance, Identity)
	require.ErrorIs(t, err, ErrDegenerateCurve)

	_, err = NewSpiral2(math.NaN(), 0.1, 30, DefaultTolerance, Identity)
	require.ErrorIs(t, err, ErrNonFiniteCoefficient)
}
