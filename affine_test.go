package roadgeom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAffineRotate(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	// A positive angle rotates positive x into positive y.
	diff(t, Pt(0, 1), Pt(1, 0).Transform(Rotate(math.Pi/2)), approx)
	diff(t, Pt(-1, 0), Pt(1, 0).Transform(Rotate(math.Pi)), approx)
}

func TestAffineMulMatchesSequentialTransform(t *testing.T) {
	a := Translate(Vec(3, -2)).Mul(Rotate(0.7))
	b := Rotate(-1.3).Mul(Translate(Vec(0.5, 4)))
	p := Pt(1.25, -0.5)
	diff(t, p.Transform(b).Transform(a), p.Transform(a.Mul(b)), cmpopts.EquateApprox(0, 1e-12))
}

func TestAffineInvertRoundTrip(t *testing.T) {
	aff := PoseTransform(Pt(10, 20), 0.9)
	p := Pt(-3, 7)
	diff(t, p, p.Transform(aff).Transform(aff.Invert()), cmpopts.EquateApprox(0, 1e-12))
	if !aff.Mul(aff.Invert()).FuzzyEquals(Identity, 1e-12) {
		t.Error("aff * aff⁻¹ must be the identity")
	}
}

func TestPoseTransform(t *testing.T) {
	aff := PoseTransform(Pt(5, 5), math.Pi/2)
	// The local origin maps to the pose position, local +x to the heading
	// direction.
	diff(t, Pt(5, 5), Pt(0, 0).Transform(aff), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(5, 7), Pt(2, 0).Transform(aff), cmpopts.EquateApprox(0, 1e-12))
	diff(t, math.Pi/2, aff.RotationAngle(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Vec(5, 5), aff.Translation())
}

func TestAffineRotationAngle(t *testing.T) {
	for _, th := range []float64{-2.5, -0.3, 0, 0.3, 1.2, 3.0} {
		diff(t, th, Rotate(th).RotationAngle(), cmpopts.EquateApprox(0, 1e-12))
	}
}
