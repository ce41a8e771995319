package roadgeom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAffine3TranslationAndRotation(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	a := Translation3(V3(1, 2, 3))
	diff(t, V3(1, 2, 3), a.Transform(V3(0, 0, 0)), approx)
	diff(t, V3(1, 2, 3), a.Translation())

	// A positive heading rotates positive x into positive y.
	r := RotationOnly3(Rotation3{Heading: math.Pi / 2})
	diff(t, V3(0, 1, 0), r.Transform(V3(1, 0, 0)), approx)

	// A positive pitch rotates positive x toward negative z.
	p := RotationOnly3(Rotation3{Pitch: math.Pi / 2})
	diff(t, V3(0, 0, -1), p.Transform(V3(1, 0, 0)), approx)

	// A positive roll rotates positive y into positive z.
	rl := RotationOnly3(Rotation3{Roll: math.Pi / 2})
	diff(t, V3(0, 0, 1), rl.Transform(V3(0, 1, 0)), approx)
}

func TestAffine3InverseRoundTrip(t *testing.T) {
	a := NewAffine3(Rotation3{Heading: 0.4, Pitch: -0.2, Roll: 0.9}, V3(10, -5, 2))
	p := V3(1.5, -2.5, 0.75)
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, p, a.InverseTransform(a.Transform(p)), approx)
	diff(t, p, a.Invert().Transform(a.Transform(p)), approx)
}

func TestAffine3MulComposes(t *testing.T) {
	a := NewAffine3(Rotation3{Heading: 0.7}, V3(1, 0, 0))
	b := NewAffine3(Rotation3{Roll: -0.3}, V3(0, 2, 0))
	p := V3(0.5, 1, -1)
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, a.Transform(b.Transform(p)), a.Mul(b).Transform(p), approx)
	diff(t, p, a.Mul(b).InverseTransform(a.Mul(b).Transform(p)), approx)
}

func TestAffine3ExtractRotation(t *testing.T) {
	a := NewAffine3(Rotation3{Heading: math.Pi / 2}, V3(5, 5, 5))
	rot := a.ExtractRotation()
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, V3(0, 1, 0), rot.Transform(V3(1, 0, 0)), approx)
	diff(t, V3(0, 0, 0), rot.Translation(), approx)
}

func TestAffine3RotationRoundTrip(t *testing.T) {
	want := Rotation3{Heading: 0.3, Pitch: 0.2, Roll: 0.1}
	got := NewAffine3(want, V3(4, 5, 6)).Rotation()
	if !got.FuzzyEquals(want, 1e-12) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestAffineSequence3Solve(t *testing.T) {
	// Drive 1 unit along x, turn left 90 degrees, drive 1 unit along the
	// new local x.
	seq := NewAffineSequence3(
		Translation3(V3(1, 0, 0)),
		RotationOnly3(Rotation3{Heading: math.Pi / 2}),
		Translation3(V3(1, 0, 0)),
	)
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, V3(1, 1, 0), seq.Transform(V3(0, 0, 0)), approx)
	diff(t, V3(0, 0, 0), seq.InverseTransform(V3(1, 1, 0)), approx)
}

func TestAffineSequence3Empty(t *testing.T) {
	p := V3(3, -1, 4)
	diff(t, p, NewAffineSequence3().Transform(p))
}
