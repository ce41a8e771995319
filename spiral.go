package roadgeom

import (
	"fmt"
	"math"
)

// Table of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>
var gaussLegendreCoeffs16 = [...][2]float64{
	{0.1894506104550685, -0.0950125098376374},
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, -0.2816035507792589},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, -0.4580167776572274},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, -0.6178762444026438},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, -0.7554044083550030},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, -0.8656312023878318},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, -0.9445750230732326},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, -0.9894009349916499},
	{0.0271524594117541, 0.9894009349916499},
}

// gaussLegendre16 integrates f over [p, q] with 16-point Gauss-Legendre
// quadrature.
func gaussLegendre16(f func(float64) float64, p, q float64) float64 {
	mid := 0.5 * (p + q)
	half := 0.5 * (q - p)
	sum := 0.0
	for _, wx := range gaussLegendreCoeffs16 {
		sum += wx[0] * f(mid+half*wx[1])
	}
	return sum * half
}

// Fresnel computes the Fresnel integrals
//
//	C(x) = ∫₀ˣ cos(πt²/2) dt
//	S(x) = ∫₀ˣ sin(πt²/2) dt
//
// by composite Gauss-Legendre quadrature over equal-phase subintervals.
// Both integrals are odd functions; negative arguments are handled by
// symmetry.
func Fresnel(x float64) (c, s float64) {
	if x == 0 {
		return 0, 0
	}
	ax := math.Abs(x)
	// One subinterval per half oscillation of the integrand keeps the
	// 16-point rule at full accuracy.
	m := int(math.Ceil(0.5*ax*ax)) + 1
	cosf := func(t float64) float64 { return math.Cos(0.5 * math.Pi * t * t) }
	sinf := func(t float64) float64 { return math.Sin(0.5 * math.Pi * t * t) }
	prev := 0.0
	for k := 1; k <= m; k++ {
		next := ax * math.Sqrt(float64(k)/float64(m))
		c += gaussLegendre16(cosf, prev, next)
		s += gaussLegendre16(sinf, prev, next)
		prev = next
	}
	if x < 0 {
		return -c, -s
	}
	return c, s
}

// Spiral2 is an Euler spiral (clothoid) segment: a planar curve whose
// curvature varies linearly with arc length. Its local frame is anchored at
// the segment's own start pose, so every spiral segment begins at the local
// origin heading along positive x regardless of where on the canonical
// spiral it sits.
type Spiral2 struct {
	slope      float64 // curvature change per unit arc length
	curvStart  float64 // curvature at the segment start
	domain     Interval
	tolerance  float64
	affine     Affine
	offset     float64 // arc length from the canonical spiral's origin to the segment start
	thetaStart float64 // canonical tangent angle at the segment start
	startInv   Affine  // inverse of the canonical start pose
}

var _ Curve2 = Spiral2{}

// NewSpiral2 returns the spiral segment with the given curvature slope,
// start curvature, and length, placed by the given affine transform. The
// slope must be fuzzily non-zero (a constant-curvature segment is an
// [Arc2] or a [LineSegment2]) and the length must exceed the tolerance.
// Both slope signs are supported.
func NewSpiral2(slope, curvStart, length, tolerance float64, affine Affine) (Spiral2, error) {
	if !allFinite(slope, curvStart, length) || !affine.IsFinite() {
		return Spiral2{}, fmt.Errorf("%w: slope %g, curvature %g, length %g",
			ErrNonFiniteCoefficient, slope, curvStart, length)
	}
	if FuzzyZero(slope, tolerance) {
		return Spiral2{}, fmt.Errorf("%w: curvature slope %g", ErrDegenerateCurve, slope)
	}
	domain := ClosedInterval(0, length)
	if err := validCurveDomain(domain, tolerance); err != nil {
		return Spiral2{}, fmt.Errorf("%w: length %g", err, length)
	}
	sp := Spiral2{
		slope:     slope,
		curvStart: curvStart,
		domain:    domain,
		tolerance: tolerance,
		affine:    affine,
		offset:    curvStart / slope,
	}
	sp.thetaStart = sp.canonicalTangent(sp.offset)
	start := sp.canonicalPoint(sp.offset)
	sp.startInv = PoseTransform(start, sp.thetaStart).Invert()
	return sp, nil
}

func (sp Spiral2) Domain() Interval   { return sp.domain }
func (sp Spiral2) Tolerance() float64 { return sp.tolerance }
func (sp Spiral2) Affine() Affine     { return sp.affine }

// CurvatureStart returns the curvature at the segment's start.
func (sp Spiral2) CurvatureStart() float64 { return sp.curvStart }

// CurvatureSlope returns the curvature change per unit arc length.
func (sp Spiral2) CurvatureSlope() float64 { return sp.slope }

// canonicalPoint evaluates the infinite spiral with this slope, anchored at
// its zero-curvature origin, at arc length u.
func (sp Spiral2) canonicalPoint(u float64) Point {
	scale := math.Sqrt(math.Pi / math.Abs(sp.slope))
	c, s := Fresnel(u / scale)
	if sp.slope < 0 {
		s = -s
	}
	return Pt(scale*c, scale*s)
}

// canonicalTangent returns the infinite spiral's tangent angle at arc
// length u.
func (sp Spiral2) canonicalTangent(u float64) float64 {
	return 0.5 * sp.slope * u * u
}

func (sp Spiral2) EvalUnbounded(position float64) Point {
	return sp.canonicalPoint(sp.offset + position).Transform(sp.startInv)
}

func (sp Spiral2) TangentUnbounded(position float64) float64 {
	return sp.canonicalTangent(sp.offset+position) - sp.thetaStart
}

// CurvatureAt returns the spiral's curvature at the given curve position.
func (sp Spiral2) CurvatureAt(position float64) float64 {
	return sp.curvStart + sp.slope*position
}
