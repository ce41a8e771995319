package roadgeom

import "math"

// DefaultTolerance is a default tolerance for scalar comparisons. It is
// suitable for curve positions derived from road-network arc lengths.
const DefaultTolerance = 1e-7

// FuzzyEquals reports whether a and b differ by at most tolerance.
func FuzzyEquals(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// FuzzyZero reports whether a is within tolerance of zero.
func FuzzyZero(a, tolerance float64) bool {
	return math.Abs(a) <= tolerance
}

// fuzzyLessEq reports a <= b with the bound extended outward by tolerance.
func fuzzyLessEq(a, b, tolerance float64) bool {
	return a <= b+tolerance
}

// fuzzyGreaterEq reports a >= b with the bound extended outward by tolerance.
func fuzzyGreaterEq(a, b, tolerance float64) bool {
	return a >= b-tolerance
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// allFinite reports whether every value is neither infinite nor NaN.
func allFinite(fs ...float64) bool {
	for _, f := range fs {
		if !isFinite(f) {
			return false
		}
	}
	return true
}

// cumulativeSum returns the running sums of xs, starting at zero. The result
// has len(xs)+1 entries; the last one is the total.
func cumulativeSum(xs []float64) []float64 {
	sums := make([]float64, len(xs)+1)
	for i, x := range xs {
		sums[i+1] = sums[i] + x
	}
	return sums
}
