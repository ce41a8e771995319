package roadgeom

import (
	"fmt"
	"math"
)

// Point is a location in the 2D plane.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate moves the point by the vector o.
func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Transform applies the affine transform to the point.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// FuzzyEquals reports whether both coordinates of pt and o differ by at
// most tolerance.
func (pt Point) FuzzyEquals(o Point, tolerance float64) bool {
	return FuzzyEquals(pt.X, o.X, tolerance) && FuzzyEquals(pt.Y, o.Y, tolerance)
}

// IsFinite reports whether both coordinates are finite.
func (pt Point) IsFinite() bool {
	return allFinite(pt.X, pt.Y)
}
