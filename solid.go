package roadgeom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box3 is an axis-aligned box, used as the bounding volume of faces,
// surfaces, and solids.
type Box3 struct {
	Min, Max mgl64.Vec3
}

// NewBox3FromPoints returns the smallest box containing both points.
func NewBox3FromPoints(a, b mgl64.Vec3) Box3 {
	box := Box3{Min: a, Max: a}
	return box.UnionPoint(b)
}

// UnionPoint returns the smallest box containing the box and the point.
func (b Box3) UnionPoint(p mgl64.Vec3) Box3 {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
	return b
}

// Union returns the smallest box containing both boxes.
func (b Box3) Union(o Box3) Box3 {
	return b.UnionPoint(o.Min).UnionPoint(o.Max)
}

// Size returns the box's extent along each axis.
func (b Box3) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the box's center point.
func (b Box3) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func facesBoundingBox(faces []Triangle3) Box3 {
	box := NewBox3FromPoints(faces[0].A, faces[0].B).UnionPoint(faces[0].C)
	for _, f := range faces[1:] {
		box = box.UnionPoint(f.A).UnionPoint(f.B).UnionPoint(f.C)
	}
	return box
}

func facesArea(faces []Triangle3) float64 {
	area := 0.0
	for _, f := range faces {
		area += f.Area()
	}
	return area
}

// BoundedSurface3 is the tessellated surface swept between two boundary
// curves sharing an identical domain: both curves are discretized at the
// given step into vertex chains of equal cardinality, the ladder of rings
// between the chains is built duplicate-tolerantly, and every ring is
// triangulated.
type BoundedSurface3 struct {
	faces     []Triangle3
	tolerance float64
}

// NewBoundedSurface3 tessellates the strip between the two boundary
// curves. Construction requires both curves to share one tolerance and an
// identical, bounded domain whose length exceeds the tolerance.
func NewBoundedSurface3(left, right Curve3, step float64) (BoundedSurface3, []Issue, error) {
	tolerance := left.Tolerance()
	if right.Tolerance() != tolerance {
		return BoundedSurface3{}, nil, fmt.Errorf("%w: %g vs %g",
			ErrToleranceMismatch, tolerance, right.Tolerance())
	}
	if err := validCurveDomain(left.Domain(), tolerance); err != nil {
		return BoundedSurface3{}, nil, fmt.Errorf("left boundary: %w", err)
	}
	leftUpper, _ := left.Domain().UpperEndpoint()
	rightUpper, err := right.Domain().UpperEndpoint()
	if err != nil ||
		!FuzzyEquals(left.Domain().LowerEndpoint(), right.Domain().LowerEndpoint(), tolerance) ||
		!FuzzyEquals(leftUpper, rightUpper, tolerance) {
		return BoundedSurface3{}, nil, fmt.Errorf("%w: boundary domains %v and %v",
			ErrDomainMismatch, left.Domain(), right.Domain())
	}

	leftChain, err := Discretize3(left, step)
	if err != nil {
		return BoundedSurface3{}, nil, err
	}
	rightChain, err := Discretize3(right, step)
	if err != nil {
		return BoundedSurface3{}, nil, err
	}
	// Identical domains and step sizes yield chains of equal cardinality;
	// guard against fuzzy endpoint drift anyway.
	if len(leftChain) > len(rightChain) {
		leftChain = leftChain[:len(rightChain)]
	} else if len(rightChain) > len(leftChain) {
		rightChain = rightChain[:len(leftChain)]
	}

	rings, issues, err := TolerantRingLadder(leftChain, rightChain, tolerance)
	if err != nil {
		return BoundedSurface3{}, issues, err
	}
	var faces []Triangle3
	for i, ring := range rings {
		tris, err := ring.Triangulate()
		if err != nil {
			return BoundedSurface3{}, issues, fmt.Errorf("ring %d: %w", i, err)
		}
		faces = append(faces, tris...)
	}
	return BoundedSurface3{faces: faces, tolerance: tolerance}, issues, nil
}

// Faces returns the surface's triangular faces.
func (s BoundedSurface3) Faces() []Triangle3 {
	return append([]Triangle3(nil), s.faces...)
}

// Tolerance returns the surface's tolerance.
func (s BoundedSurface3) Tolerance() float64 { return s.tolerance }

// Area returns the sum of the face areas.
func (s BoundedSurface3) Area() float64 { return facesArea(s.faces) }

// BoundingBox returns the smallest axis-aligned box enclosing the surface.
func (s BoundedSurface3) BoundingBox() Box3 { return facesBoundingBox(s.faces) }

// Solid is a 3D solid described entirely by the polygon faces bounding it.
type Solid struct {
	faces     []Triangle3
	tolerance float64
}

// NewSolid assembles a solid from the faces of the given surfaces. At
// least one face is required; the caller is responsible for passing
// surfaces that together close the boundary.
func NewSolid(tolerance float64, surfaces ...BoundedSurface3) (Solid, error) {
	var faces []Triangle3
	for _, s := range surfaces {
		faces = append(faces, s.faces...)
	}
	if len(faces) == 0 {
		return Solid{}, fmt.Errorf("%w: solid without faces", ErrNotEnoughVertices)
	}
	return Solid{faces: faces, tolerance: tolerance}, nil
}

// Faces returns the solid's boundary faces.
func (s Solid) Faces() []Triangle3 {
	return append([]Triangle3(nil), s.faces...)
}

// Tolerance returns the solid's tolerance.
func (s Solid) Tolerance() float64 { return s.tolerance }

// Area returns the total area of the boundary faces.
func (s Solid) Area() float64 { return facesArea(s.faces) }

// BoundingBox returns the smallest axis-aligned box enclosing the solid.
func (s Solid) BoundingBox() Box3 { return facesBoundingBox(s.faces) }
