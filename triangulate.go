package roadgeom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle3 is a triangular face in space.
type Triangle3 struct {
	A, B, C mgl64.Vec3
}

// Area returns the face's area.
func (t Triangle3) Area() float64 {
	return 0.5 * t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Len()
}

// Normal returns the face's unit normal, following the winding order of
// its vertices (right-hand rule).
func (t Triangle3) Normal() mgl64.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

// Centroid returns the face's centroid.
func (t Triangle3) Centroid() mgl64.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// planeBasis returns two orthonormal vectors spanning the plane with the
// given unit normal, such that (u, v, normal) is right-handed.
func planeBasis(normal mgl64.Vec3) (u, v mgl64.Vec3) {
	// Cross with the axis the normal points along least.
	axis := mgl64.Vec3{}
	minAxis := 0
	for i := 1; i < 3; i++ {
		if math.Abs(normal[i]) < math.Abs(normal[minAxis]) {
			minAxis = i
		}
	}
	axis[minAxis] = 1
	u = axis.Cross(normal).Normalize()
	v = normal.Cross(u)
	return u, v
}

// Triangulate decomposes the ring into triangular faces whose union
// reproduces the ring's boundary, by ear clipping over the projection onto
// the ring's normal plane. The ring may be non-planar and non-convex;
// planarity is not required. A ring that is geometrically degenerate in a
// way the algorithm cannot resolve yields a [TriangulationError].
func (r LinearRing) Triangulate() ([]Triangle3, error) {
	u, v := planeBasis(r.normal)
	projected := make([]Point, len(r.vertices))
	for i, vert := range r.vertices {
		projected[i] = Pt(vert.Dot(u), vert.Dot(v))
	}

	// Degeneracy threshold for doubled signed areas in the projection.
	areaEps := r.tolerance * r.tolerance

	indices := make([]int, len(r.vertices))
	for i := range indices {
		indices[i] = i
	}

	var faces []Triangle3
	emit := func(a, b, c int) {
		faces = append(faces, Triangle3{r.vertices[a], r.vertices[b], r.vertices[c]})
	}

	for len(indices) > 3 {
		clipped := false
		for k := range indices {
			ia := indices[(k+len(indices)-1)%len(indices)]
			ib := indices[k]
			ic := indices[(k+1)%len(indices)]
			if !isEar(projected, indices, ia, ib, ic, areaEps) {
				continue
			}
			emit(ia, ib, ic)
			indices = append(indices[:k], indices[k+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, &TriangulationError{Reason: "no clippable ear; outline is numerically degenerate"}
		}
	}

	a, b, c := indices[0], indices[1], indices[2]
	if math.Abs(signedArea2(projected[a], projected[b], projected[c])) <= areaEps {
		return nil, &TriangulationError{Reason: "remaining vertices are numerically colinear"}
	}
	emit(a, b, c)
	return faces, nil
}

// signedArea2 returns the doubled signed area of the projected triangle
// (a, b, c); positive for counter-clockwise winding.
func signedArea2(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// isEar reports whether the corner (ia, ib, ic) is convex and contains no
// other remaining vertex.
func isEar(projected []Point, indices []int, ia, ib, ic int, areaEps float64) bool {
	a, b, c := projected[ia], projected[ib], projected[ic]
	if signedArea2(a, b, c) <= areaEps {
		return false
	}
	for _, i := range indices {
		if i == ia || i == ib || i == ic {
			continue
		}
		if pointInTriangle2(projected[i], a, b, c, areaEps) {
			return false
		}
	}
	return true
}

// pointInTriangle2 reports whether p lies strictly inside the
// counter-clockwise triangle (a, b, c).
func pointInTriangle2(p, a, b, c Point, areaEps float64) bool {
	return signedArea2(a, b, p) > areaEps &&
		signedArea2(b, c, p) > areaEps &&
		signedArea2(c, a, p) > areaEps
}
