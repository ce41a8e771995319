package roadgeom

import "github.com/go-gl/mathgl/mgl64"

// V3 returns the vector (x, y, z).
func V3(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}

// Vec3FuzzyEquals reports whether all components of a and b differ by at
// most tolerance.
func Vec3FuzzyEquals(a, b mgl64.Vec3, tolerance float64) bool {
	return a.ApproxEqualThreshold(b, tolerance)
}

func vec3IsFinite(v mgl64.Vec3) bool {
	return allFinite(v[0], v[1], v[2])
}

// newellNormal computes the (unnormalized) normal of a vertex loop using
// Newell's method. The result is robust against non-planar and non-convex
// loops; its magnitude is twice the loop's projected area.
func newellNormal(vertices []mgl64.Vec3) mgl64.Vec3 {
	var n mgl64.Vec3
	for i, cur := range vertices {
		next := vertices[(i+1)%len(vertices)]
		n[0] += (cur[1] - next[1]) * (cur[2] + next[2])
		n[1] += (cur[2] - next[2]) * (cur[0] + next[0])
		n[2] += (cur[0] - next[0]) * (cur[1] + next[1])
	}
	return n
}

// pointLineDistance returns the distance of p from the infinite line
// through a and b. If a and b coincide, it returns the distance of p
// from a.
func pointLineDistance(p, a, b mgl64.Vec3) float64 {
	d := b.Sub(a)
	length := d.Len()
	if length == 0 {
		return p.Sub(a).Len()
	}
	return d.Cross(p.Sub(a)).Len() / length
}

// spanRank returns the dimension of the vector span of the edges from the
// first vertex to every other vertex, judged at the given distance
// tolerance. A ring whose vertices have a span rank below 2 is colinear.
func spanRank(vertices []mgl64.Vec3, tolerance float64) int {
	if len(vertices) < 2 {
		return 0
	}
	first := vertices[0]
	var e1, normal mgl64.Vec3
	rank := 0
	for _, v := range vertices[1:] {
		d := v.Sub(first)
		switch rank {
		case 0:
			if d.Len() > tolerance {
				e1 = d.Normalize()
				rank = 1
			}
		case 1:
			// distance of v from the line spanned by e1
			if d.Sub(e1.Mul(d.Dot(e1))).Len() > tolerance {
				normal = e1.Cross(d).Normalize()
				rank = 2
			}
		case 2:
			// distance of v from the plane spanned so far
			if mgl64.Abs(d.Dot(normal)) > tolerance {
				return 3
			}
		}
	}
	return rank
}
