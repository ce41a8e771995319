// Package roadgeom provides the parametric geometry kernel used to convert
// road-network descriptions into boundary-represented 3D city models.
//
// Road geometry arrives as locally defined primitives (line segments,
// circular arcs, cubic polynomials, Euler spirals), each parameterized by
// an arc-length-like curve position and placed into the world by an affine
// transform. Chained arc-length integration accumulates sub-tolerance drift
// across segment boundaries, so every comparison in this package is fuzzy:
// each geometric value carries an explicit tolerance, and equality,
// containment, and tiling checks extend their bounds by it. See
// [FuzzyEquals] and [Interval].
//
// # Curves
//
// [Curve2] and [Curve3] describe parametric curves over an arc-length
// domain. Concrete kinds form a closed set: [LineSegment2], [Arc2],
// [Cubic2], [ParamCubic2], [Spiral2], [CompositeCurve2], and [LineString2]
// in the plane; [LineSegment3], [LineString3], [LiftedCurve3], and
// [CurveOnSurface3] in space. Shared behavior such as bounded evaluation
// with domain checking and discretization lives in free functions
// ([EvalBounded2], [PoseBounded3], [Discretize3]) rather than in an
// inheritance hierarchy.
//
// Piecewise curves are built on one generic mechanism, [Concatenation],
// which maps a global curve position to the owning member and its local
// parameter via binary search. [CompositeCurve2], [LineString2],
// [LineString3], and [ConcatFn] are all thin layers over it.
//
// # Surfaces and solids
//
// [SweptSurface3] sweeps the pose frame of a reference line, and
// [CurveOnSurface3] rides on it with lateral and height offset functions.
// [LinearRing] cleans a raw vertex loop into a valid boundary,
// [LinearRing.Triangulate] decomposes it into faces, and [BoundedSurface3]
// tessellates the strip between two boundary curves. [Solid] collects the
// resulting faces into a boundary representation.
//
// # Errors
//
// Structural invariant violations (too few vertices, colinear outlines,
// non-finite coefficients, degenerate domains) are rejected at
// construction. A position outside a curve's domain yields a [DomainError];
// an undecomposable ring yields a [TriangulationError]. Non-fatal input
// repairs (dropped duplicate vertices, reversed orientation) are reported
// as [Issue] values so the calling pipeline can attach them to the
// offending road element and continue. The kernel never logs or retries.
//
// All values in this package are immutable after construction and safe for
// concurrent use without synchronization.
package roadgeom
