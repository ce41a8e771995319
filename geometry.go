package roadgeom

import "github.com/go-gl/mathgl/mgl64"

// GeometryKind enumerates the closed set of top-level geometry kinds the
// kernel hands to the output-generation stage.
type GeometryKind uint8

const (
	PointKind GeometryKind = iota
	CurveKind
	SurfaceKind
	SolidKind
)

func (k GeometryKind) String() string {
	switch k {
	case PointKind:
		return "point"
	case CurveKind:
		return "curve"
	case SurfaceKind:
		return "surface"
	case SolidKind:
		return "solid"
	default:
		return "unknown"
	}
}

// Geometry is the dispatch contract consumed by the output-generation
// stage. Implementations form a closed set ([PointGeometry],
// [CurveGeometry], [SurfaceGeometry], and [SolidGeometry]), so consumers
// switch exhaustively on the concrete type (and, within a kind, on the
// concrete curve or surface type) to apply kind-specific rules.
type Geometry interface {
	Kind() GeometryKind
}

// PointGeometry wraps a single point.
type PointGeometry struct {
	Point mgl64.Vec3
}

func (PointGeometry) Kind() GeometryKind { return PointKind }

// CurveGeometry wraps a spatial curve. The dynamic type of Curve
// identifies the concrete curve kind.
type CurveGeometry struct {
	Curve Curve3
}

func (CurveGeometry) Kind() GeometryKind { return CurveKind }

// SurfaceGeometry wraps a tessellated surface.
type SurfaceGeometry struct {
	Surface BoundedSurface3
}

func (SurfaceGeometry) Kind() GeometryKind { return SurfaceKind }

// SolidGeometry wraps a boundary-represented solid.
type SolidGeometry struct {
	Solid Solid
}

func (SolidGeometry) Kind() GeometryKind { return SolidKind }
