// Package geom provides small geometric value types whose approximate
// equality is the conjunction of the approximate equality of their fields.
//
// Every type is generic over its scalar basis F and uses the default
// tolerances of F. Tolerances given to a composite are passed unchanged to
// every component, including nested composites.
package geom

import "github.com/amp-labs/amp-approx/approx"

func closeAll[F approx.Float](relTol, absTol F, pairs ...[2]F) bool {
	for _, p := range pairs {
		if !approx.IsCloseFloatTol(p[0], p[1], relTol, absTol) {
			return false
		}
	}

	return true
}

// Angle is an angle in radians.
type Angle[F approx.Float] struct {
	Radians F
}

func (a Angle[F]) IsCloseTol(other Angle[F], relTol, absTol F) bool {
	return approx.IsCloseFloatTol(a.Radians, other.Radians, relTol, absTol)
}

func (a Angle[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Length is a one-dimensional distance.
type Length[F approx.Float] struct {
	Value F
}

func (l Length[F]) IsCloseTol(other Length[F], relTol, absTol F) bool {
	return approx.IsCloseFloatTol(l.Value, other.Value, relTol, absTol)
}

func (l Length[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Scale is a uniform scale factor.
type Scale[F approx.Float] struct {
	Factor F
}

func (s Scale[F]) IsCloseTol(other Scale[F], relTol, absTol F) bool {
	return approx.IsCloseFloatTol(s.Factor, other.Factor, relTol, absTol)
}

func (s Scale[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Point2 is a point in 2D space.
type Point2[F approx.Float] struct {
	X, Y F
}

func (p Point2[F]) IsCloseTol(other Point2[F], relTol, absTol F) bool {
	return closeAll(relTol, absTol, [2]F{p.X, other.X}, [2]F{p.Y, other.Y})
}

func (p Point2[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Point3 is a point in 3D space.
type Point3[F approx.Float] struct {
	X, Y, Z F
}

func (p Point3[F]) IsCloseTol(other Point3[F], relTol, absTol F) bool {
	return closeAll(relTol, absTol, [2]F{p.X, other.X}, [2]F{p.Y, other.Y}, [2]F{p.Z, other.Z})
}

func (p Point3[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Vector2 is a displacement in 2D space.
type Vector2[F approx.Float] struct {
	X, Y F
}

func (v Vector2[F]) IsCloseTol(other Vector2[F], relTol, absTol F) bool {
	return closeAll(relTol, absTol, [2]F{v.X, other.X}, [2]F{v.Y, other.Y})
}

func (v Vector2[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Vector3 is a displacement in 3D space.
type Vector3[F approx.Float] struct {
	X, Y, Z F
}

func (v Vector3[F]) IsCloseTol(other Vector3[F], relTol, absTol F) bool {
	return closeAll(relTol, absTol, [2]F{v.X, other.X}, [2]F{v.Y, other.Y}, [2]F{v.Z, other.Z})
}

func (v Vector3[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// HomogeneousVector is a 4D vector in homogeneous coordinates.
type HomogeneousVector[F approx.Float] struct {
	X, Y, Z, W F
}

func (v HomogeneousVector[F]) IsCloseTol(other HomogeneousVector[F], relTol, absTol F) bool {
	return closeAll(relTol, absTol,
		[2]F{v.X, other.X}, [2]F{v.Y, other.Y}, [2]F{v.Z, other.Z}, [2]F{v.W, other.W})
}

func (v HomogeneousVector[F]) DefaultTolerance() approx.Tolerance[F] {
	return approx.DefaultTolerance[F]()
}

// Size2 is a 2D extent.
type Size2[F approx.Float] struct {
	Width, Height F
}

func (s Size2[F]) IsCloseTol(other Size2[F], relTol, absTol F) bool {
	return closeAll(relTol, absTol, [2]F{s.Width, other.Width}, [2]F{s.Height, other.Height})
}

func (s Size2[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Size3 is a 3D extent.
type Size3[F approx.Float] struct {
	Width, Height, Depth F
}

func (s Size3[F]) IsCloseTol(other Size3[F], relTol, absTol F) bool {
	return closeAll(relTol, absTol,
		[2]F{s.Width, other.Width}, [2]F{s.Height, other.Height}, [2]F{s.Depth, other.Depth})
}

func (s Size3[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// SideOffsets are per-side distances, as used for margins and borders.
type SideOffsets[F approx.Float] struct {
	Top, Right, Bottom, Left F
}

func (s SideOffsets[F]) IsCloseTol(other SideOffsets[F], relTol, absTol F) bool {
	return closeAll(relTol, absTol,
		[2]F{s.Top, other.Top}, [2]F{s.Right, other.Right},
		[2]F{s.Bottom, other.Bottom}, [2]F{s.Left, other.Left})
}

func (s SideOffsets[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }
