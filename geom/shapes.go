package geom

import "github.com/amp-labs/amp-approx/approx"

// Rect is an axis-aligned rectangle given by its origin and size.
type Rect[F approx.Float] struct {
	Origin Point2[F]
	Size   Size2[F]
}

func (r Rect[F]) IsCloseTol(other Rect[F], relTol, absTol F) bool {
	return r.Origin.IsCloseTol(other.Origin, relTol, absTol) &&
		r.Size.IsCloseTol(other.Size, relTol, absTol)
}

func (r Rect[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Box2 is an axis-aligned 2D box given by its corners.
type Box2[F approx.Float] struct {
	Min, Max Point2[F]
}

func (b Box2[F]) IsCloseTol(other Box2[F], relTol, absTol F) bool {
	return b.Min.IsCloseTol(other.Min, relTol, absTol) &&
		b.Max.IsCloseTol(other.Max, relTol, absTol)
}

func (b Box2[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Box3 is an axis-aligned 3D box given by its corners.
type Box3[F approx.Float] struct {
	Min, Max Point3[F]
}

func (b Box3[F]) IsCloseTol(other Box3[F], relTol, absTol F) bool {
	return b.Min.IsCloseTol(other.Min, relTol, absTol) &&
		b.Max.IsCloseTol(other.Max, relTol, absTol)
}

func (b Box3[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }
