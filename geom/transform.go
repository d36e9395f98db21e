package geom

import "github.com/amp-labs/amp-approx/approx"

// Translation2 is a 2D translation.
type Translation2[F approx.Float] struct {
	X, Y F
}

func (t Translation2[F]) IsCloseTol(other Translation2[F], relTol, absTol F) bool {
	return closeAll(relTol, absTol, [2]F{t.X, other.X}, [2]F{t.Y, other.Y})
}

func (t Translation2[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Translation3 is a 3D translation.
type Translation3[F approx.Float] struct {
	X, Y, Z F
}

func (t Translation3[F]) IsCloseTol(other Translation3[F], relTol, absTol F) bool {
	return closeAll(relTol, absTol, [2]F{t.X, other.X}, [2]F{t.Y, other.Y}, [2]F{t.Z, other.Z})
}

func (t Translation3[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Rotation2 is a 2D rotation by an angle.
type Rotation2[F approx.Float] struct {
	Angle Angle[F]
}

func (r Rotation2[F]) IsCloseTol(other Rotation2[F], relTol, absTol F) bool {
	return r.Angle.IsCloseTol(other.Angle, relTol, absTol)
}

func (r Rotation2[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Rotation3 is a 3D rotation stored as the quaternion R + Ii + Jj + Kk.
// Components are compared as stored: q and -q describe the same rotation
// but are not close.
type Rotation3[F approx.Float] struct {
	I, J, K, R F
}

func (r Rotation3[F]) IsCloseTol(other Rotation3[F], relTol, absTol F) bool {
	return closeAll(relTol, absTol,
		[2]F{r.I, other.I}, [2]F{r.J, other.J}, [2]F{r.K, other.K}, [2]F{r.R, other.R})
}

func (r Rotation3[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// RigidTransform3 is a rotation followed by a translation.
type RigidTransform3[F approx.Float] struct {
	Rotation    Rotation3[F]
	Translation Vector3[F]
}

func (t RigidTransform3[F]) IsCloseTol(other RigidTransform3[F], relTol, absTol F) bool {
	return t.Rotation.IsCloseTol(other.Rotation, relTol, absTol) &&
		t.Translation.IsCloseTol(other.Translation, relTol, absTol)
}

func (t RigidTransform3[F]) DefaultTolerance() approx.Tolerance[F] {
	return approx.DefaultTolerance[F]()
}

// Transform2 is a 3x2 affine matrix in row-major order:
//
//	M11 M12
//	M21 M22
//	M31 M32
type Transform2[F approx.Float] struct {
	M [6]F
}

func (t Transform2[F]) IsCloseTol(other Transform2[F], relTol, absTol F) bool {
	return approx.FloatSlice[F](t.M[:]).IsCloseTol(other.M[:], relTol, absTol)
}

func (t Transform2[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Transform3 is a 4x4 matrix in row-major order.
type Transform3[F approx.Float] struct {
	M [16]F
}

func (t Transform3[F]) IsCloseTol(other Transform3[F], relTol, absTol F) bool {
	return approx.FloatSlice[F](t.M[:]).IsCloseTol(other.M[:], relTol, absTol)
}

func (t Transform3[F]) DefaultTolerance() approx.Tolerance[F] { return approx.DefaultTolerance[F]() }

// Identity2 returns the 2D identity transform.
func Identity2[F approx.Float]() Transform2[F] {
	return Transform2[F]{M: [6]F{1, 0, 0, 1, 0, 0}}
}

// Identity3 returns the 3D identity transform.
func Identity3[F approx.Float]() Transform3[F] {
	return Transform3[F]{M: [16]F{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}}
}
