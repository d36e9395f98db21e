package approx

import "math"

// IsCloseFloatTol is the comparison rule for scalars. a is close to b iff
//
//	|a - b| <= max(absTol, relTol * max(|a|, |b|))
//
// NaN is never close to anything, including NaN. An infinity is only close
// to the same infinity.
func IsCloseFloatTol[F Float](a, b, relTol, absTol F) bool {
	if a == b {
		return true
	}

	fa, fb := float64(a), float64(b)
	if math.IsNaN(fa) || math.IsNaN(fb) || math.IsInf(fa, 0) || math.IsInf(fb, 0) {
		return false
	}

	return abs(a-b) <= max(absTol, relTol*max(abs(a), abs(b)))
}

// IsCloseFloat is IsCloseFloatTol with the default tolerances of F.
func IsCloseFloat[F Float](a, b F) bool {
	tol := DefaultTolerance[F]()

	return IsCloseFloatTol(a, b, tol.Rel, tol.Abs)
}

func abs[F Float](x F) F {
	if x < 0 {
		return -x
	}

	return x
}

// Float64 is a float64 that implements Comparable.
type Float64 float64

var _ Comparable[Float64, float64] = Float64(0)

func (f Float64) IsCloseTol(other Float64, relTol, absTol float64) bool {
	return IsCloseFloatTol(float64(f), float64(other), relTol, absTol)
}

func (f Float64) DefaultTolerance() Tolerance[float64] {
	return DefaultTolerance[float64]()
}

// IsClose reports whether f and other are close with the default tolerances.
func (f Float64) IsClose(other Float64) bool {
	return IsClose(f, other)
}

// IsNotClose is the negation of IsClose.
func (f Float64) IsNotClose(other Float64) bool {
	return IsNotClose(f, other)
}

// Float32 is a float32 that implements Comparable.
type Float32 float32

var _ Comparable[Float32, float32] = Float32(0)

func (f Float32) IsCloseTol(other Float32, relTol, absTol float32) bool {
	return IsCloseFloatTol(float32(f), float32(other), relTol, absTol)
}

func (f Float32) DefaultTolerance() Tolerance[float32] {
	return DefaultTolerance[float32]()
}

// IsClose reports whether f and other are close with the default tolerances.
func (f Float32) IsClose(other Float32) bool {
	return IsClose(f, other)
}

// IsNotClose is the negation of IsClose.
func (f Float32) IsNotClose(other Float32) bool {
	return IsNotClose(f, other)
}
