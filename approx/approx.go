// Package approx provides approximate equality for floating-point values and
// composite numeric types.
//
// Exact equality on floats is unreliable (0.1+0.2 != 0.3), so instead values
// are compared against a tolerance pair: an absolute floor used near zero and
// a relative term scaled by the larger operand's magnitude.
//
// Example:
//
//	approx.Float64(0.1 + 0.2).IsClose(0.3)          // true
//	approx.IsClose(approx.Float64(0.1+0.2), 0.3)    // same thing
//	approx.IsCloseTol(approx.Float64(1), 1.05, 0.1, 0)
package approx

// Comparable is implemented by types that can be compared for approximate
// equality with values of type T, using tolerances of the scalar type Tol.
//
// IsCloseTol is the only comparison primitive. It receives explicit
// tolerances and must never substitute its own defaults: composite types
// pass the caller's tolerances unchanged to each of their components.
//
// DefaultTolerance returns the tolerances used by IsClose. It is called on
// zero values, so it must not depend on the receiver.
type Comparable[T any, Tol any] interface {
	IsCloseTol(other T, relTol, absTol Tol) bool
	DefaultTolerance() Tolerance[Tol]
}

// IsClose reports whether a and b are approximately equal using a's
// default tolerances.
func IsClose[T, Tol any](a Comparable[T, Tol], b T) bool {
	tol := a.DefaultTolerance()

	return a.IsCloseTol(b, tol.Rel, tol.Abs)
}

// IsCloseTol reports whether a and b are approximately equal using the
// given relative and absolute tolerances.
func IsCloseTol[T, Tol any](a Comparable[T, Tol], b T, relTol, absTol Tol) bool {
	return a.IsCloseTol(b, relTol, absTol)
}

// IsCloseWithin is IsCloseTol with the tolerances given as a pair.
func IsCloseWithin[T, Tol any](a Comparable[T, Tol], b T, tol Tolerance[Tol]) bool {
	return a.IsCloseTol(b, tol.Rel, tol.Abs)
}

// IsCloseRelTol reports whether a and b are approximately equal using only
// a relative tolerance. The absolute tolerance is zero.
func IsCloseRelTol[T, Tol any](a Comparable[T, Tol], b T, relTol Tol) bool {
	var zero Tol

	return a.IsCloseTol(b, relTol, zero)
}

// IsCloseAbsTol reports whether a and b are approximately equal using only
// an absolute tolerance. The relative tolerance is zero.
func IsCloseAbsTol[T, Tol any](a Comparable[T, Tol], b T, absTol Tol) bool {
	var zero Tol

	return a.IsCloseTol(b, zero, absTol)
}

// IsNotClose is the negation of IsClose.
func IsNotClose[T, Tol any](a Comparable[T, Tol], b T) bool {
	return !IsClose(a, b)
}

// IsNotCloseTol is the negation of IsCloseTol.
func IsNotCloseTol[T, Tol any](a Comparable[T, Tol], b T, relTol, absTol Tol) bool {
	return !IsCloseTol(a, b, relTol, absTol)
}
