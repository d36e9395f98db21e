//go:build assertions_disabled

package assert

import "github.com/amp-labs/amp-approx/approx"

// IsClose is a no-op in builds with the assertions_disabled tag. Neither
// lhs nor rhs is compared and it never panics.
func IsClose[T, Tol any](lhs approx.Comparable[T, Tol], rhs T, args ...any) {
	// Intentionally left blank
}

// IsCloseTol is a no-op in this build.
func IsCloseTol[T, Tol any](lhs approx.Comparable[T, Tol], rhs T, relTol, absTol Tol, args ...any) {
	// Intentionally left blank
}

// IsCloseRelTol is a no-op in this build.
func IsCloseRelTol[T, Tol any](lhs approx.Comparable[T, Tol], rhs T, relTol Tol, args ...any) {
	// Intentionally left blank
}

// IsCloseAbsTol is a no-op in this build.
func IsCloseAbsTol[T, Tol any](lhs approx.Comparable[T, Tol], rhs T, absTol Tol, args ...any) {
	// Intentionally left blank
}

// IsNotClose is a no-op in this build.
func IsNotClose[T, Tol any](lhs approx.Comparable[T, Tol], rhs T, args ...any) {
	// Intentionally left blank
}

// IsNotCloseTol is a no-op in this build.
func IsNotCloseTol[T, Tol any](lhs approx.Comparable[T, Tol], rhs T, relTol, absTol Tol, args ...any) {
	// Intentionally left blank
}
