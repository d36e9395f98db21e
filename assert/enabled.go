//go:build !assertions_disabled

package assert

import (
	"github.com/amp-labs/amp-approx/approx"
	"github.com/amp-labs/amp-approx/internal/failure"
)

// IsClose asserts that lhs is approximately equal to rhs using the default
// tolerances of lhs. If the assertion fails, it panics with a diagnostic.
// The optional args can be used to add a message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the message.
func IsClose[T, Tol any](lhs approx.Comparable[T, Tol], rhs T, args ...any) {
	if approx.IsClose(lhs, rhs) {
		return
	}

	tol := lhs.DefaultTolerance()

	fail(failure.OpClose, "IsClose", lhs, rhs, tol.Rel, tol.Abs, args)
}

// IsCloseTol asserts that lhs is approximately equal to rhs using the given
// tolerances. The optional args follow the same rules as IsClose.
func IsCloseTol[T, Tol any](lhs approx.Comparable[T, Tol], rhs T, relTol, absTol Tol, args ...any) {
	if approx.IsCloseTol(lhs, rhs, relTol, absTol) {
		return
	}

	fail(failure.OpClose, "IsCloseTol", lhs, rhs, relTol, absTol, args)
}

// IsCloseRelTol asserts that lhs is approximately equal to rhs using only a
// relative tolerance. The optional args follow the same rules as IsClose.
func IsCloseRelTol[T, Tol any](lhs approx.Comparable[T, Tol], rhs T, relTol Tol, args ...any) {
	if approx.IsCloseRelTol(lhs, rhs, relTol) {
		return
	}

	var zero Tol

	fail(failure.OpClose, "IsCloseRelTol", lhs, rhs, relTol, zero, args)
}

// IsCloseAbsTol asserts that lhs is approximately equal to rhs using only an
// absolute tolerance. The optional args follow the same rules as IsClose.
func IsCloseAbsTol[T, Tol any](lhs approx.Comparable[T, Tol], rhs T, absTol Tol, args ...any) {
	if approx.IsCloseAbsTol(lhs, rhs, absTol) {
		return
	}

	var zero Tol

	fail(failure.OpClose, "IsCloseAbsTol", lhs, rhs, zero, absTol, args)
}

// IsNotClose asserts that lhs is not approximately equal to rhs using the
// default tolerances of lhs. The optional args follow the same rules as IsClose.
func IsNotClose[T, Tol any](lhs approx.Comparable[T, Tol], rhs T, args ...any) {
	if approx.IsNotClose(lhs, rhs) {
		return
	}

	tol := lhs.DefaultTolerance()

	fail(failure.OpNotClose, "IsNotClose", lhs, rhs, tol.Rel, tol.Abs, args)
}

// IsNotCloseTol asserts that lhs is not approximately equal to rhs using the
// given tolerances. The optional args follow the same rules as IsClose.
func IsNotCloseTol[T, Tol any](lhs approx.Comparable[T, Tol], rhs T, relTol, absTol Tol, args ...any) {
	if approx.IsNotCloseTol(lhs, rhs, relTol, absTol) {
		return
	}

	fail(failure.OpNotClose, "IsNotCloseTol", lhs, rhs, relTol, absTol, args)
}
