// Package closetest reports approximate-equality failures through a test
// framework instead of panicking.
//
// The testify-style functions take anything with an Errorf method, such as
// *testing.T, and return whether the check passed. The Require variants
// stop the test with FailNow. Approx and ApproxTol build gotest.tools
// comparisons for use with gotest.tools/v3/assert.
package closetest

import (
	"github.com/amp-labs/amp-approx/approx"
	"github.com/amp-labs/amp-approx/internal/failure"
	"github.com/amp-labs/amp-approx/internal/source"
)

// TestingT is the subset of testing.TB used by this package.
type TestingT interface {
	Errorf(format string, args ...any)
}

type tHelper interface {
	Helper()
}

type failNower interface {
	FailNow()
}

// callerDepth is the number of frames between report and the user's call.
const callerDepth = 2

func report(t TestingT, op, name string, lhs, rhs, relTol, absTol any, msgAndArgs []any) {
	rep := failure.Report{
		Op:      op,
		Left:    lhs,
		Right:   rhs,
		RelTol:  relTol,
		AbsTol:  absTol,
		Message: failure.Message(msgAndArgs...),
	}

	// The first argument of every checker is the TestingT.
	if exprs, err := source.CallArgs(callerDepth, name); err == nil && len(exprs) > 0 {
		rep.LeftExpr, rep.RightExpr = failure.Exprs(exprs[1:])
	}

	t.Errorf("\n%s", rep.String())
}

func helper(t TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

func failNow(t TestingT) {
	if f, ok := t.(failNower); ok {
		f.FailNow()
	}
}

// Close checks that lhs is approximately equal to rhs using the default
// tolerances of lhs.
func Close[T, Tol any](t TestingT, lhs approx.Comparable[T, Tol], rhs T, msgAndArgs ...any) bool {
	helper(t)

	if approx.IsClose(lhs, rhs) {
		return true
	}

	tol := lhs.DefaultTolerance()
	report(t, failure.OpClose, "Close", lhs, rhs, tol.Rel, tol.Abs, msgAndArgs)

	return false
}

// CloseTol checks that lhs is approximately equal to rhs using the given
// tolerances.
func CloseTol[T, Tol any](t TestingT, lhs approx.Comparable[T, Tol], rhs T, relTol, absTol Tol, msgAndArgs ...any) bool {
	helper(t)

	if approx.IsCloseTol(lhs, rhs, relTol, absTol) {
		return true
	}

	report(t, failure.OpClose, "CloseTol", lhs, rhs, relTol, absTol, msgAndArgs)

	return false
}

// NotClose checks that lhs is not approximately equal to rhs.
func NotClose[T, Tol any](t TestingT, lhs approx.Comparable[T, Tol], rhs T, msgAndArgs ...any) bool {
	helper(t)

	if approx.IsNotClose(lhs, rhs) {
		return true
	}

	tol := lhs.DefaultTolerance()
	report(t, failure.OpNotClose, "NotClose", lhs, rhs, tol.Rel, tol.Abs, msgAndArgs)

	return false
}

// NotCloseTol checks that lhs is not approximately equal to rhs using the
// given tolerances.
func NotCloseTol[T, Tol any](t TestingT, lhs approx.Comparable[T, Tol], rhs T, relTol, absTol Tol, msgAndArgs ...any) bool {
	helper(t)

	if approx.IsNotCloseTol(lhs, rhs, relTol, absTol) {
		return true
	}

	report(t, failure.OpNotClose, "NotCloseTol", lhs, rhs, relTol, absTol, msgAndArgs)

	return false
}

// RequireClose is like Close but stops the test when the check fails.
func RequireClose[T, Tol any](t TestingT, lhs approx.Comparable[T, Tol], rhs T, msgAndArgs ...any) {
	helper(t)

	if approx.IsClose(lhs, rhs) {
		return
	}

	tol := lhs.DefaultTolerance()
	report(t, failure.OpClose, "RequireClose", lhs, rhs, tol.Rel, tol.Abs, msgAndArgs)
	failNow(t)
}

// RequireCloseTol is like CloseTol but stops the test when the check fails.
func RequireCloseTol[T, Tol any](t TestingT, lhs approx.Comparable[T, Tol], rhs T, relTol, absTol Tol, msgAndArgs ...any) {
	helper(t)

	if approx.IsCloseTol(lhs, rhs, relTol, absTol) {
		return
	}

	report(t, failure.OpClose, "RequireCloseTol", lhs, rhs, relTol, absTol, msgAndArgs)
	failNow(t)
}
