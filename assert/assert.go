// Package assert provides approximate-equality assertions that panic with a
// diagnostic when they fail.
//
// The diagnostic names the operands as written at the call site, their
// values and the tolerances that were applied:
//
//	assertion `left ~= right` failed: optional message
//	 left expr: approx.Float64(a + b)
//	right expr: 0.31
//	      left: 0.30000000000000004
//	     right: 0.31
//	   rel tol: 1e-09
//	   abs tol: 1e-09
//
// Building with the assertions_disabled tag turns every assertion into a
// no-op.
package assert

import (
	"github.com/amp-labs/amp-approx/internal/failure"
	"github.com/amp-labs/amp-approx/internal/source"
)

// callerDepth is the number of frames between fail and the user's call.
const callerDepth = 2

func fail(op, name string, lhs, rhs, relTol, absTol any, args []any) {
	report := failure.Report{
		Op:      op,
		Left:    lhs,
		Right:   rhs,
		RelTol:  relTol,
		AbsTol:  absTol,
		Message: failure.Message(args...),
	}

	if exprs, err := source.CallArgs(callerDepth, name); err == nil {
		report.LeftExpr, report.RightExpr = failure.Exprs(exprs)
	}

	panic(report.String())
}
