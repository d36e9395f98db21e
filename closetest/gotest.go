package closetest

import (
	"github.com/amp-labs/amp-approx/approx"
	"gotest.tools/v3/assert/cmp"
)

const approxTemplate = `
	{{- printf "%v" .Data.x}} {{with callArg 0}}({{formatNode .}}) {{end -}}
	is not close to {{printf "%v" .Data.y}}{{with callArg 1}} ({{formatNode .}}){{end -}}
	: rel tol {{printf "%v" .Data.rel}}, abs tol {{printf "%v" .Data.abs}}`

// Approx returns a gotest.tools comparison that succeeds when lhs is
// approximately equal to rhs using the default tolerances of lhs:
//
//	assert.Assert(t, closetest.Approx(approx.Float64(got), 0.3))
func Approx[T, Tol any](lhs approx.Comparable[T, Tol], rhs T) cmp.Comparison {
	return func() cmp.Result {
		tol := lhs.DefaultTolerance()

		return approxResult(lhs.IsCloseTol(rhs, tol.Rel, tol.Abs), lhs, rhs, tol.Rel, tol.Abs)
	}
}

// ApproxTol is like Approx with explicit tolerances.
func ApproxTol[T, Tol any](lhs approx.Comparable[T, Tol], rhs T, relTol, absTol Tol) cmp.Comparison {
	return func() cmp.Result {
		return approxResult(lhs.IsCloseTol(rhs, relTol, absTol), lhs, rhs, relTol, absTol)
	}
}

func approxResult(ok bool, lhs, rhs, relTol, absTol any) cmp.Result {
	if ok {
		return cmp.ResultSuccess
	}

	return cmp.ResultFailureTemplate(approxTemplate, map[string]any{
		"x":   lhs,
		"y":   rhs,
		"rel": relTol,
		"abs": absTol,
	})
}
