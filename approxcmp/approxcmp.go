// Package approxcmp adapts approximate equality to github.com/google/go-cmp.
//
// Equate and EquateTol return options that make cmp.Equal and cmp.Diff treat
// floating-point and complex leaves as equal when they are close. Comparer
// does the same for any type that implements approx.Comparable.
package approxcmp

import (
	"github.com/amp-labs/amp-approx/approx"
	"github.com/google/go-cmp/cmp"
)

// Equate returns options comparing float32, float64, complex64 and
// complex128 values with each kind's default tolerances.
func Equate() cmp.Options {
	f64 := approx.DefaultTolerance[float64]()
	f32 := approx.DefaultTolerance[float32]()

	return cmp.Options{
		cmp.Comparer(func(a, b float64) bool {
			return approx.IsCloseFloatTol(a, b, f64.Rel, f64.Abs)
		}),
		cmp.Comparer(func(a, b float32) bool {
			return approx.IsCloseFloatTol(a, b, f32.Rel, f32.Abs)
		}),
		cmp.Comparer(func(a, b complex128) bool {
			return approx.Complex128(a).IsCloseTol(approx.Complex128(b), f64.Rel, f64.Abs)
		}),
		cmp.Comparer(func(a, b complex64) bool {
			return approx.Complex64(a).IsCloseTol(approx.Complex64(b), f32.Rel, f32.Abs)
		}),
	}
}

// EquateTol is like Equate but uses relTol and absTol for every kind. The
// float32 and complex64 comparers convert the tolerances to float32.
func EquateTol(relTol, absTol float64) cmp.Options {
	rel32, abs32 := float32(relTol), float32(absTol)

	return cmp.Options{
		cmp.Comparer(func(a, b float64) bool {
			return approx.IsCloseFloatTol(a, b, relTol, absTol)
		}),
		cmp.Comparer(func(a, b float32) bool {
			return approx.IsCloseFloatTol(a, b, rel32, abs32)
		}),
		cmp.Comparer(func(a, b complex128) bool {
			return approx.Complex128(a).IsCloseTol(approx.Complex128(b), relTol, absTol)
		}),
		cmp.Comparer(func(a, b complex64) bool {
			return approx.Complex64(a).IsCloseTol(approx.Complex64(b), rel32, abs32)
		}),
	}
}

// Comparer returns an option comparing values of T with their own default
// tolerances.
func Comparer[T approx.Comparable[T, Tol], Tol any]() cmp.Option {
	return cmp.Comparer(func(a, b T) bool {
		return approx.IsClose[T, Tol](a, b)
	})
}

// ComparerTol returns an option comparing values of T with the given
// tolerances.
func ComparerTol[T approx.Comparable[T, Tol], Tol any](relTol, absTol Tol) cmp.Option {
	return cmp.Comparer(func(a, b T) bool {
		return approx.IsCloseTol[T, Tol](a, b, relTol, absTol)
	})
}
