package should

import (
	"context"
	"log/slog"

	"github.com/amp-labs/amp-approx/approx"
	"github.com/amp-labs/amp-approx/logger"
)

// BeClose reports whether lhs is approximately equal to rhs using the
// default tolerances of lhs. When it is not, msg is logged as a warning
// with both values and the tolerances.
func BeClose[T, Tol any](ctx context.Context, lhs approx.Comparable[T, Tol], rhs T, msg string) bool {
	tol := lhs.DefaultTolerance()

	return BeCloseTol(ctx, lhs, rhs, tol.Rel, tol.Abs, msg)
}

// BeCloseTol is like BeClose with explicit tolerances.
func BeCloseTol[T, Tol any](ctx context.Context, lhs approx.Comparable[T, Tol], rhs T, relTol, absTol Tol, msg string) bool {
	if lhs.IsCloseTol(rhs, relTol, absTol) {
		return true
	}

	logger.Get(ctx).LogAttrs(ctx, slog.LevelWarn, msg,
		slog.Any("left", lhs),
		slog.Any("right", rhs),
		slog.Any("rel_tol", relTol),
		slog.Any("abs_tol", absTol))

	return false
}
