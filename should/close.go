// Package should provides checks and cleanup operations that log instead
// of failing. They suit deferred cleanup and soft numeric checks where a
// warning in the log is enough.
package should

import (
	"context"
	"io"

	"github.com/amp-labs/amp-approx/logger"
)

// Close closes closer and logs msg with the error if that fails.
//
//	defer should.Close(ctx, file, "failed to close input")
func Close(ctx context.Context, closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger.Get(ctx).Error(msg, "error", err)
	}
}
