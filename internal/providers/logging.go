package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nfl-predictor-web/internal/logging"
)

// logWithUpstream emits a log entry on the request-scoped logger (or fallback) and always includes the upstream name.
func logWithUpstream(ctx context.Context, fallback *slog.Logger, level slog.Level, upstream string, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldUpstream, upstream))
	logger.Log(ctx, level, msg, args...)
}
