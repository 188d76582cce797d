package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/sports-snapshots/internal/logging"
)

// logCall emits a debug entry for one upstream call, tagged with the provider name.
func logCall(ctx context.Context, logger *slog.Logger, provider, call string, elapsed time.Duration, err error, args ...any) {
	if logger == nil {
		return
	}
	args = append(args,
		slog.String(logging.FieldProvider, provider),
		slog.String("call", call),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Log(ctx, slog.LevelDebug, "provider call", args...)
}
