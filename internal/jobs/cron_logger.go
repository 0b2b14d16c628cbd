package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// cronLogger routes cron's internal logging to slog. Info is logged at debug level:
// cron reports every wake-up and run through it.
type cronLogger struct {
	logger *slog.Logger
}

var _ cron.Logger = cronLogger{}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Log(context.Background(), slog.LevelDebug, msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Log(context.Background(), slog.LevelError, msg, append(keysAndValues, "error", err)...)
}
