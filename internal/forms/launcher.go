package forms

import (
	"context"

	"go.uber.org/zap"
)

// LogLauncher is a Launcher that only records the request. The real
// editor integration lives outside this repository; the demo binary
// uses this so "open form" is observable in the log.
type LogLauncher struct {
	log *zap.Logger
}

// NewLogLauncher creates a launcher that writes to log.
func NewLogLauncher(log *zap.Logger) *LogLauncher {
	return &LogLauncher{log: log}
}

// Open implements Launcher.
func (l *LogLauncher) Open(_ context.Context, f Form) error {
	l.log.Info("launch form",
		zap.String("id", f.ID),
		zap.String("title", f.Title),
		zap.String("status", string(f.Status)),
	)
	return nil
}
