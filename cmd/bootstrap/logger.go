package bootstrap

import (
	"log/slog"

	"hotel-simulator/internal/handler/middleware"
	"hotel-simulator/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

// NewFxLogger routes fx's own lifecycle events through slog so they follow
// LOG_LEVEL and LOG_OUTPUT instead of printing over the console prompts.
func NewFxLogger(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger}
	l.UseLogLevel(slog.LevelDebug)
	return l
}
