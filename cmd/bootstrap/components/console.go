package components

import (
	"log/slog"
	"os"

	"hotel-simulator/internal/handler/console"
	"hotel-simulator/internal/pkg/config"
	"hotel-simulator/internal/usecase"

	"go.uber.org/fx"
)

var ConsoleModule = fx.Module("console",
	fx.Provide(
		NewConsoleSession,
	),
)

func NewConsoleSession(uc usecase.BookingUseCase, logger *slog.Logger, cfg config.Config) *console.Session {
	return console.NewSession(uc, os.Stdin, os.Stdout, logger, cfg.Hotel)
}
