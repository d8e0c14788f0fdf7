package logger

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module wires the log channel set and the plain application logger.
var Module = fx.Options(
	fx.Provide(New),
	fx.Provide(func(set *Set) *slog.Logger { return set.App }),
)
