package router

import (
	"context"

	"go.uber.org/fx"
)

// Module registers HTTP router construction for the fx runtime.
var Module = fx.Options(
	fx.Provide(NewLimiters, Setup),
	fx.Invoke(registerLimiterCleanup),
)

func registerLimiterCleanup(lc fx.Lifecycle, limiters *Limiters) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			limiters.Stop()
			return nil
		},
	})
}
