package di

import (
	"go.uber.org/fx"

	"github.com/textileoem/platform/internal/adapter/razorpay"
	"github.com/textileoem/platform/internal/adapter/supabase"
	"github.com/textileoem/platform/internal/adapter/twilio"
	"github.com/textileoem/platform/internal/app"
	"github.com/textileoem/platform/internal/config"
	"github.com/textileoem/platform/internal/logger"
	"github.com/textileoem/platform/internal/obs"
	"github.com/textileoem/platform/internal/pkg/auth"
	"github.com/textileoem/platform/internal/server/http/router"
	"github.com/textileoem/platform/internal/storage/postgres"
	"github.com/textileoem/platform/internal/usecase"
)

// Module assembles the full application graph. Extra options are appended for
// tests that need to override a provider.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		obs.Module,
		auth.Module,
		postgres.Module,
		supabase.Module,
		razorpay.Module,
		twilio.Module,
		usecase.Module,
		fx.Provide(func(facade *app.PlatformFacade) router.Facade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
