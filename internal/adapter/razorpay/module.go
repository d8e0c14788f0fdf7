package razorpay

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/textileoem/platform/internal/config"
)

// Module wires the payment provider client.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(DefaultBaseURL, p.Config.RazorpayKeyID, p.Config.RazorpayKeySecret, p.Logger)
}
