package twilio

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/textileoem/platform/internal/config"
)

// Module wires the WhatsApp messaging client.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) (Sender, error) {
	return NewHTTPClient(DefaultBaseURL, p.Config.TwilioAccountSID, p.Config.TwilioAuthToken, p.Config.TwilioWhatsAppNumber, p.Logger)
}
