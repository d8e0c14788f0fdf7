package supabase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/textileoem/platform/internal/config"
)

// Module wires the hosted-auth verifier.
var Module = fx.Provide(newVerifier)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newVerifier(p clientParams) (Verifier, error) {
	return NewHTTPClient(p.Config.SupabaseURL, p.Config.SupabaseAnonKey, p.Logger)
}
