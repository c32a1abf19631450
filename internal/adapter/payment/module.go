package payment

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/config"
)

// Module exposes payment client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.PaymentGateway, p.Logger)
}
