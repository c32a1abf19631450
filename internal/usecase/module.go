package usecase

import (
	"go.uber.org/fx"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(newPricing),
	fx.Provide(
		NewAuthUseCase,
		NewCatalogUseCase,
		NewCartUseCase,
		NewOrderUseCase,
		NewCheckoutUseCase,
	),
)

func newPricing(cfg *config.Config) Pricing {
	return Pricing{
		TaxRate:      cfg.TaxRate,
		ShippingCost: cfg.ShippingCost,
		OrderPrefix:  cfg.OrderNumberPrefix,
	}
}
