package redis

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/config"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/repository"
)

// Module wires the Redis cart store.
var Module = fx.Options(
	fx.Provide(newCartStore),
	fx.Provide(func(s *CartStore) repository.CartStore { return s }),
)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newCartStore(p storeParams) *CartStore {
	return New(p.Config.RedisAddress, p.Config.CartTTL, p.Logger)
}
