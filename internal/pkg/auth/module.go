package auth

import (
	"go.uber.org/fx"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/config"
)

// Module provides password hashing and the token strategy to the fx graph.
var Module = fx.Provide(
	newPasswordHasher,
	newTokenStrategy,
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.JWTSecret, Options{})
}
