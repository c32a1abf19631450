package di

import (
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/adapter/payment"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/app"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/config"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/logger"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/pkg/auth"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/server/http/handlers"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/server/http/router"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/storage/postgres"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/storage/redis"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		redis.Module,
		payment.Module,
		usecase.Module,
		fx.Provide(func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
