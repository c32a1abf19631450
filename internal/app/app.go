package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/config"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewStorefrontFacade,
		newHTTPServer,
		newCartReconciler,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade *StorefrontFacade
	Config *config.Config
	Logger *slog.Logger
}

func newCartReconciler(p workerParams) *worker.CartReconciler {
	return worker.NewCartReconciler(
		p.Facade,
		p.Config.CartSweepInterval,
		p.Config.CartSweepBatch,
		p.Config.WorkerPoolSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.CartReconciler
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting aurafix storefront", slog.String("addr", p.Server.Addr))
			p.Worker.Start(ctx)
			go serve(p.Server, p.Logger, p.Shutdowner)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()
			return shutdown(ctx, p.Server, p.Logger, p.Config.ShutdownTimeout)
		},
	})
}

func serve(server *http.Server, logger *slog.Logger, shutdowner fx.Shutdowner) {
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server terminated", slog.String("error", err.Error()))
		_ = shutdowner.Shutdown()
	}
}

func shutdown(ctx context.Context, server *http.Server, logger *slog.Logger, timeout time.Duration) error {
	// The stop context carries no deadline when fx shuts down on its own,
	// so bound the drain explicitly.
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("aurafix storefront stopped")
	return nil
}
