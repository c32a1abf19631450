package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/adapter/payment"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/app"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/config"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/repository"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/storage/postgres"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/test"
	"go.uber.org/fx"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:        ":0",
		DatabaseURI:       "postgres://stub",
		RedisAddress:      "localhost:6379",
		PaymentGateway:    "http://localhost",
		JWTSecret:         "secret",
		TaxRate:           0.16,
		OrderNumberPrefix: "ORD-",
		CartTTL:           time.Hour,
		CartSweepInterval: time.Millisecond,
		CartSweepBatch:    1,
		WorkerPoolSize:    1,
		ShutdownTimeout:   time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	productRepo := test.NewProductRepositoryStub()
	orderRepo := &test.OrderRepositoryStub{}
	cartStore := test.NewCartStoreStub()
	paymentStub := &test.PaymentClientStub{}

	var facade *app.StorefrontFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.CartStore(cartStore)),
			fx.Replace(payment.Client(paymentStub)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected storefront facade instance")
	}
}
