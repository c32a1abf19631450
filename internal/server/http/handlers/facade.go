package handlers

import (
	"context"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
	pkgAuth "github.com/aurafix3-tech/aurafix-cosmetics/internal/pkg/auth"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
}

// CatalogFacade exposes product reads.
type CatalogFacade interface {
	Products(ctx context.Context, page, limit int) ([]model.Product, int64, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
}

// CartFacade encapsulates the per-user cart operations exposed via HTTP.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) (*model.Cart, model.CartTotals, error)
	AddCartItem(ctx context.Context, userID, productID int64, variant *model.Variant, quantity int) (*model.Cart, model.CartTotals, error)
	UpdateCartItem(ctx context.Context, userID int64, lineID string, quantity int) (*model.Cart, model.CartTotals, error)
	RemoveCartItem(ctx context.Context, userID int64, lineID string) (*model.Cart, model.CartTotals, error)
	ClearCart(ctx context.Context, userID int64) error
	ValidateCart(ctx context.Context, userID int64) (*model.Cart, model.CartTotals, []string, error)
}

// OrderFacade encapsulates checkout and order lifecycle operations.
type OrderFacade interface {
	Checkout(ctx context.Context, userID int64, input usecase.CheckoutInput) (*model.Order, error)
	MyOrders(ctx context.Context, userID int64, page, limit int) ([]model.Order, int64, error)
	Order(ctx context.Context, userID, orderID int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus, note, trackingNumber string) error
	CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
}
