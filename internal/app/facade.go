package app

import (
	"context"

	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
	pkgAuth "github.com/aurafix3-tech/aurafix-cosmetics/internal/pkg/auth"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/usecase"
)

// StorefrontFacade aggregates the use cases behind the HTTP surface and the
// cart reconciler.
type StorefrontFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	carts    *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
	orders   *usecase.OrderUseCase
}

func NewStorefrontFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase,
	carts *usecase.CartUseCase, checkout *usecase.CheckoutUseCase, orders *usecase.OrderUseCase) *StorefrontFacade {
	return &StorefrontFacade{auth: auth, catalog: catalog, carts: carts, checkout: checkout, orders: orders}
}

func (f *StorefrontFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) Products(ctx context.Context, page, limit int) ([]model.Product, int64, error) {
	return f.catalog.List(ctx, page, limit)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) Cart(ctx context.Context, userID int64) (*model.Cart, model.CartTotals, error) {
	return f.carts.Get(ctx, userID)
}

func (f *StorefrontFacade) AddCartItem(ctx context.Context, userID, productID int64, variant *model.Variant, quantity int) (*model.Cart, model.CartTotals, error) {
	cart, err := f.carts.AddItem(ctx, userID, productID, variant, quantity)
	if err != nil {
		return nil, model.CartTotals{}, err
	}
	return cart, f.carts.Totals(cart), nil
}

func (f *StorefrontFacade) UpdateCartItem(ctx context.Context, userID int64, lineID string, quantity int) (*model.Cart, model.CartTotals, error) {
	cart, err := f.carts.UpdateQuantity(ctx, userID, lineID, quantity)
	if err != nil {
		return nil, model.CartTotals{}, err
	}
	return cart, f.carts.Totals(cart), nil
}

func (f *StorefrontFacade) RemoveCartItem(ctx context.Context, userID int64, lineID string) (*model.Cart, model.CartTotals, error) {
	cart, err := f.carts.RemoveItem(ctx, userID, lineID)
	if err != nil {
		return nil, model.CartTotals{}, err
	}
	return cart, f.carts.Totals(cart), nil
}

func (f *StorefrontFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.carts.Clear(ctx, userID)
}

func (f *StorefrontFacade) ValidateCart(ctx context.Context, userID int64) (*model.Cart, model.CartTotals, []string, error) {
	cart, notices, err := f.carts.Validate(ctx, userID)
	if err != nil {
		return nil, model.CartTotals{}, nil, err
	}
	return cart, f.carts.Totals(cart), notices, nil
}

func (f *StorefrontFacade) Checkout(ctx context.Context, userID int64, input usecase.CheckoutInput) (*model.Order, error) {
	return f.checkout.Submit(ctx, userID, input)
}

func (f *StorefrontFacade) MyOrders(ctx context.Context, userID int64, page, limit int) ([]model.Order, int64, error) {
	return f.orders.ListByUser(ctx, userID, page, limit)
}

// Order returns one of the user's orders. Orders belonging to other
// users read as not found.
func (f *StorefrontFacade) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := f.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus, note, trackingNumber string) error {
	return f.orders.UpdateStatus(ctx, orderID, status, note, trackingNumber)
}

func (f *StorefrontFacade) CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.Cancel(ctx, userID, orderID)
}

func (f *StorefrontFacade) CartsForSweep(ctx context.Context, limit int) ([]int64, error) {
	return f.carts.UsersWithCarts(ctx, limit)
}

func (f *StorefrontFacade) SweepCart(ctx context.Context, userID int64) ([]string, error) {
	_, notices, err := f.carts.Validate(ctx, userID)
	return notices, err
}
