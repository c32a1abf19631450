package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/adapter/payment"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
	pkgAuth "github.com/aurafix3-tech/aurafix-cosmetics/internal/pkg/auth"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (pkgAuth.Claims, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored claims for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Claims{UserID: 1}, nil
}

// CatalogFacadeStub provides controllable behaviour for product endpoints.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context, int, int) ([]model.Product, int64, error)
	ProductFn  func(context.Context, int64) (*model.Product, error)
}

// Products returns predefined catalog page.
func (s CatalogFacadeStub) Products(ctx context.Context, page, limit int) ([]model.Product, int64, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, page, limit)
	}
	return []model.Product{{ID: 1, Name: "lip balm", Price: 9.5, Stock: 3}}, 1, nil
}

// Product returns one predefined catalog item.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "lip balm", Price: 9.5, Stock: 3}, nil
}

// CartFacadeStub simulates cart operations behind HTTP handlers.
type CartFacadeStub struct {
	CartFn       func(context.Context, int64) (*model.Cart, model.CartTotals, error)
	AddFn        func(context.Context, int64, int64, *model.Variant, int) (*model.Cart, model.CartTotals, error)
	UpdateFn     func(context.Context, int64, string, int) (*model.Cart, model.CartTotals, error)
	RemoveFn     func(context.Context, int64, string) (*model.Cart, model.CartTotals, error)
	ClearFn      func(context.Context, int64) error
	ValidateFn   func(context.Context, int64) (*model.Cart, model.CartTotals, []string, error)
	ClearedUsers []int64
}

// Cart returns the stored cart or an empty default.
func (s *CartFacadeStub) Cart(ctx context.Context, userID int64) (*model.Cart, model.CartTotals, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return &model.Cart{UserID: userID}, model.CartTotals{}, nil
}

// AddCartItem delegates to override or echoes a one-line cart.
func (s *CartFacadeStub) AddCartItem(ctx context.Context, userID, productID int64, variant *model.Variant, quantity int) (*model.Cart, model.CartTotals, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID, variant, quantity)
	}
	cart := &model.Cart{UserID: userID, Lines: []model.CartLine{{ID: "line-1", ProductID: productID, Variant: variant, Quantity: quantity}}}
	return cart, model.CartTotals{}, nil
}

// UpdateCartItem delegates to override or returns an empty cart.
func (s *CartFacadeStub) UpdateCartItem(ctx context.Context, userID int64, lineID string, quantity int) (*model.Cart, model.CartTotals, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, lineID, quantity)
	}
	return &model.Cart{UserID: userID}, model.CartTotals{}, nil
}

// RemoveCartItem delegates to override or returns an empty cart.
func (s *CartFacadeStub) RemoveCartItem(ctx context.Context, userID int64, lineID string) (*model.Cart, model.CartTotals, error) {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, lineID)
	}
	return &model.Cart{UserID: userID}, model.CartTotals{}, nil
}

// ClearCart records cleared users.
func (s *CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	s.ClearedUsers = append(s.ClearedUsers, userID)
	return nil
}

// ValidateCart delegates to override or reports a clean cart.
func (s *CartFacadeStub) ValidateCart(ctx context.Context, userID int64) (*model.Cart, model.CartTotals, []string, error) {
	if s.ValidateFn != nil {
		return s.ValidateFn(ctx, userID)
	}
	return &model.Cart{UserID: userID}, model.CartTotals{}, nil, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn     func(context.Context, int64, usecase.CheckoutInput) (*model.Order, error)
	MyOrdersFn     func(context.Context, int64, int, int) ([]model.Order, int64, error)
	OrderFn        func(context.Context, int64, int64) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, string, string) error
	CancelFn       func(context.Context, int64, int64) (*model.Order, error)
}

// Checkout delegates to provided function or returns a default order.
func (s OrderFacadeStub) Checkout(ctx context.Context, userID int64, input usecase.CheckoutInput) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, input)
	}
	return &model.Order{ID: 1, Number: "ORD-000001", UserID: userID, Status: model.OrderStatusPending}, nil
}

// MyOrders returns predefined orders for given user.
func (s OrderFacadeStub) MyOrders(ctx context.Context, userID int64, page, limit int) ([]model.Order, int64, error) {
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx, userID, page, limit)
	}
	return []model.Order{{ID: 1, Number: "ORD-000001", UserID: userID}}, 1, nil
}

// Order returns one predefined order.
func (s OrderFacadeStub) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, Number: "ORD-000001", UserID: userID}, nil
}

// UpdateOrderStatus executes configured transition handler.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus, note, trackingNumber string) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status, note, trackingNumber)
	}
	return nil
}

// CancelOrder executes configured cancellation handler.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusCancelled}, nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	*CartFacadeStub
	OrderFacadeStub
}

// NewStorefrontFacadeStub builds an aggregate with an initialized cart stub.
func NewStorefrontFacadeStub() *StorefrontFacadeStub {
	return &StorefrontFacadeStub{CartFacadeStub: &CartFacadeStub{}}
}

// SweepRecord stores information about SweepCart invocations.
type SweepRecord struct {
	UserID  int64
	Notices []string
}

// WorkerFacadeStub mimics reconciler interactions with the storefront facade.
type WorkerFacadeStub struct {
	Batches   [][]int64
	CartsFn   func(context.Context, int) ([]int64, error)
	SweepFn   func(context.Context, int64) ([]string, error)
	Sweeps    []SweepRecord
	mu        sync.Mutex
	callCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// CartsForSweep returns batches from configured queue.
func (s *WorkerFacadeStub) CartsForSweep(ctx context.Context, limit int) ([]int64, error) {
	if s.CartsFn != nil {
		return s.CartsFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.callCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// SweepCart records sweep requests.
func (s *WorkerFacadeStub) SweepCart(ctx context.Context, userID int64) ([]string, error) {
	if s.SweepFn != nil {
		return s.SweepFn(ctx, userID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sweeps = append(s.Sweeps, SweepRecord{UserID: userID})
	return nil, nil
}

// PaymentClientStub simulates gateway push payments.
type PaymentClientStub struct {
	RequestFn func(context.Context, string, float64, string) (*payment.Result, error)
	Requests  []PaymentRequest
	Err       error
}

// PaymentRequest stores information about RequestPayment invocations.
type PaymentRequest struct {
	Phone     string
	Amount    float64
	Reference string
}

// RequestPayment records the request and returns configured response.
func (s *PaymentClientStub) RequestPayment(ctx context.Context, phone string, amount float64, reference string) (*payment.Result, error) {
	s.Requests = append(s.Requests, PaymentRequest{Phone: phone, Amount: amount, Reference: reference})
	if s.RequestFn != nil {
		return s.RequestFn(ctx, phone, amount, reference)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &payment.Result{ConfirmationID: "conf-1"}, nil
}
