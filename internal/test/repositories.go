package test

import (
	"context"
	"fmt"
	"sync"

	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub serves catalog reads from a fixed set.
type ProductRepositoryStub struct {
	GetByIDFn func(context.Context, int64) (*model.Product, error)
	ListFn    func(context.Context, int, int) ([]model.Product, int64, error)
	Products  map[int64]*model.Product
	Err       error
}

// NewProductRepositoryStub indexes the given products by identifier.
func NewProductRepositoryStub(products ...model.Product) *ProductRepositoryStub {
	stub := &ProductRepositoryStub{Products: make(map[int64]*model.Product)}
	for i := range products {
		p := products[i]
		stub.Products[p.ID] = &p
	}
	return stub
}

// GetByID returns the configured product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.Products[id]; ok {
		return product, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every configured product on one page.
func (s *ProductRepositoryStub) List(ctx context.Context, page, limit int) ([]model.Product, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, page, limit)
	}
	if s.Err != nil {
		return nil, 0, s.Err
	}
	products := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, *p)
	}
	return products, int64(len(products)), nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	PlaceFn        func(context.Context, model.OrderDraft) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListByUserFn   func(context.Context, int64, int, int) ([]model.Order, int64, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, string, string) error
	CancelFn       func(context.Context, int64, string) (*model.Order, error)

	Placed      []model.OrderDraft
	Orders      []model.Order
	UpdateCalls []StatusUpdateCall
	Cancelled   []int64
}

// StatusUpdateCall stores information about UpdateStatus invocations.
type StatusUpdateCall struct {
	OrderID        int64
	Status         model.OrderStatus
	Note           string
	TrackingNumber string
}

// Place tracks drafts and returns a configured or synthesized order.
func (s *OrderRepositoryStub) Place(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	s.Placed = append(s.Placed, draft)
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, draft)
	}
	order := &model.Order{
		ID:              int64(len(s.Placed)),
		Number:          fmt.Sprintf("%s%06d", draft.NumberPrefix, len(s.Placed)),
		UserID:          draft.UserID,
		Status:          model.OrderStatusPending,
		PaymentMethod:   draft.PaymentMethod,
		PaymentID:       draft.PaymentID,
		ShippingAddress: draft.ShippingAddress,
		BillingAddress:  draft.BillingAddress,
	}
	for _, line := range draft.Lines {
		order.Lines = append(order.Lines, model.OrderLine{
			ProductID: line.ProductID,
			Variant:   line.Variant,
			Quantity:  line.Quantity,
		})
	}
	return order, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64, page, limit int) ([]model.Order, int64, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID, page, limit)
	}
	return s.Orders, int64(len(s.Orders)), nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, note, trackingNumber string) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status, note, trackingNumber)
	}
	s.UpdateCalls = append(s.UpdateCalls, StatusUpdateCall{OrderID: orderID, Status: status, Note: note, TrackingNumber: trackingNumber})
	return nil
}

// Cancel records the cancellation and flips the stored order when present.
func (s *OrderRepositoryStub) Cancel(ctx context.Context, orderID int64, note string) (*model.Order, error) {
	s.Cancelled = append(s.Cancelled, orderID)
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, note)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			if !s.Orders[i].Status.Cancellable() {
				return nil, domainErrors.ErrOrderNotCancellable
			}
			s.Orders[i].Status = model.OrderStatusCancelled
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// CartStoreStub keeps carts in-memory keyed by user.
type CartStoreStub struct {
	LoadFn   func(context.Context, int64) (*model.Cart, error)
	SaveFn   func(context.Context, *model.Cart) error
	DeleteFn func(context.Context, int64) error

	mu      sync.Mutex
	Carts   map[int64]*model.Cart
	Deleted []int64
	SaveErr error
}

// NewCartStoreStub constructs a stub with an initialized map.
func NewCartStoreStub() *CartStoreStub {
	return &CartStoreStub{Carts: make(map[int64]*model.Cart)}
}

// Load returns the stored cart or an empty one, mirroring the real store.
func (s *CartStoreStub) Load(ctx context.Context, userID int64) (*model.Cart, error) {
	if s.LoadFn != nil {
		return s.LoadFn(ctx, userID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.Carts[userID]; ok {
		copied := *cart
		copied.Lines = append([]model.CartLine(nil), cart.Lines...)
		return &copied, nil
	}
	return &model.Cart{UserID: userID}, nil
}

// Save stores the cart, honoring a configured error.
func (s *CartStoreStub) Save(ctx context.Context, cart *model.Cart) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, cart)
	}
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Carts == nil {
		s.Carts = make(map[int64]*model.Cart)
	}
	copied := *cart
	copied.Lines = append([]model.CartLine(nil), cart.Lines...)
	s.Carts[cart.UserID] = &copied
	return nil
}

// Delete drops the cart and records the invocation.
func (s *CartStoreStub) Delete(ctx context.Context, userID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Carts, userID)
	s.Deleted = append(s.Deleted, userID)
	return nil
}

// UserIDs lists users with stored carts.
func (s *CartStoreStub) UserIDs(ctx context.Context, limit int) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.Carts))
	for id := range s.Carts {
		ids = append(ids, id)
		if limit > 0 && len(ids) >= limit {
			break
		}
	}
	return ids, nil
}
