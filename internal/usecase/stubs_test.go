package usecase

import (
	"context"
	"sync"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/adapter/payment"
	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
)

type stubCartStore struct {
	mu      sync.Mutex
	carts   map[int64]*model.Cart
	deleted []int64
	saveErr error
}

func newStubCartStore() *stubCartStore {
	return &stubCartStore{carts: make(map[int64]*model.Cart)}
}

func (s *stubCartStore) Load(ctx context.Context, userID int64) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[userID]; ok {
		copied := *cart
		copied.Lines = append([]model.CartLine(nil), cart.Lines...)
		return &copied, nil
	}
	return &model.Cart{UserID: userID}, nil
}

func (s *stubCartStore) Save(ctx context.Context, cart *model.Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *cart
	copied.Lines = append([]model.CartLine(nil), cart.Lines...)
	s.carts[cart.UserID] = &copied
	return nil
}

func (s *stubCartStore) Delete(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	s.deleted = append(s.deleted, userID)
	return nil
}

func (s *stubCartStore) UserIDs(ctx context.Context, limit int) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.carts))
	for id := range s.carts {
		ids = append(ids, id)
		if limit > 0 && len(ids) >= limit {
			break
		}
	}
	return ids, nil
}

type stubProductRepository struct {
	getByIDFn func(context.Context, int64) (*model.Product, error)
	products  map[int64]*model.Product
}

func newStubProductRepository(products ...model.Product) *stubProductRepository {
	s := &stubProductRepository{products: make(map[int64]*model.Product)}
	for i := range products {
		p := products[i]
		s.products[p.ID] = &p
	}
	return s
}

func (s *stubProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	if product, ok := s.products[id]; ok {
		return product, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubProductRepository) List(ctx context.Context, page, limit int) ([]model.Product, int64, error) {
	products := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, *p)
	}
	return products, int64(len(products)), nil
}

type stubOrderRepository struct {
	placeFn        func(context.Context, model.OrderDraft) (*model.Order, error)
	getByIDFn      func(context.Context, int64) (*model.Order, error)
	listByUserFn   func(context.Context, int64, int, int) ([]model.Order, int64, error)
	updateStatusFn func(context.Context, int64, model.OrderStatus, string, string) error
	cancelFn       func(context.Context, int64, string) (*model.Order, error)

	placed []model.OrderDraft
}

func (s *stubOrderRepository) Place(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	s.placed = append(s.placed, draft)
	if s.placeFn != nil {
		return s.placeFn(ctx, draft)
	}
	return &model.Order{ID: 1, Number: "ORD-000001", UserID: draft.UserID, Status: model.OrderStatusPending}, nil
}

func (s *stubOrderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubOrderRepository) ListByUser(ctx context.Context, userID int64, page, limit int) ([]model.Order, int64, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID, page, limit)
	}
	return nil, 0, nil
}

func (s *stubOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, note, trackingNumber string) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, orderID, status, note, trackingNumber)
	}
	return nil
}

func (s *stubOrderRepository) Cancel(ctx context.Context, orderID int64, note string) (*model.Order, error) {
	if s.cancelFn != nil {
		return s.cancelFn(ctx, orderID, note)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusCancelled}, nil
}

type stubPaymentClient struct {
	requestFn func(context.Context, string, float64, string) (*payment.Result, error)
	requests  []stubPaymentRequest
}

type stubPaymentRequest struct {
	phone     string
	amount    float64
	reference string
}

func (s *stubPaymentClient) RequestPayment(ctx context.Context, phone string, amount float64, reference string) (*payment.Result, error) {
	s.requests = append(s.requests, stubPaymentRequest{phone: phone, amount: amount, reference: reference})
	if s.requestFn != nil {
		return s.requestFn(ctx, phone, amount, reference)
	}
	return &payment.Result{ConfirmationID: "conf-1"}, nil
}
