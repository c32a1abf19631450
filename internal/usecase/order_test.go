package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
)

func TestOrderPlaceRejectsEmptyLines(t *testing.T) {
	uc := NewOrderUseCase(&stubOrderRepository{}, Pricing{})

	if _, err := uc.Place(context.Background(), 1, nil, model.Address{}, nil, model.PaymentMethodCOD, ""); !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
}

func TestOrderPlaceRejectsNonPositiveQuantity(t *testing.T) {
	repo := &stubOrderRepository{}
	uc := NewOrderUseCase(repo, Pricing{})

	lines := []model.DraftLine{{ProductID: 1, Quantity: 0}}
	if _, err := uc.Place(context.Background(), 1, lines, model.Address{}, nil, model.PaymentMethodCOD, ""); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity error, got %v", err)
	}
	if len(repo.placed) != 0 {
		t.Fatal("expected no placement")
	}
}

func TestOrderPlaceCarriesPricingPolicy(t *testing.T) {
	repo := &stubOrderRepository{}
	uc := NewOrderUseCase(repo, Pricing{TaxRate: 0.16, ShippingCost: 5, OrderPrefix: "ORD-"})

	shipping := model.Address{FullName: "Amina Odera", Street: "12 Biashara St", City: "Nairobi", Country: "KE"}
	billing := model.Address{FullName: "Amina Odera", Street: "1 Invoice Rd", City: "Mombasa", Country: "KE"}
	lines := []model.DraftLine{{ProductID: 1, Quantity: 2}}

	if _, err := uc.Place(context.Background(), 9, lines, shipping, &billing, model.PaymentMethodCOD, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	draft := repo.placed[0]
	if draft.UserID != 9 {
		t.Fatalf("unexpected user %d", draft.UserID)
	}
	if draft.BillingAddress != billing {
		t.Fatalf("expected explicit billing address, got %+v", draft.BillingAddress)
	}
	if draft.TaxRate != 0.16 || draft.ShippingCost != 5 || draft.NumberPrefix != "ORD-" {
		t.Fatalf("unexpected pricing policy %+v", draft)
	}
}

func TestOrderUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc := NewOrderUseCase(&stubOrderRepository{updateStatusFn: func(context.Context, int64, model.OrderStatus, string, string) error {
		t.Fatal("repository must not be called for unknown status")
		return nil
	}}, Pricing{})

	if err := uc.UpdateStatus(context.Background(), 1, "misplaced", "", ""); !errors.Is(err, domainErrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected invalid transition error, got %v", err)
	}
}

func TestOrderCancelOwnershipCheck(t *testing.T) {
	repo := &stubOrderRepository{getByIDFn: func(_ context.Context, id int64) (*model.Order, error) {
		return &model.Order{ID: id, UserID: 2, Status: model.OrderStatusPending}, nil
	}}
	uc := NewOrderUseCase(repo, Pricing{})

	if _, err := uc.Cancel(context.Background(), 1, 10); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for foreign order, got %v", err)
	}
}

func TestOrderCancelDelegatesToRepository(t *testing.T) {
	var gotNote string
	repo := &stubOrderRepository{
		getByIDFn: func(_ context.Context, id int64) (*model.Order, error) {
			return &model.Order{ID: id, UserID: 1, Status: model.OrderStatusPending}, nil
		},
		cancelFn: func(_ context.Context, id int64, note string) (*model.Order, error) {
			gotNote = note
			return &model.Order{ID: id, UserID: 1, Status: model.OrderStatusCancelled}, nil
		},
	}
	uc := NewOrderUseCase(repo, Pricing{})

	order, err := uc.Cancel(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled order, got %s", order.Status)
	}
	if gotNote == "" {
		t.Fatal("expected cancellation note")
	}
}
