package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders  repository.OrderRepository
	pricing Pricing
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, pricing Pricing) *OrderUseCase {
	return &OrderUseCase{orders: orders, pricing: pricing}
}

// Place creates a durable, stock-affecting order from the requested lines.
// Billing address defaults to shipping when absent. All pricing comes from
// the authoritative product records inside the placement transaction.
func (u *OrderUseCase) Place(ctx context.Context, userID int64, lines []model.DraftLine,
	shipping model.Address, billing *model.Address, method model.PaymentMethod, paymentID string) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("product %d: %w", line.ProductID, domainErrors.ErrInvalidQuantity)
		}
	}

	billingAddr := shipping
	if billing != nil {
		billingAddr = *billing
	}

	return u.orders.Place(ctx, model.OrderDraft{
		UserID:          userID,
		Lines:           lines,
		ShippingAddress: shipping,
		BillingAddress:  billingAddr,
		PaymentMethod:   method,
		PaymentID:       paymentID,
		TaxRate:         u.pricing.TaxRate,
		ShippingCost:    u.pricing.ShippingCost,
		NumberPrefix:    u.pricing.OrderPrefix,
	})
}

// ListByUser returns the user's orders, newest first, with the total count.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64, page, limit int) ([]model.Order, int64, error) {
	return u.orders.ListByUser(ctx, userID, page, limit)
}

// Get fetches one order.
func (u *OrderUseCase) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// UpdateStatus applies an admin-initiated status transition.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, note, trackingNumber string) error {
	if !status.Valid() {
		return fmt.Errorf("status %q: %w", status, domainErrors.ErrInvalidStatusTransition)
	}
	return u.orders.UpdateStatus(ctx, orderID, status, note, trackingNumber)
}

// Cancel lets a customer cancel their own pending or confirmed order,
// restoring every line's stock. Orders of other users read as not found.
func (u *OrderUseCase) Cancel(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return u.orders.Cancel(ctx, orderID, "cancelled by customer")
}
