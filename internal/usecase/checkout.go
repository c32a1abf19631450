package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/adapter/payment"
	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
)

// CheckoutUseCase turns a cart plus buyer details into an order. For mpesa
// the push payment must settle before the order is created; a payment that
// settles but whose order then fails to persist is logged and left
// unreversed.
type CheckoutUseCase struct {
	carts    *CartUseCase
	orders   *OrderUseCase
	payments payment.Client
	logger   *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(carts *CartUseCase, orders *OrderUseCase, payments payment.Client, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{carts: carts, orders: orders, payments: payments, logger: logger}
}

// Submit validates buyer input, charges mpesa payments, places the order and
// clears the stored cart. When input carries no explicit items, the stored
// cart supplies them. Validation failures are reported per-field and persist
// nothing.
func (u *CheckoutUseCase) Submit(ctx context.Context, userID int64, input CheckoutInput) (*model.Order, error) {
	if fields := ValidateCheckout(input); len(fields) > 0 {
		return nil, &domainErrors.ValidationError{Fields: fields}
	}

	if !input.PaymentMethod.Supported() {
		return nil, fmt.Errorf("%s: %w", input.PaymentMethod, domainErrors.ErrUnsupportedPayment)
	}

	lines := input.Items
	var totals model.CartTotals
	if len(lines) == 0 {
		cart, cartTotals, err := u.carts.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		if cart.IsEmpty() {
			return nil, domainErrors.ErrEmptyCart
		}
		totals = cartTotals
		lines = make([]model.DraftLine, 0, len(cart.Lines))
		for _, line := range cart.Lines {
			lines = append(lines, model.DraftLine{
				ProductID: line.ProductID,
				Variant:   line.Variant,
				Quantity:  line.Quantity,
			})
		}
	} else {
		var err error
		if totals, err = u.carts.PriceLines(ctx, lines); err != nil {
			return nil, err
		}
	}

	paymentID := input.PaymentID
	if paymentID == "" && input.PaymentMethod == model.PaymentMethodMpesa {
		reference := fmt.Sprintf("cart-%d", userID)
		result, err := u.payments.RequestPayment(ctx, input.ShippingAddress.Phone, totals.Total, reference)
		if err != nil {
			if errors.Is(err, payment.ErrDeclined) {
				return nil, domainErrors.ErrPaymentDeclined
			}
			return nil, fmt.Errorf("request payment: %w", err)
		}
		paymentID = result.ConfirmationID
	}

	order, err := u.orders.Place(ctx, userID, lines, input.ShippingAddress, input.BillingAddress, input.PaymentMethod, paymentID)
	if err != nil {
		if paymentID != "" {
			u.logger.Error("order placement failed after successful payment",
				slog.Int64("user_id", userID),
				slog.String("confirmation_id", paymentID),
				slog.String("error", err.Error()),
			)
		}
		return nil, err
	}

	if err := u.carts.Clear(ctx, userID); err != nil {
		u.logger.Warn("failed to clear cart after order placement",
			slog.Int64("user_id", userID),
			slog.String("order", order.Number),
			slog.String("error", err.Error()),
		)
	}

	return order, nil
}
