package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/repository"
)

// CartUseCase maintains the set of items a user intends to purchase and
// derives monetary totals for display prior to checkout. Stock is not
// checked here; order placement re-validates it authoritatively.
type CartUseCase struct {
	carts    repository.CartStore
	products repository.ProductRepository
	pricing  Pricing
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartStore, products repository.ProductRepository, pricing Pricing) *CartUseCase {
	return &CartUseCase{carts: carts, products: products, pricing: pricing}
}

// AddItem appends a line, or merges quantities into an existing line with the
// same product and deep-equal variant. The captured price is the variant
// override when present, else the product's base price.
func (u *CartUseCase) AddItem(ctx context.Context, userID, productID int64, variant *model.Variant, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, fmt.Errorf("product %d: %w", productID, domainErrors.ErrNotFound)
		}
		return nil, err
	}

	cart, err := u.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Lines {
		line := &cart.Lines[i]
		if line.ProductID == productID && line.Variant.Equal(variant) {
			line.Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, model.CartLine{
			ID:        uuid.NewString(),
			ProductID: productID,
			Variant:   variant,
			Quantity:  quantity,
			Price:     product.UnitPrice(variant),
			AddedAt:   time.Now(),
		})
	}

	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets a line's quantity directly; zero or negative removes it.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, userID int64, lineID string, quantity int) (*model.Cart, error) {
	cart, err := u.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	line := cart.FindLine(lineID)
	if line == nil {
		return nil, fmt.Errorf("cart line %s: %w", lineID, domainErrors.ErrNotFound)
	}

	if quantity <= 0 {
		cart.RemoveLine(lineID)
	} else {
		line.Quantity = quantity
	}

	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes a single line.
func (u *CartUseCase) RemoveItem(ctx context.Context, userID int64, lineID string) (*model.Cart, error) {
	cart, err := u.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveLine(lineID) {
		return nil, fmt.Errorf("cart line %s: %w", lineID, domainErrors.ErrNotFound)
	}

	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear drops the whole cart.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Delete(ctx, userID)
}

// Get returns the cart with its derived totals.
func (u *CartUseCase) Get(ctx context.Context, userID int64) (*model.Cart, model.CartTotals, error) {
	cart, err := u.carts.Load(ctx, userID)
	if err != nil {
		return nil, model.CartTotals{}, err
	}
	return cart, u.Totals(cart), nil
}

// Totals derives the monetary breakdown shown before checkout.
func (u *CartUseCase) Totals(cart *model.Cart) model.CartTotals {
	subtotal := cart.Subtotal()
	tax := subtotal * u.pricing.TaxRate
	return model.CartTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: u.pricing.ShippingCost,
		Total:    subtotal + tax + u.pricing.ShippingCost,
	}
}

// PriceLines derives display totals for explicit line requests using current
// catalog prices. Order placement still re-resolves prices inside its own
// transaction.
func (u *CartUseCase) PriceLines(ctx context.Context, lines []model.DraftLine) (model.CartTotals, error) {
	var subtotal float64
	for _, line := range lines {
		product, err := u.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return model.CartTotals{}, fmt.Errorf("product %d: %w", line.ProductID, domainErrors.ErrNotFound)
			}
			return model.CartTotals{}, err
		}
		subtotal += product.UnitPrice(line.Variant) * float64(line.Quantity)
	}
	tax := subtotal * u.pricing.TaxRate
	return model.CartTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: u.pricing.ShippingCost,
		Total:    subtotal + tax + u.pricing.ShippingCost,
	}, nil
}

// UsersWithCarts enumerates users holding a persisted cart, up to limit.
func (u *CartUseCase) UsersWithCarts(ctx context.Context, limit int) ([]int64, error) {
	return u.carts.UserIDs(ctx, limit)
}

// Validate drops lines whose referenced product no longer resolves, returning
// a notice per dropped line. Lookup failures other than not-found leave the
// line in place: the sweep is best-effort and fails open.
func (u *CartUseCase) Validate(ctx context.Context, userID int64) (*model.Cart, []string, error) {
	cart, err := u.carts.Load(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var (
		kept    = cart.Lines[:0]
		notices []string
	)
	for _, line := range cart.Lines {
		_, err := u.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				notices = append(notices, fmt.Sprintf("product %d is no longer available and was removed from your cart", line.ProductID))
				continue
			}
			// transient failure: keep the line
		}
		kept = append(kept, line)
	}

	if len(notices) == 0 {
		return cart, nil, nil
	}

	cart.Lines = kept
	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, nil, err
	}
	return cart, notices, nil
}
