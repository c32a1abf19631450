package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAlreadyExists           = errors.New("already exists")
	ErrNotFound                = errors.New("not found")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrEmptyCart               = errors.New("cart is empty")
	ErrInvalidQuantity         = errors.New("invalid quantity")
	ErrPaymentDeclined         = errors.New("payment declined")
	ErrUnsupportedPayment      = errors.New("payment method not supported")
	ErrOrderNotCancellable     = errors.New("order can no longer be cancelled")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

// InsufficientStockError names the product that cannot be fulfilled and
// how many units remain available.
type InsufficientStockError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// FieldError is a single per-field validation failure.
type FieldError struct {
	Msg  string `json:"msg"`
	Path string `json:"path"`
}

// ValidationError aggregates field failures from checkout submission.
// Nothing is persisted when one is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Path+": "+f.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
