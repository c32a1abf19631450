package repository

import (
	"context"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Place, Cancel
// and UpdateStatus are transactional: either every write applies or none does.
type OrderRepository interface {
	Place(ctx context.Context, draft model.OrderDraft) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64, page, limit int) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, note, trackingNumber string) error
	Cancel(ctx context.Context, orderID int64, note string) (*model.Order, error)
}
