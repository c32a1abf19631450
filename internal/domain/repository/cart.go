package repository

import (
	"context"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
)

// CartStore persists the per-user cart across sessions. Load returns an empty
// cart when none is stored. UserIDs enumerates users with persisted carts so
// the reconciler can sweep them.
type CartStore interface {
	Load(ctx context.Context, userID int64) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, userID int64) error
	UserIDs(ctx context.Context, limit int) ([]int64, error)
}
