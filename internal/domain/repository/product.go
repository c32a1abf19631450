package repository

import (
	"context"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
)

// ProductRepository describes read access to the catalog. Stock writes happen
// only inside order placement and cancellation transactions.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, page, limit int) ([]model.Product, int64, error)
}
