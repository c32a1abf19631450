package usecase

import (
	"context"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/repository"
)

// CatalogUseCase exposes read access to products.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// Get fetches one product.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns a page of products with the total count.
func (u *CatalogUseCase) List(ctx context.Context, page, limit int) ([]model.Product, int64, error) {
	return u.products.List(ctx, page, limit)
}
