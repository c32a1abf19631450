package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/server/http/dto"
)

// ProductHandler serves catalog reads.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	page, limit := Pagination(c)

	products, total, err := h.facade.Products(c.Request.Context(), page, limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := dto.ProductListResponse{
		Products:    make([]dto.ProductResponse, 0, len(products)),
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	}
	for i := range products {
		response.Products = append(response.Products, toProductResponse(&products[i]))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

func toProductResponse(product *model.Product) dto.ProductResponse {
	variants := make([]dto.VariantPayload, 0, len(product.Variants))
	for i := range product.Variants {
		variants = append(variants, *toVariantPayload(&product.Variants[i]))
	}
	return dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Brand:       product.Brand,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Variants:    variants,
	}
}
