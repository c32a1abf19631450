package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/server/http/dto"
)

// CartHandler manages the authenticated user's cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	userID := CurrentUserID(c)

	cart, totals, err := h.facade.Cart(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toCartResponse(cart, totals))
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Product <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, totals, err := h.facade.AddCartItem(c.Request.Context(), userID, req.Product,
		fromVariantPayload(req.Variant), req.Quantity)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toCartResponse(cart, totals))
}

// UpdateItem handles PUT /api/cart/items/:id.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID := CurrentUserID(c)
	lineID := c.Param("id")

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, totals, err := h.facade.UpdateCartItem(c.Request.Context(), userID, lineID, req.Quantity)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toCartResponse(cart, totals))
}

// RemoveItem handles DELETE /api/cart/items/:id.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := CurrentUserID(c)
	lineID := c.Param("id")

	cart, totals, err := h.facade.RemoveCartItem(c.Request.Context(), userID, lineID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toCartResponse(cart, totals))
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	userID := CurrentUserID(c)

	if err := h.facade.ClearCart(c.Request.Context(), userID); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

// Validate handles POST /api/cart/validate.
func (h *CartHandler) Validate(c *gin.Context) {
	userID := CurrentUserID(c)

	cart, totals, notices, err := h.facade.ValidateCart(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.CartValidationResponse{
		Cart:    toCartResponse(cart, totals),
		Notices: notices,
	})
}
