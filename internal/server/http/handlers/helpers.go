package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/server/http/dto"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/server/http/middleware"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// Pagination reads page and limit query parameters, clamping to sane bounds.
func Pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.Query("limit"))
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func toVariantPayload(v *model.Variant) *dto.VariantPayload {
	if v == nil {
		return nil
	}
	return &dto.VariantPayload{Name: v.Name, Value: v.Value, Price: v.Price}
}

func fromVariantPayload(p *dto.VariantPayload) *model.Variant {
	if p == nil {
		return nil
	}
	return &model.Variant{Name: p.Name, Value: p.Value, Price: p.Price}
}

func toAddressPayload(a model.Address) dto.AddressPayload {
	return dto.AddressPayload{
		FullName:   a.FullName,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

func fromAddressPayload(p dto.AddressPayload) model.Address {
	return model.Address{
		FullName:   p.FullName,
		Street:     p.Street,
		City:       p.City,
		State:      p.State,
		PostalCode: p.PostalCode,
		Country:    p.Country,
		Phone:      p.Phone,
	}
}

func toCartResponse(cart *model.Cart, totals model.CartTotals) dto.CartResponse {
	items := make([]dto.CartLineResponse, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, dto.CartLineResponse{
			ID:       line.ID,
			Product:  line.ProductID,
			Variant:  toVariantPayload(line.Variant),
			Quantity: line.Quantity,
			Price:    line.Price,
			Total:    line.Price * float64(line.Quantity),
		})
	}
	return dto.CartResponse{
		Items:    items,
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Shipping: totals.Shipping,
		Total:    totals.Total,
	}
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, dto.OrderLineResponse{
			Product:  line.ProductID,
			Name:     line.Name,
			Variant:  toVariantPayload(line.Variant),
			Quantity: line.Quantity,
			Price:    line.Price,
			Total:    line.Total,
		})
	}
	history := make([]dto.StatusChangeResponse, 0, len(order.History))
	for _, change := range order.History {
		history = append(history, dto.StatusChangeResponse{
			Status:    string(change.Status),
			Note:      change.Note,
			ChangedAt: change.ChangedAt,
		})
	}
	return dto.OrderResponse{
		ID:              order.ID,
		Number:          order.Number,
		Status:          string(order.Status),
		Items:           items,
		ShippingAddress: toAddressPayload(order.ShippingAddress),
		BillingAddress:  toAddressPayload(order.BillingAddress),
		Subtotal:        order.Subtotal,
		Tax:             order.Tax,
		Shipping:        order.Shipping,
		Total:           order.Total,
		PaymentMethod:   string(order.PaymentMethod),
		PaymentStatus:   string(order.PaymentStatus),
		TrackingNumber:  order.TrackingNumber,
		StatusHistory:   history,
		CreatedAt:       order.CreatedAt,
	}
}
