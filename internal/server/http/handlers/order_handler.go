package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/server/http/dto"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/usecase"
)

// OrderHandler manages checkout and order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	input := usecase.CheckoutInput{
		Email:           req.Email,
		ShippingAddress: fromAddressPayload(req.ShippingAddress),
		PaymentMethod:   model.PaymentMethod(req.PaymentMethod),
		PaymentID:       req.PaymentID,
	}
	if req.BillingAddress != nil {
		billing := fromAddressPayload(*req.BillingAddress)
		input.BillingAddress = &billing
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, model.DraftLine{
			ProductID: item.Product,
			Variant:   fromVariantPayload(item.Variant),
			Quantity:  item.Quantity,
		})
	}

	order, err := h.facade.Checkout(c.Request.Context(), userID, input)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OrderEnvelope{Order: toOrderResponse(order)})
}

// List handles GET /api/orders/my-orders.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	page, limit := Pagination(c)

	orders, total, err := h.facade.MyOrders(c.Request.Context(), userID, page, limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := dto.OrderListResponse{
		Orders:      make([]dto.OrderResponse, 0, len(orders)),
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	}
	for i := range orders {
		response.Orders = append(response.Orders, toOrderResponse(&orders[i]))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.OrderEnvelope{Order: toOrderResponse(order)})
}

// UpdateStatus handles PUT /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.UpdateOrderStatus(c.Request.Context(), orderID,
		model.OrderStatus(req.Status), req.Note, req.TrackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidStatusTransition):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

// Cancel handles PUT /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.facade.CancelOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrOrderNotCancellable):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.OrderEnvelope{Order: toOrderResponse(order)})
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func respondOrderError(c *gin.Context, err error) {
	var validation *domainErrors.ValidationError
	if errors.As(err, &validation) {
		response := dto.ErrorsResponse{Errors: make([]dto.FieldErrorPayload, 0, len(validation.Fields))}
		for _, field := range validation.Fields {
			response.Errors = append(response.Errors, dto.FieldErrorPayload{Msg: field.Msg, Path: field.Path})
		}
		c.JSON(http.StatusBadRequest, response)
		return
	}

	var stock *domainErrors.InsufficientStockError
	if errors.As(err, &stock) {
		c.JSON(http.StatusBadRequest, dto.ErrorsResponse{Errors: []dto.FieldErrorPayload{
			{Msg: stock.Error(), Path: "items"},
		}})
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrEmptyCart),
		errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrUnsupportedPayment),
		errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrPaymentDeclined):
		c.Status(http.StatusPaymentRequired)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
