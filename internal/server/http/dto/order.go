package dto

import "time"

// CheckoutItem is one requested order line.
type CheckoutItem struct {
	Product  int64           `json:"product"`
	Variant  *VariantPayload `json:"variant,omitempty"`
	Quantity int             `json:"quantity"`
}

// CreateOrderRequest is the checkout submission payload. Items may be empty,
// in which case the stored cart supplies the lines.
type CreateOrderRequest struct {
	Items           []CheckoutItem  `json:"items,omitempty"`
	Email           string          `json:"email"`
	ShippingAddress AddressPayload  `json:"shippingAddress"`
	BillingAddress  *AddressPayload `json:"billingAddress,omitempty"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentID       string          `json:"paymentId,omitempty"`
}

// OrderLineResponse is one purchased line at its authoritative price.
type OrderLineResponse struct {
	Product  int64           `json:"product"`
	Name     string          `json:"name"`
	Variant  *VariantPayload `json:"variant,omitempty"`
	Quantity int             `json:"quantity"`
	Price    float64         `json:"price"`
	Total    float64         `json:"total"`
}

// StatusChangeResponse is one status history entry.
type StatusChangeResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	ChangedAt time.Time `json:"changedAt"`
}

// OrderResponse describes a persisted order.
type OrderResponse struct {
	ID              int64                  `json:"id"`
	Number          string                 `json:"number"`
	Status          string                 `json:"status"`
	Items           []OrderLineResponse    `json:"items"`
	ShippingAddress AddressPayload         `json:"shippingAddress"`
	BillingAddress  AddressPayload         `json:"billingAddress"`
	Subtotal        float64                `json:"subtotal"`
	Tax             float64                `json:"tax"`
	Shipping        float64                `json:"shipping"`
	Total           float64                `json:"total"`
	PaymentMethod   string                 `json:"paymentMethod"`
	PaymentStatus   string                 `json:"paymentStatus"`
	TrackingNumber  string                 `json:"trackingNumber,omitempty"`
	StatusHistory   []StatusChangeResponse `json:"statusHistory,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// OrderEnvelope wraps a single order.
type OrderEnvelope struct {
	Order OrderResponse `json:"order"`
}

// OrderListResponse is a paginated order listing.
type OrderListResponse struct {
	Orders      []OrderResponse `json:"orders"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	Total       int64           `json:"total"`
}

// UpdateStatusRequest is the admin status transition payload.
type UpdateStatusRequest struct {
	Status         string `json:"status"`
	Note           string `json:"note,omitempty"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
}
