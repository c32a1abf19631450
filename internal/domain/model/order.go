package model

import "time"

// OrderStatus describes order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// Valid reports whether the status belongs to the closed enumeration.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// Cancellable reports whether a customer may still cancel.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

// CanTransitionTo validates the forward-only happy path with cancel/refund side branches.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	switch next {
	case OrderStatusCancelled:
		return s.Cancellable()
	case OrderStatusRefunded:
		return true
	}
	forward := map[OrderStatus]OrderStatus{
		OrderStatusPending:    OrderStatusConfirmed,
		OrderStatusConfirmed:  OrderStatusProcessing,
		OrderStatusProcessing: OrderStatusShipped,
		OrderStatusShipped:    OrderStatusDelivered,
	}
	return forward[s] == next
}

// PaymentMethod is the closed enumeration of supported payment options.
type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCOD          PaymentMethod = "cod"
	PaymentMethodMpesa        PaymentMethod = "mpesa"
)

// Valid reports whether the method belongs to the enumeration.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodPaypal, PaymentMethodBankTransfer,
		PaymentMethodCOD, PaymentMethodMpesa:
		return true
	}
	return false
}

// Supported reports whether the method is exercised end-to-end.
// Card, paypal and bank transfer are taxonomy placeholders.
func (m PaymentMethod) Supported() bool {
	return m == PaymentMethodCOD || m == PaymentMethodMpesa
}

// PaymentStatus tracks settlement of the order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Address holds shipping or billing contact details.
type Address struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// OrderLine captures one purchased product at its authoritative price.
type OrderLine struct {
	ProductID int64    `json:"product_id"`
	Name      string   `json:"name"`
	Variant   *Variant `json:"variant,omitempty"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Total     float64  `json:"total"`
}

// StatusChange is one append-only entry of the order's status history.
type StatusChange struct {
	Status    OrderStatus `json:"status"`
	Note      string      `json:"note,omitempty"`
	ChangedAt time.Time   `json:"changed_at"`
}

// Order is a durable, stock-affecting purchase.
type Order struct {
	ID              int64
	Number          string
	UserID          int64
	Lines           []OrderLine
	ShippingAddress Address
	BillingAddress  Address
	Subtotal        float64
	Tax             float64
	Shipping        float64
	Total           float64
	Status          OrderStatus
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	PaymentID       string
	TrackingNumber  string
	History         []StatusChange
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DraftLine is a requested order line before authoritative pricing.
type DraftLine struct {
	ProductID int64
	Variant   *Variant
	Quantity  int
}

// OrderDraft is the input to transactional order placement. TaxRate,
// ShippingCost and NumberPrefix carry the deployment's pricing policy
// into the placement transaction.
type OrderDraft struct {
	UserID          int64
	Lines           []DraftLine
	ShippingAddress Address
	BillingAddress  Address
	PaymentMethod   PaymentMethod
	PaymentID       string
	TaxRate         float64
	ShippingCost    float64
	NumberPrefix    string
}
