package dto

// AddCartItemRequest adds one product (plus optional variant) to the cart.
type AddCartItemRequest struct {
	Product  int64           `json:"product"`
	Variant  *VariantPayload `json:"variant,omitempty"`
	Quantity int             `json:"quantity"`
}

// UpdateCartItemRequest sets a line's quantity; zero or less removes it.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse is one cart line with its captured price.
type CartLineResponse struct {
	ID       string          `json:"id"`
	Product  int64           `json:"product"`
	Variant  *VariantPayload `json:"variant,omitempty"`
	Quantity int             `json:"quantity"`
	Price    float64         `json:"price"`
	Total    float64         `json:"total"`
}

// CartResponse is the cart with its derived totals.
type CartResponse struct {
	Items    []CartLineResponse `json:"items"`
	Subtotal float64            `json:"subtotal"`
	Tax      float64            `json:"tax"`
	Shipping float64            `json:"shipping"`
	Total    float64            `json:"total"`
}

// CartValidationResponse reports the cart after a validation pass along with
// notices for dropped lines.
type CartValidationResponse struct {
	Cart    CartResponse `json:"cart"`
	Notices []string     `json:"notices,omitempty"`
}
