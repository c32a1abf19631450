package dto

// FieldErrorPayload is one per-field validation failure.
type FieldErrorPayload struct {
	Msg  string `json:"msg"`
	Path string `json:"path"`
}

// ErrorsResponse is the envelope for validation and business-rule failures.
type ErrorsResponse struct {
	Errors []FieldErrorPayload `json:"errors"`
}

// VariantPayload mirrors a product variant on the wire.
type VariantPayload struct {
	Name  string   `json:"name"`
	Value string   `json:"value"`
	Price *float64 `json:"price,omitempty"`
}

// AddressPayload carries shipping or billing contact details.
type AddressPayload struct {
	FullName   string `json:"fullName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}
