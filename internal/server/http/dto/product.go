package dto

// ProductResponse describes one catalog item.
type ProductResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Brand       string           `json:"brand,omitempty"`
	Description string           `json:"description,omitempty"`
	Price       float64          `json:"price"`
	Stock       int              `json:"stock"`
	Variants    []VariantPayload `json:"variants,omitempty"`
}

// ProductListResponse is a paginated product listing.
type ProductListResponse struct {
	Products    []ProductResponse `json:"products"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	Total       int64             `json:"total"`
}
