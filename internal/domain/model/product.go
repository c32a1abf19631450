package model

import "time"

// Variant is a named product option (e.g. shade, size) that may override the base price.
type Variant struct {
	Name  string   `json:"name"`
	Value string   `json:"value"`
	Price *float64 `json:"price,omitempty"`
}

// Equal reports whether two variants describe the same option at the same price.
func (v *Variant) Equal(other *Variant) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Name != other.Name || v.Value != other.Value {
		return false
	}
	if v.Price == nil || other.Price == nil {
		return v.Price == other.Price
	}
	return *v.Price == *other.Price
}

// Product describes a catalog item with available inventory.
type Product struct {
	ID          int64
	Name        string
	Brand       string
	Description string
	Price       float64
	Stock       int
	Variants    []Variant
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UnitPrice resolves the effective price for the chosen variant, falling back to base price.
func (p *Product) UnitPrice(variant *Variant) float64 {
	if variant == nil {
		return p.Price
	}
	for i := range p.Variants {
		v := &p.Variants[i]
		if v.Name == variant.Name && v.Value == variant.Value {
			if v.Price != nil {
				return *v.Price
			}
			return p.Price
		}
	}
	if variant.Price != nil {
		return *variant.Price
	}
	return p.Price
}
