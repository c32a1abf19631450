package model

import "time"

// CartLine is one product (plus optional variant) a user intends to purchase.
// Price is the unit price captured at add time; the order service re-resolves it.
type CartLine struct {
	ID        string    `json:"id"`
	ProductID int64     `json:"product_id"`
	Variant   *Variant  `json:"variant,omitempty"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart is the durable set of lines for a single user.
type Cart struct {
	UserID    int64      `json:"user_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Subtotal sums captured price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, line := range c.Lines {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// FindLine returns the line with given id, or nil.
func (c *Cart) FindLine(lineID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			return &c.Lines[i]
		}
	}
	return nil
}

// RemoveLine deletes the line with given id, reporting whether it existed.
func (c *Cart) RemoveLine(lineID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// CartTotals is the derived monetary breakdown shown before checkout.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}
