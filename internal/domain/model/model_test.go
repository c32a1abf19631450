package model

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to confirmed", OrderStatusPending, OrderStatusConfirmed, true},
		{"confirmed to processing", OrderStatusConfirmed, OrderStatusProcessing, true},
		{"processing to shipped", OrderStatusProcessing, OrderStatusShipped, true},
		{"shipped to delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"confirmed to cancelled", OrderStatusConfirmed, OrderStatusCancelled, true},
		{"processing to cancelled", OrderStatusProcessing, OrderStatusCancelled, false},
		{"shipped to refunded", OrderStatusShipped, OrderStatusRefunded, true},
		{"pending to shipped", OrderStatusPending, OrderStatusShipped, false},
		{"delivered to refunded", OrderStatusDelivered, OrderStatusRefunded, false},
		{"cancelled to pending", OrderStatusCancelled, OrderStatusPending, false},
		{"refunded to confirmed", OrderStatusRefunded, OrderStatusConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
				t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
			}
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded} {
		if !status.Terminal() {
			t.Fatalf("expected %s to be terminal", status)
		}
	}
	for _, status := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped} {
		if status.Terminal() {
			t.Fatalf("expected %s to be non-terminal", status)
		}
	}
}

func TestPaymentMethodSupport(t *testing.T) {
	if !PaymentMethodCOD.Supported() || !PaymentMethodMpesa.Supported() {
		t.Fatal("expected cod and mpesa to be supported")
	}
	for _, method := range []PaymentMethod{PaymentMethodCard, PaymentMethodPaypal, PaymentMethodBankTransfer} {
		if !method.Valid() {
			t.Fatalf("expected %s to be a valid method", method)
		}
		if method.Supported() {
			t.Fatalf("expected %s to be unsupported", method)
		}
	}
	if PaymentMethod("wire").Valid() {
		t.Fatal("expected unknown method to be invalid")
	}
}

func TestVariantEqual(t *testing.T) {
	price := 12.5
	other := 13.0
	a := &Variant{Name: "shade", Value: "ruby", Price: &price}

	if !a.Equal(&Variant{Name: "shade", Value: "ruby", Price: &price}) {
		t.Fatal("expected equal variants to match")
	}
	if a.Equal(&Variant{Name: "shade", Value: "coral", Price: &price}) {
		t.Fatal("expected different values to differ")
	}
	if a.Equal(&Variant{Name: "shade", Value: "ruby", Price: &other}) {
		t.Fatal("expected different prices to differ")
	}
	if a.Equal(nil) {
		t.Fatal("expected nil to differ from non-nil")
	}
	var b *Variant
	if !b.Equal(nil) {
		t.Fatal("expected nil variants to match")
	}
}

func TestProductUnitPrice(t *testing.T) {
	override := 150.0
	product := Product{ID: 1, Price: 100, Variants: []Variant{
		{Name: "size", Value: "100ml", Price: &override},
		{Name: "size", Value: "50ml"},
	}}

	if got := product.UnitPrice(nil); got != 100 {
		t.Fatalf("expected base price, got %v", got)
	}
	if got := product.UnitPrice(&Variant{Name: "size", Value: "100ml"}); got != 150 {
		t.Fatalf("expected override price, got %v", got)
	}
	if got := product.UnitPrice(&Variant{Name: "size", Value: "50ml"}); got != 100 {
		t.Fatalf("expected base price for variant without override, got %v", got)
	}
}

func TestCartHelpers(t *testing.T) {
	cart := &Cart{UserID: 1, Lines: []CartLine{
		{ID: "a", ProductID: 1, Quantity: 2, Price: 10},
		{ID: "b", ProductID: 2, Quantity: 1, Price: 5},
	}}

	if cart.Subtotal() != 25 {
		t.Fatalf("expected subtotal 25, got %v", cart.Subtotal())
	}
	if cart.IsEmpty() {
		t.Fatal("expected non-empty cart")
	}
	if line := cart.FindLine("b"); line == nil || line.ProductID != 2 {
		t.Fatalf("unexpected line %+v", line)
	}
	if cart.FindLine("c") != nil {
		t.Fatal("expected missing line to be nil")
	}
	if !cart.RemoveLine("a") {
		t.Fatal("expected removal to succeed")
	}
	if cart.RemoveLine("a") {
		t.Fatal("expected second removal to fail")
	}
	if len(cart.Lines) != 1 {
		t.Fatalf("expected one line left, got %d", len(cart.Lines))
	}
}
