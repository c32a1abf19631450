package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/server/http/dto"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/server/http/middleware"
	testhelpers "github.com/aurafix3-tech/aurafix-cosmetics/internal/test"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path, route string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(userID int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, userID)
	}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	login := testhelpers.RandomASCIIString(7, 14)
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.AuthRequest{Login: login, Password: password})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, gotLogin, gotPassword string) (string, error) {
		if gotLogin != login || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotLogin, gotPassword)
		}
		return "session-token", nil
	}})

	resp := performRequest(t, http.MethodPost, "/register", "/register", handler.Register, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}

	result := resp.Result()
	t.Cleanup(func() { _ = result.Body.Close() })
	found := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "aurafix_token" {
			if cookie.Value != "session-token" {
				t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("expected auth cookie named aurafix_token")
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{
			name:   "malformed body",
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
		{
			name: "duplicate login",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
				return "", domainErrors.ErrAlreadyExists
			}},
			body:   mustJSON(t, dto.AuthRequest{Login: "user", Password: "pass"}),
			status: http.StatusConflict,
		},
		{
			name: "invalid credentials",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
				return "", domainErrors.ErrInvalidCredentials
			}},
			body:   mustJSON(t, dto.AuthRequest{Login: "", Password: ""}),
			status: http.StatusBadRequest,
		},
		{
			name: "internal error",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
				return "", errors.New("db down")
			}},
			body:   mustJSON(t, dto.AuthRequest{Login: "user", Password: "pass"}),
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(tc.facade).Register, nil, tc.body)
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLoginUnauthorized(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
		return "", domainErrors.ErrInvalidCredentials
	}}
	body := mustJSON(t, dto.AuthRequest{Login: "user", Password: "wrong"})

	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(facade).Login, nil, body)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestProductHandlerList(t *testing.T) {
	facade := testhelpers.CatalogFacadeStub{ProductsFn: func(_ context.Context, page, limit int) ([]model.Product, int64, error) {
		if page != 2 || limit != 5 {
			t.Fatalf("unexpected pagination %d %d", page, limit)
		}
		return []model.Product{{ID: 1, Name: "serum", Price: 100, Stock: 3}}, 11, nil
	}}

	resp := performRequest(t, http.MethodGet, "/products?page=2&limit=5", "/products", NewProductHandler(facade).List, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.ProductListResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.Total != 11 || payload.TotalPages != 3 || payload.CurrentPage != 2 {
		t.Fatalf("unexpected pagination payload %+v", payload)
	}
	if len(payload.Products) != 1 || payload.Products[0].Name != "serum" {
		t.Fatalf("unexpected products %+v", payload.Products)
	}
}

func TestProductHandlerGetNotFound(t *testing.T) {
	facade := testhelpers.CatalogFacadeStub{ProductFn: func(context.Context, int64) (*model.Product, error) {
		return nil, domainErrors.ErrNotFound
	}}

	resp := performRequest(t, http.MethodGet, "/products/99", "/products/:id", NewProductHandler(facade).Get, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestProductHandlerGetBadID(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/products/abc", "/products/:id", NewProductHandler(testhelpers.CatalogFacadeStub{}).Get, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCartHandlerAddItem(t *testing.T) {
	price := 120.0
	facade := &testhelpers.CartFacadeStub{AddFn: func(_ context.Context, userID, productID int64, variant *model.Variant, quantity int) (*model.Cart, model.CartTotals, error) {
		if userID != 7 || productID != 1 || quantity != 2 {
			t.Fatalf("unexpected arguments %d %d %d", userID, productID, quantity)
		}
		if variant == nil || variant.Value != "50ml" {
			t.Fatalf("unexpected variant %+v", variant)
		}
		cart := &model.Cart{UserID: userID, Lines: []model.CartLine{
			{ID: "line-1", ProductID: productID, Variant: variant, Quantity: quantity, Price: price},
		}}
		return cart, model.CartTotals{Subtotal: 240, Tax: 38.4, Total: 278.4}, nil
	}}

	body := mustJSON(t, dto.AddCartItemRequest{
		Product:  1,
		Variant:  &dto.VariantPayload{Name: "size", Value: "50ml"},
		Quantity: 2,
	})
	resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", NewCartHandler(facade).AddItem, asUser(7), body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.CartResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(payload.Items) != 1 || payload.Items[0].Total != 240 {
		t.Fatalf("unexpected cart payload %+v", payload)
	}
	if payload.Total != 278.4 {
		t.Fatalf("unexpected total %v", payload.Total)
	}
}

func TestCartHandlerAddItemUnknownProduct(t *testing.T) {
	facade := &testhelpers.CartFacadeStub{AddFn: func(context.Context, int64, int64, *model.Variant, int) (*model.Cart, model.CartTotals, error) {
		return nil, model.CartTotals{}, domainErrors.ErrNotFound
	}}

	body := mustJSON(t, dto.AddCartItemRequest{Product: 99, Quantity: 1})
	resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", NewCartHandler(facade).AddItem, asUser(7), body)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCartHandlerUpdateItemMissingLine(t *testing.T) {
	facade := &testhelpers.CartFacadeStub{UpdateFn: func(context.Context, int64, string, int) (*model.Cart, model.CartTotals, error) {
		return nil, model.CartTotals{}, domainErrors.ErrNotFound
	}}

	body := mustJSON(t, dto.UpdateCartItemRequest{Quantity: 3})
	resp := performRequest(t, http.MethodPut, "/cart/items/nope", "/cart/items/:id", NewCartHandler(facade).UpdateItem, asUser(7), body)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCartHandlerClear(t *testing.T) {
	facade := &testhelpers.CartFacadeStub{}

	resp := performRequest(t, http.MethodDelete, "/cart", "/cart", NewCartHandler(facade).Clear, asUser(7), nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if len(facade.ClearedUsers) != 1 || facade.ClearedUsers[0] != 7 {
		t.Fatalf("expected clear for user 7, got %v", facade.ClearedUsers)
	}
}

func TestCartHandlerValidate(t *testing.T) {
	facade := &testhelpers.CartFacadeStub{ValidateFn: func(_ context.Context, userID int64) (*model.Cart, model.CartTotals, []string, error) {
		cart := &model.Cart{UserID: userID, Lines: []model.CartLine{{ID: "a", ProductID: 1, Quantity: 1, Price: 10}}}
		return cart, model.CartTotals{Subtotal: 10, Tax: 1.6, Total: 11.6}, []string{"product 9 is no longer available and was removed from your cart"}, nil
	}}

	resp := performRequest(t, http.MethodPost, "/cart/validate", "/cart/validate", NewCartHandler(facade).Validate, asUser(7), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.CartValidationResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(payload.Notices) != 1 {
		t.Fatalf("expected one notice, got %v", payload.Notices)
	}
	if len(payload.Cart.Items) != 1 {
		t.Fatalf("unexpected cart %+v", payload.Cart)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{CheckoutFn: func(_ context.Context, userID int64, input usecase.CheckoutInput) (*model.Order, error) {
		if userID != 7 {
			t.Fatalf("unexpected user %d", userID)
		}
		if input.Email != "buyer@example.com" || input.PaymentMethod != model.PaymentMethodCOD {
			t.Fatalf("unexpected input %+v", input)
		}
		if len(input.Items) != 1 || input.Items[0].ProductID != 1 || input.Items[0].Quantity != 2 {
			t.Fatalf("unexpected items %+v", input.Items)
		}
		return &model.Order{
			ID: 1, Number: "ORD-000001", UserID: userID,
			Status: model.OrderStatusPending, PaymentMethod: model.PaymentMethodCOD,
			Subtotal: 200, Tax: 32, Total: 232,
		}, nil
	}}

	body := mustJSON(t, dto.CreateOrderRequest{
		Items: []dto.CheckoutItem{{Product: 1, Quantity: 2}},
		Email: "buyer@example.com",
		ShippingAddress: dto.AddressPayload{
			FullName: "Amina Odera", Street: "12 Biashara St", City: "Nairobi", Country: "KE",
		},
		PaymentMethod: "cod",
	})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(facade).Create, asUser(7), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var payload dto.OrderEnvelope
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.Order.Number != "ORD-000001" || payload.Order.Total != 232 {
		t.Fatalf("unexpected order payload %+v", payload.Order)
	}
}

func TestOrderHandlerCreateValidationErrors(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{CheckoutFn: func(context.Context, int64, usecase.CheckoutInput) (*model.Order, error) {
		return nil, &domainErrors.ValidationError{Fields: []domainErrors.FieldError{
			{Msg: "email is required", Path: "email"},
			{Msg: "city is required", Path: "shippingAddress.city"},
		}}
	}}

	body := mustJSON(t, dto.CreateOrderRequest{PaymentMethod: "cod"})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(facade).Create, asUser(7), body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var payload dto.ErrorsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(payload.Errors) != 2 {
		t.Fatalf("expected two field errors, got %+v", payload.Errors)
	}
	if payload.Errors[0].Path != "email" || payload.Errors[0].Msg != "email is required" {
		t.Fatalf("unexpected first error %+v", payload.Errors[0])
	}
}

func TestOrderHandlerCreateBusinessFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"empty cart", domainErrors.ErrEmptyCart, http.StatusBadRequest},
		{"unsupported payment", domainErrors.ErrUnsupportedPayment, http.StatusBadRequest},
		{"unknown product", domainErrors.ErrNotFound, http.StatusBadRequest},
		{"payment declined", domainErrors.ErrPaymentDeclined, http.StatusPaymentRequired},
		{"storage failure", errors.New("db down"), http.StatusInternalServerError},
	}

	body := mustJSON(t, dto.CreateOrderRequest{
		Email: "buyer@example.com",
		ShippingAddress: dto.AddressPayload{
			FullName: "Amina Odera", Street: "12 Biashara St", City: "Nairobi", Country: "KE",
		},
		PaymentMethod: "cod",
	})
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			facade := testhelpers.OrderFacadeStub{CheckoutFn: func(context.Context, int64, usecase.CheckoutInput) (*model.Order, error) {
				return nil, tc.err
			}}
			resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(facade).Create, asUser(7), body)
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerCreateInsufficientStock(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{CheckoutFn: func(context.Context, int64, usecase.CheckoutInput) (*model.Order, error) {
		return nil, &domainErrors.InsufficientStockError{ProductID: 1, Requested: 5, Available: 2}
	}}

	body := mustJSON(t, dto.CreateOrderRequest{
		Email: "buyer@example.com",
		ShippingAddress: dto.AddressPayload{
			FullName: "Amina Odera", Street: "12 Biashara St", City: "Nairobi", Country: "KE",
		},
		PaymentMethod: "cod",
	})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(facade).Create, asUser(7), body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var payload dto.ErrorsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(payload.Errors) != 1 || payload.Errors[0].Path != "items" {
		t.Fatalf("unexpected errors payload %+v", payload.Errors)
	}
}

func TestOrderHandlerList(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{MyOrdersFn: func(_ context.Context, userID int64, page, limit int) ([]model.Order, int64, error) {
		return []model.Order{{ID: 1, Number: "ORD-000001", UserID: userID, Status: model.OrderStatusPending}}, 1, nil
	}}

	resp := performRequest(t, http.MethodGet, "/orders/my-orders", "/orders/my-orders", NewOrderHandler(facade).List, asUser(7), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.OrderListResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.Total != 1 || payload.TotalPages != 1 || payload.CurrentPage != 1 {
		t.Fatalf("unexpected pagination %+v", payload)
	}
	if len(payload.Orders) != 1 || payload.Orders[0].Number != "ORD-000001" {
		t.Fatalf("unexpected orders %+v", payload.Orders)
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	var got testhelpers.StatusUpdateCall
	facade := testhelpers.OrderFacadeStub{UpdateStatusFn: func(_ context.Context, orderID int64, status model.OrderStatus, note, trackingNumber string) error {
		got = testhelpers.StatusUpdateCall{OrderID: orderID, Status: status, Note: note, TrackingNumber: trackingNumber}
		return nil
	}}

	body := mustJSON(t, dto.UpdateStatusRequest{Status: "shipped", TrackingNumber: "TRACK-9"})
	resp := performRequest(t, http.MethodPut, "/orders/4/status", "/orders/:id/status", NewOrderHandler(facade).UpdateStatus, asUser(1), body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got.OrderID != 4 || got.Status != model.OrderStatusShipped || got.TrackingNumber != "TRACK-9" {
		t.Fatalf("unexpected update call %+v", got)
	}
}

func TestOrderHandlerUpdateStatusInvalidTransition(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{UpdateStatusFn: func(context.Context, int64, model.OrderStatus, string, string) error {
		return domainErrors.ErrInvalidStatusTransition
	}}

	body := mustJSON(t, dto.UpdateStatusRequest{Status: "pending"})
	resp := performRequest(t, http.MethodPut, "/orders/4/status", "/orders/:id/status", NewOrderHandler(facade).UpdateStatus, asUser(1), body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOrderHandlerCancel(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{CancelFn: func(_ context.Context, userID, orderID int64) (*model.Order, error) {
		return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusCancelled}, nil
	}}

	resp := performRequest(t, http.MethodPut, "/orders/4/cancel", "/orders/:id/cancel", NewOrderHandler(facade).Cancel, asUser(7), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.OrderEnvelope
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.Order.Status != "cancelled" {
		t.Fatalf("expected cancelled order, got %+v", payload.Order)
	}
}

func TestOrderHandlerCancelFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not cancellable", domainErrors.ErrOrderNotCancellable, http.StatusBadRequest},
		{"foreign order", domainErrors.ErrNotFound, http.StatusNotFound},
		{"storage failure", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			facade := testhelpers.OrderFacadeStub{CancelFn: func(context.Context, int64, int64) (*model.Order, error) {
				return nil, tc.err
			}}
			resp := performRequest(t, http.MethodPut, "/orders/4/cancel", "/orders/:id/cancel", NewOrderHandler(facade).Cancel, asUser(7), nil)
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return body
}
