package payment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newFastClient(t *testing.T, baseURL string, logger *slog.Logger) *HTTPClient {
	t.Helper()
	client, err := NewHTTPClient(baseURL, logger)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	client.pollInterval = 5 * time.Millisecond
	return client
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestRequestPaymentSuccessAfterPending(t *testing.T) {
	var polls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/payments/push":
			var req pushRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("failed to decode push request: %v", err)
			}
			if req.Phone != "+254712345678" || req.Amount != 232 || req.Reference != "ORD-000001" {
				t.Fatalf("unexpected push payload %+v", req)
			}
			w.WriteHeader(http.StatusAccepted)
			json.NewEncoder(w).Encode(pushResponse{RequestID: "req-1"})
		case r.Method == http.MethodGet && r.URL.Path == "/api/payments/push/req-1":
			resp := statusResponse{RequestID: "req-1", Status: statusPending}
			if atomic.AddInt32(&polls, 1) >= 3 {
				resp.Status = statusSuccess
				resp.ConfirmationID = "conf-9"
			}
			json.NewEncoder(w).Encode(resp)
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	client := newFastClient(t, srv.URL, testLogger())

	result, err := client.RequestPayment(context.Background(), "+254712345678", 232, "ORD-000001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ConfirmationID != "conf-9" {
		t.Fatalf("expected confirmation conf-9, got %q", result.ConfirmationID)
	}
	if atomic.LoadInt32(&polls) < 3 {
		t.Fatalf("expected at least three polls, got %d", polls)
	}
}

func TestRequestPaymentDeclined(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "declined at push",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
			},
		},
		{
			name: "declined at poll",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodPost {
					w.WriteHeader(http.StatusAccepted)
					json.NewEncoder(w).Encode(pushResponse{RequestID: "req-2"})
					return
				}
				json.NewEncoder(w).Encode(statusResponse{RequestID: "req-2", Status: statusFailed})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := newFastClient(t, srv.URL, testLogger())
			if _, err := client.RequestPayment(context.Background(), "+254700000000", 10, "ORD-000002"); !errors.Is(err, ErrDeclined) {
				t.Fatalf("expected ErrDeclined, got %v", err)
			}
		})
	}
}

func TestRequestPaymentRetriesAfterRateLimit(t *testing.T) {
	var polls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusAccepted)
			json.NewEncoder(w).Encode(pushResponse{RequestID: "req-3"})
			return
		}
		if atomic.AddInt32(&polls, 1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(statusResponse{RequestID: "req-3", Status: statusSuccess, ConfirmationID: "conf-3"})
	}))
	defer srv.Close()

	client := newFastClient(t, srv.URL, testLogger())

	result, err := client.RequestPayment(context.Background(), "+254700000000", 50, "ORD-000003")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ConfirmationID != "conf-3" {
		t.Fatalf("expected confirmation conf-3, got %q", result.ConfirmationID)
	}
	if atomic.LoadInt32(&polls) != 2 {
		t.Fatalf("expected two polls, got %d", polls)
	}
}

func TestRequestPaymentUnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusAccepted)
			json.NewEncoder(w).Encode(pushResponse{RequestID: "req-4"})
			return
		}
		json.NewEncoder(w).Encode(statusResponse{RequestID: "req-4", Status: "vanished"})
	}))
	defer srv.Close()

	client := newFastClient(t, srv.URL, testLogger())
	if _, err := client.RequestPayment(context.Background(), "+254700000000", 50, "ORD-000004"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestRequestPaymentContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusAccepted)
			json.NewEncoder(w).Encode(pushResponse{RequestID: "req-5"})
			return
		}
		json.NewEncoder(w).Encode(statusResponse{RequestID: "req-5", Status: statusPending})
	}))
	defer srv.Close()

	client := newFastClient(t, srv.URL, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if _, err := client.RequestPayment(ctx, "+254700000000", 50, "ORD-000005"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestPushLogsErrorResponses(t *testing.T) {
	called := make(chan struct{}, 1)
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelError {
			select {
			case called <- struct{}{}:
			default:
			}
		}
		return a
	}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newFastClient(t, srv.URL, slog.New(handler))

	if _, err := client.RequestPayment(context.Background(), "+254700000000", 1, "ORD-000006"); err == nil {
		t.Fatal("expected error from server")
	}

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("expected error log to be written")
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Now()
	httpTime := now.Add(2 * time.Second).UTC().Format(http.TimeFormat)

	cases := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{name: "empty", header: "", want: 5 * time.Second},
		{name: "seconds", header: "7", want: 7 * time.Second},
		{name: "http date", header: httpTime, want: 2 * time.Second},
		{name: "fallback", header: "bad", want: 5 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseRetryAfter(tc.header)
			if tc.header == httpTime {
				if got <= time.Second || got > 3*time.Second {
					t.Fatalf("unexpected retry duration %v", got)
				}
			} else if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
