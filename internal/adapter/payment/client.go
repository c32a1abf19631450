package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"
)

// ErrDeclined indicates the payer rejected or failed the push request.
var ErrDeclined = errors.New("payment request declined")

// TooManyRequestsError represents rate limiting signal from the gateway.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Result carries the gateway's confirmation for a settled payment.
type Result struct {
	ConfirmationID string
}

// Client exposes operations against the push-payment gateway.
type Client interface {
	RequestPayment(ctx context.Context, phone string, amount float64, reference string) (*Result, error)
}

// HTTPClient implements Client via the gateway's HTTP API: a push request is
// issued to the payer's phone, then its status is polled until terminal.
type HTTPClient struct {
	baseURL      *url.URL
	httpClient   *http.Client
	logger       *slog.Logger
	pollInterval time.Duration
}

type pushRequest struct {
	Phone     string  `json:"phone"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
}

type pushResponse struct {
	RequestID string `json:"request_id"`
}

type statusResponse struct {
	RequestID      string `json:"request_id"`
	Status         string `json:"status"`
	ConfirmationID string `json:"confirmation_id,omitempty"`
}

const (
	statusPending = "pending"
	statusSuccess = "success"
	statusFailed  = "failed"
)

// NewHTTPClient creates HTTP payment client with default timeouts.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse payment gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("payment gateway url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		pollInterval: time.Second,
	}, nil
}

// RequestPayment issues a push request and awaits a terminal result.
func (c *HTTPClient) RequestPayment(ctx context.Context, phone string, amount float64, reference string) (*Result, error) {
	requestID, err := c.push(ctx, phone, amount, reference)
	if err != nil {
		return nil, err
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		status, err := c.status(ctx, requestID)
		if err != nil {
			var tooMany TooManyRequestsError
			if errors.As(err, &tooMany) {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(tooMany.RetryAfter):
					continue
				}
			}
			return nil, err
		}

		switch status.Status {
		case statusSuccess:
			return &Result{ConfirmationID: status.ConfirmationID}, nil
		case statusFailed:
			return nil, ErrDeclined
		case statusPending:
		default:
			return nil, fmt.Errorf("unknown payment status %q", status.Status)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *HTTPClient) push(ctx context.Context, phone string, amount float64, reference string) (string, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/payments/push")

	body, err := json.Marshal(pushRequest{Phone: phone, Amount: amount, Reference: reference})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusAccepted, http.StatusOK:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		var data pushResponse
		if err := json.Unmarshal(raw, &data); err != nil {
			return "", err
		}
		if data.RequestID == "" {
			return "", fmt.Errorf("gateway returned empty request id")
		}
		return data.RequestID, nil
	case http.StatusUnprocessableEntity:
		return "", ErrDeclined
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("payment push failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return "", fmt.Errorf("payment gateway error: %s", resp.Status)
	}
}

func (c *HTTPClient) status(ctx context.Context, requestID string) (*statusResponse, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/payments/push/", requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data statusResponse
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, err
		}
		return &data, nil
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, TooManyRequestsError{RetryAfter: retryAfter}
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("payment status failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return nil, fmt.Errorf("payment gateway error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
