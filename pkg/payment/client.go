// Package payment integrates with the external payment processor. The
// processor is the system of record for pending purchases between checkout
// creation and webhook confirmation; this package only creates sessions,
// reads them back and verifies webhook signatures.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cinema-platform/pkg/utils"

	"go.uber.org/zap"
)

// CheckoutSession mirrors the processor's session object. Metadata carries
// the serialized pending purchase batch so the confirmation webhook can
// echo it back.
type CheckoutSession struct {
	ID          string            `json:"id"`
	URL         string            `json:"url"`
	Status      string            `json:"status"`
	AmountTotal int64             `json:"amount_total"`
	Currency    string            `json:"currency"`
	Metadata    map[string]string `json:"metadata"`
}

// CheckoutSessionRequest is the payload for creating a session.
type CheckoutSessionRequest struct {
	AmountTotal int64             `json:"amount_total"`
	Currency    string            `json:"currency"`
	SuccessURL  string            `json:"success_url,omitempty"`
	CancelURL   string            `json:"cancel_url,omitempty"`
	Metadata    map[string]string `json:"metadata"`
}

// Client talks to the payment processor's REST API.
type Client struct {
	apiURL     string
	apiKey     string
	currency   string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(config *utils.Config, logger *zap.Logger) *Client {
	return &Client{
		apiURL:   config.Payment.APIURL,
		apiKey:   config.Payment.APIKey,
		currency: config.Payment.Currency,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger.With(zap.String("component", "payment")),
	}
}

// Currency returns the configured settlement currency.
func (c *Client) Currency() string {
	return c.currency
}

// CreateCheckoutSession registers a pending purchase batch with the
// processor and returns the session the customer completes payment on.
func (c *Client) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error) {
	if req.Currency == "" {
		req.Currency = c.currency
	}

	var session CheckoutSession
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", req, &session); err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	c.logger.Info("Checkout session created",
		zap.String("session_id", session.ID),
		zap.Int64("amount_total", session.AmountTotal))

	return &session, nil
}

// GetCheckoutSession fetches the current state of a session.
func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	var session CheckoutSession
	if err := c.do(ctx, http.MethodGet, "/v1/checkout/sessions/"+sessionID, nil, &session); err != nil {
		return nil, fmt.Errorf("failed to get checkout session: %w", err)
	}
	return &session, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("payment provider returned %d: %s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
