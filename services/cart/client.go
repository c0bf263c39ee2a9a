// Package cart submits rental selections to the store's cart endpoint.
package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"boulderhub/models"

	"go.uber.org/zap"
)

const addRentalPath = "/cart/add/rental/"

// Client posts cart mutations to the store. Mutating calls carry the CSRF
// token in the X-CSRFToken header.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a cart client against the store's base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zap.L(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add posts the rental request. Validation runs before any network call:
// missing dates or an empty selection fail locally with a ValidationError
// and no request is sent. On success the store may hand back a redirect
// target for the caller to follow.
func (c *Client) Add(ctx context.Context, req models.CartRequest, csrfToken string) (*models.CartResponse, error) {
	if req.CheckIn == "" || req.CheckOut == "" || len(req.CrashpadIDs) == 0 {
		return nil, &models.ValidationError{Message: "Please select dates and at least one crashpad"}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("cart: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+addRentalPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("cart: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-CSRFToken", csrfToken)

	c.logger.Debug("adding rentals to cart",
		zap.Int64s("crashpad_ids", req.CrashpadIDs),
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &models.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var cartResp models.CartResponse
		if err := json.Unmarshal(body, &cartResp); err == nil && cartResp.Error != "" {
			return nil, &models.ServerError{Status: resp.StatusCode, Message: cartResp.Error}
		}
		return nil, &models.ServerError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("Server returned %d: %s", resp.StatusCode, body),
		}
	}

	var cartResp models.CartResponse
	if err := json.Unmarshal(body, &cartResp); err != nil {
		return nil, &models.ServerError{Status: resp.StatusCode, Message: "Failed to add items to cart"}
	}

	c.logger.Info("rentals added to cart",
		zap.Int("count", len(req.CrashpadIDs)),
		zap.String("redirect_url", cartResp.RedirectURL))
	return &cartResp, nil
}
