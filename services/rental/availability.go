package rental

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"boulderhub/models"

	"go.uber.org/zap"
)

const availabilityPath = "/rentals/api/crashpads/available/"

// genericLoadFailure is shown when the store's error body carries no
// structured message.
const genericLoadFailure = "Failed to load available crashpads. Please try again."

// AvailabilityClient reads available rental units from the store for a
// confirmed date range.
type AvailabilityClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// AvailabilityOption configures an AvailabilityClient.
type AvailabilityOption func(*AvailabilityClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) AvailabilityOption {
	return func(c *AvailabilityClient) {
		c.httpClient = client
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zap.Logger) AvailabilityOption {
	return func(c *AvailabilityClient) {
		c.logger = logger
	}
}

// NewAvailabilityClient creates a client against the store's base URL.
func NewAvailabilityClient(baseURL string, opts ...AvailabilityOption) *AvailabilityClient {
	c := &AvailabilityClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zap.L(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch lists the crashpads free over the given range. An empty slice with
// a nil error is real zero availability, not a failure. Errors follow the
// storefront taxonomy: NetworkError when the store was unreachable,
// ServerError for non-2xx responses.
func (c *AvailabilityClient) Fetch(ctx context.Context, dr models.DateRange) ([]models.Crashpad, error) {
	query := url.Values{}
	query.Set("check_in", dr.CheckInString())
	query.Set("check_out", dr.CheckOutString())
	endpoint := c.baseURL + availabilityPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("availability: create request: %w", err)
	}

	c.logger.Debug("fetching availability",
		zap.String("check_in", dr.CheckInString()),
		zap.String("check_out", dr.CheckOutString()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &models.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverErrorFromBody(resp.StatusCode, body)
	}

	var pads []models.Crashpad
	if err := json.Unmarshal(body, &pads); err != nil {
		return nil, &models.ServerError{Status: resp.StatusCode, Message: genericLoadFailure}
	}

	c.logger.Info("availability fetched",
		zap.String("check_in", dr.CheckInString()),
		zap.Int("crashpads", len(pads)))
	return pads, nil
}

// serverErrorFromBody prefers the store's structured error message; the
// fallback embeds the raw status and body for diagnosis.
func serverErrorFromBody(status int, body []byte) error {
	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return &models.ServerError{Status: status, Message: apiErr.Error}
	}
	return &models.ServerError{
		Status:  status,
		Message: fmt.Sprintf("%s (status %d: %s)", genericLoadFailure, status, body),
	}
}
