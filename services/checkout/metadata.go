package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"boulderhub/models"

	"go.uber.org/zap"
)

const storeOrderMetadataPath = "/payments/store-order-metadata/"

// OrderMetadataClient stores the checkout form against the pending payment
// intent, as a multipart form the way the store's own checkout page posts
// it.
type OrderMetadataClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewOrderMetadataClient creates a client against the store's base URL.
func NewOrderMetadataClient(baseURL string, logger *zap.Logger) *OrderMetadataClient {
	return &OrderMetadataClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// StoreOrderMetadata posts the form fields. Anything but a 2xx means the
// order data was not stored and payment confirmation must not proceed.
func (c *OrderMetadataClient) StoreOrderMetadata(ctx context.Context, fields map[string]string, csrfToken string) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("checkout: write form field %q: %w", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("checkout: close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+storeOrderMetadataPath, &buf)
	if err != nil {
		return fmt.Errorf("checkout: create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-CSRFToken", csrfToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &models.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
			return &models.ServerError{Status: resp.StatusCode, Message: apiErr.Error}
		}
		return &models.ServerError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("Failed to store order data (status %d: %s)", resp.StatusCode, body),
		}
	}

	c.logger.Debug("order metadata stored", zap.Int("fields", len(fields)))
	return nil
}
