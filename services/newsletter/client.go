// Package newsletter posts signups to the store's newsletter form action.
package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"
	"time"

	"boulderhub/models"

	"go.uber.org/zap"
)

// Client submits the signup form the way the footer form does: a multipart
// POST marked as an XHR, with a JSON reply either way.
type Client struct {
	action     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a signup client for the configured form action URL.
func NewClient(action string, logger *zap.Logger) *Client {
	return &Client{
		action:     action,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// Signup subscribes an email address. The parsed response is returned for
// both accepted and rejected signups; only transport and decode failures
// are errors.
func (c *Client) Signup(ctx context.Context, email string) (*models.SignupResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, &models.ValidationError{Message: "email is required"}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("email", email); err != nil {
		return nil, fmt.Errorf("newsletter: write email field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("newsletter: close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.action, &buf)
	if err != nil {
		return nil, fmt.Errorf("newsletter: create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &models.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	var signup models.SignupResponse
	if err := json.NewDecoder(resp.Body).Decode(&signup); err != nil {
		return nil, &models.ServerError{
			Status:  resp.StatusCode,
			Message: "An error occurred. Please try again.",
		}
	}

	if signup.Success {
		c.logger.Info("newsletter signup accepted", zap.String("email", email))
	} else {
		c.logger.Debug("newsletter signup rejected", zap.String("email", email))
	}
	return &signup, nil
}

// FieldErrorText joins per-field messages into one display string, in
// stable field order.
func FieldErrorText(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(errs))
	for _, field := range fields {
		msgs = append(msgs, errs[field])
	}
	return strings.Join(msgs, "\n")
}
