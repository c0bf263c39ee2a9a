package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"boulderhub/config"
	"boulderhub/models"
	"boulderhub/services/checkout"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMetadataStore struct {
	fields map[string]string
	csrf   string
	err    error
}

func (s *stubMetadataStore) StoreOrderMetadata(ctx context.Context, fields map[string]string, csrfToken string) error {
	s.fields = fields
	s.csrf = csrfToken
	return s.err
}

type stubConfirmer struct {
	calls  int
	result *models.PaymentConfirmation
	err    error
}

func (s *stubConfirmer) Confirm(ctx context.Context, paymentIntentID, returnURL string) (*models.PaymentConfirmation, error) {
	s.calls++
	return s.result, s.err
}

func newCheckoutRouter(t *testing.T, meta *stubMetadataStore, confirmer *stubConfirmer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig.CSRFCookieName = "csrftoken"

	handler := NewCheckoutHandler(&checkout.Flow{
		Metadata:  meta,
		Confirmer: confirmer,
		ReturnURL: "https://shop.example/payments/checkout-success/",
	})
	router := gin.New()
	router.POST("/api/checkout/confirm", handler.Confirm)
	return router
}

func postCheckoutForm(t *testing.T, router *gin.Engine, fields map[string]string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/confirm", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestConfirmEndpoint(t *testing.T) {
	meta := &stubMetadataStore{}
	confirmer := &stubConfirmer{result: &models.PaymentConfirmation{
		PaymentIntentID: "pi_123",
		Status:          "succeeded",
	}}
	router := newCheckoutRouter(t, meta, confirmer)

	rec := postCheckoutForm(t, router, map[string]string{
		"payment_intent_id": "pi_123",
		"first_name":        "Alex",
		"email":             "alex@example.com",
	}, &http.Cookie{Name: "csrftoken", Value: "tok123"})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "succeeded")
	assert.Equal(t, "tok123", meta.csrf)
	assert.Equal(t, "Alex", meta.fields["first_name"])
	// The payment reference travels separately, not as order metadata.
	_, present := meta.fields["payment_intent_id"]
	assert.False(t, present)
}

func TestConfirmEndpointMissingIntent(t *testing.T) {
	meta := &stubMetadataStore{}
	confirmer := &stubConfirmer{}
	router := newCheckoutRouter(t, meta, confirmer)

	rec := postCheckoutForm(t, router, map[string]string{"first_name": "Alex"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, confirmer.calls)
}

func TestConfirmEndpointMetadataFailure(t *testing.T) {
	meta := &stubMetadataStore{err: &models.ServerError{Status: 400, Message: "Missing delivery address"}}
	confirmer := &stubConfirmer{}
	router := newCheckoutRouter(t, meta, confirmer)

	rec := postCheckoutForm(t, router, map[string]string{"payment_intent_id": "pi_123"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, 0, confirmer.calls)
	assert.Contains(t, rec.Body.String(), "Missing delivery address")
}
