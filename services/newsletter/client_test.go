package newsletter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"boulderhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSignupSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "XMLHttpRequest", r.Header.Get("X-Requested-With"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "climber@example.com", r.FormValue("email"))

		w.Write([]byte(`{"success": true, "message": "Thanks for subscribing!"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, zap.NewNop())
	resp, err := client.Signup(context.Background(), "climber@example.com")

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Thanks for subscribing!", resp.Message)
}

func TestSignupFieldErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success": false, "errors": {"email": "Enter a valid email address."}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, zap.NewNop())
	resp, err := client.Signup(context.Background(), "not-an-email")

	// A rejected signup is still a parsed response, not an error.
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Enter a valid email address.", resp.Errors["email"])
}

func TestSignupEmptyEmail(t *testing.T) {
	client := NewClient("http://unused", zap.NewNop())
	_, err := client.Signup(context.Background(), "  ")

	var valErr *models.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestSignupUndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>error page</html>`))
	}))
	defer server.Close()

	client := NewClient(server.URL, zap.NewNop())
	_, err := client.Signup(context.Background(), "climber@example.com")

	var srvErr *models.ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusInternalServerError, srvErr.Status)
}

func TestFieldErrorText(t *testing.T) {
	text := FieldErrorText(map[string]string{
		"name":  "Name is required.",
		"email": "Enter a valid email address.",
	})
	assert.Equal(t, "Enter a valid email address.\nName is required.", text)

	assert.Equal(t, "", FieldErrorText(nil))
}
