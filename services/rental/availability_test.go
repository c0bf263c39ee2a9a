package rental

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"boulderhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mustRange(t *testing.T, in, out string) models.DateRange {
	t.Helper()
	dr, err := models.NewDateRange(in, out)
	require.NoError(t, err)
	return dr
}

func TestAvailabilityFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rentals/api/crashpads/available/", r.URL.Path)
		assert.Equal(t, "2026-04-01", r.URL.Query().Get("check_in"))
		assert.Equal(t, "2026-04-08", r.URL.Query().Get("check_out"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "name": "Mondo", "day_rate": "60.00", "seven_day_rate": "50.00", "fourteen_day_rate": "40.00"}]`))
	}))
	defer server.Close()

	client := NewAvailabilityClient(server.URL, WithLogger(zap.NewNop()))
	pads, err := client.Fetch(context.Background(), mustRange(t, "2026-04-01", "2026-04-08"))

	require.NoError(t, err)
	require.Len(t, pads, 1)
	assert.Equal(t, int64(1), pads[0].ID)
	assert.Equal(t, "Mondo", pads[0].Name)
	assert.Equal(t, "60", pads[0].DayRate.String())
}

func TestAvailabilityFetchEmptyIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewAvailabilityClient(server.URL, WithLogger(zap.NewNop()))
	pads, err := client.Fetch(context.Background(), mustRange(t, "2026-04-01", "2026-04-03"))

	require.NoError(t, err)
	assert.Empty(t, pads)
}

func TestAvailabilityFetchStructuredError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Check-out date must be after check-in date"}`))
	}))
	defer server.Close()

	client := NewAvailabilityClient(server.URL, WithLogger(zap.NewNop()))
	_, err := client.Fetch(context.Background(), mustRange(t, "2026-04-01", "2026-04-03"))

	var srvErr *models.ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusBadRequest, srvErr.Status)
	// The store's own message passes through verbatim.
	assert.Equal(t, "Check-out date must be after check-in date", srvErr.Message)
}

func TestAvailabilityFetchUnstructuredError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>crashed</html>`))
	}))
	defer server.Close()

	client := NewAvailabilityClient(server.URL, WithLogger(zap.NewNop()))
	_, err := client.Fetch(context.Background(), mustRange(t, "2026-04-01", "2026-04-03"))

	var srvErr *models.ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusInternalServerError, srvErr.Status)
	assert.Contains(t, srvErr.Message, "Failed to load available crashpads")
	assert.Contains(t, srvErr.Message, "status 500")
}

func TestAvailabilityFetchNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewAvailabilityClient(server.URL, WithLogger(zap.NewNop()))
	_, err := client.Fetch(context.Background(), mustRange(t, "2026-04-01", "2026-04-03"))

	var netErr *models.NetworkError
	assert.True(t, errors.As(err, &netErr))
}
