package holidaze

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaberg/holidaze/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.UpstreamConfig{BaseURL: srv.URL, APIKey: "test-key", TimeoutSeconds: 5})
}

func TestClient_LoginSendsCredentialsAndReturnsToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("_holidaze"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-key", r.Header.Get("X-Noroff-API-Key"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":{"name":"guest","email":"guest@example.com","accessToken":"tok-1"}}`))
	})

	profile, token, err := client.Login(context.Background(), LoginRequest{Email: "guest@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "guest", profile.Name)
	assert.Equal(t, "tok-1", token)
}

func TestClient_UpstreamErrorMessageIsSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"message":"Invalid email or password"}]}`))
	})

	_, _, err := client.Login(context.Background(), LoginRequest{Email: "x", Password: "y"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestClient_UnparseableErrorFallsBack(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("gateway exploded"))
	})

	_, err := client.ListVenues(context.Background(), ListOptions{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, defaultErrorMessage, apiErr.Message)
}

func TestClient_GetVenueIncludesBookings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/holidaze/venues/v1", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("_bookings"))
		assert.Equal(t, "true", r.URL.Query().Get("_owner"))

		w.Write([]byte(`{"data":{"id":"v1","name":"Cabin","price":100,"maxGuests":4,` +
			`"bookings":[{"id":"b1","dateFrom":"2025-06-01T00:00:00Z","dateTo":"2025-06-04T00:00:00Z","guests":2}]}}`))
	})

	venue, err := client.GetVenue(context.Background(), "v1", true)
	require.NoError(t, err)
	assert.Equal(t, "Cabin", venue.Name)
	require.Len(t, venue.Bookings, 1)
	assert.Equal(t, 2, venue.Bookings[0].Guests)
}

func TestClient_DeleteBookingSendsBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/holidaze/bookings/b1", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteBooking(context.Background(), "tok-1", "b1"))
}

func TestClient_ProfileBookingsRequestsVenueDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/holidaze/profiles/guest/bookings", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("_venue"))
		w.Write([]byte(`{"data":[{"id":"b1","guests":2,"venue":{"id":"v1","name":"Cabin"}}]}`))
	})

	bookings, err := client.ProfileBookings(context.Background(), "tok-1", "guest")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	require.NotNil(t, bookings[0].Venue)
	assert.Equal(t, "Cabin", bookings[0].Venue.Name)
}
