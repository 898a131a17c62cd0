package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "handshake.backend/internal/domain/errors"
)

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Jakarta", r.URL.Query().Get("q"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"-6.2088","lon":"106.8456","display_name":"Jakarta, Indonesia"}]`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL)
	result, err := client.Geocode(context.Background(), "Jakarta")
	require.NoError(t, err)

	assert.InDelta(t, -6.2088, result.Latitude, 1e-9)
	assert.InDelta(t, 106.8456, result.Longitude, 1e-9)
	assert.Equal(t, "Jakarta, Indonesia", result.Address)
}

func TestGeocodeNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL)
	_, err := client.Geocode(context.Background(), "xyzzy")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"lat":"-6.2088","lon":"106.8456","display_name":"Jakarta, Indonesia"}`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL)
	result, err := client.ReverseGeocode(context.Background(), -6.2088, 106.8456)
	require.NoError(t, err)
	assert.Equal(t, "Jakarta, Indonesia", result.Address)
}

func TestReverseGeocodeEmptyDisplayName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL)
	_, err := client.ReverseGeocode(context.Background(), 0, 0)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestGeocodeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL)
	_, err := client.Geocode(context.Background(), "Jakarta")
	assert.Error(t, err)
}
