package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	domainerrors "handshake.backend/internal/domain/errors"
)

const userAgent = "Handshake-Marketplace/1.0"

// GeocodeResult is a resolved address with coordinates
type GeocodeResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type nominatimResponse struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimClient resolves addresses against a Nominatim instance
type NominatimClient struct {
	baseURL string
	client  *http.Client
}

// NewNominatimClient creates a client for the given base URL
func NewNominatimClient(baseURL string) *NominatimClient {
	return &NominatimClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Geocode resolves a free-form address to coordinates. Returns ErrNotFound
// when the address matches nothing.
func (c *NominatimClient) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(address))

	var results []nominatimResponse
	if err := c.get(ctx, endpoint, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return toResult(&results[0])
}

// ReverseGeocode resolves coordinates to the nearest address
func (c *NominatimClient) ReverseGeocode(ctx context.Context, lat, lon float64) (*GeocodeResult, error) {
	endpoint := fmt.Sprintf("%s/reverse?lat=%g&lon=%g&format=json", c.baseURL, lat, lon)

	var result nominatimResponse
	if err := c.get(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	if result.DisplayName == "" {
		return nil, domainerrors.ErrNotFound
	}
	return toResult(&result)
}

func (c *NominatimClient) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoding request failed: status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func toResult(r *nominatimResponse) (*GeocodeResult, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q", r.Lat)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q", r.Lon)
	}
	return &GeocodeResult{Latitude: lat, Longitude: lon, Address: r.DisplayName}, nil
}
