package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
)

const userAgent = "supplyguard/1.0"

// NominatimClient resolves place names via the Nominatim search API.
type NominatimClient struct {
	baseURL string
	client  *http.Client
}

var _ ports.Geocoder = (*NominatimClient)(nil)

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewNominatimClient builds a client with a bounded request timeout.
func NewNominatimClient(baseURL string, timeout time.Duration) *NominatimClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NominatimClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Geocode returns the first match for the place, or nil when the backend
// knows no such place. Transport errors and timeouts surface as errors; the
// caller degrades them to absent coordinates.
func (c *NominatimClient) Geocode(ctx context.Context, place string) (*domain.Coordinates, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("nominatim: invalid base url: %w", err)
	}

	q := endpoint.Query()
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("nominatim: new request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim: unexpected status %s", resp.Status)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("nominatim: decode response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim: parse lat %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim: parse lon %q: %w", results[0].Lon, err)
	}

	return &domain.Coordinates{Lat: lat, Lng: lng}, nil
}
