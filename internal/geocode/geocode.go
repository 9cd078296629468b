// Package geocode resolves device positions to human-readable place labels.
//
// The lookup is best-effort: transport failures, non-OK responses and
// malformed payloads all degrade to FallbackLabel instead of an error, so a
// broken geocoder never blocks saving an expense.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"spendmap/internal/cache"
	"spendmap/internal/geo"
)

const (
	// FallbackLabel is stored when the lookup fails outright.
	FallbackLabel = "Could not fetch location"
	// UnknownLabel is stored when the provider answers but names nothing.
	UnknownLabel = "Unknown Location"
)

// Resolver turns a position fix into a place label. Implementations never
// return lookup failures as errors; they degrade to FallbackLabel.
type Resolver interface {
	PlaceName(ctx context.Context, fix geo.Fix) string
}

// Client queries a Nominatim-compatible reverse geocoding endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a client with a fixed per-lookup timeout. There is no
// retry; one slow lookup must not stall the capture flow twice.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// reverseResponse is the subset of the Nominatim payload we read.
type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		University string `json:"university"`
		College    string `json:"college"`
		Amenity    string `json:"amenity"`
		Shop       string `json:"shop"`
		Tourism    string `json:"tourism"`
		Building   string `json:"building"`
		Road       string `json:"road"`
	} `json:"address"`
}

func (c *Client) PlaceName(ctx context.Context, fix geo.Fix) string {
	url := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f", c.baseURL, fix.Latitude, fix.Longitude)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.WarnContext(ctx, "Reverse geocode request build failed", "error", err)
		return FallbackLabel
	}
	req.Header.Set("User-Agent", "spendmap/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "Reverse geocode failed", "error", err)
		return FallbackLabel
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.WarnContext(ctx, "Reverse geocode non-OK response", "status", resp.StatusCode)
		return FallbackLabel
	}

	var payload reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		slog.WarnContext(ctx, "Reverse geocode unparsable response", "error", err)
		return FallbackLabel
	}

	// Prefer the most specific named feature.
	for _, name := range []string{
		payload.Address.University,
		payload.Address.College,
		payload.Address.Amenity,
		payload.Address.Shop,
		payload.Address.Tourism,
		payload.Address.Building,
		payload.Address.Road,
	} {
		if name != "" {
			return name
		}
	}

	if payload.DisplayName != "" {
		if i := strings.Index(payload.DisplayName, ","); i >= 0 {
			return strings.TrimSpace(payload.DisplayName[:i])
		}
		return payload.DisplayName
	}
	return UnknownLabel
}

// Cached wraps a Resolver with an LRU keyed on coordinates rounded to about
// ten meters, so repeated captures from the same spot skip the network.
type Cached struct {
	inner Resolver
	cache *cache.LRUCache[string]
}

func NewCached(inner Resolver, size int, ttl time.Duration) *Cached {
	return &Cached{inner: inner, cache: cache.NewLRUCache[string](size, ttl)}
}

// CleanExpired drops expired cache entries and reports how many went.
func (c *Cached) CleanExpired() int {
	return c.cache.CleanExpired()
}

func (c *Cached) PlaceName(ctx context.Context, fix geo.Fix) string {
	key := fmt.Sprintf("%.4f:%.4f", fix.Latitude, fix.Longitude)
	if name, ok := c.cache.Get(key); ok {
		return name
	}
	name := c.inner.PlaceName(ctx, fix)
	if name != FallbackLabel {
		// Transport failures are transient; do not cache them.
		c.cache.Set(key, name)
	}
	return name
}
