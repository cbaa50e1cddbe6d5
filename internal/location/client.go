// Package location owns the Google Maps services handle. Facility
// lookups currently run against the built-in reference set, so the
// handle is configured and carried but not yet queried; geocoding and
// live place search land here when they are switched on.
package location

import (
	"fmt"

	"googlemaps.github.io/maps"
)

// Client wraps the Maps API client. A Client built without an API key
// is valid and reports Enabled() == false.
type Client struct {
	api *maps.Client
}

// New builds a Client. An empty key yields a disabled client rather
// than an error, so the server can run on reference data alone.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return &Client{}, nil
	}
	api, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}
	return &Client{api: api}, nil
}

// Enabled reports whether live location services are configured.
func (c *Client) Enabled() bool {
	return c != nil && c.api != nil
}
