// Package alphavantage provides the transport client for the Alpha Vantage market data API.
package alphavantage

import "time"

const (
	// DefaultBaseURL is the single query endpoint every Alpha Vantage function is served from.
	DefaultBaseURL = "https://www.alphavantage.co/query"
	// DefaultTimeout bounds a single provider call, including reading the body.
	DefaultTimeout = 10 * time.Second
)

// Config holds configuration for the Alpha Vantage API client.
type Config struct {
	APIKey  string        `validate:"required"`     // API key sent as the apikey query parameter
	BaseURL string        `validate:"required,url"` // Query endpoint (e.g., "https://www.alphavantage.co/query")
	Timeout time.Duration `validate:"gt=0"`         // Per-call timeout
}

// withDefaults fills zero values with the package defaults.
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
