package types

import "time"

// Config holds the per-call settings shared by every operation: the API key,
// the base URL of the target API, and the response timeout applied to each
// individual HTTP attempt.
//
// Config is a value type. The With* methods return a modified copy and never
// touch the receiver, so a Config already handed to in-flight calls is safe
// to derive from concurrently.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewConfig creates a Config with the given key, base URL and timeout.
func NewConfig(apiKey, baseURL string, timeout time.Duration) Config {
	return Config{APIKey: apiKey, BaseURL: baseURL, Timeout: timeout}
}

// WithAPIKey returns a copy of the config with the API key replaced.
func (c Config) WithAPIKey(apiKey string) Config {
	c.APIKey = apiKey
	return c
}

// WithBaseURL returns a copy of the config with the base URL replaced.
func (c Config) WithBaseURL(baseURL string) Config {
	c.BaseURL = baseURL
	return c
}

// WithTimeout returns a copy of the config with the response timeout replaced.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}
