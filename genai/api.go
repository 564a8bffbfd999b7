package genai

import (
	"context"
	"time"

	"github.com/picsart/creative-apis-go/types"
)

// API binds a Client to a Config. API values are cheap to copy; the
// With* methods derive a new API with one setting changed, leaving the
// receiver untouched.
type API struct {
	config types.Config
	client *Client
}

// NewAPI creates an API over the given client and configuration.
func NewAPI(client *Client, config types.Config) *API {
	return &API{config: config, client: client}
}

// Config returns the configuration the API operates with.
func (a *API) Config() types.Config { return a.config }

// WithAPIKey derives an API that authenticates with key.
func (a *API) WithAPIKey(key string) *API {
	return &API{config: a.config.WithAPIKey(key), client: a.client}
}

// WithBaseURL derives an API that targets baseURL.
func (a *API) WithBaseURL(baseURL string) *API {
	return &API{config: a.config.WithBaseURL(baseURL), client: a.client}
}

// WithResponseTimeout derives an API whose requests time out after d.
func (a *API) WithResponseTimeout(d time.Duration) *API {
	return &API{config: a.config.WithTimeout(d), client: a.client}
}

// Text2Image generates images from a prompt, waiting for the generation to
// finish before returning.
func (a *API) Text2Image(ctx context.Context, p Text2ImageParameters) (*Text2ImageResult, error) {
	return a.client.Text2Image(ctx, a.config, p)
}
