package image

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

// RemoveBackground removes or replaces the image background.
func (a *API) RemoveBackground(ctx context.Context, p RemoveBackgroundParameters) (*ImageResult, error) {
	return a.client.RemoveBackground(ctx, a.config, p)
}

// Effect applies a named effect to the image.
func (a *API) Effect(ctx context.Context, p EffectParameters) (*ImageResult, error) {
	return a.client.Effect(ctx, a.config, p)
}

// ListEffects lists the available effect names.
func (a *API) ListEffects(ctx context.Context) (*ListEffectsResult, error) {
	return a.client.ListEffects(ctx, a.config)
}

// UltraUpscale upscales the image, transparently polling when the service
// answers asynchronously.
func (a *API) UltraUpscale(ctx context.Context, p UltraUpscaleParameters) (*ImageResult, error) {
	return a.client.UltraUpscale(ctx, a.config, p)
}

// Upscale upscales the image synchronously.
func (a *API) Upscale(ctx context.Context, p UpscaleParameters) (*ImageResult, error) {
	return a.client.Upscale(ctx, a.config, p)
}

// UltraEnhance runs the ultra enhance upscale.
func (a *API) UltraEnhance(ctx context.Context, p UltraEnhanceParameters) (*ImageResult, error) {
	return a.client.UltraEnhance(ctx, a.config, p)
}

// EnhanceFace enhances faces in the image.
func (a *API) EnhanceFace(ctx context.Context, p EnhanceFaceParameters) (*ImageResult, error) {
	return a.client.EnhanceFace(ctx, a.config, p)
}

// EffectsPreviews renders small previews of the given effects.
func (a *API) EffectsPreviews(ctx context.Context, p EffectsPreviewsParameters) (*EffectsPreviewsResult, error) {
	return a.client.EffectsPreviews(ctx, a.config, p)
}

// Adjust applies the given slider adjustments.
func (a *API) Adjust(ctx context.Context, p AdjustParameters) (*ImageResult, error) {
	return a.client.Adjust(ctx, a.config, p)
}

// BackgroundTexture generates a seamless background texture.
func (a *API) BackgroundTexture(ctx context.Context, p BackgroundTextureParameters) (*ImageResult, error) {
	return a.client.BackgroundTexture(ctx, a.config, p)
}

// SurfaceMap maps a sticker onto the image surface through a mask.
func (a *API) SurfaceMap(ctx context.Context, p SurfaceMapParameters) (*ImageResult, error) {
	return a.client.SurfaceMap(ctx, a.config, p)
}

// Upload stores an image with the service and returns its id.
func (a *API) Upload(ctx context.Context, p UploadParameters) (*ImageResult, error) {
	return a.client.Upload(ctx, a.config, p)
}

// Balance reports the account's remaining credits.
func (a *API) Balance(ctx context.Context) (*BalanceResult, error) {
	return a.client.Balance(ctx, a.config)
}
