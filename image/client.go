package image

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/picsart/creative-apis-go/api"
	"github.com/picsart/creative-apis-go/internal/metrics"
	"github.com/picsart/creative-apis-go/types"
)

// Client speaks the Image API wire protocol. One Client is safe for
// concurrent use and is typically shared by every API value derived from the
// same entry point.
type Client struct {
	transport api.Transport
	cfg       ClientConfig
	logger    *zap.Logger
	collector *metrics.Collector
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the client logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCollector attaches a metrics collector.
func WithCollector(collector *metrics.Collector) ClientOption {
	return func(c *Client) { c.collector = collector }
}

// NewClient creates a Client using the given transport and polling policy.
func NewClient(transport api.Transport, cfg ClientConfig, opts ...ClientOption) *Client {
	c := &Client{
		transport: transport,
		cfg:       cfg,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("component", "image_client"))
	return c
}

// execute validates req, submits it to the action endpoint, classifies the
// response and decodes the body into T. Validation failures short-circuit
// before any network call.
func execute[T any](ctx context.Context, c *Client, cfg types.Config, action api.Action, req request) (T, *api.RawResponse, error) {
	var zero T
	if err := api.Validate(action.Name(), req.rules()); err != nil {
		c.collector.ValidationFailure(action.Name())
		return zero, nil, err
	}
	raw, err := c.transport.Post(ctx, api.JoinURL(cfg.BaseURL, action.Path()), cfg.APIKey, req.body(), cfg.Timeout)
	if err != nil {
		return zero, nil, err
	}
	return decode[T](raw)
}

// fetch issues a GET against the action endpoint, classifies and decodes.
func fetch[T any](ctx context.Context, c *Client, cfg types.Config, action api.Action) (T, *api.RawResponse, error) {
	var zero T
	raw, err := c.transport.Get(ctx, api.JoinURL(cfg.BaseURL, action.Path()), cfg.APIKey, cfg.Timeout)
	if err != nil {
		return zero, nil, err
	}
	return decode[T](raw)
}

func decode[T any](raw *api.RawResponse) (T, *api.RawResponse, error) {
	var zero T
	if _, err := api.Classify(raw); err != nil {
		return zero, nil, err
	}
	body, err := api.ParseBody[T](raw)
	if err != nil {
		return zero, nil, err
	}
	return body, raw, nil
}

func imageResult(body imageResponse, raw *api.RawResponse) *ImageResult {
	return &ImageResult{Status: body.Status, Image: body.Data, Metadata: raw.Metadata()}
}

// RemoveBackground removes or replaces the image background.
func (c *Client) RemoveBackground(ctx context.Context, cfg types.Config, p RemoveBackgroundParameters) (*ImageResult, error) {
	body, raw, err := execute[imageResponse](ctx, c, cfg, api.ActionRemoveBackground, toRemoveBackgroundRequest(p))
	if err != nil {
		return nil, err
	}
	return imageResult(body, raw), nil
}

// Effect applies a named effect to the image.
func (c *Client) Effect(ctx context.Context, cfg types.Config, p EffectParameters) (*ImageResult, error) {
	body, raw, err := execute[imageResponse](ctx, c, cfg, api.ActionEffect, toEffectRequest(p))
	if err != nil {
		return nil, err
	}
	return imageResult(body, raw), nil
}

// ListEffects lists the available effect names.
func (c *Client) ListEffects(ctx context.Context, cfg types.Config) (*ListEffectsResult, error) {
	body, raw, err := fetch[listEffectsResponse](ctx, c, cfg, api.ActionListEffects)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(body.Data))
	for _, e := range body.Data {
		names = append(names, e.Name)
	}
	return &ListEffectsResult{EffectNames: names, Metadata: raw.Metadata()}, nil
}

// UltraUpscale runs the ultra upscale operation. A 200 submit response is
// already final; a 202 response is an acknowledgment whose transaction id is
// polled until the result endpoint answers 200. Any other submit status is a
// protocol violation reported as an immediate typed error.
func (c *Client) UltraUpscale(ctx context.Context, cfg types.Config, p UltraUpscaleParameters) (*ImageResult, error) {
	action := api.ActionUltraUpscale
	req := toUltraUpscaleRequest(p)
	if err := api.Validate(action.Name(), req.rules()); err != nil {
		c.collector.ValidationFailure(action.Name())
		return nil, err
	}
	raw, err := c.transport.Post(ctx, api.JoinURL(cfg.BaseURL, action.Path()), cfg.APIKey, req.body(), cfg.Timeout)
	if err != nil {
		return nil, err
	}

	switch raw.Status {
	case http.StatusOK:
		body, err := api.ParseBody[imageResponse](raw)
		if err != nil {
			return nil, err
		}
		return imageResult(body, raw), nil

	case http.StatusAccepted:
		ack, err := api.ParseBody[ultraUpscaleAckResponse](raw)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("ultra upscale accepted",
			zap.String("transaction_id", ack.TransactionID))
		final, err := c.pollUltraUpscale(ctx, cfg, ack.TransactionID)
		if err != nil {
			return nil, err
		}
		body, err := api.ParseBody[imageResponse](final)
		if err != nil {
			return nil, err
		}
		return imageResult(body, final), nil

	default:
		if _, err := api.Classify(raw); err != nil {
			return nil, err
		}
		// A 2xx status other than 200/202 violates the protocol.
		return nil, &types.ResponseError{
			Code:     types.ErrFailureResponse,
			Message:  "Unexpected response status",
			Status:   raw.Status,
			Metadata: raw.Metadata(),
		}
	}
}

// pollUltraUpscale repeats GET upscale/ultra/{id} until it answers 200.
func (c *Client) pollUltraUpscale(ctx context.Context, cfg types.Config, transactionID string) (*api.RawResponse, error) {
	action := api.ActionUltraUpscale
	url := api.JoinURL(cfg.BaseURL, action.Path()+"/"+transactionID)
	check := func(ctx context.Context) (*api.RawResponse, error) {
		c.collector.PollAttempt(action.Name())
		raw, err := c.transport.Get(ctx, url, cfg.APIKey, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		if _, err := api.Classify(raw); err != nil {
			return nil, err
		}
		return raw, nil
	}
	isTerminal := func(raw *api.RawResponse) bool { return raw.Status == http.StatusOK }
	final, err := api.Poll(ctx, check, isTerminal, c.cfg.UltraUpscalePolling, c.logger)
	if err != nil {
		var exhausted *types.PollExhaustedError
		if errors.As(err, &exhausted) {
			c.collector.PollExhausted(action.Name())
		}
		return nil, err
	}
	return final, nil
}

// Upscale upscales the image synchronously.
func (c *Client) Upscale(ctx context.Context, cfg types.Config, p UpscaleParameters) (*ImageResult, error) {
	body, raw, err := execute[imageResponse](ctx, c, cfg, api.ActionUpscale, toUpscaleRequest(p))
	if err != nil {
		return nil, err
	}
	return imageResult(body, raw), nil
}

// UltraEnhance runs the ultra enhance upscale.
func (c *Client) UltraEnhance(ctx context.Context, cfg types.Config, p UltraEnhanceParameters) (*ImageResult, error) {
	body, raw, err := execute[imageResponse](ctx, c, cfg, api.ActionUltraEnhance, toUltraEnhanceRequest(p))
	if err != nil {
		return nil, err
	}
	return imageResult(body, raw), nil
}

// EnhanceFace enhances faces in the image.
func (c *Client) EnhanceFace(ctx context.Context, cfg types.Config, p EnhanceFaceParameters) (*ImageResult, error) {
	body, raw, err := execute[imageResponse](ctx, c, cfg, api.ActionEnhanceFace, toEnhanceFaceRequest(p))
	if err != nil {
		return nil, err
	}
	return imageResult(body, raw), nil
}

// EffectsPreviews renders small previews of the given effects.
func (c *Client) EffectsPreviews(ctx context.Context, cfg types.Config, p EffectsPreviewsParameters) (*EffectsPreviewsResult, error) {
	body, raw, err := execute[effectsPreviewsResponse](ctx, c, cfg, api.ActionEffectsPreviews, toEffectsPreviewsRequest(p))
	if err != nil {
		return nil, err
	}
	return &EffectsPreviewsResult{Status: body.Status, Previews: body.Data, Metadata: raw.Metadata()}, nil
}

// Adjust applies the given slider adjustments.
func (c *Client) Adjust(ctx context.Context, cfg types.Config, p AdjustParameters) (*ImageResult, error) {
	body, raw, err := execute[imageResponse](ctx, c, cfg, api.ActionAdjust, toAdjustRequest(p))
	if err != nil {
		return nil, err
	}
	return imageResult(body, raw), nil
}

// BackgroundTexture generates a seamless background texture.
func (c *Client) BackgroundTexture(ctx context.Context, cfg types.Config, p BackgroundTextureParameters) (*ImageResult, error) {
	body, raw, err := execute[imageResponse](ctx, c, cfg, api.ActionBackgroundTexture, toBackgroundTextureRequest(p))
	if err != nil {
		return nil, err
	}
	return imageResult(body, raw), nil
}

// SurfaceMap maps a sticker onto the image surface through a mask.
func (c *Client) SurfaceMap(ctx context.Context, cfg types.Config, p SurfaceMapParameters) (*ImageResult, error) {
	body, raw, err := execute[imageResponse](ctx, c, cfg, api.ActionSurfaceMap, toSurfaceMapRequest(p))
	if err != nil {
		return nil, err
	}
	return imageResult(body, raw), nil
}

// Upload stores an image with the service and returns its id.
func (c *Client) Upload(ctx context.Context, cfg types.Config, p UploadParameters) (*ImageResult, error) {
	body, raw, err := execute[imageResponse](ctx, c, cfg, api.ActionUpload, toUploadRequest(p))
	if err != nil {
		return nil, err
	}
	return imageResult(body, raw), nil
}

// Balance reports the account's remaining credits.
func (c *Client) Balance(ctx context.Context, cfg types.Config) (*BalanceResult, error) {
	body, raw, err := fetch[balanceResponse](ctx, c, cfg, api.ActionBalance)
	if err != nil {
		return nil, err
	}
	return &BalanceResult{Credits: body.Credits, Metadata: raw.Metadata()}, nil
}
