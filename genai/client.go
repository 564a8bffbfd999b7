package genai

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/picsart/creative-apis-go/api"
	"github.com/picsart/creative-apis-go/internal/metrics"
	"github.com/picsart/creative-apis-go/types"
)

// Client speaks the GenAI API wire protocol. Safe for concurrent use.
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
	c.logger = c.logger.With(zap.String("component", "genai_client"))
	return c
}

// Text2Image submits a generation and polls the inference endpoint until its
// status reports DONE, then returns the generated images.
func (c *Client) Text2Image(ctx context.Context, cfg types.Config, p Text2ImageParameters) (*Text2ImageResult, error) {
	action := api.ActionText2Image
	req := toText2ImageRequest(p)
	if err := api.Validate(action.Name(), req.rules()); err != nil {
		c.collector.ValidationFailure(action.Name())
		return nil, err
	}
	raw, err := c.transport.Post(ctx, api.JoinURL(cfg.BaseURL, action.Path()), cfg.APIKey, req.body(), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	if _, err := api.Classify(raw); err != nil {
		return nil, err
	}
	ack, err := api.ParseBody[text2ImageAckResponse](raw)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("text2image submitted", zap.String("inference_id", ack.InferenceID))
	return c.pollText2Image(ctx, cfg, ack.InferenceID)
}

// pollText2Image repeats GET text2image/inferences/{id} until the inference
// status is DONE, comparing case-insensitively.
func (c *Client) pollText2Image(ctx context.Context, cfg types.Config, inferenceID string) (*Text2ImageResult, error) {
	action := api.ActionText2Image
	url := api.JoinURL(cfg.BaseURL, action.Path()+"/inferences/"+inferenceID)

	var last text2ImageResponse
	check := func(ctx context.Context) (*api.RawResponse, error) {
		c.collector.PollAttempt(action.Name())
		raw, err := c.transport.Get(ctx, url, cfg.APIKey, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		if _, err := api.Classify(raw); err != nil {
			return nil, err
		}
		last, err = api.ParseBody[text2ImageResponse](raw)
		if err != nil {
			return nil, err
		}
		return raw, nil
	}
	isTerminal := func(*api.RawResponse) bool { return strings.EqualFold(last.Status, "DONE") }

	final, err := api.Poll(ctx, check, isTerminal, c.cfg.Text2ImagePolling, c.logger)
	if err != nil {
		var exhausted *types.PollExhaustedError
		if errors.As(err, &exhausted) {
			c.collector.PollExhausted(action.Name())
		}
		return nil, err
	}
	return &Text2ImageResult{Status: last.Status, Images: last.Data, Metadata: final.Metadata()}, nil
}
