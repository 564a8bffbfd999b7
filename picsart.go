// Package picsart is the top-level entry point of the Picsart Creative APIs
// client with minimal boilerplate.
//
// Usage:
//
//	import "github.com/picsart/creative-apis-go"
//
//	images := picsart.NewImageAPI("<api key>")
//	gen := picsart.NewGenAIAPI("<api key>", picsart.WithLogger(logger))
//
// Both constructors share one HTTP transport unless [WithTransport] or
// [WithHTTPClient] replaces it. Every derived API value is immutable: the
// With* methods on [image.API] and [genai.API] return copies.
package picsart

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/picsart/creative-apis-go/api"
	"github.com/picsart/creative-apis-go/genai"
	"github.com/picsart/creative-apis-go/image"
	"github.com/picsart/creative-apis-go/internal/metrics"
	"github.com/picsart/creative-apis-go/types"
)

// Service defaults. Override per API value with WithBaseURL / WithResponseTimeout.
const (
	DefaultImageAPIBaseURL = "https://api.picsart.io/tools/1.0"
	DefaultGenAIAPIBaseURL = "https://genai-api.picsart.io/v1"
	DefaultTimeout         = 60 * time.Second
)

// defaultTransport is shared by every API built without an explicit
// transport, mirroring one connection pool across the process.
var defaultTransport = sync.OnceValue(func() api.Transport {
	return api.NewHTTPTransport()
})

type options struct {
	logger     *zap.Logger
	transport  api.Transport
	httpClient *http.Client
	registerer prometheus.Registerer
	rateLimit  rate.Limit
	rateBurst  int
	imageCfg   image.ClientConfig
	genaiCfg   genai.ClientConfig
	baseURL    string
	timeout    time.Duration
}

// Option configures the APIs created by [NewImageAPI] and [NewGenAIAPI].
type Option func(*options)

// WithLogger sets the logger used by the transport and clients.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithTransport replaces the HTTP transport entirely. Useful for tests.
func WithTransport(t api.Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithHTTPClient builds the transport over a custom *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithMetrics registers request and polling metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithRateLimit throttles outgoing requests to limit per second with the
// given burst.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(o *options) { o.rateLimit = limit; o.rateBurst = burst }
}

// WithBaseURL overrides the service base URL.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithResponseTimeout overrides the per-request timeout.
func WithResponseTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithImageClientConfig overrides the image polling policy.
func WithImageClientConfig(cfg image.ClientConfig) Option {
	return func(o *options) { o.imageCfg = cfg }
}

// WithGenAIClientConfig overrides the text2image polling policy.
func WithGenAIClientConfig(cfg genai.ClientConfig) Option {
	return func(o *options) { o.genaiCfg = cfg }
}

func buildOptions(opts []Option) options {
	o := options{
		imageCfg: image.DefaultClientConfig(),
		genaiCfg: genai.DefaultClientConfig(),
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) buildTransport(collector *metrics.Collector) api.Transport {
	if o.transport != nil {
		return o.transport
	}
	if o.logger == nil && o.httpClient == nil && o.registerer == nil && o.rateLimit == 0 {
		return defaultTransport()
	}
	var topts []api.TransportOption
	if o.logger != nil {
		topts = append(topts, api.WithLogger(o.logger))
	}
	if o.httpClient != nil {
		topts = append(topts, api.WithHTTPClient(o.httpClient))
	}
	if o.rateLimit > 0 {
		topts = append(topts, api.WithRateLimit(o.rateLimit, o.rateBurst))
	}
	if collector != nil {
		topts = append(topts, api.WithCollector(collector))
	}
	return api.NewHTTPTransport(topts...)
}

func (o options) buildCollector() *metrics.Collector {
	if o.registerer == nil {
		return nil
	}
	return metrics.NewCollector("picsart", o.registerer)
}

// NewImageAPI creates a client for the Image API authenticated with apiKey.
func NewImageAPI(apiKey string, opts ...Option) *image.API {
	o := buildOptions(opts)
	if o.baseURL == "" {
		o.baseURL = DefaultImageAPIBaseURL
	}
	collector := o.buildCollector()
	client := image.NewClient(o.buildTransport(collector), o.imageCfg,
		image.WithLogger(o.logger), image.WithCollector(collector))
	return image.NewAPI(client, types.NewConfig(apiKey, o.baseURL, o.timeout))
}

// NewGenAIAPI creates a client for the GenAI API authenticated with apiKey.
func NewGenAIAPI(apiKey string, opts ...Option) *genai.API {
	o := buildOptions(opts)
	if o.baseURL == "" {
		o.baseURL = DefaultGenAIAPIBaseURL
	}
	collector := o.buildCollector()
	client := genai.NewClient(o.buildTransport(collector), o.genaiCfg,
		genai.WithLogger(o.logger), genai.WithCollector(collector))
	return genai.NewAPI(client, types.NewConfig(apiKey, o.baseURL, o.timeout))
}
