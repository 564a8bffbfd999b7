package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/picsart/creative-apis-go/internal/metrics"
	"github.com/picsart/creative-apis-go/internal/tlsutil"
	"github.com/picsart/creative-apis-go/types"
)

// Request header names.
const (
	headerAPIKey    = "X-Picsart-API-Key"
	headerRequestID = "X-Request-ID"
)

const userAgent = "picsart-creative-apis-go/1.0"

// Transport issues single HTTP requests against the API. Implementations
// must be safe for concurrent use; the SDK shares one Transport across all
// in-flight calls.
type Transport interface {
	// Get issues a GET request. timeout bounds this one attempt; zero means
	// no per-call bound beyond ctx.
	Get(ctx context.Context, url, apiKey string, timeout time.Duration) (*RawResponse, error)
	// Post issues a POST request with the given body encoding.
	Post(ctx context.Context, url, apiKey string, body Body, timeout time.Duration) (*RawResponse, error)
}

// HTTPTransport is the production Transport. It pools connections, hardens
// TLS, tags every request with a generated X-Request-ID, and reports one
// span per attempt through the global OpenTelemetry tracer.
type HTTPTransport struct {
	client    *http.Client
	logger    *zap.Logger
	limiter   *rate.Limiter
	collector *metrics.Collector
	tracer    trace.Tracer
}

// TransportOption configures an HTTPTransport.
type TransportOption func(*HTTPTransport)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(client *http.Client) TransportOption {
	return func(t *HTTPTransport) { t.client = client }
}

// WithLogger sets the transport logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) TransportOption {
	return func(t *HTTPTransport) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithRateLimit caps the outgoing request rate across all calls sharing this
// transport. Useful to stay inside the account's rate-limit budget.
func WithRateLimit(limit rate.Limit, burst int) TransportOption {
	return func(t *HTTPTransport) { t.limiter = rate.NewLimiter(limit, burst) }
}

// WithCollector attaches a metrics collector to the transport.
func WithCollector(c *metrics.Collector) TransportOption {
	return func(t *HTTPTransport) { t.collector = c }
}

// NewHTTPTransport creates an HTTPTransport with hardened TLS defaults.
func NewHTTPTransport(opts ...TransportOption) *HTTPTransport {
	t := &HTTPTransport{
		// Per-call timeouts come from the request context, not the client.
		client: tlsutil.SecureHTTPClient(0),
		logger: zap.NewNop(),
		tracer: otel.Tracer("github.com/picsart/creative-apis-go/api"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Get implements Transport.
func (t *HTTPTransport) Get(ctx context.Context, url, apiKey string, timeout time.Duration) (*RawResponse, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, &types.TransportError{Op: http.MethodGet, URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return t.do(ctx, req, apiKey, timeout)
}

// Post implements Transport.
func (t *HTTPTransport) Post(ctx context.Context, url, apiKey string, body Body, timeout time.Duration) (*RawResponse, error) {
	var (
		reader      io.Reader
		contentType string
	)
	switch b := body.(type) {
	case JSONBody:
		payload, err := json.Marshal(b.Value)
		if err != nil {
			return nil, &types.TransportError{Op: http.MethodPost, URL: url, Err: err}
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	case FormBody:
		buf, boundary, err := encodeForm(b)
		if err != nil {
			return nil, &types.TransportError{Op: http.MethodPost, URL: url, Err: err}
		}
		reader = buf
		contentType = "multipart/form-data; boundary=" + boundary
	default:
		return nil, &types.TransportError{Op: http.MethodPost, URL: url,
			Err: fmt.Errorf("unsupported body kind %T", body)}
	}
	req, err := http.NewRequest(http.MethodPost, url, reader)
	if err != nil {
		return nil, &types.TransportError{Op: http.MethodPost, URL: url, Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	return t.do(ctx, req, apiKey, timeout)
}

func (t *HTTPTransport) do(ctx context.Context, req *http.Request, apiKey string, timeout time.Duration) (*RawResponse, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, &types.TransportError{Op: req.Method, URL: req.URL.String(), Err: err}
		}
	}

	requestID := uuid.NewString()
	req.Header.Set(headerAPIKey, apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(headerRequestID, requestID)

	ctx, span := t.tracer.Start(ctx, fmt.Sprintf("picsart.%s", strings.ToLower(req.Method)),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL.String()),
			attribute.String("picsart.request_id", requestID),
		))
	defer span.End()

	start := time.Now()
	resp, err := t.client.Do(req.WithContext(ctx))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		t.logger.Error("request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, &types.TransportError{Op: req.Method, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &types.TransportError{Op: req.Method, URL: req.URL.String(), Err: err}
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	t.collector.ObserveRequest(req.Method, resp.StatusCode, time.Since(start))
	t.logger.Debug("response received",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Int("body_bytes", len(data)))

	return &RawResponse{Status: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// encodeForm renders a FormBody into a multipart payload, opening each file
// part from disk.
func encodeForm(body FormBody) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, attr := range body.Attrs {
		if err := w.WriteField(attr.Key, attr.Value); err != nil {
			return nil, "", err
		}
	}
	for _, file := range body.Files {
		f, err := os.Open(file.Path)
		if err != nil {
			return nil, "", err
		}
		part, err := createFilePart(w, file.Key, filepath.Base(file.Path))
		if err != nil {
			f.Close()
			return nil, "", err
		}
		if _, err := io.Copy(part, f); err != nil {
			f.Close()
			return nil, "", err
		}
		f.Close()
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.Boundary(), nil
}

func createFilePart(w *multipart.Writer, field, filename string) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", mimeTypeByName(filename))
	return w.CreatePart(h)
}

func mimeTypeByName(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
