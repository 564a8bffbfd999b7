package picsart

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picsart/creative-apis-go/api"
	"github.com/picsart/creative-apis-go/image"
)

type stubTransport struct {
	gets  int
	posts int
}

func (s *stubTransport) Get(ctx context.Context, url, apiKey string, timeout time.Duration) (*api.RawResponse, error) {
	s.gets++
	return &api.RawResponse{Status: 200, Body: []byte(`{"credits":1}`)}, nil
}

func (s *stubTransport) Post(ctx context.Context, url, apiKey string, body api.Body, timeout time.Duration) (*api.RawResponse, error) {
	s.posts++
	return &api.RawResponse{Status: 200, Body: []byte(`{"status":"success","data":{"id":"1","url":"u"}}`)}, nil
}

func TestNewImageAPI_Defaults(t *testing.T) {
	a := NewImageAPI("key")
	cfg := a.Config()

	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, DefaultImageAPIBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestNewGenAIAPI_Defaults(t *testing.T) {
	a := NewGenAIAPI("key")
	cfg := a.Config()

	assert.Equal(t, DefaultGenAIAPIBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestNewImageAPI_Options(t *testing.T) {
	tr := &stubTransport{}
	a := NewImageAPI("key",
		WithTransport(tr),
		WithBaseURL("https://eu.picsart.io/tools/1.0"),
		WithResponseTimeout(5*time.Second),
	)

	cfg := a.Config()
	assert.Equal(t, "https://eu.picsart.io/tools/1.0", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	_, err := a.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, tr.gets)
}

func TestNewImageAPI_WithMetricsBuildsCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	tr := &stubTransport{}
	a := NewImageAPI("key", WithTransport(tr), WithMetrics(reg))

	_, err := a.UltraUpscale(context.Background(), image.UltraUpscaleParameters{})
	require.Error(t, err) // validation failure, counted

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "picsart_validation_failures_total" {
			found = true
		}
	}
	assert.True(t, found)
	assert.Zero(t, tr.posts)
}

func TestSharedDefaultTransport(t *testing.T) {
	a := NewImageAPI("k1")
	b := NewGenAIAPI("k2")
	// Both entry points reuse one pooled transport by default.
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Same(t, defaultTransport(), defaultTransport())
}
