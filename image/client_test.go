package image

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/picsart/creative-apis-go/api"
	"github.com/picsart/creative-apis-go/types"
)

// fakeTransport replays queued responses and records every call.
type fakeTransport struct {
	mu            sync.Mutex
	getURLs       []string
	postURLs      []string
	postBodies    []api.Body
	getResponses  []*api.RawResponse
	postResponses []*api.RawResponse
	getErr        error
}

func (f *fakeTransport) Get(ctx context.Context, url, apiKey string, timeout time.Duration) (*api.RawResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getURLs = append(f.getURLs, url)
	if f.getErr != nil {
		return nil, f.getErr
	}
	resp := f.getResponses[0]
	if len(f.getResponses) > 1 {
		f.getResponses = f.getResponses[1:]
	}
	return resp, nil
}

func (f *fakeTransport) Post(ctx context.Context, url, apiKey string, body api.Body, timeout time.Duration) (*api.RawResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.postURLs = append(f.postURLs, url)
	f.postBodies = append(f.postBodies, body)
	resp := f.postResponses[0]
	if len(f.postResponses) > 1 {
		f.postResponses = f.postResponses[1:]
	}
	return resp, nil
}

func (f *fakeTransport) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.getURLs) + len(f.postURLs)
}

func response(status int, body string, md map[string]string) *api.RawResponse {
	h := http.Header{}
	for k, v := range md {
		h.Set(k, v)
	}
	return &api.RawResponse{Status: status, Header: h, Body: []byte(body)}
}

func fastPolling(maxRepeats int) ClientConfig {
	return ClientConfig{UltraUpscalePolling: api.PollPolicy{MaxRepeats: maxRepeats}}
}

var testConfig = types.NewConfig("test-key", "https://api.test/tools/1.0", time.Second)

func TestClient_RemoveBackground_Success(t *testing.T) {
	tr := &fakeTransport{postResponses: []*api.RawResponse{
		response(200, `{"status":"success","data":{"id":"img-1","url":"https://cdn/img-1.png"}}`,
			map[string]string{types.HeaderCreditAvailable: "41"}),
	}}
	c := NewClient(tr, DefaultClientConfig())

	result, err := c.RemoveBackground(context.Background(), testConfig, RemoveBackgroundParameters{
		Image: types.ImageFromURL("https://e.com/a.jpg"),
	})
	require.NoError(t, err)

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "img-1", result.Image.ID)
	assert.Equal(t, "https://cdn/img-1.png", result.Image.URL)
	assert.Equal(t, 41, result.Metadata.CreditAvailable)
	assert.Equal(t, []string{"https://api.test/tools/1.0/removebg"}, tr.postURLs)
}

func TestClient_ValidationFailureMakesNoNetworkCall(t *testing.T) {
	tr := &fakeTransport{}
	c := NewClient(tr, DefaultClientConfig())

	_, err := c.RemoveBackground(context.Background(), testConfig, RemoveBackgroundParameters{})
	require.Error(t, err)

	var ve *types.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "removeBackground failed with errors: Exactly one image source must be set", err.Error())
	assert.Zero(t, tr.calls())
}

func TestClient_ErrorResponseClassified(t *testing.T) {
	tr := &fakeTransport{postResponses: []*api.RawResponse{
		response(401, `{"detail":"Invalid API key"}`, nil),
	}}
	c := NewClient(tr, DefaultClientConfig())

	_, err := c.Effect(context.Background(), testConfig, EffectParameters{
		Image:      types.ImageFromID("img-1"),
		EffectName: "apr1",
	})
	require.Error(t, err)

	var re *types.ResponseError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, types.ErrUnauthorized, re.Code)
	assert.Equal(t, "Invalid API key", re.Message)
}

func TestClient_UltraUpscale_ImmediateResult(t *testing.T) {
	tr := &fakeTransport{postResponses: []*api.RawResponse{
		response(200, `{"status":"success","data":{"id":"img-2","url":"u2"}}`, nil),
	}}
	c := NewClient(tr, fastPolling(3))

	result, err := c.UltraUpscale(context.Background(), testConfig, UltraUpscaleParameters{
		Image: types.ImageFromID("img-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "img-2", result.Image.ID)
	assert.Empty(t, tr.getURLs)
}

func TestClient_UltraUpscale_AsyncPollsUntilDone(t *testing.T) {
	tr := &fakeTransport{
		postResponses: []*api.RawResponse{
			response(202, `{"transaction_id":"tx-9"}`, nil),
		},
		getResponses: []*api.RawResponse{
			response(202, `{}`, nil),
			response(202, `{}`, nil),
			response(200, `{"status":"success","data":{"id":"img-3","url":"u3"}}`,
				map[string]string{types.HeaderRateLimitAvailable: "9"}),
		},
	}
	c := NewClient(tr, fastPolling(10))

	result, err := c.UltraUpscale(context.Background(), testConfig, UltraUpscaleParameters{
		Image:         types.ImageFromID("img-1"),
		UpscaleFactor: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, "img-3", result.Image.ID)
	// Metadata comes from the final poll response.
	assert.Equal(t, 9, result.Metadata.RateLimitAvailable)

	require.Len(t, tr.getURLs, 3)
	assert.Equal(t, "https://api.test/tools/1.0/upscale/ultra/tx-9", tr.getURLs[0])
}

func TestClient_UltraUpscale_SubmitErrorClassified(t *testing.T) {
	tr := &fakeTransport{postResponses: []*api.RawResponse{
		response(503, `{"detail":"maintenance"}`, map[string]string{types.HeaderCorrelationID: "corr-5"}),
	}}
	c := NewClient(tr, fastPolling(10))

	_, err := c.UltraUpscale(context.Background(), testConfig, UltraUpscaleParameters{
		Image: types.ImageFromID("img-1"),
	})
	require.Error(t, err)

	var re *types.ResponseError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, types.ErrServiceUnavailable, re.Code)
	assert.Equal(t, "corr-5", re.Metadata.CorrelationID)
	assert.Empty(t, tr.getURLs)
}

func TestClient_UltraUpscale_UnexpectedSuccessStatus(t *testing.T) {
	tr := &fakeTransport{postResponses: []*api.RawResponse{
		response(204, ``, nil),
	}}
	c := NewClient(tr, fastPolling(10))

	_, err := c.UltraUpscale(context.Background(), testConfig, UltraUpscaleParameters{
		Image: types.ImageFromID("img-1"),
	})
	require.Error(t, err)

	var re *types.ResponseError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, types.ErrFailureResponse, re.Code)
	assert.Equal(t, "Unexpected response status", re.Message)
	assert.Equal(t, 204, re.Status)
}

func TestClient_UltraUpscale_PollExhaustion(t *testing.T) {
	tr := &fakeTransport{
		postResponses: []*api.RawResponse{
			response(202, `{"transaction_id":"tx-1"}`, nil),
		},
		getResponses: []*api.RawResponse{
			response(202, `{}`, map[string]string{types.HeaderCreditAvailable: "3"}),
		},
	}
	c := NewClient(tr, fastPolling(4))

	_, err := c.UltraUpscale(context.Background(), testConfig, UltraUpscaleParameters{
		Image: types.ImageFromID("img-1"),
	})
	require.Error(t, err)
	assert.Equal(t, "Exceeded maximum number of repeats", err.Error())

	var exhausted *types.PollExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, 3, exhausted.Metadata.CreditAvailable)
	// Initial check plus MaxRepeats repeats.
	assert.Len(t, tr.getURLs, 5)
}

func TestClient_UltraUpscale_PollErrorAborts(t *testing.T) {
	tr := &fakeTransport{
		postResponses: []*api.RawResponse{
			response(202, `{"transaction_id":"tx-1"}`, nil),
		},
		getResponses: []*api.RawResponse{
			response(500, `{"detail":"worker crashed"}`, nil),
		},
	}
	c := NewClient(tr, fastPolling(10))

	_, err := c.UltraUpscale(context.Background(), testConfig, UltraUpscaleParameters{
		Image: types.ImageFromID("img-1"),
	})
	require.Error(t, err)

	var re *types.ResponseError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, types.ErrInternalServerError, re.Code)
	assert.Len(t, tr.getURLs, 1)
}

func TestClient_ListEffects(t *testing.T) {
	tr := &fakeTransport{getResponses: []*api.RawResponse{
		response(200, `{"data":[{"name":"apr1"},{"name":"brnz2"}]}`, nil),
	}}
	c := NewClient(tr, DefaultClientConfig())

	result, err := c.ListEffects(context.Background(), testConfig)
	require.NoError(t, err)
	assert.Equal(t, []string{"apr1", "brnz2"}, result.EffectNames)
	assert.Equal(t, []string{"https://api.test/tools/1.0/effects"}, tr.getURLs)
}

func TestClient_Balance(t *testing.T) {
	tr := &fakeTransport{getResponses: []*api.RawResponse{
		response(200, `{"credits":250}`, map[string]string{types.HeaderRateLimit: "500"}),
	}}
	c := NewClient(tr, DefaultClientConfig())

	result, err := c.Balance(context.Background(), testConfig)
	require.NoError(t, err)
	assert.Equal(t, 250, result.Credits)
	assert.Equal(t, 500, result.Metadata.RateLimit)
	assert.Equal(t, []string{"https://api.test/tools/1.0/balance"}, tr.getURLs)
}

func TestClient_ConcurrentUltraUpscalePolls(t *testing.T) {
	const workers = 8

	tr := &fakeTransport{
		postResponses: []*api.RawResponse{
			response(202, `{"transaction_id":"tx-1"}`, nil),
		},
		getResponses: []*api.RawResponse{
			response(200, `{"status":"success","data":{"id":"img-9","url":"u9"}}`, nil),
		},
	}
	c := NewClient(tr, fastPolling(10))

	g, ctx := errgroup.WithContext(context.Background())
	for range workers {
		g.Go(func() error {
			result, err := c.UltraUpscale(ctx, testConfig, UltraUpscaleParameters{
				Image:         types.ImageFromID("img-1"),
				UpscaleFactor: 2,
			})
			if err != nil {
				return err
			}
			if result.Image.ID != "img-9" {
				return errors.New("unexpected image id " + result.Image.ID)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Every loop submitted once and saw the terminal status on its first poll.
	tr.mu.Lock()
	defer tr.mu.Unlock()
	assert.Len(t, tr.postURLs, workers)
	assert.Len(t, tr.getURLs, workers)
}

func TestClient_EffectsPreviews(t *testing.T) {
	tr := &fakeTransport{postResponses: []*api.RawResponse{
		response(200, `{"status":"success","data":[{"id":"1","url":"u1","effect_name":"apr1"}]}`, nil),
	}}
	c := NewClient(tr, DefaultClientConfig())

	result, err := c.EffectsPreviews(context.Background(), testConfig, EffectsPreviewsParameters{
		Image:       types.ImageFromID("img-1"),
		EffectNames: []string{"apr1"},
	})
	require.NoError(t, err)
	require.Len(t, result.Previews, 1)
	assert.Equal(t, "apr1", result.Previews[0].EffectName)
}
