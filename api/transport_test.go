package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picsart/creative-apis-go/types"
)

func TestHTTPTransport_Get(t *testing.T) {
	var gotReq *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.Header().Set(types.HeaderCreditAvailable, "77")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"credits": 77}`)
	}))
	defer server.Close()

	tr := NewHTTPTransport(WithHTTPClient(server.Client()))
	raw, err := tr.Get(context.Background(), server.URL+"/balance", "secret-key", time.Second)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, raw.Status)
	assert.JSONEq(t, `{"credits": 77}`, string(raw.Body))
	assert.Equal(t, 77, raw.Metadata().CreditAvailable)

	require.NotNil(t, gotReq)
	assert.Equal(t, http.MethodGet, gotReq.Method)
	assert.Equal(t, "secret-key", gotReq.Header.Get("X-Picsart-API-Key"))
	assert.Equal(t, "application/json", gotReq.Header.Get("Accept"))
	assert.Equal(t, userAgent, gotReq.Header.Get("User-Agent"))
	assert.NotEmpty(t, gotReq.Header.Get("X-Request-ID"))
}

func TestHTTPTransport_PostJSON(t *testing.T) {
	var body []byte
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusAccepted)
		io.WriteString(w, `{"inference_id":"inf-1"}`)
	}))
	defer server.Close()

	tr := NewHTTPTransport(WithHTTPClient(server.Client()))
	payload := map[string]any{"prompt": "a red fox", "count": 2}
	raw, err := tr.Post(context.Background(), server.URL+"/text2image", "k", JSONBody{Value: payload}, time.Second)
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, raw.Status)
	assert.Equal(t, "application/json", contentType)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "a red fox", got["prompt"])
	assert.EqualValues(t, 2, got["count"])
}

func TestHTTPTransport_PostMultipart(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "photo.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("not really a png"), 0o600))

	type part struct {
		value       string
		filename    string
		contentType string
	}
	parts := map[string]part{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for key, vals := range r.MultipartForm.Value {
			parts[key] = part{value: vals[0]}
		}
		for key, files := range r.MultipartForm.File {
			f, err := files[0].Open()
			require.NoError(t, err)
			data, _ := io.ReadAll(f)
			f.Close()
			parts[key] = part{
				value:       string(data),
				filename:    files[0].Filename,
				contentType: files[0].Header.Get("Content-Type"),
			}
		}
		io.WriteString(w, `{"status":"success","data":{"id":"1","url":"u"}}`)
	}))
	defer server.Close()

	form := FormBody{}
	form.Attr("format", "PNG")
	form.Attr("output_type", "cutout")
	form.List("effect_names", []string{"apr1", "brnz2"})
	form.File("image", imagePath)

	tr := NewHTTPTransport(WithHTTPClient(server.Client()))
	raw, err := tr.Post(context.Background(), server.URL+"/removebg", "k", form, time.Second)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, raw.Status)

	assert.Equal(t, "PNG", parts["format"].value)
	assert.Equal(t, "cutout", parts["output_type"].value)
	assert.Equal(t, "apr1,brnz2", parts["effect_names"].value)

	file := parts["image"]
	assert.Equal(t, "photo.png", file.filename)
	assert.Equal(t, "image/png", file.contentType)
	assert.Equal(t, "not really a png", file.value)
}

func TestHTTPTransport_FormSkipsEmptyAttrs(t *testing.T) {
	form := FormBody{}
	form.Attr("format", "")
	form.Attr("bg_color", "red")
	form.List("effect_names", nil)
	form.File("image", "")

	assert.Len(t, form.Attrs, 1)
	assert.Empty(t, form.Files)
}

func TestHTTPTransport_ErrorStatusPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, `{"detail":"maintenance"}`)
	}))
	defer server.Close()

	// The transport reports what happened on the wire; classification is the
	// caller's job.
	tr := NewHTTPTransport(WithHTTPClient(server.Client()))
	raw, err := tr.Get(context.Background(), server.URL, "k", time.Second)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, raw.Status)
}

func TestHTTPTransport_NetworkErrorWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from now on

	tr := NewHTTPTransport()
	_, err := tr.Get(context.Background(), server.URL, "k", time.Second)
	require.Error(t, err)

	var te *types.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.MethodGet, te.Op)
}

func TestHTTPTransport_TimeoutWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	tr := NewHTTPTransport(WithHTTPClient(server.Client()))
	_, err := tr.Get(context.Background(), server.URL, "k", 50*time.Millisecond)
	require.Error(t, err)

	var te *types.TransportError
	require.True(t, errors.As(err, &te))
	assert.True(t, errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(err.Error(), "deadline"))
}

func TestHTTPTransport_MissingFormFile(t *testing.T) {
	form := FormBody{}
	form.File("image", "testdata/does-not-exist.png")

	tr := NewHTTPTransport()
	_, err := tr.Post(context.Background(), "http://127.0.0.1:0/upload", "k", form, time.Second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
