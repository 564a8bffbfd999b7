package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/picsart/creative-apis-go/types"
)

// RawResponse is one completed HTTP exchange: status code, headers and the
// full response body.
type RawResponse struct {
	Status int
	Header http.Header
	Body   []byte
}

// Metadata extracts the quota/tracing metadata from the response headers.
func (r *RawResponse) Metadata() types.Metadata {
	return types.MetadataFromHeader(r.Header)
}

// ParseBody decodes the response body into T.
func ParseBody[T any](r *RawResponse) (T, error) {
	var v T
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return v, fmt.Errorf("parse response body: %w", err)
	}
	return v, nil
}
