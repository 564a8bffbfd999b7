package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/picsart/creative-apis-go/types"
)

// genericFailureMessage is used when an error response carries no parseable
// detail at all.
const genericFailureMessage = "Failure response from the API"

// Classify inspects a completed response. On a 2xx status it returns the
// body unchanged. On any other status it parses the error detail and maps
// the status code to one member of the typed error set, always attaching the
// response Metadata.
func Classify(raw *RawResponse) ([]byte, error) {
	if raw.Status >= 200 && raw.Status < 300 {
		return raw.Body, nil
	}
	return nil, NewResponseError(raw.Status, errorDetail(raw.Body), raw.Metadata())
}

// NewResponseError maps an HTTP status code to its typed error.
// Unlisted status codes produce the generic failure-response code.
func NewResponseError(status int, message string, md types.Metadata) *types.ResponseError {
	var code types.ErrorCode
	switch status {
	case http.StatusBadRequest:
		code = types.ErrBadRequest
	case http.StatusUnauthorized:
		code = types.ErrUnauthorized
	case http.StatusForbidden:
		code = types.ErrForbidden
	case http.StatusNotFound:
		code = types.ErrNotFound
	case http.StatusMethodNotAllowed:
		code = types.ErrMethodNotAllowed
	case http.StatusRequestTimeout:
		code = types.ErrRequestTimeout
	case http.StatusRequestEntityTooLarge:
		code = types.ErrRequestEntityTooLarge
	case http.StatusUnsupportedMediaType:
		code = types.ErrUnsupportedMediaType
	case http.StatusTooManyRequests:
		code = types.ErrTooManyRequests
	case http.StatusRequestHeaderFieldsTooLarge:
		code = types.ErrRequestHeaderFieldsTooLarge
	case http.StatusInternalServerError:
		code = types.ErrInternalServerError
	case http.StatusBadGateway:
		code = types.ErrBadGateway
	case http.StatusServiceUnavailable:
		code = types.ErrServiceUnavailable
	case http.StatusGatewayTimeout:
		code = types.ErrGatewayTimeout
	default:
		code = types.ErrFailureResponse
	}
	return &types.ResponseError{Code: code, Message: message, Status: status, Metadata: md}
}

// errorDetail extracts the human-readable detail field of an error body,
// falling back to the raw body text and finally to a generic message.
func errorDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return genericFailureMessage
}
