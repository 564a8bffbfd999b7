package types

import (
	"fmt"
	"strings"
)

// ErrorCode identifies one member of the closed set of failure kinds a
// non-success API response is classified into.
type ErrorCode string

// One code per well-known HTTP status, plus a catch-all for everything else.
const (
	ErrBadRequest                  ErrorCode = "BAD_REQUEST"                     // 400
	ErrUnauthorized                ErrorCode = "UNAUTHORIZED"                    // 401
	ErrForbidden                   ErrorCode = "FORBIDDEN"                       // 403
	ErrNotFound                    ErrorCode = "NOT_FOUND"                       // 404
	ErrMethodNotAllowed            ErrorCode = "METHOD_NOT_ALLOWED"              // 405
	ErrRequestTimeout              ErrorCode = "REQUEST_TIMEOUT"                 // 408
	ErrRequestEntityTooLarge       ErrorCode = "REQUEST_ENTITY_TOO_LARGE"        // 413
	ErrUnsupportedMediaType        ErrorCode = "UNSUPPORTED_MEDIA_TYPE"          // 415
	ErrTooManyRequests             ErrorCode = "TOO_MANY_REQUESTS"               // 429
	ErrRequestHeaderFieldsTooLarge ErrorCode = "REQUEST_HEADER_FIELDS_TOO_LARGE" // 431
	ErrInternalServerError         ErrorCode = "INTERNAL_SERVER_ERROR"           // 500
	ErrBadGateway                  ErrorCode = "BAD_GATEWAY"                     // 502
	ErrServiceUnavailable          ErrorCode = "SERVICE_UNAVAILABLE"             // 503
	ErrGatewayTimeout              ErrorCode = "GATEWAY_TIMEOUT"                 // 504
	ErrFailureResponse             ErrorCode = "FAILURE_RESPONSE"                // any other non-2xx
)

// ResponseError is a non-success response from the API, classified by status
// code. Message is the human-readable detail reported by the service and
// Metadata reflects the headers of the originating response, so quota state
// stays visible even on failure.
type ResponseError struct {
	Code     ErrorCode
	Message  string
	Status   int
	Metadata Metadata
}

func (e *ResponseError) Error() string { return e.Message }

// ValidationError reports every field constraint an outgoing request
// violated. It is raised locally, before any network call.
type ValidationError struct {
	// Action is the name of the operation whose request failed validation.
	Action string
	// Violations holds one message per violated constraint, sorted
	// lexicographically. The ordering is part of the message contract.
	Violations []string
}

func (e *ValidationError) Error() string {
	return e.Action + " failed with errors: " + strings.Join(e.Violations, ", ")
}

// PollExhaustedError is returned when a long-running operation did not reach
// a terminal state within the configured poll budget. Metadata reflects the
// last status response observed before giving up.
type PollExhaustedError struct {
	Metadata Metadata
}

func (e *PollExhaustedError) Error() string {
	return "Exceeded maximum number of repeats"
}

// TransportError wraps a network-level failure (connection error, timeout,
// cancellation). It carries no status code because no classified response
// was received.
type TransportError struct {
	Op  string // HTTP method of the failed attempt
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
