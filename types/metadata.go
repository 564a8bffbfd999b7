package types

import (
	"net/http"
	"strconv"
)

// Response header names carrying quota and tracing metadata.
const (
	HeaderRateLimit          = "X-Picsart-Ratelimit-Limit"
	HeaderRateLimitAvailable = "X-Picsart-Ratelimit-Available"
	HeaderRateLimitReset     = "X-Picsart-Ratelimit-Reset-Time"
	HeaderCorrelationID      = "X-Picsart-Correlation-Id"
	HeaderCreditAvailable    = "X-Picsart-Credit-Available"
)

// Metadata carries the quota and tracing information the service attaches to
// every response. It is present on success results and on typed errors alike,
// so callers can inspect their rate-limit and credit state regardless of the
// outcome. A zero field means the corresponding header was absent.
type Metadata struct {
	// RateLimit is the request ceiling of the current rate-limit window.
	RateLimit int
	// RateLimitAvailable is the number of requests left in the window.
	RateLimitAvailable int
	// RateLimitReset is the number of seconds until the window resets.
	RateLimitReset int
	// CorrelationID is the server-assigned trace id of the request.
	CorrelationID string
	// CreditAvailable is the remaining credit balance of the account.
	CreditAvailable int
}

// MetadataFromHeader extracts Metadata from a response header set.
// Missing or malformed headers leave the corresponding field zero.
func MetadataFromHeader(h http.Header) Metadata {
	return Metadata{
		RateLimit:          headerInt(h, HeaderRateLimit),
		RateLimitAvailable: headerInt(h, HeaderRateLimitAvailable),
		RateLimitReset:     headerInt(h, HeaderRateLimitReset),
		CorrelationID:      h.Get(HeaderCorrelationID),
		CreditAvailable:    headerInt(h, HeaderCreditAvailable),
	}
}

func headerInt(h http.Header, name string) int {
	v := h.Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
