package types

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetadataFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header http.Header
		want   Metadata
	}{
		{
			name: "all headers present",
			header: http.Header{
				HeaderRateLimit:          []string{"500"},
				HeaderRateLimitAvailable: []string{"499"},
				HeaderRateLimitReset:     []string{"3600"},
				HeaderCorrelationID:      []string{"corr-1"},
				HeaderCreditAvailable:    []string{"120"},
			},
			want: Metadata{
				RateLimit:          500,
				RateLimitAvailable: 499,
				RateLimitReset:     3600,
				CorrelationID:      "corr-1",
				CreditAvailable:    120,
			},
		},
		{
			name:   "missing headers leave zero values",
			header: http.Header{},
			want:   Metadata{},
		},
		{
			name: "malformed numeric header ignored",
			header: http.Header{
				HeaderRateLimit:     []string{"many"},
				HeaderCorrelationID: []string{"corr-2"},
			},
			want: Metadata{CorrelationID: "corr-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MetadataFromHeader(tt.header))
		})
	}
}

func TestMetadataFromHeader_CaseInsensitive(t *testing.T) {
	h := http.Header{}
	// Header names arrive in arbitrary casing; http.Header canonicalizes.
	h.Set("x-picsart-ratelimit-available", "7")
	h.Set("X-PICSART-CORRELATION-ID", "corr-3")

	md := MetadataFromHeader(h)
	assert.Equal(t, 7, md.RateLimitAvailable)
	assert.Equal(t, "corr-3", md.CorrelationID)
}
