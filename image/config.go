package image

import (
	"time"

	"github.com/picsart/creative-apis-go/api"
)

// ClientConfig holds the per-deployment polling policy of the Image API's
// long-running operations. It is fixed at client construction, not per call.
type ClientConfig struct {
	// UltraUpscalePolling bounds the poll loop entered when an ultra
	// upscale submit is answered with 202 Accepted.
	UltraUpscalePolling api.PollPolicy
}

// DefaultClientConfig returns the production polling policy.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		UltraUpscalePolling: api.PollPolicy{
			FirstDelay:  2 * time.Second,
			RepeatDelay: time.Second,
			MaxRepeats:  60,
		},
	}
}
