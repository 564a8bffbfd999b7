package genai

import (
	"time"

	"github.com/picsart/creative-apis-go/api"
)

// ClientConfig holds the polling policy of the text to image operation.
type ClientConfig struct {
	Text2ImagePolling api.PollPolicy
}

// DefaultClientConfig returns the polling policy used when none is given.
// Generation usually takes a few seconds, so the first check waits longer
// than the repeats.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Text2ImagePolling: api.PollPolicy{
			FirstDelay:  5 * time.Second,
			RepeatDelay: time.Second,
			MaxRepeats:  60,
		},
	}
}
