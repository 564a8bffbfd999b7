package genai

import "github.com/picsart/creative-apis-go/types"

// text2ImageAckResponse is the submit acknowledgment carrying the id to poll.
type text2ImageAckResponse struct {
	InferenceID string `json:"inference_id"`
}

// text2ImageResponse is the polled inference state. Status is DONE once the
// generated images are available in Data.
type text2ImageResponse struct {
	Status string        `json:"status"`
	Data   []types.Image `json:"data"`
}

// Text2ImageResult is the outcome of a finished generation.
type Text2ImageResult struct {
	Status   string
	Images   []types.Image
	Metadata types.Metadata
}
