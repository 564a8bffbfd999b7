package image

import "github.com/picsart/creative-apis-go/types"

// Wire DTOs of the Image API.

// imageResponse is the common shape of single-image operations:
// a status string plus one produced image.
type imageResponse struct {
	Status string      `json:"status"`
	Data   types.Image `json:"data"`
}

// ultraUpscaleAckResponse is the 202 acknowledgment of an async ultra
// upscale submit.
type ultraUpscaleAckResponse struct {
	TransactionID string `json:"transaction_id"`
}

type effectsPreviewsResponse struct {
	Status string                  `json:"status"`
	Data   []types.ImageWithEffect `json:"data"`
}

type listEffectsResponse struct {
	Data []effectItem `json:"data"`
}

type effectItem struct {
	Name string `json:"name"`
}

type balanceResponse struct {
	Credits int `json:"credits"`
}
