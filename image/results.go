package image

import "github.com/picsart/creative-apis-go/types"

// Result types returned by the API façade. Every result carries the
// Metadata of the response that produced it.

// ImageResult is the outcome of a single-image operation.
type ImageResult struct {
	Status   string
	Image    types.Image
	Metadata types.Metadata
}

// EffectsPreviewsResult is the outcome of effectsPreviews.
type EffectsPreviewsResult struct {
	Status   string
	Previews []types.ImageWithEffect
	Metadata types.Metadata
}

// ListEffectsResult is the outcome of listEffects.
type ListEffectsResult struct {
	EffectNames []string
	Metadata    types.Metadata
}

// BalanceResult is the outcome of balance.
type BalanceResult struct {
	Credits  int
	Metadata types.Metadata
}
