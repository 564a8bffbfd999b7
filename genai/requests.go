package genai

import (
	"strings"

	"github.com/picsart/creative-apis-go/api"
)

// Text2ImageParameters describes a text to image generation.
// Width, Height and Count are optional; zero means service default.
type Text2ImageParameters struct {
	Prompt         string
	NegativePrompt string
	Width          int
	Height         int
	Count          int
}

// text2ImageRequest is the JSON submit body.
type text2ImageRequest struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
	Width          int    `json:"width,omitempty"`
	Height         int    `json:"height,omitempty"`
	Count          int    `json:"count,omitempty"`
}

func toText2ImageRequest(p Text2ImageParameters) *text2ImageRequest {
	return &text2ImageRequest{
		Prompt:         p.Prompt,
		NegativePrompt: p.NegativePrompt,
		Width:          p.Width,
		Height:         p.Height,
		Count:          p.Count,
	}
}

func (r *text2ImageRequest) rules() []api.Rule {
	return []api.Rule{
		{Check: func() bool { return strings.TrimSpace(r.Prompt) != "" }, Message: "Prompt cannot be blank"},
		{Check: func() bool { return strings.TrimSpace(r.NegativePrompt) != "" }, Message: "Negative prompt cannot be blank"},
		api.OptionalMin(r.Width, 1, "Width must be greater than 0"),
		api.OptionalMin(r.Height, 1, "Height must be greater than 0"),
		api.OptionalMin(r.Count, 1, "Count must be greater than 0"),
	}
}

func (r *text2ImageRequest) body() api.Body {
	return api.JSONBody{Value: r}
}
