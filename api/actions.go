package api

import "strings"

// Action is one remote capability: its name (used in validation error
// messages) and its URL path relative to the API base URL.
type Action struct {
	name string
	path string
}

// Name returns the action name.
func (a Action) Name() string { return a.name }

// Path returns the URL path of the action.
func (a Action) Path() string { return a.path }

// The full action table of the Creative APIs.
var (
	ActionText2Image        = Action{"text2image", "text2image"}
	ActionRemoveBackground  = Action{"removeBackground", "removebg"}
	ActionEffect            = Action{"effect", "effects"}
	ActionListEffects       = Action{"listEffects", "effects"}
	ActionUltraUpscale      = Action{"ultraUpscale", "upscale/ultra"}
	ActionUpscale           = Action{"upscale", "upscale"}
	ActionUltraEnhance      = Action{"ultraEnhance", "upscale/enhance"}
	ActionEnhanceFace       = Action{"enhanceFace", "enhance/face"}
	ActionEffectsPreviews   = Action{"effectsPreviews", "effects/previews"}
	ActionAdjust            = Action{"adjust", "adjust"}
	ActionBackgroundTexture = Action{"backgroundTexture", "background/texture"}
	ActionSurfaceMap        = Action{"surfaceMap", "surfacemap"}
	ActionUpload            = Action{"upload", "upload"}
	ActionBalance           = Action{"balance", "balance"}
)

// JoinURL appends a path to a base URL, tolerating a trailing slash on the
// base.
func JoinURL(baseURL, path string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + path
}
