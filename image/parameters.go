package image

import "github.com/picsart/creative-apis-go/types"

// RemoveBackgroundParameters configures a removeBackground call.
type RemoveBackgroundParameters struct {
	Image         types.ImageSource
	Format        types.ImageFormat
	OutputType    types.OutputType
	BgImage       types.ImageSource
	BgColor       string
	BgBlur        int
	BgWidth       int
	BgHeight      int
	Scale         types.Scale
	AutoCenter    bool
	StrokeSize    int
	StrokeColor   string
	StrokeOpacity int
}

// EffectParameters configures an effect call.
type EffectParameters struct {
	Image      types.ImageSource
	Format     types.ImageFormat
	EffectName string
}

// UltraUpscaleParameters configures an ultraUpscale call.
type UltraUpscaleParameters struct {
	Image         types.ImageSource
	Format        types.ImageFormat
	UpscaleFactor int
	Mode          types.UpscaleMode
}

// UpscaleParameters configures an upscale call.
type UpscaleParameters struct {
	Image         types.ImageSource
	Format        types.ImageFormat
	UpscaleFactor int
}

// UltraEnhanceParameters configures an ultraEnhance call.
type UltraEnhanceParameters struct {
	Image         types.ImageSource
	Format        types.ImageFormat
	UpscaleFactor int
}

// EnhanceFaceParameters configures an enhanceFace call.
type EnhanceFaceParameters struct {
	Image  types.ImageSource
	Format types.ImageFormat
}

// EffectsPreviewsParameters configures an effectsPreviews call.
type EffectsPreviewsParameters struct {
	Image       types.ImageSource
	Format      types.ImageFormat
	EffectNames []string
	PreviewSize int
}

// AdjustParameters configures an adjust call. All sliders default to "leave
// unchanged".
type AdjustParameters struct {
	Image       types.ImageSource
	Format      types.ImageFormat
	Brightness  int
	Contrast    int
	Clarity     int
	Saturation  int
	Hue         int
	Shadows     int
	Highlights  int
	Temperature int
	Sharpen     int
	Noise       int
	Vignette    int
}

// BackgroundTextureParameters configures a backgroundTexture call.
type BackgroundTextureParameters struct {
	Image   types.ImageSource
	Format  types.ImageFormat
	Width   int
	Height  int
	OffsetX int
	OffsetY int
	Pattern types.BackgroundTexturePattern
	Rotate  int
	Scale   float64
}

// SurfaceMapParameters configures a surfaceMap call.
type SurfaceMapParameters struct {
	Image   types.ImageSource
	Format  types.ImageFormat
	Mask    types.ImageSource
	Sticker types.ImageSource
}

// UploadParameters configures an upload call. Exactly one of a local file or
// a URL must be given.
type UploadParameters struct {
	Image types.ImageSource
}
