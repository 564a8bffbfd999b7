package image

// Hand-written conversions from the user-facing parameter values to the wire
// requests. Pure plumbing; kept together so the field correspondence is easy
// to audit.

func toRemoveBackgroundRequest(p RemoveBackgroundParameters) *removeBackgroundRequest {
	return &removeBackgroundRequest{
		Image:         refOf(p.Image),
		Format:        p.Format,
		OutputType:    p.OutputType,
		Bg:            refOf(p.BgImage),
		BgColor:       p.BgColor,
		BgBlur:        p.BgBlur,
		BgWidth:       p.BgWidth,
		BgHeight:      p.BgHeight,
		Scale:         p.Scale,
		AutoCenter:    p.AutoCenter,
		StrokeSize:    p.StrokeSize,
		StrokeColor:   p.StrokeColor,
		StrokeOpacity: p.StrokeOpacity,
	}
}

func toEffectRequest(p EffectParameters) *effectRequest {
	return &effectRequest{
		Image:      refOf(p.Image),
		Format:     p.Format,
		EffectName: p.EffectName,
	}
}

func toUltraUpscaleRequest(p UltraUpscaleParameters) *ultraUpscaleRequest {
	return &ultraUpscaleRequest{
		Image:         refOf(p.Image),
		Format:        p.Format,
		UpscaleFactor: p.UpscaleFactor,
		Mode:          p.Mode,
	}
}

func toUpscaleRequest(p UpscaleParameters) *upscaleRequest {
	return &upscaleRequest{
		Image:         refOf(p.Image),
		Format:        p.Format,
		UpscaleFactor: p.UpscaleFactor,
	}
}

func toUltraEnhanceRequest(p UltraEnhanceParameters) *ultraEnhanceRequest {
	return &ultraEnhanceRequest{
		Image:         refOf(p.Image),
		Format:        p.Format,
		UpscaleFactor: p.UpscaleFactor,
	}
}

func toEnhanceFaceRequest(p EnhanceFaceParameters) *enhanceFaceRequest {
	return &enhanceFaceRequest{
		Image:  refOf(p.Image),
		Format: p.Format,
	}
}

func toEffectsPreviewsRequest(p EffectsPreviewsParameters) *effectsPreviewsRequest {
	return &effectsPreviewsRequest{
		Image:       refOf(p.Image),
		Format:      p.Format,
		EffectNames: p.EffectNames,
		PreviewSize: p.PreviewSize,
	}
}

func toAdjustRequest(p AdjustParameters) *adjustRequest {
	return &adjustRequest{
		Image:       refOf(p.Image),
		Format:      p.Format,
		Brightness:  p.Brightness,
		Contrast:    p.Contrast,
		Clarity:     p.Clarity,
		Saturation:  p.Saturation,
		Hue:         p.Hue,
		Shadows:     p.Shadows,
		Highlights:  p.Highlights,
		Temperature: p.Temperature,
		Sharpen:     p.Sharpen,
		Noise:       p.Noise,
		Vignette:    p.Vignette,
	}
}

func toBackgroundTextureRequest(p BackgroundTextureParameters) *backgroundTextureRequest {
	return &backgroundTextureRequest{
		Image:   refOf(p.Image),
		Format:  p.Format,
		Width:   p.Width,
		Height:  p.Height,
		OffsetX: p.OffsetX,
		OffsetY: p.OffsetY,
		Pattern: p.Pattern,
		Rotate:  p.Rotate,
		Scale:   p.Scale,
	}
}

func toSurfaceMapRequest(p SurfaceMapParameters) *surfaceMapRequest {
	return &surfaceMapRequest{
		Image:   refOf(p.Image),
		Format:  p.Format,
		Mask:    refOf(p.Mask),
		Sticker: refOf(p.Sticker),
	}
}

func toUploadRequest(p UploadParameters) *uploadRequest {
	return &uploadRequest{Image: refOf(p.Image)}
}
