package image

import (
	"strconv"
	"strings"

	"github.com/picsart/creative-apis-go/api"
	"github.com/picsart/creative-apis-go/types"
)

// request is the contract every wire request satisfies: declarative field
// rules evaluated before any network call, and a body encoding.
type request interface {
	rules() []api.Rule
	body() api.Body
}

// sourceRef is the wire triple of one image reference. At most one field is
// non-empty for a well-formed request.
type sourceRef struct {
	ID   string
	URL  string
	File string
}

func refOf(s types.ImageSource) sourceRef {
	return sourceRef{ID: s.ID(), URL: s.URL(), File: s.File()}
}

func (r sourceRef) fields() []string { return []string{r.ID, r.URL, r.File} }

// addTo writes the reference into a form under the conventional key names:
// <prefix>_id, <prefix>_url and a <prefix> file part. The principal image
// uses prefix "image".
func (r sourceRef) addTo(f *api.FormBody, prefix string) {
	f.Attr(prefix+"_id", r.ID)
	f.Attr(prefix+"_url", r.URL)
	f.File(prefix, r.File)
}

func attrInt(f *api.FormBody, key string, v int) {
	if v != 0 {
		f.Attr(key, strconv.Itoa(v))
	}
}

func attrEnum[T ~string](f *api.FormBody, key string, v T) {
	if v != "" {
		f.Attr(key, strings.ToLower(string(v)))
	}
}

const msgOneImageSource = "Exactly one image source must be set"

func imageSourceRule(r sourceRef) api.Rule {
	return api.ExactlyOne(msgOneImageSource, r.fields()...)
}

type removeBackgroundRequest struct {
	Image         sourceRef
	Format        types.ImageFormat
	OutputType    types.OutputType
	Bg            sourceRef
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

func (r *removeBackgroundRequest) rules() []api.Rule {
	return []api.Rule{
		imageSourceRule(r.Image),
		api.AtMostOne("Only one bg image source can be set", r.Bg.fields()...),
		api.OptionalRange(r.BgBlur, 0, 100, "Blur must be in range [0, 100]"),
		api.OptionalRange(r.StrokeSize, 0, 100, "Stroke size must be in range [0, 100]"),
		api.OptionalRange(r.StrokeOpacity, 0, 100, "Stroke opacity must be in range [0, 100]"),
	}
}

func (r *removeBackgroundRequest) body() api.Body {
	f := &api.FormBody{}
	r.Image.addTo(f, "image")
	attrEnum(f, "format", r.Format)
	attrEnum(f, "output_type", r.OutputType)
	r.Bg.addTo(f, "bg_image")
	f.Attr("bg_color", r.BgColor)
	attrInt(f, "bg_blur", r.BgBlur)
	attrInt(f, "bg_width", r.BgWidth)
	attrInt(f, "bg_height", r.BgHeight)
	attrEnum(f, "scale", r.Scale)
	if r.AutoCenter {
		f.Attr("auto_center", "true")
	}
	attrInt(f, "stroke_size", r.StrokeSize)
	f.Attr("stroke_color", r.StrokeColor)
	attrInt(f, "stroke_opacity", r.StrokeOpacity)
	return *f
}

type effectRequest struct {
	Image      sourceRef
	Format     types.ImageFormat
	EffectName string
}

func (r *effectRequest) rules() []api.Rule {
	return []api.Rule{
		imageSourceRule(r.Image),
		api.NotBlank(r.EffectName, "Effect name must be set"),
	}
}

func (r *effectRequest) body() api.Body {
	f := &api.FormBody{}
	r.Image.addTo(f, "image")
	attrEnum(f, "format", r.Format)
	f.Attr("effect_name", r.EffectName)
	return *f
}

type ultraUpscaleRequest struct {
	Image         sourceRef
	Format        types.ImageFormat
	UpscaleFactor int
	Mode          types.UpscaleMode
}

func (r *ultraUpscaleRequest) rules() []api.Rule {
	return []api.Rule{
		imageSourceRule(r.Image),
		api.OptionalRange(r.UpscaleFactor, 2, 16, "Upscale factor must be in range [2, 16]"),
	}
}

func (r *ultraUpscaleRequest) body() api.Body {
	f := &api.FormBody{}
	r.Image.addTo(f, "image")
	attrEnum(f, "format", r.Format)
	attrInt(f, "upscale_factor", r.UpscaleFactor)
	attrEnum(f, "mode", r.Mode)
	return *f
}

type upscaleRequest struct {
	Image         sourceRef
	Format        types.ImageFormat
	UpscaleFactor int
}

func (r *upscaleRequest) rules() []api.Rule {
	return []api.Rule{
		imageSourceRule(r.Image),
		api.OptionalOneOf(r.UpscaleFactor, []int{2, 4, 6, 8}, "Upscale factor can be 2, 4, 6 or 8"),
	}
}

func (r *upscaleRequest) body() api.Body {
	f := &api.FormBody{}
	r.Image.addTo(f, "image")
	attrEnum(f, "format", r.Format)
	attrInt(f, "upscale_factor", r.UpscaleFactor)
	return *f
}

type ultraEnhanceRequest struct {
	Image         sourceRef
	Format        types.ImageFormat
	UpscaleFactor int
}

func (r *ultraEnhanceRequest) rules() []api.Rule {
	return []api.Rule{
		imageSourceRule(r.Image),
		// Message matches the published API verbatim, double "be" included.
		api.OptionalRange(r.UpscaleFactor, 2, 16, "Upscale factor must be be in range [2, 16]"),
	}
}

func (r *ultraEnhanceRequest) body() api.Body {
	f := &api.FormBody{}
	r.Image.addTo(f, "image")
	attrEnum(f, "format", r.Format)
	attrInt(f, "upscale_factor", r.UpscaleFactor)
	return *f
}

type enhanceFaceRequest struct {
	Image  sourceRef
	Format types.ImageFormat
}

func (r *enhanceFaceRequest) rules() []api.Rule {
	return []api.Rule{imageSourceRule(r.Image)}
}

func (r *enhanceFaceRequest) body() api.Body {
	f := &api.FormBody{}
	r.Image.addTo(f, "image")
	attrEnum(f, "format", r.Format)
	return *f
}

type effectsPreviewsRequest struct {
	Image       sourceRef
	Format      types.ImageFormat
	EffectNames []string
	PreviewSize int
}

func (r *effectsPreviewsRequest) rules() []api.Rule {
	return []api.Rule{
		imageSourceRule(r.Image),
		{Check: func() bool { return len(r.EffectNames) > 0 },
			Message: "At least one effect name must be set"},
		{Check: func() bool { return len(r.EffectNames) <= 10 },
			Message: "Maximum 10 effect names are allowed"},
		api.OptionalMin(r.PreviewSize, 1, "Preview size must be greater than 0"),
	}
}

func (r *effectsPreviewsRequest) body() api.Body {
	f := &api.FormBody{}
	r.Image.addTo(f, "image")
	attrEnum(f, "format", r.Format)
	f.List("effect_names", r.EffectNames)
	attrInt(f, "preview_size", r.PreviewSize)
	return *f
}

type adjustRequest struct {
	Image       sourceRef
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

func (r *adjustRequest) rules() []api.Rule {
	return []api.Rule{
		imageSourceRule(r.Image),
		api.OptionalRange(r.Brightness, -100, 100, "Brightness must be in range [-100, 100]"),
		api.OptionalRange(r.Contrast, -100, 100, "Contrast must be in range [-100, 100]"),
		api.OptionalRange(r.Clarity, -100, 100, "Clarity must be in range [-100, 100]"),
		api.OptionalRange(r.Saturation, -100, 100, "Saturation must be in range [-100, 100]"),
		api.OptionalRange(r.Hue, -100, 100, "Hue must be in range [-100, 100]"),
		api.OptionalRange(r.Shadows, -100, 100, "Shadows must be in range [-100, 100]"),
		api.OptionalRange(r.Highlights, -100, 100, "Highlights must be in range [-100, 100]"),
		api.OptionalRange(r.Temperature, -100, 100, "Temperature must be in range [-100, 100]"),
		api.OptionalRange(r.Sharpen, 0, 100, "Sharpen must be in range [0, 100]"),
		api.OptionalRange(r.Noise, 0, 100, "Noise must be in range [0, 100]"),
		api.OptionalRange(r.Vignette, 0, 100, "Vignette must be in range [0, 100]"),
	}
}

func (r *adjustRequest) body() api.Body {
	f := &api.FormBody{}
	r.Image.addTo(f, "image")
	attrEnum(f, "format", r.Format)
	attrInt(f, "brightness", r.Brightness)
	attrInt(f, "contrast", r.Contrast)
	attrInt(f, "clarity", r.Clarity)
	attrInt(f, "saturation", r.Saturation)
	attrInt(f, "hue", r.Hue)
	attrInt(f, "shadows", r.Shadows)
	attrInt(f, "highlights", r.Highlights)
	attrInt(f, "temperature", r.Temperature)
	attrInt(f, "sharpen", r.Sharpen)
	attrInt(f, "noise", r.Noise)
	attrInt(f, "vignette", r.Vignette)
	return *f
}

type backgroundTextureRequest struct {
	Image   sourceRef
	Format  types.ImageFormat
	Width   int
	Height  int
	OffsetX int
	OffsetY int
	Pattern types.BackgroundTexturePattern
	Rotate  int
	Scale   float64
}

func (r *backgroundTextureRequest) rules() []api.Rule {
	return []api.Rule{
		imageSourceRule(r.Image),
		api.OptionalMin(r.Width, 1, "Width must be greater than 0"),
		api.OptionalMax(r.Width, 8000, "Width must be less than 8000"),
		api.OptionalMin(r.Height, 1, "Height must be greater than 0"),
		api.OptionalMax(r.Height, 8000, "Height must be less than 8000"),
		api.OptionalRange(r.Rotate, -180, 180, "Rotate must be in range [-180, 180]"),
		api.OptionalFloatRange(r.Scale, 0.5, 10, "Scale must be in range [0.5, 10]"),
	}
}

func (r *backgroundTextureRequest) body() api.Body {
	f := &api.FormBody{}
	r.Image.addTo(f, "image")
	attrEnum(f, "format", r.Format)
	attrInt(f, "width", r.Width)
	attrInt(f, "height", r.Height)
	attrInt(f, "offset_x", r.OffsetX)
	attrInt(f, "offset_y", r.OffsetY)
	attrEnum(f, "pattern", r.Pattern)
	attrInt(f, "rotate", r.Rotate)
	if r.Scale != 0 {
		f.Attr("scale", strconv.FormatFloat(r.Scale, 'f', -1, 64))
	}
	return *f
}

type surfaceMapRequest struct {
	Image   sourceRef
	Format  types.ImageFormat
	Mask    sourceRef
	Sticker sourceRef
}

func (r *surfaceMapRequest) rules() []api.Rule {
	return []api.Rule{
		imageSourceRule(r.Image),
		api.ExactlyOne("Exactly one mask source must be set", r.Mask.fields()...),
		api.ExactlyOne("Exactly one sticker source must be set", r.Sticker.fields()...),
	}
}

func (r *surfaceMapRequest) body() api.Body {
	f := &api.FormBody{}
	r.Image.addTo(f, "image")
	attrEnum(f, "format", r.Format)
	r.Mask.addTo(f, "mask")
	r.Sticker.addTo(f, "sticker")
	return *f
}

type uploadRequest struct {
	Image sourceRef
}

func (r *uploadRequest) rules() []api.Rule {
	return []api.Rule{
		api.ExactlyOne(msgOneImageSource, r.Image.URL, r.Image.File),
	}
}

func (r *uploadRequest) body() api.Body {
	f := &api.FormBody{}
	f.Attr("image_url", r.Image.URL)
	f.File("image", r.Image.File)
	return *f
}
