package types

// Image is a reference to an image stored by the service.
type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ImageWithEffect is a preview image produced by applying a named effect.
type ImageWithEffect struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	EffectName string `json:"effect_name"`
}

// ImageSource is a single image reference passed to an operation. It is one
// of: an id of a previously uploaded image, a publicly reachable URL, or a
// local file path. Construct it with ImageFromID, ImageFromURL or
// ImageFromFile; the zero value means "not set".
type ImageSource struct {
	id   string
	url  string
	file string
}

// ImageFromID references an image by its service-assigned id.
func ImageFromID(id string) ImageSource { return ImageSource{id: id} }

// ImageFromURL references an image by URL.
func ImageFromURL(url string) ImageSource { return ImageSource{url: url} }

// ImageFromFile references a local file to be uploaded as a multipart part.
func ImageFromFile(path string) ImageSource { return ImageSource{file: path} }

// ID returns the image id, or "" when the source is not an id.
func (s ImageSource) ID() string { return s.id }

// URL returns the image URL, or "" when the source is not a URL.
func (s ImageSource) URL() string { return s.url }

// File returns the local file path, or "" when the source is not a file.
func (s ImageSource) File() string { return s.file }

// IsZero reports whether no source was set.
func (s ImageSource) IsZero() bool { return s.id == "" && s.url == "" && s.file == "" }

// ImageFormat selects the encoding of a produced image.
type ImageFormat string

const (
	FormatJPG  ImageFormat = "JPG"
	FormatPNG  ImageFormat = "PNG"
	FormatWEBP ImageFormat = "WEBP"
)

// OutputType selects what removeBackground returns.
type OutputType string

const (
	OutputCutout OutputType = "cutout"
	OutputMask   OutputType = "mask"
)

// Scale controls how a background image is fitted behind a cutout.
type Scale string

const (
	ScaleFit  Scale = "fit"
	ScaleFill Scale = "fill"
)

// UpscaleMode selects how the ultra upscale job is executed server-side.
type UpscaleMode string

const (
	UpscaleModeSync  UpscaleMode = "sync"
	UpscaleModeAsync UpscaleMode = "async"
	UpscaleModeAuto  UpscaleMode = "auto"
)

// BackgroundTexturePattern selects the tiling pattern of background texture
// generation.
type BackgroundTexturePattern string

const (
	PatternOriginal       BackgroundTexturePattern = "original"
	PatternTile           BackgroundTexturePattern = "tile"
	PatternHorizontalTile BackgroundTexturePattern = "horizontal_tile"
	PatternVerticalTile   BackgroundTexturePattern = "vertical_tile"
	PatternMirrorTile     BackgroundTexturePattern = "mirror_tile"
	PatternDiamond        BackgroundTexturePattern = "diamond"
)
