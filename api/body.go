package api

import "strings"

// Body is an outgoing POST payload. The transport selects the wire encoding
// by the body's kind, not by inspecting its contents: a JSONBody is sent as
// application/json, a FormBody as multipart/form-data.
type Body interface {
	isBody()
}

// JSONBody wraps a JSON-serializable request value.
type JSONBody struct {
	Value any
}

func (JSONBody) isBody() {}

// FormBody is a multipart form: an ordered list of scalar attributes plus
// file parts referencing local files.
type FormBody struct {
	Attrs []FormAttr
	Files []FormFile
}

func (FormBody) isBody() {}

// FormAttr is one scalar form field.
type FormAttr struct {
	Key   string
	Value string
}

// FormFile is one file part. The transport opens Path when sending and
// detects the part's MIME type from the file.
type FormFile struct {
	Key  string
	Path string
}

// Attr appends a scalar attribute, skipping empty values.
func (f *FormBody) Attr(key, value string) {
	if value == "" {
		return
	}
	f.Attrs = append(f.Attrs, FormAttr{Key: key, Value: value})
}

// List appends a comma-joined list attribute, skipping empty lists.
func (f *FormBody) List(key string, values []string) {
	if len(values) == 0 {
		return
	}
	f.Attrs = append(f.Attrs, FormAttr{Key: key, Value: strings.Join(values, ",")})
}

// File appends a file part, skipping empty paths.
func (f *FormBody) File(key, path string) {
	if path == "" {
		return
	}
	f.Files = append(f.Files, FormFile{Key: key, Path: path})
}
