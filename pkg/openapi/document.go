package openapi

import (
	"bytes"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source identifies where an OpenAPI document originated so loaders can read
// files, fs.FS entries or URLs through one interface.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Document wraps the raw OpenAPI payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document, rejecting a missing source or an empty
// payload.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// IsEmpty reports whether the document carries no payload.
func (d Document) IsEmpty() bool {
	return len(d.raw) == 0
}

// Detect reports whether raw looks like an OpenAPI or Swagger document. JSON
// is a subset of YAML, so one decoder covers both encodings.
func Detect(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	var header struct {
		OpenAPI string `yaml:"openapi"`
		Swagger string `yaml:"swagger"`
	}
	if err := yaml.Unmarshal(trimmed, &header); err == nil {
		return header.OpenAPI != "" || header.Swagger != ""
	}
	lower := strings.ToLower(string(trimmed))
	return strings.Contains(lower, "openapi:") || strings.Contains(lower, "swagger:")
}
