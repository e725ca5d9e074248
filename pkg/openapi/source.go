package openapi

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// location is the Source implementation shared by every kind.
type location struct {
	kind SourceKind
	ref  string
}

func (l location) Kind() SourceKind { return l.kind }

func (l location) Location() string { return l.ref }

// String renders the source as "kind:location" for logs and errors.
func (l location) String() string {
	return string(l.kind) + ":" + l.ref
}

// SourceFromFile points at a local file. The path is cleaned.
func SourceFromFile(p string) Source {
	return location{kind: SourceKindFile, ref: filepath.Clean(p)}
}

// SourceFromFS points at an entry of the loader's fs.FS. fs.FS names are
// slash separated and unrooted, so a leading slash is dropped.
func SourceFromFS(name string) Source {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	return location{kind: SourceKindFS, ref: name}
}

// ParseURLSource validates raw as an http or https URL.
func ParseURLSource(raw string) (Source, error) {
	if raw == "" {
		return nil, fmt.Errorf("openapi: empty URL source")
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: invalid URL %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("openapi: unsupported URL scheme %q", parsed.Scheme)
	}
	return location{kind: SourceKindURL, ref: raw}, nil
}

// SourceFromURL is ParseURLSource that panics on invalid input, for
// configuration known at compile time.
func SourceFromURL(raw string) Source {
	src, err := ParseURLSource(raw)
	if err != nil {
		panic(err)
	}
	return src
}

// SourceFromLocation picks the source kind from the shape of location: http
// and https URLs become URL sources, anything else a file.
func SourceFromLocation(location string) Source {
	if src, err := ParseURLSource(location); err == nil {
		return src
	}
	return SourceFromFile(location)
}
