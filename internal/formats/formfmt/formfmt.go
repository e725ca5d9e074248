// Package formfmt parses application/x-www-form-urlencoded bodies.
package formfmt

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/goliatone/go-clientruntime/internal/formats"
	"github.com/goliatone/go-clientruntime/internal/parsenode"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

// ContentType is the media type handled by this package.
const ContentType = "application/x-www-form-urlencoded"

// ParseNodeFactory exposes form fields as an object node. Repeated keys
// become arrays; every scalar is text and parsed on demand.
type ParseNodeFactory struct{}

var _ serialization.ParseNodeFactory = (*ParseNodeFactory)(nil)

// NewParseNodeFactory returns a form factory. Scalars are coerced from text.
func NewParseNodeFactory() *ParseNodeFactory {
	return &ParseNodeFactory{}
}

func (f *ParseNodeFactory) ValidContentType() string {
	return ContentType
}

func (f *ParseNodeFactory) RootParseNode(_ string, content io.Reader) (serialization.ParseNode, error) {
	node, err := f.Parse(content)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// Parse decodes content into an object node.
func (f *ParseNodeFactory) Parse(content io.Reader) (*parsenode.Node, error) {
	data, err := formats.ReadPayload("formfmt", content)
	if err != nil {
		return nil, err
	}
	values, err := url.ParseQuery(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("formfmt: %w", err)
	}

	object := make(map[string]any, len(values))
	for key, entries := range values {
		switch len(entries) {
		case 0:
			object[key] = nil
		case 1:
			object[key] = entries[0]
		default:
			items := make([]any, len(entries))
			for i, entry := range entries {
				items[i] = entry
			}
			object[key] = items
		}
	}
	return parsenode.New(object, parsenode.WithStringCoercion()), nil
}
