// Package textfmt exposes text/plain and text/html payloads as scalar parse
// nodes. Scalar accessors parse the text on demand.
package textfmt

import (
	"html"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-clientruntime/internal/parsenode"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

const (
	PlainContentType = "text/plain"
	HTMLContentType  = "text/html"
)

// ParseNodeFactory turns a text body into a single string node.
type ParseNodeFactory struct {
	contentType string
	transform   func(string) string
}

var _ serialization.ParseNodeFactory = (*ParseNodeFactory)(nil)

// NewPlainParseNodeFactory keeps the body verbatim apart from surrounding
// whitespace.
func NewPlainParseNodeFactory() *ParseNodeFactory {
	return &ParseNodeFactory{contentType: PlainContentType, transform: strings.TrimSpace}
}

// NewHTMLParseNodeFactory strips markup with a strict sanitizer policy and
// keeps the text content.
func NewHTMLParseNodeFactory() *ParseNodeFactory {
	policy := bluemonday.StrictPolicy()
	return &ParseNodeFactory{
		contentType: HTMLContentType,
		transform: func(body string) string {
			return strings.TrimSpace(html.UnescapeString(policy.Sanitize(body)))
		},
	}
}

func (f *ParseNodeFactory) ValidContentType() string {
	return f.contentType
}

func (f *ParseNodeFactory) RootParseNode(_ string, content io.Reader) (serialization.ParseNode, error) {
	node, err := f.Parse(content)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// Parse reads content into a string node. An empty body yields a null node.
func (f *ParseNodeFactory) Parse(content io.Reader) (*parsenode.Node, error) {
	if content == nil {
		return nil, &serialization.ArgumentError{Name: "content", Reason: "is required"}
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	text := f.transform(string(data))
	if text == "" {
		return parsenode.New(nil, parsenode.WithStringCoercion()), nil
	}
	return parsenode.New(text, parsenode.WithStringCoercion()), nil
}
