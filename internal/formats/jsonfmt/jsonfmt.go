// Package jsonfmt parses application/json payloads with ojg.
package jsonfmt

import (
	"fmt"
	"io"

	"github.com/ohler55/ojg/oj"

	"github.com/goliatone/go-clientruntime/internal/formats"
	"github.com/goliatone/go-clientruntime/internal/parsenode"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

// ContentType is the media type handled by this package.
const ContentType = "application/json"

// ParseNodeFactory builds parse nodes from JSON documents.
type ParseNodeFactory struct {
	opts []parsenode.Option
}

var _ serialization.ParseNodeFactory = (*ParseNodeFactory)(nil)

// NewParseNodeFactory returns a JSON factory. Node options apply to every
// root node it produces.
func NewParseNodeFactory(opts ...parsenode.Option) *ParseNodeFactory {
	return &ParseNodeFactory{opts: opts}
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

// Parse decodes content into a node tree.
func (f *ParseNodeFactory) Parse(content io.Reader) (*parsenode.Node, error) {
	data, err := formats.ReadPayload("jsonfmt", content)
	if err != nil {
		return nil, err
	}
	value, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("jsonfmt: %w", err)
	}
	return parsenode.New(value, f.opts...), nil
}
