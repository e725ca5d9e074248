// Package tomlfmt parses application/toml payloads with BurntSushi/toml.
package tomlfmt

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/goliatone/go-clientruntime/internal/formats"
	"github.com/goliatone/go-clientruntime/internal/parsenode"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

// ContentType is the media type handled by this package.
const ContentType = "application/toml"

// ParseNodeFactory builds parse nodes from TOML documents. A TOML document is
// always a table, so collections must live under a key and be reached with
// ChildNode or Select.
type ParseNodeFactory struct {
	opts []parsenode.Option
}

var _ serialization.ParseNodeFactory = (*ParseNodeFactory)(nil)

// NewParseNodeFactory returns a TOML factory applying opts to every node.
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
	data, err := formats.ReadPayload("tomlfmt", content)
	if err != nil {
		return nil, err
	}
	value := make(map[string]any)
	if _, err := toml.Decode(string(data), &value); err != nil {
		return nil, fmt.Errorf("tomlfmt: %w", err)
	}
	return parsenode.New(value, f.opts...), nil
}
