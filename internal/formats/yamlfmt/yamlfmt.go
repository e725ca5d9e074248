// Package yamlfmt parses YAML payloads with gopkg.in/yaml.v3.
package yamlfmt

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-clientruntime/internal/formats"
	"github.com/goliatone/go-clientruntime/internal/parsenode"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

// ContentType is the media type handled by this package.
const ContentType = "application/yaml"

// Aliases lists media types commonly used for YAML in the wild.
var Aliases = []string{"application/x-yaml", "text/yaml", "text/x-yaml"}

// ParseNodeFactory builds parse nodes from YAML documents. Only the first
// document of a stream is read.
type ParseNodeFactory struct {
	opts []parsenode.Option
}

var _ serialization.ParseNodeFactory = (*ParseNodeFactory)(nil)

// NewParseNodeFactory returns a YAML factory applying opts to every node.
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
	data, err := formats.ReadPayload("yamlfmt", content)
	if err != nil {
		return nil, err
	}
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("yamlfmt: %w", err)
	}
	return parsenode.New(value, f.opts...), nil
}
