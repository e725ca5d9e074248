// Package protofmt parses application/x-protobuf payloads carrying an encoded
// google.protobuf.Value, the dynamic message used for schemaless JSON-like
// data.
package protofmt

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/goliatone/go-clientruntime/internal/formats"
	"github.com/goliatone/go-clientruntime/internal/parsenode"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

// ContentType is the media type handled by this package.
const ContentType = "application/x-protobuf"

// ParseNodeFactory builds parse nodes from google.protobuf.Value messages.
// Numbers arrive as float64, as in JSON.
type ParseNodeFactory struct {
	opts []parsenode.Option
}

var _ serialization.ParseNodeFactory = (*ParseNodeFactory)(nil)

// NewParseNodeFactory returns a protobuf factory applying opts to every node.
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
	data, err := formats.ReadPayload("protofmt", content)
	if err != nil {
		return nil, err
	}
	var msg structpb.Value
	if err := proto.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("protofmt: %w", err)
	}
	return parsenode.New(msg.AsInterface(), f.opts...), nil
}
