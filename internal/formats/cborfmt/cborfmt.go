// Package cborfmt parses application/cbor payloads with fxamacker/cbor.
package cborfmt

import (
	"fmt"
	"io"
	"reflect"

	cbor "github.com/fxamacker/cbor/v2"

	"github.com/goliatone/go-clientruntime/internal/formats"
	"github.com/goliatone/go-clientruntime/internal/parsenode"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

// ContentType is the media type handled by this package.
const ContentType = "application/cbor"

// ParseNodeFactory builds parse nodes from a single CBOR data item.
type ParseNodeFactory struct {
	dec  cbor.DecMode
	opts []parsenode.Option
}

var _ serialization.ParseNodeFactory = (*ParseNodeFactory)(nil)

// NewParseNodeFactory returns a CBOR factory. Maps decode with string keys and
// CBOR timestamps (tag 0 and 1) decode to time.Time.
func NewParseNodeFactory(opts ...parsenode.Option) (*ParseNodeFactory, error) {
	dec, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		TimeTag:        cbor.DecTagOptional,
	}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("cborfmt: decode mode: %w", err)
	}
	return &ParseNodeFactory{dec: dec, opts: opts}, nil
}

// MustNewParseNodeFactory panics when the decoder cannot be configured.
func MustNewParseNodeFactory(opts ...parsenode.Option) *ParseNodeFactory {
	f, err := NewParseNodeFactory(opts...)
	if err != nil {
		panic(err)
	}
	return f
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
	data, err := formats.ReadPayload("cborfmt", content)
	if err != nil {
		return nil, err
	}
	var value any
	if err := f.dec.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("cborfmt: %w", err)
	}
	return parsenode.New(value, f.opts...), nil
}
