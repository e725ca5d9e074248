package clientruntime

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-clientruntime/internal/formats/cborfmt"
	"github.com/goliatone/go-clientruntime/internal/formats/formfmt"
	"github.com/goliatone/go-clientruntime/internal/formats/jsonfmt"
	"github.com/goliatone/go-clientruntime/internal/formats/protofmt"
	"github.com/goliatone/go-clientruntime/internal/formats/textfmt"
	"github.com/goliatone/go-clientruntime/internal/formats/tomlfmt"
	"github.com/goliatone/go-clientruntime/internal/formats/yamlfmt"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

// Format names accepted by RegisterDefaultFormats.
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatTOML     = "toml"
	FormatText     = "text"
	FormatHTML     = "html"
	FormatForm     = "form"
	FormatCBOR     = "cbor"
	FormatProtobuf = "protobuf"
)

type formatEntry struct {
	factory func() serialization.ParseNodeFactory
	aliases []string
}

var builtinFormats = map[string]formatEntry{
	FormatJSON:     {factory: NewJSONParseNodeFactory},
	FormatYAML:     {factory: NewYAMLParseNodeFactory, aliases: yamlfmt.Aliases},
	FormatTOML:     {factory: NewTOMLParseNodeFactory},
	FormatText:     {factory: NewTextParseNodeFactory},
	FormatHTML:     {factory: NewHTMLParseNodeFactory},
	FormatForm:     {factory: NewFormParseNodeFactory},
	FormatCBOR:     {factory: NewCBORParseNodeFactory},
	FormatProtobuf: {factory: NewProtobufParseNodeFactory},
}

// FormatNames lists the built-in format names in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(builtinFormats))
	for name := range builtinFormats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterDefaultFormats registers the named built-in formats on registry.
// With no names every built-in format is registered. A nil registry targets
// the process-wide default.
func RegisterDefaultFormats(registry *serialization.ParseNodeFactoryRegistry, names ...string) error {
	if registry == nil {
		registry = serialization.DefaultParseNodeFactoryRegistry()
	}
	if len(names) == 0 {
		names = FormatNames()
	}
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		entry, ok := builtinFormats[name]
		if !ok {
			return fmt.Errorf("clientruntime: unknown format %q (known: %s)", raw, strings.Join(FormatNames(), ", "))
		}
		factory := entry.factory()
		if err := registry.RegisterFactory(factory); err != nil {
			return err
		}
		for _, alias := range entry.aliases {
			if err := registry.Register(alias, factory); err != nil {
				return err
			}
		}
	}
	return nil
}

// NewJSONParseNodeFactory parses application/json bodies with ojg.
func NewJSONParseNodeFactory() serialization.ParseNodeFactory {
	return jsonfmt.NewParseNodeFactory()
}

// NewYAMLParseNodeFactory parses application/yaml bodies.
func NewYAMLParseNodeFactory() serialization.ParseNodeFactory {
	return yamlfmt.NewParseNodeFactory()
}

// NewTOMLParseNodeFactory parses application/toml documents.
func NewTOMLParseNodeFactory() serialization.ParseNodeFactory {
	return tomlfmt.NewParseNodeFactory()
}

// NewTextParseNodeFactory parses text/plain bodies into a single scalar node.
func NewTextParseNodeFactory() serialization.ParseNodeFactory {
	return textfmt.NewPlainParseNodeFactory()
}

// NewHTMLParseNodeFactory strips markup from text/html bodies and exposes the
// remaining text as a scalar node.
func NewHTMLParseNodeFactory() serialization.ParseNodeFactory {
	return textfmt.NewHTMLParseNodeFactory()
}

// NewFormParseNodeFactory parses application/x-www-form-urlencoded bodies.
func NewFormParseNodeFactory() serialization.ParseNodeFactory {
	return formfmt.NewParseNodeFactory()
}

// NewCBORParseNodeFactory parses application/cbor payloads.
func NewCBORParseNodeFactory() serialization.ParseNodeFactory {
	return cborfmt.MustNewParseNodeFactory()
}

// NewProtobufParseNodeFactory parses encoded google.protobuf.Value messages.
func NewProtobufParseNodeFactory() serialization.ParseNodeFactory {
	return protofmt.NewParseNodeFactory()
}
