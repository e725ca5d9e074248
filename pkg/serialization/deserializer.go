package serialization

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Deserializer dispatches payloads to the parse node factory registered for
// their content type. It holds no state besides its registry and logger.
type Deserializer struct {
	registry *ParseNodeFactoryRegistry
	logger   zerolog.Logger
}

// Option configures a Deserializer.
type Option func(*Deserializer)

// WithRegistry binds the deserializer to registry instead of the default one.
func WithRegistry(registry *ParseNodeFactoryRegistry) Option {
	return func(d *Deserializer) {
		if registry != nil {
			d.registry = registry
		}
	}
}

// WithLogger sets the logger used for dispatch events.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Deserializer) {
		d.logger = logger
	}
}

// NewDeserializer constructs a Deserializer. Without WithRegistry it consults
// DefaultParseNodeFactoryRegistry.
func NewDeserializer(opts ...Option) *Deserializer {
	d := &Deserializer{
		registry: defaultRegistry,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

var defaultDeserializer = NewDeserializer()

// Default returns the Deserializer bound to the default registry.
func Default() *Deserializer {
	return defaultDeserializer
}

// Registry exposes the registry the deserializer consults.
func (d *Deserializer) Registry() *ParseNodeFactoryRegistry {
	return d.registry
}

// Deserialize parses one object from content.
func (d *Deserializer) Deserialize(contentType string, content io.Reader, factory ParsableFactory) (Parsable, error) {
	if err := checkReaderArguments(contentType, content, factory); err != nil {
		return nil, err
	}
	node, err := d.rootNode(contentType, content, "object")
	if err != nil {
		return nil, err
	}
	return node.ObjectValue(factory)
}

// DeserializeString parses one object from a non-empty string payload.
func (d *Deserializer) DeserializeString(contentType, content string, factory ParsableFactory) (Parsable, error) {
	if err := checkStringArguments(contentType, content, factory); err != nil {
		return nil, err
	}
	node, err := d.rootNode(contentType, strings.NewReader(content), "object")
	if err != nil {
		return nil, err
	}
	return node.ObjectValue(factory)
}

// DeserializeCollection parses an ordered collection of objects from content.
func (d *Deserializer) DeserializeCollection(contentType string, content io.Reader, factory ParsableFactory) ([]Parsable, error) {
	if err := checkReaderArguments(contentType, content, factory); err != nil {
		return nil, err
	}
	node, err := d.rootNode(contentType, content, "collection")
	if err != nil {
		return nil, err
	}
	return node.CollectionOfObjectValues(factory)
}

// DeserializeCollectionString parses an ordered collection of objects from a
// non-empty string payload.
func (d *Deserializer) DeserializeCollectionString(contentType, content string, factory ParsableFactory) ([]Parsable, error) {
	if err := checkStringArguments(contentType, content, factory); err != nil {
		return nil, err
	}
	node, err := d.rootNode(contentType, strings.NewReader(content), "collection")
	if err != nil {
		return nil, err
	}
	return node.CollectionOfObjectValues(factory)
}

func (d *Deserializer) rootNode(contentType string, content io.Reader, mode string) (ParseNode, error) {
	factory, err := d.registry.Resolve(contentType)
	if err != nil {
		d.logger.Debug().Str("content_type", contentType).Err(err).Msg("content type not resolved")
		return nil, err
	}
	d.logger.Debug().
		Str("content_type", contentType).
		Str("factory", factory.ValidContentType()).
		Str("mode", mode).
		Msg("dispatching payload")

	node, err := factory.RootParseNode(contentType, content)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("serialization: factory for %q returned no parse node", contentType)
	}
	return node, nil
}

func checkReaderArguments(contentType string, content io.Reader, factory ParsableFactory) error {
	if strings.TrimSpace(contentType) == "" {
		return &ArgumentError{Name: "contentType", Reason: "is required"}
	}
	if content == nil {
		return &ArgumentError{Name: "content", Reason: "is required"}
	}
	if factory == nil {
		return &ArgumentError{Name: "factory", Reason: "is required"}
	}
	return nil
}

func checkStringArguments(contentType, content string, factory ParsableFactory) error {
	if strings.TrimSpace(contentType) == "" {
		return &ArgumentError{Name: "contentType", Reason: "is required"}
	}
	if content == "" {
		return &ArgumentError{Name: "content", Reason: "must not be empty"}
	}
	if factory == nil {
		return &ArgumentError{Name: "factory", Reason: "is required"}
	}
	return nil
}
