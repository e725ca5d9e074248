package serialization

import (
	"io"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// ParseNodeFactoryRegistry stores parse node factories by content type. Keys
// are case-sensitive; the most recent registration for a key wins. It is safe
// for concurrent use.
type ParseNodeFactoryRegistry struct {
	mu        sync.RWMutex
	factories map[string]ParseNodeFactory
	logger    zerolog.Logger
}

// RegistryOption configures a registry.
type RegistryOption func(*ParseNodeFactoryRegistry)

// WithRegistryLogger routes registration events to logger.
func WithRegistryLogger(logger zerolog.Logger) RegistryOption {
	return func(r *ParseNodeFactoryRegistry) {
		r.logger = logger
	}
}

var defaultRegistry = NewParseNodeFactoryRegistry()

// DefaultParseNodeFactoryRegistry returns the process-wide registry. It starts
// empty and is never reset.
func DefaultParseNodeFactoryRegistry() *ParseNodeFactoryRegistry {
	return defaultRegistry
}

// NewParseNodeFactoryRegistry creates an empty registry.
func NewParseNodeFactoryRegistry(opts ...RegistryOption) *ParseNodeFactoryRegistry {
	r := &ParseNodeFactoryRegistry{
		factories: make(map[string]ParseNodeFactory),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Register binds factory to contentType, replacing any previous binding.
// Registering the same factory twice is a no-op.
func (r *ParseNodeFactoryRegistry) Register(contentType string, factory ParseNodeFactory) error {
	if strings.TrimSpace(contentType) == "" {
		return &ArgumentError{Name: "contentType", Reason: "is required"}
	}
	if isNilFactory(factory) {
		return &ArgumentError{Name: "factory", Reason: "is required"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if previous, exists := r.factories[contentType]; exists {
		if sameFactory(previous, factory) {
			return nil
		}
		r.logger.Debug().
			Str("content_type", contentType).
			Str("previous", factoryName(previous)).
			Str("factory", factoryName(factory)).
			Msg("replacing parse node factory")
	} else {
		r.logger.Debug().
			Str("content_type", contentType).
			Str("factory", factoryName(factory)).
			Msg("registered parse node factory")
	}
	r.factories[contentType] = factory
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *ParseNodeFactoryRegistry) MustRegister(contentType string, factory ParseNodeFactory) {
	if err := r.Register(contentType, factory); err != nil {
		panic(err)
	}
}

// RegisterFactory registers factory under its ValidContentType.
func (r *ParseNodeFactoryRegistry) RegisterFactory(factory ParseNodeFactory) error {
	if isNilFactory(factory) {
		return &ArgumentError{Name: "factory", Reason: "is required"}
	}
	return r.Register(factory.ValidContentType(), factory)
}

// Lookup returns the factory registered under the exact key contentType.
func (r *ParseNodeFactoryRegistry) Lookup(contentType string) (ParseNodeFactory, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[contentType]
	return factory, ok
}

// Resolve finds the factory for a content type as it appears on the wire. An
// exact key match wins; otherwise the normalized media type is tried.
func (r *ParseNodeFactoryRegistry) Resolve(contentType string) (ParseNodeFactory, error) {
	if strings.TrimSpace(contentType) == "" {
		return nil, &ArgumentError{Name: "contentType", Reason: "is required"}
	}
	if factory, ok := r.Lookup(contentType); ok {
		return factory, nil
	}
	if normalized := NormalizeContentType(contentType); normalized != contentType {
		if factory, ok := r.Lookup(normalized); ok {
			return factory, nil
		}
	}
	return nil, &ContentTypeError{ContentType: contentType}
}

// RootParseNode resolves the factory for contentType and delegates to it.
func (r *ParseNodeFactoryRegistry) RootParseNode(contentType string, content io.Reader) (ParseNode, error) {
	factory, err := r.Resolve(contentType)
	if err != nil {
		return nil, err
	}
	return factory.RootParseNode(contentType, content)
}

// ContentTypes returns the sorted registered keys.
func (r *ParseNodeFactoryRegistry) ContentTypes() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.factories))
	for key := range r.factories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether contentType is registered under its exact key.
func (r *ParseNodeFactoryRegistry) Has(contentType string) bool {
	_, ok := r.Lookup(contentType)
	return ok
}

func isNilFactory(factory ParseNodeFactory) bool {
	if factory == nil {
		return true
	}
	value := reflect.ValueOf(factory)
	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		return value.IsNil()
	default:
		return false
	}
}

// sameFactory compares factories without panicking on uncomparable types.
func sameFactory(a, b ParseNodeFactory) bool {
	typ := reflect.TypeOf(a)
	if typ != reflect.TypeOf(b) || !typ.Comparable() {
		return false
	}
	return a == b
}

func factoryName(factory ParseNodeFactory) string {
	return reflect.TypeOf(factory).String()
}
