package serialization

import (
	"io"
	"time"

	"github.com/goliatone/go-clientruntime/pkg/enums"
)

// Parsable is implemented by generated models.
type Parsable interface {
	// FieldDeserializers maps wire field names to setters on the receiver.
	FieldDeserializers() map[string]FieldDeserializer
}

// FieldDeserializer reads one field from node into its model.
type FieldDeserializer func(node ParseNode) error

// ParsableFactory builds an empty model for node. Discriminated models may
// inspect node to pick a concrete type.
type ParsableFactory func(node ParseNode) (Parsable, error)

// AdditionalDataHolder receives fields that have no deserializer.
type AdditionalDataHolder interface {
	AdditionalData() map[string]any
	SetAdditionalData(data map[string]any)
}

// Discriminated is implemented by models whose concrete type depends on the
// payload. It is called on a freshly allocated zero model.
type Discriminated interface {
	CreateFromDiscriminatorValue(node ParseNode) (Parsable, error)
}

// ParseNode is one position in a parsed payload tree. Absent values are
// reported as nil results, not errors.
type ParseNode interface {
	ChildNode(name string) (ParseNode, error)
	StringValue() (*string, error)
	BoolValue() (*bool, error)
	Int64Value() (*int64, error)
	Float64Value() (*float64, error)
	TimeValue() (*time.Time, error)
	EnumValue(descriptor *enums.Descriptor) (*enums.Value, error)
	CollectionOfStringValues() ([]string, error)
	ObjectValue(factory ParsableFactory) (Parsable, error)
	CollectionOfObjectValues(factory ParsableFactory) ([]Parsable, error)
	RawValue() (any, error)
}

// ParseNodeFactory turns a payload into a root ParseNode for one content type.
type ParseNodeFactory interface {
	ValidContentType() string
	RootParseNode(contentType string, content io.Reader) (ParseNode, error)
}

// RootParseNodeFunc adapts a function to the RootParseNode signature.
type RootParseNodeFunc func(contentType string, content io.Reader) (ParseNode, error)

type funcFactory struct {
	contentType string
	fn          RootParseNodeFunc
}

// NewParseNodeFactory wraps fn as a factory for contentType.
func NewParseNodeFactory(contentType string, fn RootParseNodeFunc) ParseNodeFactory {
	return &funcFactory{contentType: contentType, fn: fn}
}

func (f *funcFactory) ValidContentType() string {
	return f.contentType
}

func (f *funcFactory) RootParseNode(contentType string, content io.Reader) (ParseNode, error) {
	return f.fn(contentType, content)
}

// EnumValue reads node as the typed enumeration T. Unknown tokens yield nil.
func EnumValue[T enums.Enum](node ParseNode) (*T, error) {
	if node == nil {
		return nil, nil
	}
	var zero T
	value, err := node.EnumValue(zero.EnumDescriptor())
	if err != nil || value == nil {
		return nil, err
	}
	out := T(value.Int64())
	return &out, nil
}
