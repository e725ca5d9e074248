package serialization_test

import (
	"io"
	"time"

	"github.com/goliatone/go-clientruntime/pkg/enums"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

// stubNode serves a fixed tree of strings, maps and slices.
type stubNode struct {
	value any
}

func (n *stubNode) ChildNode(name string) (serialization.ParseNode, error) {
	object, ok := n.value.(map[string]any)
	if !ok {
		return nil, nil
	}
	child, ok := object[name]
	if !ok {
		return nil, nil
	}
	return &stubNode{value: child}, nil
}

func (n *stubNode) StringValue() (*string, error) {
	s, ok := n.value.(string)
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (n *stubNode) BoolValue() (*bool, error)       { return nil, nil }
func (n *stubNode) Int64Value() (*int64, error)     { return nil, nil }
func (n *stubNode) Float64Value() (*float64, error) { return nil, nil }
func (n *stubNode) TimeValue() (*time.Time, error)  { return nil, nil }

func (n *stubNode) EnumValue(descriptor *enums.Descriptor) (*enums.Value, error) {
	s, ok := n.value.(string)
	if !ok {
		return nil, nil
	}
	value, ok := descriptor.Parse(s)
	if !ok {
		return nil, nil
	}
	return &value, nil
}

func (n *stubNode) CollectionOfStringValues() ([]string, error) { return nil, nil }

func (n *stubNode) ObjectValue(factory serialization.ParsableFactory) (serialization.Parsable, error) {
	model, err := factory(n)
	if err != nil {
		return nil, err
	}
	object, _ := n.value.(map[string]any)
	fields := model.FieldDeserializers()
	for key, raw := range object {
		if fn, ok := fields[key]; ok {
			if err := fn(&stubNode{value: raw}); err != nil {
				return nil, err
			}
		}
	}
	return model, nil
}

func (n *stubNode) CollectionOfObjectValues(factory serialization.ParsableFactory) ([]serialization.Parsable, error) {
	items, _ := n.value.([]any)
	out := make([]serialization.Parsable, 0, len(items))
	for _, item := range items {
		model, err := (&stubNode{value: item}).ObjectValue(factory)
		if err != nil {
			return nil, err
		}
		out = append(out, model)
	}
	return out, nil
}

func (n *stubNode) RawValue() (any, error) { return n.value, nil }

// stubFactory hands out a fixed node and counts calls.
type stubFactory struct {
	contentType string
	node        serialization.ParseNode
	err         error
	calls       int
}

func (f *stubFactory) ValidContentType() string { return f.contentType }

func (f *stubFactory) RootParseNode(string, io.Reader) (serialization.ParseNode, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.node, nil
}

// spyReader records whether the payload was touched.
type spyReader struct {
	reads int
}

func (r *spyReader) Read([]byte) (int, error) {
	r.reads++
	return 0, io.EOF
}

type testEntity struct {
	ID *string
}

func (e *testEntity) FieldDeserializers() map[string]serialization.FieldDeserializer {
	return map[string]serialization.FieldDeserializer{
		"id": func(node serialization.ParseNode) error {
			value, err := node.StringValue()
			if err != nil {
				return err
			}
			e.ID = value
			return nil
		},
	}
}

type otherEntity struct{}

func (*otherEntity) FieldDeserializers() map[string]serialization.FieldDeserializer { return nil }

func testEntityFactory(serialization.ParseNode) (serialization.Parsable, error) {
	return &testEntity{}, nil
}
