package serialization_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-clientruntime/pkg/enums"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

const helperContentType = "application/x-helpers-test"

func registerDefaultStub(t *testing.T, node serialization.ParseNode) {
	t.Helper()
	serialization.DefaultParseNodeFactoryRegistry().MustRegister(
		helperContentType,
		&stubFactory{contentType: helperContentType, node: node},
	)
}

func TestDeserializeModel_DefaultFactory(t *testing.T) {
	registerDefaultStub(t, &stubNode{value: map[string]any{"id": "123"}})

	entity, err := serialization.DeserializeModelString[testEntity](helperContentType, `{"id":"123"}`)
	if err != nil {
		t.Fatalf("deserialize model: %v", err)
	}
	if entity.ID == nil || *entity.ID != "123" {
		t.Fatalf("expected id 123, got %+v", entity)
	}

	entity, err = serialization.DeserializeModel[testEntity](helperContentType, strings.NewReader(`{"id":"123"}`))
	if err != nil || entity.ID == nil || *entity.ID != "123" {
		t.Fatalf("reader overload: %+v, %v", entity, err)
	}
}

func TestDeserializeModelCollection_DefaultFactory(t *testing.T) {
	registerDefaultStub(t, &stubNode{value: []any{map[string]any{"id": "123"}}})

	entities, err := serialization.DeserializeModelCollectionString[testEntity](helperContentType, `[{"id":"123"}]`)
	if err != nil {
		t.Fatalf("deserialize collection: %v", err)
	}
	if len(entities) != 1 || entities[0].ID == nil || *entities[0].ID != "123" {
		t.Fatalf("unexpected result %+v", entities)
	}

	entities, err = serialization.DeserializeModelCollection[testEntity](helperContentType, strings.NewReader(`[{"id":"123"}]`))
	if err != nil || len(entities) != 1 {
		t.Fatalf("reader overload: %+v, %v", entities, err)
	}
}

func TestDeserialize_ExplicitFactoryMatchesDefault(t *testing.T) {
	registerDefaultStub(t, &stubNode{value: map[string]any{"id": "7"}})

	explicit, err := serialization.DeserializeString[*testEntity](helperContentType, `{"id":"7"}`, testEntityFactory)
	if err != nil {
		t.Fatalf("explicit: %v", err)
	}
	implicit, err := serialization.DeserializeModelString[testEntity](helperContentType, `{"id":"7"}`)
	if err != nil {
		t.Fatalf("implicit: %v", err)
	}
	if *explicit.ID != *implicit.ID {
		t.Fatalf("explicit %q and default %q differ", *explicit.ID, *implicit.ID)
	}
}

type animal struct {
	Kind *string
}

func (a *animal) FieldDeserializers() map[string]serialization.FieldDeserializer {
	return map[string]serialization.FieldDeserializer{
		"kind": func(node serialization.ParseNode) error {
			value, err := node.StringValue()
			a.Kind = value
			return err
		},
	}
}

func (a *animal) CreateFromDiscriminatorValue(node serialization.ParseNode) (serialization.Parsable, error) {
	kind, err := node.ChildNode("kind")
	if err != nil || kind == nil {
		return a, err
	}
	value, err := kind.StringValue()
	if err != nil {
		return nil, err
	}
	if value != nil && *value == "dog" {
		return &dog{}, nil
	}
	return a, nil
}

type dog struct {
	animal
}

func TestFactoryFor_Discriminated(t *testing.T) {
	factory := serialization.FactoryFor[animal]()

	model, err := factory(&stubNode{value: map[string]any{"kind": "dog"}})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if _, ok := model.(*dog); !ok {
		t.Fatalf("expected *dog, got %T", model)
	}

	model, err = factory(&stubNode{value: map[string]any{"kind": "cat"}})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if _, ok := model.(*animal); !ok {
		t.Fatalf("expected *animal, got %T", model)
	}
}

type color int

var colorDescriptor = enums.MustNewDescriptor("Color", []enums.Member{
	{Name: "Red", Value: 0},
	{Name: "Green", Value: 1, Aliases: []string{"green"}},
})

func (color) EnumDescriptor() *enums.Descriptor { return colorDescriptor }

func TestEnumValue(t *testing.T) {
	got, err := serialization.EnumValue[color](&stubNode{value: "green"})
	if err != nil {
		t.Fatalf("enum value: %v", err)
	}
	if got == nil || *got != 1 {
		t.Fatalf("expected Green, got %v", got)
	}

	got, err = serialization.EnumValue[color](&stubNode{value: "Blue"})
	if err != nil || got != nil {
		t.Fatalf("expected absent enum, got %v (%v)", got, err)
	}

	got, err = serialization.EnumValue[color](nil)
	if err != nil || got != nil {
		t.Fatalf("nil node should be absent, got %v (%v)", got, err)
	}
}
