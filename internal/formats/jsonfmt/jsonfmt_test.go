package jsonfmt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-clientruntime/pkg/serialization"
	"github.com/goliatone/go-clientruntime/pkg/testsupport"
)

const entityJSON = `{
  "id": "123",
  "name": "widget",
  "count": 4,
  "score": 0.75,
  "enabled": true,
  "status": "inactive",
  "created": "2024-02-03T04:05:06Z",
  "tags": ["a", "b"],
  "children": [{"id": "c1"}, {"id": "c2", "status": "Archived"}],
  "unknown": {"nested": [1, 2]}
}`

func TestParseNodeFactory_Object(t *testing.T) {
	node, err := NewParseNodeFactory().RootParseNode(ContentType, strings.NewReader(entityJSON))
	if err != nil {
		t.Fatalf("RootParseNode: %v", err)
	}

	entity, err := serialization.Cast[*testsupport.Entity](node.ObjectValue(testsupport.NewEntity))
	if err != nil {
		t.Fatalf("ObjectValue: %v", err)
	}

	if *entity.ID != "123" || *entity.Name != "widget" || *entity.Count != 4 || *entity.Score != 0.75 || !*entity.Enabled {
		t.Fatalf("unexpected scalars: %+v", entity)
	}
	if *entity.Status != testsupport.Status(1) {
		t.Fatalf("expected inactive status, got %v", *entity.Status)
	}
	if !entity.Created.Equal(time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)) {
		t.Fatalf("unexpected created time %v", entity.Created)
	}
	if diff := cmp.Diff([]string{"a", "b"}, entity.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if len(entity.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(entity.Children))
	}
	if *entity.Children[1].ID != "c2" || *entity.Children[1].Status != testsupport.Status(2) {
		t.Fatalf("unexpected second child %+v", entity.Children[1])
	}
	want := map[string]any{"nested": []any{int64(1), int64(2)}}
	if diff := cmp.Diff(want, entity.AdditionalData()["unknown"]); diff != "" {
		t.Fatalf("additional data mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNodeFactory_ThroughDeserializer(t *testing.T) {
	registry := serialization.NewParseNodeFactoryRegistry()
	if err := registry.RegisterFactory(NewParseNodeFactory()); err != nil {
		t.Fatalf("RegisterFactory: %v", err)
	}
	d := serialization.NewDeserializer(serialization.WithRegistry(registry))

	one, err := serialization.Cast[*testsupport.Entity](d.DeserializeString(ContentType, `{"id":"123"}`, testsupport.NewEntity))
	if err != nil {
		t.Fatalf("DeserializeString: %v", err)
	}
	if *one.ID != "123" {
		t.Fatalf("ID = %q", *one.ID)
	}

	many, err := serialization.CastCollection[*testsupport.Entity](
		d.DeserializeCollectionString("application/json; charset=utf-8", `[{"id":"123"}]`, testsupport.NewEntity),
	)
	if err != nil {
		t.Fatalf("DeserializeCollectionString: %v", err)
	}
	if len(many) != 1 || *many[0].ID != "123" {
		t.Fatalf("unexpected collection %+v", many)
	}
}

func TestParseNodeFactory_Errors(t *testing.T) {
	f := NewParseNodeFactory()

	if _, err := f.RootParseNode(ContentType, strings.NewReader("   ")); err == nil || !strings.Contains(err.Error(), "empty payload") {
		t.Fatalf("expected empty payload error, got %v", err)
	}
	if _, err := f.RootParseNode(ContentType, strings.NewReader(`{"id":`)); err == nil || !strings.Contains(err.Error(), "jsonfmt") {
		t.Fatalf("expected jsonfmt error, got %v", err)
	}
	if _, err := f.RootParseNode(ContentType, nil); !errors.Is(err, serialization.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestParseNodeFactory_Select(t *testing.T) {
	node, err := NewParseNodeFactory().Parse(strings.NewReader(`{"value":[{"id":"1"},{"id":"2"}],"@odata.nextLink":"x"}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	items, err := node.Select("$.value")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	models, err := serialization.CastCollection[*testsupport.Entity](items.CollectionOfObjectValues(testsupport.NewEntity))
	if err != nil {
		t.Fatalf("CollectionOfObjectValues: %v", err)
	}
	if len(models) != 2 || *models[1].ID != "2" {
		t.Fatalf("unexpected models %+v", models)
	}
}
