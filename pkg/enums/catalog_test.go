package enums

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

const catalogYAML = `
enums:
  - name: TestEnum
    members:
      - name: First
        value: 0
      - name: Second
        value: 1
        aliases: [Value_2]
  - name: TestEnumWithFlags
    flags: true
    members:
      - {name: Value1, value: 1, aliases: [Value__1]}
      - {name: Value2, value: 2, aliases: [Value__2]}
      - {name: Value3, value: 4, aliases: [Value__3]}
`

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog([]byte(catalogYAML))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if diff := cmp.Diff([]string{"TestEnum", "TestEnumWithFlags"}, catalog.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	flags, ok := catalog.Lookup("TestEnumWithFlags")
	if !ok || !flags.IsFlags() {
		t.Fatalf("expected flags descriptor")
	}
	value, ok := flags.Parse("Value__2,Value__3")
	if !ok || value.Int64() != 6 {
		t.Fatalf("expected 6, got %d (ok=%v)", value.Int64(), ok)
	}

	plain, _ := catalog.Lookup("TestEnum")
	if value, ok := plain.Parse("Value_2"); !ok || value.Int64() != 1 {
		t.Fatalf("expected alias to resolve to 1, got %d (ok=%v)", value.Int64(), ok)
	}
}

func TestLoadCatalog_InvalidDescriptor(t *testing.T) {
	_, err := LoadCatalog([]byte(`
enums:
  - name: Broken
    members:
      - {name: A, value: 1}
      - {name: B, value: 1}
`))
	if !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	if _, err := LoadCatalog([]byte("  \n")); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
}

func TestLoadCatalogFS(t *testing.T) {
	fsys := fstest.MapFS{
		"a/colors.yaml": {Data: []byte("enums:\n  - name: Color\n    members:\n      - {name: Red, value: 0}\n")},
		"b/sizes.json":  {Data: []byte(`{"enums":[{"name":"Size","members":[{"name":"Small","value":0}]}]}`)},
		"README.md":     {Data: []byte("ignored")},
	}
	catalog, err := LoadCatalogFS(fsys)
	if err != nil {
		t.Fatalf("load catalog fs: %v", err)
	}
	if diff := cmp.Diff([]string{"Color", "Size"}, catalog.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCatalogFS_Duplicate(t *testing.T) {
	doc := []byte("enums:\n  - name: Color\n    members:\n      - {name: Red, value: 0}\n")
	fsys := fstest.MapFS{
		"one.yaml": {Data: doc},
		"two.yaml": {Data: doc},
	}
	_, err := LoadCatalogFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestCatalog_Merge(t *testing.T) {
	left := NewCatalog()
	left.MustAdd(testEnumDescriptor)
	right := NewCatalog()
	right.MustAdd(testFlagsDescriptor)

	if err := left.Merge(right); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if left.Len() != 2 {
		t.Fatalf("expected 2 descriptors, got %d", left.Len())
	}
	if err := left.Merge(right); err == nil {
		t.Fatalf("expected duplicate merge to fail")
	}
}

func TestCatalog_NilSafe(t *testing.T) {
	var c *Catalog
	if _, ok := c.Lookup("x"); ok || c.Len() != 0 || c.Names() != nil {
		t.Fatalf("nil catalog should be empty")
	}
	if err := NewCatalog().Add(nil); err == nil {
		t.Fatalf("expected nil descriptor to fail")
	}
}
