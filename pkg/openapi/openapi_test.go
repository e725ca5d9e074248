package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/go-clientruntime/pkg/enums"
)

type stubLoader struct {
	raw string
	err error
}

func (l stubLoader) Load(_ context.Context, src Source) (Document, error) {
	if l.err != nil {
		return Document{}, l.err
	}
	return NewDocument(src, []byte(l.raw))
}

type stubExtractor struct {
	calls int
}

func (e *stubExtractor) Enums(context.Context, Document) (*enums.Catalog, error) {
	e.calls++
	return enums.NewCatalog(), nil
}

func TestNewDocument(t *testing.T) {
	if _, err := NewDocument(nil, []byte("openapi: 3.0.0")); err == nil {
		t.Fatalf("expected missing source to fail")
	}
	if _, err := NewDocument(SourceFromFile("a.yaml"), []byte(" \n")); err == nil {
		t.Fatalf("expected blank payload to fail")
	}

	raw := []byte("openapi: 3.0.0")
	doc := MustNewDocument(SourceFromFile("./specs/../a.yaml"), raw)
	raw[0] = 'X'
	if got := string(doc.Raw()); got != "openapi: 3.0.0" {
		t.Fatalf("document should keep its own copy, got %q", got)
	}
	if doc.Location() != "a.yaml" || doc.IsEmpty() {
		t.Fatalf("unexpected document state: %q empty=%v", doc.Location(), doc.IsEmpty())
	}
	if (Document{}).Location() != "" || !(Document{}).IsEmpty() {
		t.Fatalf("zero document should be empty")
	}
}

func TestDetect(t *testing.T) {
	cases := map[string]bool{
		"openapi: 3.1.0\ninfo: {}\n":      true,
		`{"swagger": "2.0", "paths": {}}`: true,
		"title: config\n":                 false,
		"":                                false,
	}
	for raw, want := range cases {
		if got := Detect([]byte(raw)); got != want {
			t.Fatalf("Detect(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestSources(t *testing.T) {
	if src, err := ParseURLSource("https://example.com/spec.yaml"); err != nil || src.Kind() != SourceKindURL {
		t.Fatalf("expected URL source, got %v (%v)", src, err)
	}
	for _, raw := range []string{"", "ftp://example.com/x", "not a url"} {
		if _, err := ParseURLSource(raw); err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
	if SourceFromLocation("specs/petstore.yaml").Kind() != SourceKindFile {
		t.Fatalf("paths should become file sources")
	}
	if SourceFromLocation("http://localhost/spec.json").Kind() != SourceKindURL {
		t.Fatalf("http locations should become URL sources")
	}
	if src := SourceFromFS("api/spec.yaml"); src.Kind() != SourceKindFS || src.Location() != "api/spec.yaml" {
		t.Fatalf("unexpected fs source %v", src)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected SourceFromURL to panic")
		}
	}()
	SourceFromURL("mailto:someone")
}

func TestOptions(t *testing.T) {
	loader := NewLoaderOptions(WithHTTPFallback(0), WithMaxDocumentBytes(10), nil)
	if !loader.AllowHTTPFallback || loader.MaxDocumentBytes != 10 {
		t.Fatalf("unexpected loader options %+v", loader)
	}

	extractor := NewExtractorOptions()
	if !extractor.InlineEnums || !extractor.Includes("Anything") {
		t.Fatalf("unexpected extractor defaults %+v", extractor)
	}
	extractor = NewExtractorOptions(WithInlineEnums(false), WithSchemaFilter(func(name string) bool {
		return strings.HasPrefix(name, "Pet")
	}))
	if extractor.InlineEnums || extractor.Includes("User") || !extractor.Includes("PetStatus") {
		t.Fatalf("unexpected extractor options %+v", extractor)
	}
}

func TestPipeline(t *testing.T) {
	extractor := &stubExtractor{}
	catalog, err := NewPipeline(stubLoader{raw: "openapi: 3.0.0"}, extractor).Catalog(context.Background(), SourceFromFile("a.yaml"))
	if err != nil || catalog == nil || extractor.calls != 1 {
		t.Fatalf("unexpected pipeline result: %v %v calls=%d", catalog, err, extractor.calls)
	}

	extractor = &stubExtractor{}
	_, err = NewPipeline(stubLoader{raw: "title: x"}, extractor).Catalog(context.Background(), SourceFromFile("a.yaml"))
	if !errors.Is(err, ErrNotOpenAPI) || extractor.calls != 0 {
		t.Fatalf("expected ErrNotOpenAPI before extraction, got %v (calls=%d)", err, extractor.calls)
	}

	boom := errors.New("boom")
	if _, err := NewPipeline(stubLoader{err: boom}, extractor).Catalog(context.Background(), SourceFromFile("a.yaml")); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, err := NewPipeline(nil, extractor).Catalog(context.Background(), SourceFromFile("a.yaml")); err == nil {
		t.Fatalf("expected nil loader to fail")
	}
	if _, err := NewPipeline(stubLoader{}, nil).Catalog(context.Background(), SourceFromFile("a.yaml")); err == nil {
		t.Fatalf("expected nil extractor to fail")
	}
}

func TestSourceLocations(t *testing.T) {
	cases := []struct {
		src  Source
		kind SourceKind
		want string
	}{
		{SourceFromFile("specs/./petstore.yaml"), SourceKindFile, "specs/petstore.yaml"},
		{SourceFromFS("/specs/../api.yaml"), SourceKindFS, "api.yaml"},
		{SourceFromFS(""), SourceKindFS, ""},
		{SourceFromURL("https://example.com/a.json"), SourceKindURL, "https://example.com/a.json"},
	}
	for _, tc := range cases {
		if tc.src.Kind() != tc.kind || tc.src.Location() != tc.want {
			t.Fatalf("got %s %q, want %s %q", tc.src.Kind(), tc.src.Location(), tc.kind, tc.want)
		}
	}
	if got := fmt.Sprint(SourceFromFS("a.yaml")); got != "fs:a.yaml" {
		t.Fatalf("unexpected string form %q", got)
	}
}
