package openapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-clientruntime/pkg/enums"
)

// ErrNotOpenAPI reports a loaded document that is not an OpenAPI description.
var ErrNotOpenAPI = errors.New("openapi: document is not an OpenAPI description")

// Pipeline chains a Loader and an EnumExtractor.
type Pipeline struct {
	loader    Loader
	extractor EnumExtractor
}

// NewPipeline wires loader and extractor together.
func NewPipeline(loader Loader, extractor EnumExtractor) *Pipeline {
	return &Pipeline{loader: loader, extractor: extractor}
}

// Catalog loads src and extracts its enumerations.
func (p *Pipeline) Catalog(ctx context.Context, src Source) (*enums.Catalog, error) {
	if p == nil || p.loader == nil {
		return nil, errors.New("openapi pipeline: loader is nil")
	}
	if p.extractor == nil {
		return nil, errors.New("openapi pipeline: extractor is nil")
	}
	doc, err := p.loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	if !Detect(doc.Raw()) {
		return nil, fmt.Errorf("%w: %s", ErrNotOpenAPI, doc.Location())
	}
	return p.extractor.Enums(ctx, doc)
}
