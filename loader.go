package clientruntime

import (
	"context"

	"github.com/rs/zerolog"

	internalLoader "github.com/goliatone/go-clientruntime/internal/openapi/loader"
	"github.com/goliatone/go-clientruntime/internal/openapi/enumparser"
	"github.com/goliatone/go-clientruntime/pkg/enums"
	pkgopenapi "github.com/goliatone/go-clientruntime/pkg/openapi"
)

// NewLoader constructs a document loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg, zerolog.Nop())
}

// NewEnumExtractor constructs an extractor backed by kin-openapi.
func NewEnumExtractor(options ...pkgopenapi.ExtractorOption) pkgopenapi.EnumExtractor {
	cfg := pkgopenapi.NewExtractorOptions(options...)
	return enumparser.New(cfg, zerolog.Nop())
}

// CatalogOption configures LoadEnumCatalog.
type CatalogOption func(*catalogConfig)

type catalogConfig struct {
	logger    zerolog.Logger
	loader    []pkgopenapi.LoaderOption
	extractor []pkgopenapi.ExtractorOption
}

// WithLogger routes loader and extractor diagnostics to logger.
func WithLogger(logger zerolog.Logger) CatalogOption {
	return func(cfg *catalogConfig) {
		cfg.logger = logger
	}
}

// WithLoaderOptions forwards options to the document loader.
func WithLoaderOptions(options ...pkgopenapi.LoaderOption) CatalogOption {
	return func(cfg *catalogConfig) {
		cfg.loader = append(cfg.loader, options...)
	}
}

// WithExtractorOptions forwards options to the enum extractor.
func WithExtractorOptions(options ...pkgopenapi.ExtractorOption) CatalogOption {
	return func(cfg *catalogConfig) {
		cfg.extractor = append(cfg.extractor, options...)
	}
}

// LoadEnumCatalog loads an OpenAPI description and returns the descriptors of
// every enumeration it declares.
func LoadEnumCatalog(ctx context.Context, src pkgopenapi.Source, options ...CatalogOption) (*enums.Catalog, error) {
	cfg := catalogConfig{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	pipeline := pkgopenapi.NewPipeline(
		internalLoader.New(pkgopenapi.NewLoaderOptions(cfg.loader...), cfg.logger),
		enumparser.New(pkgopenapi.NewExtractorOptions(cfg.extractor...), cfg.logger),
	)
	return pipeline.Catalog(ctx, src)
}
