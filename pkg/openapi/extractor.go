package openapi

import (
	"context"

	"github.com/goliatone/go-clientruntime/pkg/enums"
)

// EnumExtractor turns the enumerations declared by a document into
// descriptors.
type EnumExtractor interface {
	Enums(ctx context.Context, doc Document) (*enums.Catalog, error)
}

// ExtractorOptions toggles extraction behaviour.
type ExtractorOptions struct {
	// InlineEnums also extracts enums declared directly on object
	// properties, naming them "<Schema>_<property>".
	InlineEnums bool

	// Include limits extraction to component schemas for which it returns
	// true. Nil includes every schema.
	Include func(schemaName string) bool
}

// ExtractorOption mutates ExtractorOptions during construction.
type ExtractorOption func(*ExtractorOptions)

// WithInlineEnums toggles extraction of property-level enums.
func WithInlineEnums(enabled bool) ExtractorOption {
	return func(opts *ExtractorOptions) {
		opts.InlineEnums = enabled
	}
}

// WithSchemaFilter restricts extraction to the schemas accepted by include.
func WithSchemaFilter(include func(schemaName string) bool) ExtractorOption {
	return func(opts *ExtractorOptions) {
		opts.Include = include
	}
}

// NewExtractorOptions applies options over the defaults. Inline enums are
// extracted unless disabled.
func NewExtractorOptions(options ...ExtractorOption) ExtractorOptions {
	cfg := ExtractorOptions{InlineEnums: true}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Includes reports whether schemaName passes the configured filter.
func (o ExtractorOptions) Includes(schemaName string) bool {
	return o.Include == nil || o.Include(schemaName)
}
