// Package enumparser extracts enumeration descriptors from OpenAPI documents
// using kin-openapi.
package enumparser

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-clientruntime/pkg/enums"
	pkgopenapi "github.com/goliatone/go-clientruntime/pkg/openapi"
)

// Parser implements pkgopenapi.EnumExtractor.
type Parser struct {
	options pkgopenapi.ExtractorOptions
	logger  zerolog.Logger
}

var _ pkgopenapi.EnumExtractor = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ExtractorOptions, logger zerolog.Logger) *Parser {
	return &Parser{options: options, logger: logger}
}

// Enums walks the component schemas of doc in name order. Component enums
// keep their schema name; inline property enums are named
// "<Schema>_<property>" unless x-ms-enum names them.
func (p *Parser) Enums(ctx context.Context, doc pkgopenapi.Document) (*enums.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi enums: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi enums: load document: %w", err)
	}

	catalog := enums.NewCatalog()
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return catalog, nil
	}

	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !p.options.Includes(name) {
			continue
		}
		ref := spec.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		schema := ref.Value

		if len(schema.Enum) > 0 {
			if err := p.add(catalog, name, schema); err != nil {
				return nil, err
			}
		}
		if p.options.InlineEnums {
			if err := p.addInline(catalog, name, schema); err != nil {
				return nil, err
			}
		}
	}

	p.logger.Debug().
		Str("source", doc.Location()).
		Int("enums", catalog.Len()).
		Msg("extracted openapi enums")
	return catalog, nil
}

func (p *Parser) addInline(catalog *enums.Catalog, owner string, schema *openapi3.Schema) error {
	props := make([]string, 0, len(schema.Properties))
	for prop := range schema.Properties {
		props = append(props, prop)
	}
	sort.Strings(props)

	for _, prop := range props {
		target := inlineEnumSchema(schema.Properties[prop])
		if target == nil {
			continue
		}
		name := owner + "_" + prop
		if ext, ok := msEnumExtension(target); ok && ext.Name != "" {
			name = ext.Name
		}
		if _, exists := catalog.Lookup(name); exists {
			p.logger.Debug().Str("enum", name).Str("schema", owner).Msg("skipping duplicate inline enum")
			continue
		}
		if err := p.add(catalog, name, target); err != nil {
			return err
		}
	}
	return nil
}

// inlineEnumSchema returns the enum schema declared directly on a property,
// looking through array items. Referenced schemas are extracted on their own.
func inlineEnumSchema(ref *openapi3.SchemaRef) *openapi3.Schema {
	if ref == nil || ref.Ref != "" || ref.Value == nil {
		return nil
	}
	if len(ref.Value.Enum) > 0 {
		return ref.Value
	}
	items := ref.Value.Items
	if items != nil && items.Ref == "" && items.Value != nil && len(items.Value.Enum) > 0 {
		return items.Value
	}
	return nil
}

func (p *Parser) add(catalog *enums.Catalog, name string, schema *openapi3.Schema) error {
	members, flags := buildMembers(schema)
	if len(members) == 0 {
		return nil
	}
	var opts []enums.DescriptorOption
	if flags {
		opts = append(opts, enums.AsFlags())
	}
	descriptor, err := enums.NewDescriptor(name, members, opts...)
	if err != nil {
		return fmt.Errorf("openapi enums: schema %s: %w", name, err)
	}
	return catalog.Add(descriptor)
}
