package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-clientruntime"
	"github.com/goliatone/go-clientruntime/pkg/enums"
	pkgopenapi "github.com/goliatone/go-clientruntime/pkg/openapi"
)

type enumOptions struct {
	catalog string
	openapi string
	name    string
	http    bool
}

func newEnumCmd(a *app) *cobra.Command {
	opts := &enumOptions{}
	cmd := &cobra.Command{
		Use:   "enum [value...]",
		Short: "List enum descriptors or resolve raw values against one",
		Long: "Without --name, enum lists every descriptor of the catalog. With --name and\n" +
			"values, each value is resolved the way generated models resolve wire strings:\n" +
			"numeric tokens first, then canonical names, then aliases.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.enum(cmd, opts, args)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.catalog, "catalog", "", "enum catalog file (YAML or JSON)")
	flags.StringVar(&opts.openapi, "openapi", "", "OpenAPI document path or URL to extract enums from")
	flags.StringVar(&opts.name, "name", "", "descriptor to resolve values against")
	flags.BoolVar(&opts.http, "http", false, "allow fetching --openapi over HTTP")
	cmd.MarkFlagsMutuallyExclusive("catalog", "openapi")
	return cmd
}

func (a *app) enum(cmd *cobra.Command, opts *enumOptions, args []string) error {
	catalog, err := a.loadCatalog(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.name == "" {
		if len(args) > 0 {
			return errors.New("enum: --name is required to resolve values")
		}
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, name := range catalog.Names() {
			d, _ := catalog.Lookup(name)
			kind := "enum"
			if d.IsFlags() {
				kind = "flags"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, kind, memberSummary(d))
		}
		return w.Flush()
	}

	d, ok := catalog.Lookup(opts.name)
	if !ok {
		return fmt.Errorf("enum: descriptor %q not found", opts.name)
	}
	if len(args) == 0 {
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, member := range d.Members() {
			fmt.Fprintf(w, "%s\t%d\t%s\n", member.Name, member.Value, strings.Join(member.Aliases, ","))
		}
		return w.Flush()
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, raw := range args {
		value, ok := d.Parse(raw)
		if !ok {
			fmt.Fprintf(w, "%s\t-\tabsent\n", raw)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", raw, value.Int64(), strings.Join(value.Names(), "|"))
	}
	return w.Flush()
}

func (a *app) loadCatalog(cmd *cobra.Command, opts *enumOptions) (*enums.Catalog, error) {
	switch {
	case opts.openapi != "":
		src := pkgopenapi.SourceFromLocation(opts.openapi)
		var loaderOpts []pkgopenapi.LoaderOption
		if opts.http {
			loaderOpts = append(loaderOpts, pkgopenapi.WithHTTPFallback(0))
		}
		return clientruntime.LoadEnumCatalog(cmd.Context(), src,
			clientruntime.WithLogger(a.logger),
			clientruntime.WithLoaderOptions(loaderOpts...))
	case opts.catalog != "" || a.cfg.Catalog != "":
		path := opts.catalog
		if path == "" {
			path = a.cfg.Catalog
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("enum: %w", err)
		}
		return enums.LoadCatalog(data)
	default:
		return nil, errors.New("enum: one of --catalog or --openapi is required")
	}
}

func memberSummary(d *enums.Descriptor) string {
	members := d.Members()
	parts := make([]string, 0, len(members))
	for _, member := range members {
		parts = append(parts, fmt.Sprintf("%s=%d", member.Name, member.Value))
	}
	return strings.Join(parts, " ")
}
