package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFormatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the registered content types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := a.registry()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, contentType := range registry.ContentTypes() {
				factory, _ := registry.Lookup(contentType)
				fmt.Fprintf(w, "%s\t%s\n", contentType, factory.ValidContentType())
			}
			return w.Flush()
		},
	}
}
