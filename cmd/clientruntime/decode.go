package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-clientruntime/internal/parsenode"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

type decodeOptions struct {
	contentType string
	file        string
	many        bool
	selectExpr  string
	prompt      bool
}

func newDecodeCmd(a *app) *cobra.Command {
	opts := &decodeOptions{}
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a payload by content type and print it as JSON",
		Long: "Decode reads a payload from --file (or stdin), dispatches it to the parse node\n" +
			"factory registered for its content type and prints the resulting object or\n" +
			"collection as indented JSON.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.decode(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.contentType, "content-type", "t", "", "payload content type (defaults to default_content_type)")
	flags.StringVarP(&opts.file, "file", "f", "", "payload file (stdin when empty)")
	flags.BoolVar(&opts.many, "many", false, "decode a collection of objects")
	flags.StringVar(&opts.selectExpr, "select", "", "JSONPath applied to the root before decoding, e.g. $.value")
	flags.BoolVar(&opts.prompt, "prompt", false, "pick the content type interactively")
	return cmd
}

func (a *app) decode(cmd *cobra.Command, opts *decodeOptions) error {
	registry, err := a.registry()
	if err != nil {
		return err
	}

	contentType := strings.TrimSpace(opts.contentType)
	if contentType == "" {
		contentType = a.cfg.DefaultContentType
	}
	if opts.prompt {
		contentType, err = a.deps.prompter.SelectContentType(cmd.Context(), registry.ContentTypes(), contentType)
		if err != nil {
			return err
		}
	}

	content, closeFn, err := a.openPayload(opts.file)
	if err != nil {
		return err
	}
	defer closeFn()

	a.logger.Debug().
		Str("content_type", contentType).
		Bool("many", opts.many).
		Str("select", opts.selectExpr).
		Msg("decoding payload")

	var out any
	if opts.selectExpr == "" {
		out, err = decodeDirect(registry, contentType, content, opts.many)
	} else {
		out, err = decodeSelected(registry, contentType, content, opts.selectExpr, opts.many)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), oj.JSON(out, &oj.Options{Indent: 2, Sort: true}))
	return nil
}

func decodeDirect(registry *serialization.ParseNodeFactoryRegistry, contentType string, content io.Reader, many bool) (any, error) {
	d := serialization.NewDeserializer(serialization.WithRegistry(registry))
	if many {
		values, err := d.DeserializeCollection(contentType, content, newRecord)
		if err != nil {
			return nil, err
		}
		return recordData(values), nil
	}
	value, err := d.Deserialize(contentType, content, newRecord)
	if err != nil {
		return nil, err
	}
	return recordData([]serialization.Parsable{value})[0], nil
}

// decodeSelected narrows the root node with a JSONPath expression before
// building records, for envelopes such as {"value": [...]}.
func decodeSelected(registry *serialization.ParseNodeFactoryRegistry, contentType string, content io.Reader, expr string, many bool) (any, error) {
	root, err := registry.RootParseNode(contentType, content)
	if err != nil {
		return nil, err
	}
	tree, ok := root.(*parsenode.Node)
	if !ok {
		return nil, fmt.Errorf("decode: --select is not supported for %s", contentType)
	}
	node, err := tree.Select(expr)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, nil
	}
	if many {
		values, err := node.CollectionOfObjectValues(newRecord)
		if err != nil {
			return nil, err
		}
		return recordData(values), nil
	}
	value, err := node.ObjectValue(newRecord)
	if err != nil {
		return nil, err
	}
	return recordData([]serialization.Parsable{value})[0], nil
}

func (a *app) openPayload(path string) (io.Reader, func(), error) {
	if strings.TrimSpace(path) == "" || path == "-" {
		return a.deps.stdin, func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}
