package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-clientruntime"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

// deps holds the collaborators the commands reach for, replaceable in tests.
type deps struct {
	stdin    io.Reader
	prompter Prompter
}

func defaultDeps() deps {
	return deps{stdin: os.Stdin, prompter: surveyPrompter{}}
}

// app is the per-invocation state shared by subcommands.
type app struct {
	deps       deps
	configPath string
	logLevel   string

	cfg    Config
	logger zerolog.Logger
}

func newRootCmd(d deps) *cobra.Command {
	a := &app{deps: d, logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "clientruntime",
		Short:         "Decode API payloads and inspect enum catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newDecodeCmd(a), newEnumCmd(a), newFormatsCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// registry builds a registry holding the configured formats and aliases.
func (a *app) registry() (*serialization.ParseNodeFactoryRegistry, error) {
	registry := serialization.NewParseNodeFactoryRegistry(serialization.WithRegistryLogger(a.logger))
	if err := clientruntime.RegisterDefaultFormats(registry, a.cfg.Formats...); err != nil {
		return nil, err
	}
	for alias, target := range a.cfg.Aliases {
		factory, err := registry.Resolve(target)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(alias, factory); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
