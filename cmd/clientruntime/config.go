package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/goliatone/go-clientruntime"
)

// Config is the resolved CLI configuration.
type Config struct {
	LogLevel           string
	DefaultContentType string
	Formats            []string
	// Aliases maps an extra content type onto an already registered one.
	Aliases map[string]string
	Catalog string
}

type fileConfig struct {
	LogLevel           string            `toml:"log_level"`
	DefaultContentType string            `toml:"default_content_type"`
	Formats            []string          `toml:"formats"`
	Aliases            map[string]string `toml:"aliases"`
	Catalog            string            `toml:"catalog"`
}

func defaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Formats:  clientruntime.FormatNames(),
		Aliases:  map[string]string{},
	}
}

// loadConfig overlays the keys defined in the TOML file at path onto the
// defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("default_content_type") {
		cfg.DefaultContentType = strings.TrimSpace(raw.DefaultContentType)
	}
	if meta.IsDefined("formats") {
		cfg.Formats = normalizeList(raw.Formats)
	}
	if meta.IsDefined("aliases") {
		for alias, target := range raw.Aliases {
			alias, target = strings.TrimSpace(alias), strings.TrimSpace(target)
			if alias == "" || target == "" {
				return Config{}, fmt.Errorf("load config: alias %q -> %q is incomplete", alias, target)
			}
			cfg.Aliases[alias] = target
		}
	}
	if meta.IsDefined("catalog") {
		cfg.Catalog = strings.TrimSpace(raw.Catalog)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		v := strings.TrimSpace(item)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
