package enums

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Enums []descriptorFile `json:"enums" yaml:"enums"`
}

type descriptorFile struct {
	Name    string   `json:"name" yaml:"name"`
	Flags   bool     `json:"flags" yaml:"flags"`
	Members []Member `json:"members" yaml:"members"`
}

// LoadCatalog parses a YAML (or JSON) catalog document.
func LoadCatalog(data []byte) (*Catalog, error) {
	catalog := NewCatalog()
	if err := decodeInto(catalog, data, "<inline>"); err != nil {
		return nil, err
	}
	return catalog, nil
}

// LoadCatalogFS walks fsys and merges every .yaml, .yml and .json catalog
// file. A nil filesystem yields an empty catalog.
func LoadCatalogFS(fsys fs.FS) (*Catalog, error) {
	catalog := NewCatalog()
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("enums: read %s: %w", path, err)
		}
		return decodeInto(catalog, data, path)
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

func decodeInto(catalog *Catalog, data []byte, origin string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("enums: catalog %s is empty", origin)
	}
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("enums: parse %s: %w", origin, err)
	}
	for idx, entry := range doc.Enums {
		d, err := NewDescriptor(entry.Name, entry.Members, WithFlags(entry.Flags))
		if err != nil {
			return fmt.Errorf("enums: %s enums[%d]: %w", origin, idx, err)
		}
		if err := catalog.Add(d); err != nil {
			return fmt.Errorf("enums: %s: %w", origin, err)
		}
	}
	return nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
