package messages

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse reads a JSON or YAML mapping of catalog key to message template and
// returns the catalog of overrides it describes. Bound-aware keys may embed
// BoundPlaceholder. Entries left out of the document stay unset.
func Parse(data []byte, source string) (Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Catalog{}, fmt.Errorf("messages: file %s is empty", source)
	}

	raw, err := parseDocument(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("%w: %s", ErrInvalidDocument, source)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	var catalog Catalog
	for _, name := range names {
		key, ok := ParseKey(name)
		if !ok {
			return Catalog{}, fmt.Errorf("%w: %q (file %s)", ErrUnknownKey, name, source)
		}
		template := sanitizeTemplate(raw[name])
		if template == "" {
			return Catalog{}, fmt.Errorf("%w: %q (file %s)", ErrEmptyTemplate, name, source)
		}
		if IsBounded(key) {
			catalog = catalog.With(key, Bounded(template))
		} else {
			catalog = catalog.With(key, Text(template))
		}
	}
	return catalog, nil
}

// LoadFile parses the override document at path.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("messages: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS parses the override document name inside fsys.
func LoadFS(fsys fs.FS, name string) (Catalog, error) {
	if fsys == nil {
		return Catalog{}, fmt.Errorf("messages: filesystem is nil (file %s)", name)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Catalog{}, fmt.Errorf("messages: read %s: %w", name, err)
	}
	return Parse(data, name)
}

func parseDocument(data []byte) (map[string]string, error) {
	var doc map[string]string
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = nil
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("messages: document is not a mapping")
	}
	return doc, nil
}
