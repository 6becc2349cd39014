package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile loads and validates a rule catalog from a YAML file.
// A missing file or a schema violation is a configuration error surfaced
// to the caller; it is never folded into a document-level verdict.
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule catalog: %w", err)
	}
	cat, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("load rule catalog %s: %w", path, err)
	}
	return cat, nil
}

// LoadFromBytes loads and validates a rule catalog from YAML data.
func LoadFromBytes(data []byte) (*Catalog, error) {
	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parse rule catalog: %w", err)
	}
	if err := schema.validate(); err != nil {
		return nil, err
	}
	return schema.build(), nil
}
