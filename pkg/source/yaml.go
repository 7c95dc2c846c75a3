package source

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// YAML is Source backed by YAML mapping.
type YAML struct {
	values map[string]any
}

// NewYAML parses YAML mapping. Empty document is an empty mapping.
func NewYAML(b []byte) (YAML, error) {
	var values map[string]any
	if err := yaml.Unmarshal(b, &values); err != nil {
		return YAML{}, fmt.Errorf("%w: %s", ErrFormat, err)
	}

	return YAML{values: values}, nil
}

func (y YAML) Lookup(name string) (any, bool) {
	v, ok := y.values[name]
	return v, ok
}

func (y YAML) Len() int {
	return len(y.values)
}
