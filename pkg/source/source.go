// Package source holds raw input mappings forms are validated against.
//
// Every Source maps field name to raw, untyped value:
//
//	Map  - plain Go map,
//	JSON - JSON object, parsed with https://github.com/tidwall/gjson,
//	YAML - YAML mapping, parsed with https://github.com/goccy/go-yaml,
//	XML  - children of XML root element, parsed with https://github.com/antchfx/xmlquery,
//	Form - url encoded form values.
package source

import "errors"

// ErrFormat occurs when data is not in expected format.
var ErrFormat = errors.New("invalid data format")

// ErrNotMapping occurs when document root can not be treated as name to value mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// Source describes raw input mapping.
type Source interface {
	// Lookup returns raw value stored under name.
	Lookup(name string) (any, bool)

	// Len returns number of entries.
	Len() int
}

// Map is Source backed by plain Go map.
type Map map[string]any

func NewMap(m map[string]any) Map {
	return Map(m)
}

func (m Map) Lookup(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

func (m Map) Len() int {
	return len(m)
}
