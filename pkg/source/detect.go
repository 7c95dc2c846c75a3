package source

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

const (
	// JSONFormat describes JSON data format.
	JSONFormat DataFormat = "JSON"

	// YAMLFormat describes YAML data format.
	YAMLFormat DataFormat = "YAML"

	// XMLFormat describes XML data format.
	XMLFormat DataFormat = "XML"

	// PlainText describes data in none of structured formats.
	PlainText DataFormat = "plain text"
)

// DataFormat describes format of data.
type DataFormat string

// IsJSON checks whether bytes are in JSON format.
func IsJSON(b []byte) bool {
	return gjson.ValidBytes(b)
}

// IsYAML checks whether bytes are YAML mapping, JSON is not counted as YAML.
func IsYAML(b []byte) bool {
	if IsJSON(b) {
		return false
	}

	var y map[string]any
	return yaml.Unmarshal(b, &y) == nil && len(y) > 0
}

// IsXML checks whether bytes look like XML document.
func IsXML(b []byte) bool {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '<' {
		return false
	}

	_, err := NewXML(trimmed)

	return err == nil
}

// DetectFormat recognizes format of b.
func DetectFormat(b []byte) DataFormat {
	switch {
	case IsJSON(b):
		return JSONFormat
	case IsXML(b):
		return XMLFormat
	case IsYAML(b):
		return YAMLFormat
	default:
		return PlainText
	}
}

// Detect recognizes format of b and returns matching Source.
func Detect(b []byte) (Source, error) {
	switch f := DetectFormat(b); f {
	case JSONFormat:
		return NewJSON(b)
	case XMLFormat:
		return NewXML(b)
	case YAMLFormat:
		return NewYAML(b)
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, f)
	}
}
