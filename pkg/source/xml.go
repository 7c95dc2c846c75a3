package source

import (
	"bytes"
	"fmt"

	"github.com/antchfx/xmlquery"
)

// XML is Source backed by child elements of XML root element.
// Element text is the value, repeated elements become slice of texts.
type XML struct {
	values map[string]any
}

func NewXML(b []byte) (XML, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(b))
	if err != nil {
		return XML{}, fmt.Errorf("%w: %s", ErrFormat, err)
	}

	if xmlquery.FindOne(doc, "/*") == nil {
		return XML{}, fmt.Errorf("%w: missing root element", ErrNotMapping)
	}

	values := make(map[string]any)
	for _, node := range xmlquery.Find(doc, "/*/*") {
		text := node.InnerText()

		switch prev := values[node.Data].(type) {
		case nil:
			values[node.Data] = text
		case string:
			values[node.Data] = []any{prev, text}
		case []any:
			values[node.Data] = append(prev, text)
		}
	}

	return XML{values: values}, nil
}

func (x XML) Lookup(name string) (any, bool) {
	v, ok := x.values[name]
	return v, ok
}

func (x XML) Len() int {
	return len(x.values)
}
