package source

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// JSON is Source backed by JSON object. Numbers are exposed as json.Number to keep their exact notation.
type JSON struct {
	entries map[string]gjson.Result
}

// NewJSON parses JSON object. When object has duplicated keys first one wins.
func NewJSON(b []byte) (JSON, error) {
	if !gjson.ValidBytes(b) {
		return JSON{}, fmt.Errorf("%w: detected invalid JSON", ErrFormat)
	}

	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return JSON{}, fmt.Errorf("%w: got JSON %s", ErrNotMapping, root.Type)
	}

	entries := make(map[string]gjson.Result)
	root.ForEach(func(key, value gjson.Result) bool {
		if _, ok := entries[key.String()]; !ok {
			entries[key.String()] = value
		}

		return true
	})

	return JSON{entries: entries}, nil
}

func (j JSON) Lookup(name string) (any, bool) {
	r, ok := j.entries[name]
	if !ok {
		return nil, false
	}

	return jsonValue(r), true
}

func (j JSON) Len() int {
	return len(j.entries)
}

func jsonValue(r gjson.Result) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		return json.Number(r.Raw)
	case gjson.String:
		return r.Str
	}

	if r.IsArray() {
		items := r.Array()
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, jsonValue(item))
		}

		return out
	}

	out := make(map[string]any)
	r.ForEach(func(key, value gjson.Result) bool {
		out[key.String()] = jsonValue(value)
		return true
	})

	return out
}
