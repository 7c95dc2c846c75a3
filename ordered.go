package gdform

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// OrderedMap is read only mapping keeping schema declaration order of its keys.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func newOrderedMap[V any](capacity int) *OrderedMap[V] {
	return &OrderedMap[V]{keys: make([]string, 0, capacity), values: make(map[string]V, capacity)}
}

func (m *OrderedMap[V]) set(key string, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}

	v, ok := m.values[key]

	return v, ok
}

// Has tells whether key is present.
func (m *OrderedMap[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns keys in declaration order.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}

	return append([]string(nil), m.keys...)
}

// Range calls fn for every entry in declaration order until fn returns false.
func (m *OrderedMap[V]) Range(fn func(key string, value V) bool) {
	if m == nil {
		return
	}

	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Map returns copy of entries as plain map.
func (m *OrderedMap[V]) Map() map[string]V {
	out := make(map[string]V, m.Len())
	m.Range(func(k string, v V) bool {
		out[k] = v
		return true
	})

	return out
}

// MarshalJSON encodes entries as JSON object keeping key order.
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	var err error
	m.Range(func(k string, v V) bool {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}

		var kb, vb []byte
		if kb, err = json.Marshal(k); err != nil {
			return false
		}
		if vb, err = json.Marshal(v); err != nil {
			return false
		}

		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)

		return true
	})
	if err != nil {
		return nil, err
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML encodes entries as YAML mapping keeping key order.
func (m *OrderedMap[V]) MarshalYAML() (any, error) {
	out := make(yaml.MapSlice, 0, m.Len())
	m.Range(func(k string, v V) bool {
		out = append(out, yaml.MapItem{Key: k, Value: v})
		return true
	})

	return out, nil
}
