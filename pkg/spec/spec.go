// Package spec builds schemas from declarative YAML or JSON definitions.
//
// Definition document describes one schema:
//
//	name: NF
//	fields:
//	  - {name: a, kind: text, min_length: 2, max_length: 4}
//	  - {name: phone, kind: phone}
//	  - {name: dc, kind: decimal, max_digits: 3, decimal_places: 1, required: false}
//
// or several of them under "schemas" key. Schema may extend schema registered earlier,
// field entry with "remove: true" drops inherited field:
//
//	schemas:
//	  - name: Base
//	    fields: [{name: a}, {name: b}]
//	  - name: Child
//	    extends: Base
//	    fields: [{name: b, remove: true}]
package spec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"

	"github.com/pawelWritesCode/gdform"
	"github.com/pawelWritesCode/gdform/pkg/field"
)

// ErrDefinition occurs when definition document is malformed.
var ErrDefinition = errors.New("invalid schema definition")

// ErrUnknownSchema occurs when definition extends schema which was not registered.
var ErrUnknownSchema = errors.New("unknown schema")

// Definition describes schema.
type Definition struct {
	Name    string      `mapstructure:"name"`
	Extends string      `mapstructure:"extends"`
	Fields  []FieldSpec `mapstructure:"fields"`
}

// FieldSpec describes single field, unset options keep field defaults.
type FieldSpec struct {
	Name          string            `mapstructure:"name"`
	Kind          string            `mapstructure:"kind"`
	Remove        bool              `mapstructure:"remove"`
	Required      *bool             `mapstructure:"required"`
	Strip         bool              `mapstructure:"strip"`
	EmptyValue    any               `mapstructure:"empty_value"`
	MinLength     *int              `mapstructure:"min_length"`
	MaxLength     *int              `mapstructure:"max_length"`
	MinValue      any               `mapstructure:"min_value"`
	MaxValue      any               `mapstructure:"max_value"`
	MaxDigits     *int              `mapstructure:"max_digits"`
	DecimalPlaces *int              `mapstructure:"decimal_places"`
	Regex         string            `mapstructure:"regex"`
	ErrorMessage  string            `mapstructure:"error_message"`
	ErrorMessages map[string]string `mapstructure:"error_messages"`
}

// Parse decodes YAML or JSON document into definitions in document order.
func Parse(b []byte) ([]Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDefinition, err)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: empty document", ErrDefinition)
	}

	var defs []Definition
	if list, ok := raw["schemas"]; ok {
		if len(raw) > 1 {
			return nil, fmt.Errorf("%w: \"schemas\" can not be mixed with single schema keys", ErrDefinition)
		}
		if err := decode(list, &defs); err != nil {
			return nil, err
		}

		return defs, nil
	}

	var def Definition
	if err := decode(raw, &def); err != nil {
		return nil, err
	}

	return []Definition{def}, nil
}

func decode(input, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      output,
	})
	if err != nil {
		return err
	}

	if err = decoder.Decode(input); err != nil {
		return fmt.Errorf("%w: %s", ErrDefinition, err)
	}

	return nil
}

// Options converts spec into field options.
func (fs FieldSpec) Options() []field.Option {
	var opts []field.Option

	if fs.Required != nil {
		opts = append(opts, field.Required(*fs.Required))
	}
	if fs.Strip {
		opts = append(opts, field.Strip(true))
	}
	if fs.EmptyValue != nil {
		opts = append(opts, field.EmptyValue(fs.EmptyValue))
	}
	if fs.MinLength != nil {
		opts = append(opts, field.MinLength(*fs.MinLength))
	}
	if fs.MaxLength != nil {
		opts = append(opts, field.MaxLength(*fs.MaxLength))
	}
	if fs.MinValue != nil {
		opts = append(opts, field.MinValue(fs.MinValue))
	}
	if fs.MaxValue != nil {
		opts = append(opts, field.MaxValue(fs.MaxValue))
	}
	if fs.MaxDigits != nil {
		opts = append(opts, field.MaxDigits(*fs.MaxDigits))
	}
	if fs.DecimalPlaces != nil {
		opts = append(opts, field.DecimalPlaces(*fs.DecimalPlaces))
	}
	if fs.Regex != "" {
		opts = append(opts, field.Pattern(fs.Regex))
	}
	if fs.ErrorMessages != nil {
		opts = append(opts, field.ErrorMessages(fs.ErrorMessages))
	}
	if fs.ErrorMessage != "" {
		opts = append(opts, field.ErrorMessage(fs.ErrorMessage))
	}

	return opts
}

// Field builds field described by spec. Kind defaults to text.
func (fs FieldSpec) Field() (*field.Field, error) {
	kind := field.Kind(fs.Kind)
	if kind == "" {
		kind = field.Text
	}

	f, err := field.New(kind, fs.Options()...)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %w", ErrDefinition, fs.Name, err)
	}

	return f, nil
}

// Registry holds schemas built from definitions so later definitions may extend them.
// Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*gdform.Schema
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*gdform.Schema)}
}

// Register builds schema from def. Registering name again replaces previous schema.
func (r *Registry) Register(def Definition) (*gdform.Schema, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("%w: schema name should not be empty", ErrDefinition)
	}

	var b *gdform.Builder
	if def.Extends != "" {
		parent, ok := r.Get(def.Extends)
		if !ok {
			return nil, fmt.Errorf("%w: %s extends %s", ErrUnknownSchema, def.Name, def.Extends)
		}
		b = gdform.Extend(parent, def.Name)
	} else {
		b = gdform.NewSchema(def.Name)
	}

	for _, fs := range def.Fields {
		if fs.Remove {
			b.Remove(fs.Name)
			continue
		}

		f, err := fs.Field()
		if err != nil {
			return nil, err
		}
		b.Field(fs.Name, f)
	}

	s, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDefinition, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.schemas[def.Name]; !ok {
		r.order = append(r.order, def.Name)
	}
	r.schemas[def.Name] = s

	return s, nil
}

// Load parses document and registers every definition it holds. Returned schemas keep document order.
func (r *Registry) Load(b []byte) ([]*gdform.Schema, error) {
	defs, err := Parse(b)
	if err != nil {
		return nil, err
	}

	out := make([]*gdform.Schema, 0, len(defs))
	for _, def := range defs {
		s, err := r.Register(def)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// Get returns schema registered under name.
func (r *Registry) Get(name string) (*gdform.Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[name]
	return s, ok
}

// Names returns names of registered schemas in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}
