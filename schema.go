package gdform

import (
	"fmt"

	"github.com/pawelWritesCode/gdform/pkg/field"
	"github.com/pawelWritesCode/gdform/pkg/source"
)

type namedField struct {
	name  string
	field *field.Field
}

// Schema is ordered, immutable set of named field templates.
// Forms never use templates directly, each form validates with its own copies.
type Schema struct {
	name   string
	fields []namedField
}

// Builder assembles Schema in declaration order.
type Builder struct {
	name   string
	fields []namedField
	err    error
}

// NewSchema starts declaration of schema called name.
func NewSchema(name string) *Builder {
	return &Builder{name: name}
}

// Extend starts declaration of schema inheriting every field of parent.
func Extend(parent *Schema, name string) *Builder {
	b := NewSchema(name)
	for _, nf := range parent.fields {
		b.fields = append(b.fields, namedField{name: nf.name, field: nf.field.Clone()})
	}

	return b
}

// Field declares field under name. Field already declared under the same name, also inherited one,
// is replaced and keeps its position. Nil field removes declared one.
func (b *Builder) Field(name string, f *field.Field) *Builder {
	if name == "" {
		if b.err == nil {
			b.err = fmt.Errorf("%w: schema %s", ErrEmptyFieldName, b.name)
		}

		return b
	}

	if f == nil {
		return b.Remove(name)
	}

	for i := range b.fields {
		if b.fields[i].name == name {
			b.fields[i].field = f
			return b
		}
	}

	b.fields = append(b.fields, namedField{name: name, field: f})

	return b
}

// Remove drops field declared under name, missing names are ignored.
func (b *Builder) Remove(name string) *Builder {
	for i := range b.fields {
		if b.fields[i].name == name {
			b.fields = append(b.fields[:i:i], b.fields[i+1:]...)
			return b
		}
	}

	return b
}

// Build returns declared Schema.
func (b *Builder) Build() (*Schema, error) {
	if b.err != nil {
		return nil, b.err
	}

	return &Schema{name: b.name, fields: append([]namedField(nil), b.fields...)}, nil
}

// MustBuild is Build which panics on declaration error.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}

	return s
}

// Name returns schema name.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns field names in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for _, nf := range s.fields {
		names = append(names, nf.name)
	}

	return names
}

// Field returns copy of field template declared under name.
func (s *Schema) Field(name string) (*field.Field, bool) {
	for _, nf := range s.fields {
		if nf.name == name {
			return nf.field.Clone(), true
		}
	}

	return nil, false
}

// New returns form validating data. Nil data is treated as empty mapping.
func (s *Schema) New(data map[string]any, opts ...Option) *Form {
	return s.NewFromSource(source.NewMap(data), opts...)
}

// NewFromSource returns form validating data read from src.
func (s *Schema) NewFromSource(src source.Source, opts ...Option) *Form {
	if src == nil {
		src = source.NewMap(nil)
	}

	fields := make([]namedField, 0, len(s.fields))
	for _, nf := range s.fields {
		fields = append(fields, namedField{name: nf.name, field: nf.field.Clone()})
	}

	f := &Form{schema: s, fields: fields, data: src}
	for _, opt := range append([]Option{WithLogger(nil)}, opts...) {
		opt(f)
	}

	return f
}
