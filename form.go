package gdform

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pawelWritesCode/gdform/pkg/field"
	"github.com/pawelWritesCode/gdform/pkg/source"
	"github.com/pawelWritesCode/gdform/pkg/validator"
)

// Option configures Form.
type Option func(f *Form)

// WithLogger sets logger receiving validation traces, nil disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Form) {
		if logger == nil {
			logger = zap.NewNop()
		}
		f.logger = logger
	}
}

// Form is single validation of input data against Schema.
// Form is not safe for concurrent use, create one form per input instead.
type Form struct {
	schema *Schema
	fields []namedField
	data   source.Source
	logger *zap.Logger

	evaluated bool
	cleaned   *OrderedMap[any]
	errors    *OrderedMap[string]
}

// Schema returns schema form was created from.
func (f *Form) Schema() *Schema {
	return f.schema
}

// Data returns input form validates.
func (f *Form) Data() source.Source {
	return f.data
}

// Fields returns field names in declaration order.
func (f *Form) Fields() []string {
	names := make([]string, 0, len(f.fields))
	for _, nf := range f.fields {
		names = append(names, nf.name)
	}

	return names
}

// Field returns form's own copy of field declared under name.
// Changes made to it, for example extra validators, affect only this form.
func (f *Form) Field(name string) (*field.Field, bool) {
	for _, nf := range f.fields {
		if nf.name == name {
			return nf.field, true
		}
	}

	return nil, false
}

// IsValid validates form if needed and tells whether input was provided and every field passed.
// Empty input is never valid, even when schema has only optional fields.
func (f *Form) IsValid() bool {
	errs := f.Errors()

	return f.data.Len() > 0 && errs.Len() == 0
}

// Errors validates form if needed and returns error message of every failed field.
func (f *Form) Errors() *OrderedMap[string] {
	if !f.evaluated {
		f.evaluate()
	}

	return f.errors
}

// CleanedData returns coerced values of every field.
// It returns ErrNotValidated before form was validated and ErrInvalidData when any field failed.
func (f *Form) CleanedData() (*OrderedMap[any], error) {
	if !f.evaluated {
		return nil, ErrNotValidated
	}

	if f.errors.Len() > 0 {
		return nil, fmt.Errorf("%w: %d field(s) failed", ErrInvalidData, f.errors.Len())
	}

	return f.cleaned, nil
}

// evaluate cleans every field, one failing field never stops the others.
func (f *Form) evaluate() {
	cleaned := newOrderedMap[any](len(f.fields))
	errs := newOrderedMap[string](0)

	for _, nf := range f.fields {
		raw, _ := f.data.Lookup(nf.name)

		value, err := nf.field.Clean(raw)
		if err != nil {
			msg := validator.Message(err)
			errs.set(nf.name, msg)
			f.logger.Debug("field failed validation",
				zap.String("schema", f.schema.name),
				zap.String("field", nf.name),
				zap.String("error", msg),
			)

			continue
		}

		cleaned.set(nf.name, value)
	}

	f.cleaned, f.errors, f.evaluated = cleaned, errs, true

	f.logger.Debug("form validated",
		zap.String("schema", f.schema.name),
		zap.Int("fields", len(f.fields)),
		zap.Int("errors", errs.Len()),
	)
}
