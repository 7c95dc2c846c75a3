package jsonschema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	qri "github.com/qri-io/jsonschema"
	"github.com/xeipuuv/gojsonschema"

	"github.com/pawelWritesCode/gdform"
)

// ErrMismatch occurs when document does not satisfy JSON schema.
var ErrMismatch = errors.New("document does not match JSON schema")

// Validator validates JSON document against JSON schema.
type Validator interface {
	Validate(document, schema []byte) error
}

// XGValidator uses xeipuuv/gojsonschema, which covers drafts v4, v6 and v7.
type XGValidator struct{}

// QIValidator uses qri-io/jsonschema, which covers drafts 7 and 2019-09.
type QIValidator struct{}

func NewXGValidator() XGValidator {
	return XGValidator{}
}

func NewQIValidator() QIValidator {
	return QIValidator{}
}

// Validate validates document against schema.
func (XGValidator) Validate(document, schema []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(document))
	if err != nil {
		return err
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}

		return fmt.Errorf("%w: %s", ErrMismatch, strings.Join(msgs, ", "))
	}

	return nil
}

// Validate validates document against schema.
func (QIValidator) Validate(document, schema []byte) error {
	rs := &qri.Schema{}
	if err := json.Unmarshal(schema, rs); err != nil {
		return err
	}

	errs, err := rs.ValidateBytes(context.Background(), document)
	if err != nil {
		return err
	}

	if len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}

		return fmt.Errorf("%w: %s", ErrMismatch, strings.Join(msgs, ", "))
	}

	return nil
}

// Validate validates document against schema with XGValidator.
func Validate(document, schema []byte) error {
	return NewXGValidator().Validate(document, schema)
}

// ValidateCleaned checks that cleaned data conforms to exported JSON schema of s.
func ValidateCleaned(v Validator, s *gdform.Schema, data *gdform.OrderedMap[any]) error {
	schema, err := Export(s)
	if err != nil {
		return err
	}

	document, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return v.Validate(document, schema)
}
