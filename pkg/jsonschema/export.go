// Package jsonschema describes cleaned data of a schema as JSON schema and validates JSON documents against it.
//
// Exported schema follows draft-07 and describes data after cleaning, so integer field is JSON integer
// while decimal field is JSON string, which is how decimal values are marshaled.
package jsonschema

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pawelWritesCode/gdform"
	"github.com/pawelWritesCode/gdform/pkg/field"
	"github.com/pawelWritesCode/gdform/pkg/types"
	"github.com/pawelWritesCode/gdform/pkg/validator"
)

// Draft07 is $schema of exported documents.
const Draft07 = "http://json-schema.org/draft-07/schema#"

// Export returns JSON schema of s cleaned data.
func Export(s *gdform.Schema) ([]byte, error) {
	doc, err := Document(s)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Document returns JSON schema of s cleaned data as map ready for marshaling.
func Document(s *gdform.Schema) (map[string]any, error) {
	names := s.Fields()
	properties := make(map[string]any, len(names))

	for _, name := range names {
		f, _ := s.Field(name)
		prop, err := property(f)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		properties[name] = prop
	}

	return map[string]any{
		"$schema":              Draft07,
		"title":                s.Name(),
		"type":                 "object",
		"properties":           properties,
		"required":             names,
		"additionalProperties": false,
	}, nil
}

func property(f *field.Field) (map[string]any, error) {
	opts := f.Options()
	prop := map[string]any{}
	var typ string

	switch f.Kind() {
	case field.Text, field.Phone, field.Email, field.UUID, field.Regex:
		typ = "string"
		if opts.MinLength != nil {
			prop["minLength"] = *opts.MinLength
		}
		if opts.MaxLength != nil {
			prop["maxLength"] = *opts.MaxLength
		}
	case field.Boolean:
		typ = "boolean"
	case field.NullBoolean:
		prop["type"] = []string{"boolean", "null"}
		return prop, nil
	case field.Integer, field.Float:
		typ = "number"
		if f.Kind() == field.Integer {
			typ = "integer"
		}
		if err := setLimit(prop, "minimum", opts.MinValue); err != nil {
			return nil, err
		}
		if err := setLimit(prop, "maximum", opts.MaxValue); err != nil {
			return nil, err
		}
	case field.Decimal:
		typ = "string"
	default:
		return nil, fmt.Errorf("%w: %s", field.ErrUnknownKind, f.Kind())
	}

	switch f.Kind() {
	case field.Phone:
		prop["pattern"] = validator.PhonePattern.String()
	case field.Email:
		prop["format"] = "email"
	case field.Regex:
		prop["pattern"] = "^(?:" + f.Regexp().String() + ")$"
	}

	switch {
	case f.Required():
		prop["type"] = typ
	case f.EmptyValue() == nil:
		prop["type"] = []string{typ, "null"}
	default:
		prop["type"] = typ
		prop["default"] = f.EmptyValue()
	}

	return prop, nil
}

func setLimit(prop map[string]any, key string, limit any) error {
	if limit == nil {
		return nil
	}

	mapper := types.NewGoTypeMapper()
	switch mapper.Map(limit) {
	case types.Int, types.Float:
		prop[key] = limit
	case types.Number:
		prop[key] = limit.(json.Number)
	case types.Decimal:
		d, ok := limit.(decimal.Decimal)
		if !ok {
			d = *limit.(*decimal.Decimal)
		}
		prop[key] = json.Number(d.String())
	default:
		return fmt.Errorf("%w: %s limit %v", validator.ErrIncomparable, key, limit)
	}

	return nil
}
