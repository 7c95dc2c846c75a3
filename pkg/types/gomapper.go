package types

import (
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

// GoTypeMapper is entity that has ability to map underlying data type into corresponding Go-like data type.
type GoTypeMapper struct{}

func NewGoTypeMapper() GoTypeMapper {
	return GoTypeMapper{}
}

// Map maps data underlying type into Go-like data type.
// Integral floats stay Float, raw input keeps the shape it was sent in.
func (g GoTypeMapper) Map(data any) DataType {
	if data == nil {
		return Nil
	}

	switch data.(type) {
	case json.Number:
		return Number
	case decimal.Decimal, *decimal.Decimal:
		if d, ok := data.(*decimal.Decimal); ok && d == nil {
			return Nil
		}

		return Decimal
	}

	v := reflect.ValueOf(data)

	switch v.Kind() {
	case reflect.String:
		return String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.Bool:
		return Bool
	case reflect.Map:
		if v.IsNil() {
			return Nil
		}

		return Map
	case reflect.Slice:
		if v.IsNil() {
			return Nil
		}

		return Slice
	case reflect.Array:
		return Slice
	case reflect.Ptr, reflect.Interface, reflect.Chan, reflect.Func:
		if v.IsNil() {
			return Nil
		}
	}

	return Unknown
}
