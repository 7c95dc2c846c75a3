package types

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var mapper = NewGoTypeMapper()

// IsEmpty tells whether v belongs to the set of values treated as "not provided":
// nil, empty string, empty slice or array and empty map.
// false and 0 are values, not absences.
func IsEmpty(v any) bool {
	switch mapper.Map(v) {
	case Nil:
		return true
	case String:
		return reflect.ValueOf(v).Len() == 0
	case Number:
		return v.(json.Number) == ""
	case Slice, Map:
		return reflect.ValueOf(v).Len() == 0
	default:
		return false
	}
}

// Truthy reports truth value of v: zero numbers, empty strings and empty collections are false.
func Truthy(v any) bool {
	switch mapper.Map(v) {
	case Nil:
		return false
	case Bool:
		return reflect.ValueOf(v).Bool()
	case String, Slice, Map:
		return reflect.ValueOf(v).Len() > 0
	case Int:
		rv := reflect.ValueOf(v)
		if rv.CanInt() {
			return rv.Int() != 0
		}

		return rv.Uint() != 0
	case Float:
		return reflect.ValueOf(v).Float() != 0
	case Number:
		f, err := v.(json.Number).Float64()
		return err != nil || f != 0
	case Decimal:
		return !toDecimal(v).IsZero()
	default:
		return true
	}
}

// Stringify renders v as text the way it would be typed into a form.
// Integral floats keep their ".0" suffix so 11.0 stays distinguishable from 11.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float32:
		return formatFloat(float64(t), 32)
	case float64:
		return formatFloat(t, 64)
	case decimal.Decimal:
		return t.String()
	case *decimal.Decimal:
		return t.String()
	case fmt.Stringer:
		return t.String()
	}

	return fmt.Sprint(v)
}

// Len returns length of v. Strings are measured in runes.
func Len(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}

	switch mapper.Map(v) {
	case Nil:
		return 0, true
	case String:
		return utf8.RuneCountInString(reflect.ValueOf(v).String()), true
	case Slice, Map:
		return reflect.ValueOf(v).Len(), true
	default:
		return 0, false
	}
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	// Very large and very small magnitudes use exponent notation.
	if a := math.Abs(f); a != 0 && (a >= 1e16 || a < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}

	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}

func toDecimal(v any) decimal.Decimal {
	if d, ok := v.(*decimal.Decimal); ok {
		return *d
	}

	return v.(decimal.Decimal)
}
