package field

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pawelWritesCode/gdform/pkg/types"
)

// decimalSuffix lets "5.00" pass as whole number 5.
var decimalSuffix = regexp.MustCompile(`\.0*\s*$`)

var mapper = types.NewGoTypeMapper()

// coerce converts raw input into kind's type. Empty input is returned as nil.
func (f *Field) coerce(raw any) (any, error) {
	switch f.kind {
	case Boolean:
		return toBoolean(raw), nil
	case NullBoolean:
		return toNullBoolean(raw), nil
	}

	if types.IsEmpty(raw) {
		return nil, nil
	}

	switch f.kind {
	case Integer:
		return f.toInteger(raw)
	case Float:
		return f.toFloat(raw)
	case Decimal:
		return f.toDecimal(raw)
	default:
		s := types.Stringify(raw)
		if f.opts.Strip {
			s = strings.TrimSpace(s)
		}

		return s, nil
	}
}

// check runs kind constraints which are not configurable validators.
func (f *Field) check(value any) error {
	if v, ok := value.(float64); ok && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return f.fail(MsgInvalid)
	}

	return nil
}

// toBoolean treats "false" and "0" in any letter case as false, everything else by its truthiness.
func toBoolean(raw any) bool {
	if s, ok := raw.(string); ok {
		switch strings.ToLower(s) {
		case "false", "0":
			return false
		}
	}

	return types.Truthy(raw)
}

// toNullBoolean returns true, false or nil when raw is neither of recognized literals.
func toNullBoolean(raw any) any {
	switch t := raw.(type) {
	case bool:
		return t
	case string:
		switch t {
		case "True", "true", "1":
			return true
		case "False", "false", "0":
			return false
		}

		return nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return nil
		}

		return toNullBoolean(n)
	}

	switch mapper.Map(raw) {
	case types.Int, types.Float:
		switch types.Stringify(raw) {
		case "1", "1.0":
			return true
		case "0", "0.0":
			return false
		}
	}

	return nil
}

func (f *Field) toInteger(raw any) (any, error) {
	s := decimalSuffix.ReplaceAllString(types.Stringify(raw), "")

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, f.fail(MsgInvalid)
	}

	return n, nil
}

func (f *Field) toFloat(raw any) (any, error) {
	switch t := raw.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case bool:
		if t {
			return 1.0, nil
		}

		return 0.0, nil
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(types.Stringify(raw)), 64)
	if err != nil && !isRangeErr(err) {
		return nil, f.fail(MsgInvalid)
	}

	return n, nil
}

func (f *Field) toDecimal(raw any) (any, error) {
	switch t := raw.(type) {
	case decimal.Decimal:
		return t, nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, f.fail(MsgInvalid)
		}
	}

	d, err := decimal.NewFromString(strings.TrimSpace(types.Stringify(raw)))
	if err != nil {
		return nil, f.fail(MsgInvalid)
	}

	return d, nil
}

// isRangeErr tells whether ParseFloat overflowed, the returned ±Inf is then rejected as not finite.
func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
