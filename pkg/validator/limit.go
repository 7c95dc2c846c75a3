package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pawelWritesCode/gdform/pkg/types"
)

// MinLength fails when length of value is lower than Limit.
type MinLength struct {
	Limit int
	Msg   string
}

// MaxLength fails when length of value is greater than Limit.
type MaxLength struct {
	Limit int
	Msg   string
}

// MinValue fails when value is lower than Limit.
type MinValue struct {
	Limit any
	Msg   string
}

// MaxValue fails when value is greater than Limit.
type MaxValue struct {
	Limit any
	Msg   string
}

func NewMinLength(limit int) MinLength {
	return MinLength{Limit: limit, Msg: fmt.Sprintf("min_length -> %d", limit)}
}

func NewMaxLength(limit int) MaxLength {
	return MaxLength{Limit: limit, Msg: fmt.Sprintf("max_length -> %d", limit)}
}

func NewMinValue(limit any) MinValue {
	return MinValue{Limit: limit, Msg: "min_value -> " + types.Stringify(limit)}
}

func NewMaxValue(limit any) MaxValue {
	return MaxValue{Limit: limit, Msg: "max_value -> " + types.Stringify(limit)}
}

// Validate checks whether in has at least v.Limit elements.
func (v MinLength) Validate(in any) error {
	n, ok := types.Len(in)
	if !ok {
		return unsupported(in, "measurable")
	}

	if n < v.Limit {
		return NewError(CodeMinLength, v.Msg)
	}

	return nil
}

// Validate checks whether in has at most v.Limit elements.
func (v MaxLength) Validate(in any) error {
	n, ok := types.Len(in)
	if !ok {
		return unsupported(in, "measurable")
	}

	if n > v.Limit {
		return NewError(CodeMaxLength, v.Msg)
	}

	return nil
}

// Validate checks whether in is not lower than v.Limit.
func (v MinValue) Validate(in any) error {
	c, err := Compare(in, v.Limit)
	if err != nil {
		return err
	}

	if c < 0 {
		return NewError(CodeMinValue, v.Msg)
	}

	return nil
}

// Validate checks whether in is not greater than v.Limit.
func (v MaxValue) Validate(in any) error {
	c, err := Compare(in, v.Limit)
	if err != nil {
		return err
	}

	if c > 0 {
		return NewError(CodeMaxValue, v.Msg)
	}

	return nil
}

// Compare orders a against b. Strings compare with strings, every numeric
// representation (ints, floats, json.Number, decimal.Decimal) compares with any other.
func Compare(a, b any) (int, error) {
	as, aIsString := a.(string)
	bs, bIsString := b.(string)
	if aIsString && bIsString {
		return strings.Compare(as, bs), nil
	}

	ad, err := toDecimal(a)
	if err != nil {
		return 0, err
	}

	bd, err := toDecimal(b)
	if err != nil {
		return 0, err
	}

	return ad.Cmp(bd), nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, nil
	case *decimal.Decimal:
		if t != nil {
			return *t, nil
		}
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrIncomparable, err)
		}

		return d, nil
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return decimal.NewFromInt(rv.Int()), nil
	case rv.CanUint():
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), nil
	case rv.CanFloat():
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Decimal{}, fmt.Errorf("%w: %v is not finite", ErrIncomparable, f)
		}

		return decimal.NewFromFloat(f), nil
	}

	return decimal.Decimal{}, fmt.Errorf("%w: %T", ErrIncomparable, v)
}

func equalLimits(a, b any) bool {
	c, err := Compare(a, b)
	if err != nil {
		return reflect.DeepEqual(a, b)
	}

	return c == 0
}
