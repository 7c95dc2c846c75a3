package validator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Unbounded disables Digits limit.
const Unbounded = -1

// Digits limits number of significant and fractional digits of a decimal value.
type Digits struct {
	MaxDigits     int
	DecimalPlaces int
}

// NewDigits returns Digits, use Unbounded to disable any of limits.
func NewDigits(maxDigits, decimalPlaces int) Digits {
	return Digits{MaxDigits: maxDigits, DecimalPlaces: decimalPlaces}
}

// Validate checks in against every configured limit and reports all exceeded ones.
func (v Digits) Validate(in any) error {
	var d decimal.Decimal
	switch t := in.(type) {
	case decimal.Decimal:
		d = t
	case *decimal.Decimal:
		if t == nil {
			return unsupported(in, "decimal")
		}
		d = *t
	default:
		return unsupported(in, "decimal")
	}

	digits, decimals := CountDigits(d)
	whole := digits - decimals

	var msgs []string
	code := ""
	fail := func(c, msg string) {
		if code == "" {
			code = c
		}
		msgs = append(msgs, msg)
	}

	if v.MaxDigits != Unbounded && digits > v.MaxDigits {
		fail(CodeMaxDigits, fmt.Sprintf("max_digits -> %d", v.MaxDigits))
	}

	if v.DecimalPlaces != Unbounded && decimals > v.DecimalPlaces {
		fail(CodeMaxDecimalPlaces, fmt.Sprintf("max_decimal_places -> %d", v.DecimalPlaces))
	}

	if v.MaxDigits != Unbounded && v.DecimalPlaces != Unbounded && whole > v.MaxDigits-v.DecimalPlaces {
		fail(CodeMaxWholeDigits, fmt.Sprintf("max_whole_digits -> %d", whole))
	}

	if len(msgs) == 0 {
		return nil
	}

	return NewError(code, strings.Join(msgs, ", "))
}

// CountDigits returns total and fractional digits of d as written, trailing zeros included.
// A positive exponent adds trailing zeros. A negative exponent longer than
// coefficient means the value is a pure fraction padded with leading zeros.
func CountDigits(d decimal.Decimal) (digits, decimals int) {
	coefficient := d.Coefficient()
	n := len(coefficient.Abs(coefficient).String())
	exp := int(d.Exponent())

	if exp >= 0 {
		return n + exp, 0
	}

	if -exp > n {
		return -exp, -exp
	}

	return n, -exp
}
