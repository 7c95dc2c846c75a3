// Package validator holds single purpose constraints run against already coerced values.
//
// A validator never transforms its input: it either returns nil or an *Error
// carrying a code and a human readable message. Validators are immutable once
// constructed and may be shared by any number of fields.
package validator

import (
	"errors"
	"fmt"
)

// Validator describes validator
type Validator interface {
	// Validate validates in
	Validate(in any) error
}

// Func adapts an ordinary function to the Validator interface.
type Func func(in any) error

// Validate calls f(in).
func (f Func) Validate(in any) error {
	return f(in)
}

// Error codes reported by validators of this package.
const (
	CodeMinLength        = "min_length"
	CodeMaxLength        = "max_length"
	CodeMinValue         = "min_value"
	CodeMaxValue         = "max_value"
	CodeRegex            = "regex"
	CodePhone            = "phone"
	CodeEmail            = "email"
	CodeUUID             = "uuid"
	CodeNullCharacters   = "null_characters"
	CodeMaxDigits        = "max_digits"
	CodeMaxDecimalPlaces = "max_decimal_places"
	CodeMaxWholeDigits   = "max_whole_digits"
)

// ErrUnsupportedType occurs when validator receives value it can not inspect.
var ErrUnsupportedType = errors.New("unsupported value type")

// ErrIncomparable occurs when value and configured limit can not be ordered against each other.
var ErrIncomparable = errors.New("incomparable values")

// Error is validation failure: expected, data driven and safe to show to the end user.
type Error struct {
	// Code is machine readable reason, may be empty.
	Code string

	// Msg is human readable reason.
	Msg string
}

// NewError returns *Error with given code and message.
func NewError(code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func (e *Error) Error() string {
	return e.Msg
}

// Message extracts user facing message from err.
func Message(err error) string {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Msg
	}

	return err.Error()
}

func unsupported(in any, what string) error {
	return fmt.Errorf("%w: %T is not %s", ErrUnsupportedType, in, what)
}
