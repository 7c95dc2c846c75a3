package field

import (
	"regexp"

	"github.com/pawelWritesCode/gdform/pkg/validator"
)

// Options holds field configuration. Options irrelevant for a kind are ignored,
// for example MaxLength of an integer field.
type Options struct {
	// Required makes empty input an error. Defaults to true.
	Required bool

	// Strip trims surrounding whitespace of text kinds before validation.
	Strip bool

	// EmptyValue is returned instead of empty input of a not required field.
	EmptyValue any

	MinLength *int
	MaxLength *int

	MinValue any
	MaxValue any

	MaxDigits     *int
	DecimalPlaces *int

	// Pattern is source of regex kind pattern, compiled once at construction.
	Pattern string

	// Regexp is precompiled regex kind pattern, takes precedence over Pattern.
	Regexp *regexp.Regexp

	// Messages overrides default messages by key, see MsgRequired and MsgInvalid.
	Messages map[string]string

	// Validators run before kind specific ones.
	Validators []validator.Validator
}

// Option configures field.
type Option func(o *Options)

func defaultOptions() Options {
	return Options{Required: true}
}

// Required sets whether empty input is an error.
func Required(required bool) Option {
	return func(o *Options) { o.Required = required }
}

// Optional is shorthand for Required(false).
func Optional() Option {
	return Required(false)
}

// Strip sets whether text input is trimmed.
func Strip(strip bool) Option {
	return func(o *Options) { o.Strip = strip }
}

// EmptyValue sets value returned for empty input of optional field.
func EmptyValue(v any) Option {
	return func(o *Options) { o.EmptyValue = v }
}

func MinLength(n int) Option {
	return func(o *Options) { o.MinLength = &n }
}

func MaxLength(n int) Option {
	return func(o *Options) { o.MaxLength = &n }
}

func MinValue(v any) Option {
	return func(o *Options) { o.MinValue = v }
}

func MaxValue(v any) Option {
	return func(o *Options) { o.MaxValue = v }
}

// MaxDigits limits total number of digits of decimal field.
func MaxDigits(n int) Option {
	return func(o *Options) { o.MaxDigits = &n }
}

// DecimalPlaces limits number of fractional digits of decimal field.
func DecimalPlaces(n int) Option {
	return func(o *Options) { o.DecimalPlaces = &n }
}

// Pattern sets regex kind pattern source.
func Pattern(pattern string) Option {
	return func(o *Options) { o.Pattern = pattern }
}

// Regexp sets precompiled regex kind pattern.
func Regexp(re *regexp.Regexp) Option {
	return func(o *Options) { o.Regexp = re }
}

// ErrorMessage overrides message reported when input can not be coerced.
func ErrorMessage(msg string) Option {
	return ErrorMessages(map[string]string{MsgInvalid: msg})
}

// ErrorMessages overrides messages by key.
func ErrorMessages(messages map[string]string) Option {
	return func(o *Options) {
		if o.Messages == nil {
			o.Messages = make(map[string]string, len(messages))
		}
		for k, v := range messages {
			o.Messages[k] = v
		}
	}
}

// Validators appends custom validators.
func Validators(validators ...validator.Validator) Option {
	return func(o *Options) { o.Validators = append(o.Validators, validators...) }
}
