// Package field holds typed form fields: a coercion step, empty value policy and ordered validators
// combined into a single Clean pipeline.
//
// Field kinds form a closed set, see Kind. Each kind decides how raw input is coerced:
//
//	text, phone, email, uuid, regex -> string
//	boolean                         -> bool
//	null_boolean                    -> bool or nil
//	integer                         -> int64
//	float                           -> float64
//	decimal                         -> decimal.Decimal
package field

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pawelWritesCode/gdform/pkg/types"
	"github.com/pawelWritesCode/gdform/pkg/validator"
)

// Kind names field variant.
type Kind string

const (
	Text        Kind = "text"
	Phone       Kind = "phone"
	Email       Kind = "email"
	UUID        Kind = "uuid"
	Regex       Kind = "regex"
	Boolean     Kind = "boolean"
	NullBoolean Kind = "null_boolean"
	Integer     Kind = "integer"
	Float       Kind = "float"
	Decimal     Kind = "decimal"
)

// Kinds lists every supported kind.
var Kinds = []Kind{Text, Phone, Email, UUID, Regex, Boolean, NullBoolean, Integer, Float, Decimal}

// ErrUnknownKind occurs when field is requested for kind outside of Kinds.
var ErrUnknownKind = errors.New("unknown field kind")

// ErrMissingPattern occurs when regex field is built without pattern.
var ErrMissingPattern = errors.New("regex field requires pattern")

// ErrInvalidLimit occurs when min or max value of numeric field is not a number.
var ErrInvalidLimit = errors.New("value limit should be a finite number")

// Field is typed, validated slot of a schema.
// Field is not safe for concurrent mutation, use Clone to obtain private copy.
type Field struct {
	kind       Kind
	opts       Options
	messages   map[string]string
	validators []validator.Validator
	regex      *regexp.Regexp
}

// New returns field of given kind.
func New(kind Kind, opts ...Option) (*Field, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Field{kind: kind, opts: o, messages: messagesFor(kind, o.Messages)}

	switch kind {
	case Phone:
		f.validators = append(f.validators, validator.NewPhone())
	case Email:
		f.validators = append(f.validators, validator.NewEmail())
	case UUID:
		f.validators = append(f.validators, validator.NewUUID())
	case Text, Regex, Boolean, NullBoolean, Integer, Float, Decimal:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	f.validators = append(f.validators, o.Validators...)

	switch kind {
	case Text, Phone, Email, UUID, Regex:
		if o.MinLength != nil {
			f.validators = append(f.validators, validator.NewMinLength(*o.MinLength))
		}
		if o.MaxLength != nil {
			f.validators = append(f.validators, validator.NewMaxLength(*o.MaxLength))
		}
		f.validators = append(f.validators, validator.NewNullCharacters())
	case Integer, Float, Decimal:
		if err := checkLimit("max value", o.MaxValue); err != nil {
			return nil, err
		}
		if err := checkLimit("min value", o.MinValue); err != nil {
			return nil, err
		}

		if o.MaxValue != nil {
			f.validators = append(f.validators, validator.NewMaxValue(o.MaxValue))
		}
		if o.MinValue != nil {
			f.validators = append(f.validators, validator.NewMinValue(o.MinValue))
		}
	}

	switch kind {
	case Regex:
		re := o.Regexp
		if re == nil {
			if o.Pattern == "" {
				return nil, ErrMissingPattern
			}

			var err error
			if re, err = regexp.Compile(o.Pattern); err != nil {
				return nil, fmt.Errorf("regex field pattern: %w", err)
			}
		}
		f.regex = re
		f.validators = append(f.validators, validator.NewRegex(re))
	case Decimal:
		f.validators = append(f.validators, validator.NewDigits(limit(o.MaxDigits), limit(o.DecimalPlaces)))
	}

	return f, nil
}

// Must returns field or panics. Use it for package level declarations.
func Must(f *Field, err error) *Field {
	if err != nil {
		panic(err)
	}

	return f
}

func NewText(opts ...Option) *Field { return Must(New(Text, opts...)) }
func NewPhone(opts ...Option) *Field { return Must(New(Phone, opts...)) }
func NewEmail(opts ...Option) *Field { return Must(New(Email, opts...)) }
func NewUUID(opts ...Option) *Field { return Must(New(UUID, opts...)) }
func NewBoolean(opts ...Option) *Field { return Must(New(Boolean, opts...)) }

// NewNullBoolean returns tri-state field telling apart true, false and "neither".
func NewNullBoolean(opts ...Option) *Field { return Must(New(NullBoolean, opts...)) }

func NewInteger(opts ...Option) *Field { return Must(New(Integer, opts...)) }
func NewFloat(opts ...Option) *Field { return Must(New(Float, opts...)) }
func NewDecimal(opts ...Option) *Field { return Must(New(Decimal, opts...)) }

// NewRegex returns text field which whole value has to match pattern.
func NewRegex(pattern string, opts ...Option) (*Field, error) {
	return New(Regex, append(opts, Pattern(pattern))...)
}

// NewRegexp is NewRegex with precompiled pattern.
func NewRegexp(re *regexp.Regexp, opts ...Option) *Field {
	return Must(New(Regex, append(opts, Regexp(re))...))
}

// MustRegex is NewRegex which panics on invalid pattern.
func MustRegex(pattern string, opts ...Option) *Field {
	return Must(NewRegex(pattern, opts...))
}

// Clean coerces raw into field's type, applies empty value policy and runs every validator.
// Returned error is always *validator.Error.
func (f *Field) Clean(raw any) (any, error) {
	value, err := f.coerce(raw)
	if err != nil {
		return nil, err
	}

	if types.IsEmpty(value) {
		if f.opts.Required {
			return nil, f.fail(MsgRequired)
		}

		return f.opts.EmptyValue, nil
	}

	if err = f.check(value); err != nil {
		return nil, err
	}

	if err = f.runValidators(value); err != nil {
		return nil, err
	}

	return value, nil
}

// runValidators runs every validator and reports all failures as one error.
func (f *Field) runValidators(value any) error {
	var msgs []string
	var first *validator.Error

	for _, v := range f.validators {
		err := v.Validate(value)
		if err == nil {
			continue
		}

		var vErr *validator.Error
		if !errors.As(err, &vErr) {
			vErr = validator.NewError(MsgInvalid, err.Error())
		}

		if first == nil {
			first = vErr
		}
		msgs = append(msgs, vErr.Msg)
	}

	switch len(msgs) {
	case 0:
		return nil
	case 1:
		return first
	default:
		return validator.NewError("", strings.Join(msgs, ", "))
	}
}

func (f *Field) fail(key string) *validator.Error {
	return validator.NewError(key, f.messages[key])
}

// Clone returns independent copy of f. Validators themselves are immutable and shared.
func (f *Field) Clone() *Field {
	c := *f
	c.validators = append([]validator.Validator(nil), f.validators...)
	c.messages = make(map[string]string, len(f.messages))
	for k, v := range f.messages {
		c.messages[k] = v
	}
	c.opts.Validators = append([]validator.Validator(nil), f.opts.Validators...)
	c.opts.Messages = nil
	if f.opts.Messages != nil {
		c.opts.Messages = make(map[string]string, len(f.opts.Messages))
		for k, v := range f.opts.Messages {
			c.opts.Messages[k] = v
		}
	}

	return &c
}

// AddValidators appends validators to this field instance only.
func (f *Field) AddValidators(validators ...validator.Validator) {
	f.validators = append(f.validators, validators...)
}

func (f *Field) Kind() Kind {
	return f.kind
}

func (f *Field) Required() bool {
	return f.opts.Required
}

func (f *Field) EmptyValue() any {
	return f.opts.EmptyValue
}

// Regexp returns pattern of regex field, nil for other kinds.
func (f *Field) Regexp() *regexp.Regexp {
	return f.regex
}

// Options returns options field was built with.
func (f *Field) Options() Options {
	return f.Clone().opts
}

// Validators returns copy of validators in the order they run.
func (f *Field) Validators() []validator.Validator {
	return append([]validator.Validator(nil), f.validators...)
}

// Message returns message reported for key.
func (f *Field) Message(key string) string {
	return f.messages[key]
}

// checkLimit rejects limits which numbers can not be compared with.
func checkLimit(name string, l any) error {
	if l == nil {
		return nil
	}

	if _, err := validator.Compare(l, 0); err != nil {
		return fmt.Errorf("%w: %s %v (%T)", ErrInvalidLimit, name, l, l)
	}

	return nil
}

func limit(n *int) int {
	if n == nil {
		return validator.Unbounded
	}

	return *n
}
