package validator

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/pawelWritesCode/gdform/pkg/types"
)

var (
	// PhonePattern matches mainland China mobile numbers.
	PhonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

	// EmailPattern matches simple dotted addresses. Word characters are Unicode aware.
	EmailPattern = regexp.MustCompile(`^[\p{L}\p{N}_-]+(\.[\p{L}\p{N}_-]+)*@[\p{L}\p{N}_-]+(\.[\p{L}\p{N}_-]+)+$`)
)

// Regex fails when value does not match whole pattern.
type Regex struct {
	source   *regexp.Regexp
	anchored *regexp.Regexp
	Msg      string
}

// Phone fails when value is not a mobile phone number, see PhonePattern.
type Phone struct {
	Msg string
}

// Email fails when value is not an e-mail address, see EmailPattern.
type Email struct {
	Msg string
}

// UUID fails when value can not be parsed as UUID.
type UUID struct {
	Msg string
}

// NullCharacters fails when text representation of value contains NUL character.
type NullCharacters struct {
	Msg string
}

// NewRegex returns Regex matching re against whole value.
func NewRegex(re *regexp.Regexp) Regex {
	return Regex{
		source:   re,
		anchored: regexp.MustCompile(`^(?:` + re.String() + `)$`),
		Msg:      "no match valid data",
	}
}

func NewPhone() Phone {
	return Phone{Msg: "invalid phone"}
}

func NewEmail() Email {
	return Email{Msg: "invalid email"}
}

func NewUUID() UUID {
	return UUID{Msg: "invalid uuid value"}
}

func NewNullCharacters() NullCharacters {
	return NullCharacters{Msg: "Null characters are not allowed."}
}

// Regexp returns pattern Regex was built from.
func (v Regex) Regexp() *regexp.Regexp {
	return v.source
}

// Validate checks whether whole in matches pattern.
func (v Regex) Validate(in any) error {
	s, ok := in.(string)
	if !ok {
		return unsupported(in, "string")
	}

	if !v.anchored.MatchString(s) {
		return NewError(CodeRegex, v.Msg)
	}

	return nil
}

// Validate checks whether in is a phone number.
func (v Phone) Validate(in any) error {
	s, ok := in.(string)
	if !ok {
		return unsupported(in, "string")
	}

	if !PhonePattern.MatchString(s) {
		return NewError(CodePhone, v.Msg)
	}

	return nil
}

// Validate checks whether in is an e-mail address.
func (v Email) Validate(in any) error {
	s, ok := in.(string)
	if !ok {
		return unsupported(in, "string")
	}

	if !EmailPattern.MatchString(s) {
		return NewError(CodeEmail, v.Msg)
	}

	return nil
}

// Validate checks whether in is uuid.UUID or text parsable as one.
func (v UUID) Validate(in any) error {
	switch t := in.(type) {
	case uuid.UUID:
		return nil
	case string:
		if _, err := uuid.Parse(t); err != nil {
			return NewError(CodeUUID, v.Msg)
		}

		return nil
	default:
		return NewError(CodeUUID, v.Msg)
	}
}

// Validate checks whether in is free of NUL characters.
func (v NullCharacters) Validate(in any) error {
	if strings.ContainsRune(types.Stringify(in), 0) {
		return NewError(CodeNullCharacters, v.Msg)
	}

	return nil
}
