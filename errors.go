package gdform

import "errors"

// ErrNotValidated tells that cleaned data was requested before form was validated.
var ErrNotValidated = errors.New("form has not been validated, call IsValid or Errors first")

// ErrInvalidData tells that cleaned data was requested from form which failed validation.
var ErrInvalidData = errors.New("form data failed validation")

// ErrEmptyFieldName tells that schema declares field without name.
var ErrEmptyFieldName = errors.New("field name should not be empty")
