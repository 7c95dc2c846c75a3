package source

import "net/url"

// Form is Source backed by url encoded form values.
// Single value is exposed as string, repeated values as []string.
type Form url.Values

func NewForm(values url.Values) Form {
	return Form(values)
}

func (f Form) Lookup(name string) (any, bool) {
	vals, ok := f[name]
	if !ok {
		return nil, false
	}

	switch len(vals) {
	case 0:
		return nil, true
	case 1:
		return vals[0], true
	default:
		return append([]string(nil), vals...), true
	}
}

func (f Form) Len() int {
	return len(f)
}
