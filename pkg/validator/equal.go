package validator

import "reflect"

// Equal tells whether a and b are the same kind of validator configured with the same limits and message.
// Func validators are never equal, not even to themselves.
func Equal(a, b Validator) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	switch av := a.(type) {
	case MinValue:
		bv := b.(MinValue)
		return av.Msg == bv.Msg && equalLimits(av.Limit, bv.Limit)
	case MaxValue:
		bv := b.(MaxValue)
		return av.Msg == bv.Msg && equalLimits(av.Limit, bv.Limit)
	case Regex:
		bv := b.(Regex)
		return av.Msg == bv.Msg && av.source.String() == bv.source.String()
	case Func:
		return false
	}

	if !reflect.TypeOf(a).Comparable() {
		return false
	}

	return a == b
}
