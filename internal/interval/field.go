package interval

import (
	"encoding/json"
)

const (
	// TagUnset is how an absent tag is rendered.
	TagUnset = "unset"
	// TagInvalid is how an unreadable tag is rendered.
	TagInvalid = "invalid"
)

type fieldState int

const (
	stateUnset fieldState = iota
	stateInvalid
	stateValue
)

// Field holds one resolved piece of an hours object: either a value, or
// one of the two sentinels. The zero Field is unset.
type Field[T any] struct {
	state fieldState
	value T
}

// Unset returns a field for a tag that is absent.
func Unset[T any]() Field[T] {
	return Field[T]{state: stateUnset}
}

// Invalid returns a field for a tag that could not be read.
func Invalid[T any]() Field[T] {
	return Field[T]{state: stateInvalid}
}

// Of wraps a resolved value.
func Of[T any](v T) Field[T] {
	return Field[T]{state: stateValue, value: v}
}

func (f Field[T]) IsUnset() bool   { return f.state == stateUnset }
func (f Field[T]) IsInvalid() bool { return f.state == stateInvalid }
func (f Field[T]) IsSet() bool     { return f.state == stateValue }

// Get returns the value and whether the field holds one.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == stateValue
}

// String returns "unset", "invalid" or "set".
func (f Field[T]) String() string {
	switch f.state {
	case stateInvalid:
		return TagInvalid
	case stateValue:
		return "set"
	default:
		return TagUnset
	}
}

// MarshalJSON writes the sentinel name as a string, or the value itself.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != stateValue {
		return json.Marshal(f.String())
	}
	return json.Marshal(f.value)
}

// MarshalYAML follows the same rules as MarshalJSON.
func (f Field[T]) MarshalYAML() (any, error) {
	if f.state != stateValue {
		return f.String(), nil
	}
	return f.value, nil
}
