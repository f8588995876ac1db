package core

import "fmt"

// Option holds zero or one value. It replaces sentinel values and errors
// for the expected-absence case of the ...OrNone queries.
type Option[T any] struct {
	value    T
	hasValue bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, hasValue: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// HasValue reports whether the Option holds a value.
func (o Option[T]) HasValue() bool {
	return o.hasValue
}

// Value returns the held value. It panics with an error wrapping ErrNoValue
// when the Option is empty; check HasValue or use Get when absence is
// expected.
func (o Option[T]) Value() T {
	if !o.hasValue {
		panic(fmt.Errorf("core: Option[%T].Value: %w", o.value, ErrNoValue))
	}
	return o.value
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.hasValue
}

// GetValueOrDefault returns the value, or the zero value of T if absent.
func (o Option[T]) GetValueOrDefault() T {
	return o.value
}

// GetValueOr returns the value, or fallback if absent.
func (o Option[T]) GetValueOr(fallback T) T {
	if !o.hasValue {
		return fallback
	}
	return o.value
}

// ValueOrError returns the value, or err if absent.
func (o Option[T]) ValueOrError(err error) (T, error) {
	if !o.hasValue {
		var zero T
		return zero, err
	}
	return o.value, nil
}

func (o Option[T]) String() string {
	if !o.hasValue {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Bounds is the result of a combined min/max scan.
type Bounds[T any] struct {
	Min T
	Max T
}
