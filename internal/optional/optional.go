// Package optional provides a small container that distinguishes "a value was
// assigned" from "the zero value happens to be stored". Presence is tracked by
// a flag, never by a sentinel value.
package optional

// Some creates a Value that holds v.
func Some[T any](v T) Value[T] {
	return Value[T]{
		item: v,
		ok:   true,
	}
}

// None creates an empty Value of type T.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Value represents a value of type T that may be absent.
// The zero Value is absent.
type Value[T any] struct {
	item T
	ok   bool
}

// Present returns true if the Value holds something.
func (v Value[T]) Present() bool {
	return v.ok
}

// Get returns the held value and a boolean indicating presence.
// If the Value is absent, it returns (zero value, false).
func (v Value[T]) Get() (T, bool) {
	return v.item, v.ok
}

// GetOrDefault returns the held value if present, otherwise the provided
// fallback.
func (v Value[T]) GetOrDefault(fallback T) T {
	if !v.ok {
		return fallback
	}
	return v.item
}

// Raw returns the held value without checking presence. Absent Values yield
// the zero value of T; use Get or Present to tell the two apart.
func (v Value[T]) Raw() T {
	return v.item
}
