// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package optional provides a value that may or may not be present. The zero
// value of Optional is absent.
package optional

import "fmt"

type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

// Value returns the contained value or the zero value of T when absent.
func (self Optional[T]) Value() T {
	return self.value
}

func (self Optional[T]) Get() (T, bool) {
	return self.value, self.present
}

func (self Optional[T]) OrElse(fallback T) T {
	if !self.present {
		return fallback
	}
	return self.value
}

func (self Optional[T]) String() string {
	if !self.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", self.value)
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPair converts the common Go (value, ok) return shape into an Optional.
func FromPair[T any](v T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Map applies f to the contained value, if any.
func Map[T any, U any](o Optional[T], f func(T) U) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMap applies f to the contained value, if any, and returns its result
// without wrapping it again.
func FlatMap[T any, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return f(o.value)
}
