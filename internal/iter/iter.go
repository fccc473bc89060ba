// Package iter contains adaptors for iterators that return one optional value
// per Next call.
package iter

import (
	"gopkg.microglot.org/recursion.go/optional"
)

// Iterator has the same shape as recursion.Iterator so any recursion type can
// be passed to the adaptors in this package.
type Iterator[T any] interface {
	Next() optional.Optional[T]
}

type Filter[T any] interface {
	Keep(v T) bool
}

// NewIteratorFilter wraps an iterator with a filter so that only values that
// pass the filter are returned.
func NewIteratorFilter[T any](it Iterator[T], f Filter[T]) Iterator[T] {
	return &iteratorFilter[T]{
		iter:   it,
		filter: f,
	}
}

type iteratorFilter[T any] struct {
	iter   Iterator[T]
	filter Filter[T]
}

// Next skips rejected values. It never returns if the underlying iterator is
// unbounded and no further value passes the filter.
func (it *iteratorFilter[T]) Next() optional.Optional[T] {
	for {
		v := it.iter.Next()
		if !v.IsPresent() {
			return v
		}
		if it.filter.Keep(v.Value()) {
			return v
		}
	}
}

// NewMap projects every value of an iterator through f.
func NewMap[T any, U any](it Iterator[T], f func(T) U) Iterator[U] {
	return &iteratorMap[T, U]{
		iter: it,
		f:    f,
	}
}

type iteratorMap[T any, U any] struct {
	iter Iterator[T]
	f    func(T) U
}

func (it *iteratorMap[T, U]) Next() optional.Optional[U] {
	return optional.Map(it.iter.Next(), it.f)
}

// NewLimit stops after at most n values. The wrapped iterator is not advanced
// past the nth value so it can continue to be used afterwards.
func NewLimit[T any](it Iterator[T], n int) Iterator[T] {
	return &iteratorLimit[T]{
		iter:      it,
		remaining: n,
	}
}

type iteratorLimit[T any] struct {
	iter      Iterator[T]
	remaining int
}

func (it *iteratorLimit[T]) Next() optional.Optional[T] {
	if it.remaining <= 0 {
		return optional.None[T]()
	}
	it.remaining = it.remaining - 1
	return it.iter.Next()
}

// Collect drains an iterator into a slice. The iterator must be finite.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for {
		v := it.Next()
		if !v.IsPresent() {
			return out
		}
		out = append(out, v.Value())
	}
}

// FilterFunc is an adaptor for simple filter functions that makes them
// compatible with the Filter interface. Use like:
//
//	FilterFunc[T](func(val T) bool { return true })
//
// Note that this type should never be referenced directly in any signature.
// Always use Filter as an input or output type.
type FilterFunc[T any] func(val T) bool

func (f FilterFunc[T]) Keep(val T) bool {
	return f(val)
}
