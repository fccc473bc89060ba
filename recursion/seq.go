// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package recursion

import (
	"iter"

	"gopkg.microglot.org/recursion.go/optional"
)

// Iterator is the pull shape shared by every recursion type.
type Iterator[V any] interface {
	Next() optional.Optional[V]
}

// Sequence is an Iterator that can be reseeded or exhausted by its owner.
type Sequence[V any] interface {
	Iterator[V]
	Set(v V) optional.Optional[V]
	Clear() optional.Optional[V]
}

var (
	_ Sequence[int] = (*CallTwiceRecursion[int])(nil)
	_ Sequence[int] = (*CopyRecursion[int])(nil)
)

// Seq adapts an Iterator for use with range. Iteration stops at the first
// absent value. Stopping the loop early leaves the iterator positioned after
// the last value that was yielded, so a later Seq or Next call resumes from
// there.
func Seq[V any](it Iterator[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v := it.Next()
			if !v.IsPresent() {
				return
			}
			if !yield(v.Value()) {
				return
			}
		}
	}
}
