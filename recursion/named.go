// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package recursion

import (
	"iter"

	"gopkg.microglot.org/recursion.go/optional"
)

// CallTwiceRecursion derives the retained value and the returned value with
// two separate calls to the step function. The step function must not have
// side effects because each transition runs it twice.
type CallTwiceRecursion[V any] struct {
	e engine[V, callTwice[V]]
}

// NewCallTwiceRecursion returns a sequence that starts after initial. An
// absent initial value produces an exhausted sequence.
func NewCallTwiceRecursion[V any](initial optional.Optional[V], step StepFunc[V]) *CallTwiceRecursion[V] {
	return &CallTwiceRecursion[V]{e: newEngine[V, callTwice[V]](initial, step)}
}

// Next returns the value following the retained one and advances the retained
// value to it. The result is absent once the sequence is exhausted.
func (r *CallTwiceRecursion[V]) Next() optional.Optional[V] {
	return r.e.next()
}

// Set replaces the retained value and returns the previous one.
func (r *CallTwiceRecursion[V]) Set(v V) optional.Optional[V] {
	return r.e.set(v)
}

// Clear removes the retained value, exhausting the sequence, and returns the
// previous one.
func (r *CallTwiceRecursion[V]) Clear() optional.Optional[V] {
	return r.e.clear()
}

// All ranges over the remaining values. See Seq.
func (r *CallTwiceRecursion[V]) All() iter.Seq[V] {
	return Seq[V](r)
}

// CopyRecursion calls the step function once per transition and copies the
// result by assignment into both the retained state and the return value.
type CopyRecursion[V any] struct {
	e engine[V, copyNew[V]]
}

// NewCopyRecursion returns a sequence that starts after initial. An absent
// initial value produces an exhausted sequence.
func NewCopyRecursion[V any](initial optional.Optional[V], step StepFunc[V]) *CopyRecursion[V] {
	return &CopyRecursion[V]{e: newEngine[V, copyNew[V]](initial, step)}
}

// Next advances the retained value and returns a copy of it.
func (r *CopyRecursion[V]) Next() optional.Optional[V] {
	return r.e.next()
}

func (r *CopyRecursion[V]) Set(v V) optional.Optional[V] {
	return r.e.set(v)
}

func (r *CopyRecursion[V]) Clear() optional.Optional[V] {
	return r.e.clear()
}

// All ranges over the remaining values. See Seq.
func (r *CopyRecursion[V]) All() iter.Seq[V] {
	return Seq[V](r)
}

// CloneRecursion calls the step function once per transition and hands the
// caller a Clone of the retained value.
type CloneRecursion[V Cloner[V]] struct {
	e engine[V, cloneNew[V]]
}

// NewCloneRecursion returns a sequence that starts after initial. An absent
// initial value produces an exhausted sequence.
func NewCloneRecursion[V Cloner[V]](initial optional.Optional[V], step StepFunc[V]) *CloneRecursion[V] {
	return &CloneRecursion[V]{e: newEngine[V, cloneNew[V]](initial, step)}
}

// Next advances the retained value and returns a Clone of it.
func (r *CloneRecursion[V]) Next() optional.Optional[V] {
	return r.e.next()
}

func (r *CloneRecursion[V]) Set(v V) optional.Optional[V] {
	return r.e.set(v)
}

func (r *CloneRecursion[V]) Clear() optional.Optional[V] {
	return r.e.clear()
}

// All ranges over the remaining values. See Seq.
func (r *CloneRecursion[V]) All() iter.Seq[V] {
	return Seq[V](r)
}
