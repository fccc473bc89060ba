// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package recursion produces sequences defined by repeatedly applying a step
// function to a seed value.
//
// A sequence is driven by an engine that holds the most recent value and the
// step function. Every call to Next derives a new value from the retained one.
// The engine must both keep the new value for the following call and hand it
// to the caller, and the three strategies differ in how they obtain those two
// instances:
//
//   - CallTwiceRecursion calls the step function a second time. The value type
//     needs no duplication support but the step function must be pure.
//   - CopyRecursion calls the step function once and copies the result by
//     assignment. Values that hold pointers, slices or maps share that memory
//     between the caller and the engine.
//   - CloneRecursion calls the step function once and duplicates the result
//     with its Clone method.
//
// The sequence ends the first time the step function returns an absent value.
// It stays exhausted until a new value is installed with Set.
//
// None of the types in this package are safe for concurrent use.
package recursion

import (
	"gopkg.microglot.org/recursion.go/optional"
)

// StepFunc derives the value that follows v. Returning an absent value ends the
// sequence.
type StepFunc[V any] func(v V) optional.Optional[V]

// Cloner is implemented by values that can produce an independent duplicate of
// themselves.
type Cloner[V any] interface {
	Clone() V
}

// strategy produces the value returned from Next while also advancing the
// retained state. Implementations are zero sized and selected through a type
// parameter so the choice is fixed for the life of an engine.
type strategy[V any] interface {
	advance(current *optional.Optional[V], step StepFunc[V]) optional.Optional[V]
}

type engine[V any, S strategy[V]] struct {
	current optional.Optional[V]
	step    StepFunc[V]
}

func newEngine[V any, S strategy[V]](initial optional.Optional[V], step StepFunc[V]) engine[V, S] {
	return engine[V, S]{
		current: initial,
		step:    step,
	}
}

func (e *engine[V, S]) next() optional.Optional[V] {
	var s S
	return s.advance(&e.current, e.step)
}

func (e *engine[V, S]) set(v V) optional.Optional[V] {
	previous := e.current
	e.current = optional.Some(v)
	return previous
}

func (e *engine[V, S]) clear() optional.Optional[V] {
	previous := e.current
	e.current = optional.None[V]()
	return previous
}

// apply runs step against o when present.
func apply[V any](o optional.Optional[V], step StepFunc[V]) optional.Optional[V] {
	if !o.IsPresent() {
		return o
	}
	return step(o.Value())
}

type callTwice[V any] struct{}

func (callTwice[V]) advance(current *optional.Optional[V], step StepFunc[V]) optional.Optional[V] {
	preview := apply(*current, step)
	old := *current
	*current = preview
	return apply(old, step)
}

type copyNew[V any] struct{}

func (copyNew[V]) advance(current *optional.Optional[V], step StepFunc[V]) optional.Optional[V] {
	*current = apply(*current, step)
	return *current
}

type cloneNew[V Cloner[V]] struct{}

func (cloneNew[V]) advance(current *optional.Optional[V], step StepFunc[V]) optional.Optional[V] {
	*current = apply(*current, step)
	if !current.IsPresent() {
		return *current
	}
	return optional.Some(current.Value().Clone())
}
