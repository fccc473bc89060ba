// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package fibonacci generates Fibonacci-style sequences on top of the recursion
// engines. A sequence is defined by a pair (x, y) where x is the current term
// and y the one after it; each step produces (y, x+y).
package fibonacci

import (
	"fmt"
	"iter"
	"math"
	"math/big"
	"strconv"
	"strings"

	xiter "gopkg.microglot.org/recursion.go/internal/iter"
	"gopkg.microglot.org/recursion.go/optional"
	"gopkg.microglot.org/recursion.go/recursion"
)

// Pair holds two consecutive terms.
type Pair struct {
	X uint64
	Y uint64
}

// Start is the classic seed, F(0) and F(1).
var Start = Pair{X: 0, Y: 1}

func (p Pair) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Step advances a pair by one term. The sequence ends rather than wrap when the
// following term does not fit in a uint64.
func Step(p Pair) optional.Optional[Pair] {
	if p.Y > math.MaxUint64-p.X {
		return optional.None[Pair]()
	}
	return optional.Some(Pair{X: p.Y, Y: p.X + p.Y})
}

func first(p Pair) uint64 {
	return p.X
}

// Sequence yields the first term of every pair produced by a CopyRecursion.
type Sequence struct {
	pairs *recursion.CopyRecursion[Pair]
	terms xiter.Iterator[uint64]
}

// New returns a sequence seeded with Start.
func New() *Sequence {
	return NewSeeded(Start)
}

func NewSeeded(seed Pair) *Sequence {
	pairs := recursion.NewCopyRecursion(optional.Some(seed), Step)
	return &Sequence{
		pairs: pairs,
		terms: xiter.NewMap[Pair, uint64](pairs, first),
	}
}

func (s *Sequence) Next() optional.Optional[uint64] {
	return s.terms.Next()
}

// Set restarts the sequence from a new pair and returns the pair it replaced.
func (s *Sequence) Set(p Pair) optional.Optional[Pair] {
	return s.pairs.Set(p)
}

func (s *Sequence) All() iter.Seq[uint64] {
	return recursion.Seq[uint64](s)
}

// TwiceSequence is the same as Sequence but built on a CallTwiceRecursion. Step
// is pure so both engines produce identical terms.
type TwiceSequence struct {
	pairs *recursion.CallTwiceRecursion[Pair]
	terms xiter.Iterator[uint64]
}

func NewTwice(seed Pair) *TwiceSequence {
	pairs := recursion.NewCallTwiceRecursion(optional.Some(seed), Step)
	return &TwiceSequence{
		pairs: pairs,
		terms: xiter.NewMap[Pair, uint64](pairs, first),
	}
}

func (s *TwiceSequence) Next() optional.Optional[uint64] {
	return s.terms.Next()
}

func (s *TwiceSequence) Set(p Pair) optional.Optional[Pair] {
	return s.pairs.Set(p)
}

// BigPair holds two consecutive terms with arbitrary precision.
type BigPair struct {
	X *big.Int
	Y *big.Int
}

func NewBigPair(p Pair) BigPair {
	return BigPair{
		X: new(big.Int).SetUint64(p.X),
		Y: new(big.Int).SetUint64(p.Y),
	}
}

// Clone returns a pair that shares no memory with p.
func (p BigPair) Clone() BigPair {
	return BigPair{
		X: new(big.Int).Set(p.X),
		Y: new(big.Int).Set(p.Y),
	}
}

// BigStep never ends the sequence.
func BigStep(p BigPair) optional.Optional[BigPair] {
	return optional.Some(BigPair{
		X: new(big.Int).Set(p.Y),
		Y: new(big.Int).Add(p.X, p.Y),
	})
}

// BigSequence yields unbounded terms from a CloneRecursion. Every returned
// value may be modified by the caller without affecting the sequence.
type BigSequence struct {
	pairs *recursion.CloneRecursion[BigPair]
}

func NewBig(seed BigPair) *BigSequence {
	return &BigSequence{
		pairs: recursion.NewCloneRecursion(optional.Some(seed), BigStep),
	}
}

func (s *BigSequence) Next() optional.Optional[*big.Int] {
	return optional.Map(s.pairs.Next(), func(p BigPair) *big.Int {
		return p.X
	})
}

func (s *BigSequence) Set(p BigPair) optional.Optional[BigPair] {
	return s.pairs.Set(p)
}

// ParsePair reads a pair written as "x,y".
func ParsePair(s string) (Pair, error) {
	x, y, ok := strings.Cut(s, ",")
	x, y = strings.TrimSpace(x), strings.TrimSpace(y)
	if !ok || x == "" || y == "" {
		return Pair{}, fmt.Errorf("expected two comma separated terms, got %q", s)
	}
	px, err := strconv.ParseUint(x, 10, 64)
	if err != nil {
		return Pair{}, err
	}
	py, err := strconv.ParseUint(y, 10, 64)
	if err != nil {
		return Pair{}, err
	}
	return Pair{X: px, Y: py}, nil
}
