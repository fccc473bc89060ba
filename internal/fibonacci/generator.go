package fibonacci

import (
	"math/big"
	"strconv"

	"gopkg.microglot.org/recursion.go/internal/exc"
	"gopkg.microglot.org/recursion.go/optional"
)

// Strategy names the recursion engine a Generator is built on.
type Strategy string

const (
	StrategyCopy  Strategy = "copy"
	StrategyClone Strategy = "clone"
	StrategyTwice Strategy = "twice"
)

// Strategies lists every accepted Strategy.
var Strategies = []Strategy{StrategyCopy, StrategyClone, StrategyTwice}

// Generator yields decimal terms regardless of the underlying engine.
type Generator interface {
	Next() optional.Optional[string]
	// Reseed restarts the sequence from p.
	Reseed(p Pair)
}

// NewGenerator builds a Generator seeded with seed.
func NewGenerator(strategy Strategy, seed Pair) (Generator, error) {
	switch strategy {
	case StrategyCopy:
		return &uintGenerator[*Sequence]{seq: NewSeeded(seed)}, nil
	case StrategyTwice:
		return &uintGenerator[*TwiceSequence]{seq: NewTwice(seed)}, nil
	case StrategyClone:
		return &bigGenerator{seq: NewBig(NewBigPair(seed))}, nil
	default:
		return nil, exc.Newf("strategy", exc.CodeUnknownStrategy, "unknown strategy %q", string(strategy))
	}
}

type uintSequence interface {
	Next() optional.Optional[uint64]
	Set(p Pair) optional.Optional[Pair]
}

type uintGenerator[S uintSequence] struct {
	seq S
}

func (g *uintGenerator[S]) Next() optional.Optional[string] {
	return optional.Map(g.seq.Next(), func(v uint64) string {
		return strconv.FormatUint(v, 10)
	})
}

func (g *uintGenerator[S]) Reseed(p Pair) {
	g.seq.Set(p)
}

type bigGenerator struct {
	seq *BigSequence
}

func (g *bigGenerator) Next() optional.Optional[string] {
	return optional.Map(g.seq.Next(), func(v *big.Int) string {
		return v.String()
	})
}

func (g *bigGenerator) Reseed(p Pair) {
	g.seq.Set(NewBigPair(p))
}
