package fibonacci

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/recursion.go/internal/exc"
	xiter "gopkg.microglot.org/recursion.go/internal/iter"
	"gopkg.microglot.org/recursion.go/optional"
)

var (
	firstTen    = []uint64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	reseededTen = []uint64{2, 3, 5, 8, 13, 21, 34, 55, 89, 144}
)

func TestSequence(t *testing.T) {
	t.Parallel()

	seq := New()
	require.Equal(t, firstTen, xiter.Collect(xiter.NewLimit[uint64](seq, 10)))

	prev := seq.Set(Pair{X: 1, Y: 2})
	require.Equal(t, optional.Some(Pair{X: 55, Y: 89}), prev)
	require.Equal(t, reseededTen, xiter.Collect(xiter.NewLimit[uint64](seq, 10)))
}

func TestSequenceAll(t *testing.T) {
	t.Parallel()

	var out []uint64
	for v := range New().All() {
		out = append(out, v)
		if len(out) == len(firstTen) {
			break
		}
	}
	require.Equal(t, firstTen, out)
}

func TestSequenceOverflow(t *testing.T) {
	t.Parallel()

	var last uint64
	count := 0
	for v := range New().All() {
		require.GreaterOrEqual(t, v, last)
		last = v
		count = count + 1
	}
	// F(93) is the largest Fibonacci number that fits in a uint64. The final
	// pair (F(92), F(93)) has no successor so F(92) is the last term returned.
	require.Equal(t, 92, count)
	require.Equal(t, uint64(7540113804746346429), last)

	require.False(t, Step(Pair{X: math.MaxUint64, Y: 1}).IsPresent())
	require.Equal(t, optional.Some(Pair{X: 1, Y: math.MaxUint64}), Step(Pair{X: math.MaxUint64 - 1, Y: 1}))
}

func TestTwiceSequence(t *testing.T) {
	t.Parallel()

	seq := NewTwice(Start)
	require.Equal(t, firstTen, xiter.Collect(xiter.NewLimit[uint64](seq, 10)))
	seq.Set(Pair{X: 1, Y: 2})
	require.Equal(t, reseededTen, xiter.Collect(xiter.NewLimit[uint64](seq, 10)))
}

func TestBigSequence(t *testing.T) {
	t.Parallel()

	seq := NewBig(NewBigPair(Start))
	for _, expected := range firstTen {
		v := seq.Next()
		require.True(t, v.IsPresent())
		require.Equal(t, new(big.Int).SetUint64(expected).String(), v.Value().String())
		// Mutating a returned term must not disturb the sequence.
		v.Value().SetInt64(-1)
	}

	for x := 10; x < 100; x = x + 1 {
		require.True(t, seq.Next().IsPresent())
	}
	// F(101)
	require.Equal(t, "573147844013817084101", seq.Next().Value().String())

	seq.Set(NewBigPair(Pair{X: 1, Y: 2}))
	require.Equal(t, "2", seq.Next().Value().String())
}

func TestBigPairClone(t *testing.T) {
	t.Parallel()

	p := NewBigPair(Pair{X: 3, Y: 5})
	c := p.Clone()
	c.X.SetInt64(100)
	require.Equal(t, int64(3), p.X.Int64())
	require.Equal(t, int64(5), c.Y.Int64())
}

func TestGenerator(t *testing.T) {
	t.Parallel()

	for _, strategy := range Strategies {
		t.Run(string(strategy), func(t *testing.T) {
			t.Parallel()

			gen, err := NewGenerator(strategy, Start)
			require.NoError(t, err)
			for _, expected := range firstTen {
				v := gen.Next()
				require.True(t, v.IsPresent())
				require.Equal(t, new(big.Int).SetUint64(expected).String(), v.Value())
			}
			gen.Reseed(Pair{X: 1, Y: 2})
			for _, expected := range reseededTen {
				require.Equal(t, optional.Some(new(big.Int).SetUint64(expected).String()), gen.Next())
			}
		})
	}

	_, err := NewGenerator("nope", Start)
	require.Error(t, err)
	e, ok := err.(exc.Exception)
	require.True(t, ok)
	require.Equal(t, exc.CodeUnknownStrategy, e.Code())
}

func TestParsePair(t *testing.T) {
	t.Parallel()

	p, err := ParsePair("0,1")
	require.NoError(t, err)
	require.Equal(t, Start, p)

	p, err = ParsePair(" 1 , 2 ")
	require.NoError(t, err)
	require.Equal(t, Pair{X: 1, Y: 2}, p)
	require.Equal(t, "1,2", p.String())

	for _, bad := range []string{"", "1", "1,", ",2", "a,1", "1,-2", "1,2,3"} {
		_, err := ParsePair(bad)
		require.Error(t, err, bad)
	}
}

func TestTake(t *testing.T) {
	t.Parallel()

	cases := []struct {
		parity   Parity
		expected []string
	}{
		{parity: ParityAll, expected: []string{"1", "1", "2", "3", "5", "8", "13", "21", "34", "55"}},
		{parity: ParityEven, expected: []string{"2", "8", "34"}},
		{parity: ParityOdd, expected: []string{"1", "1", "3", "5", "13", "21", "55"}},
	}
	for _, c := range cases {
		t.Run(string(c.parity), func(t *testing.T) {
			t.Parallel()

			gen, err := NewGenerator(StrategyClone, Start)
			require.NoError(t, err)
			out, drawn, err := Take(gen, 10, c.parity)
			require.NoError(t, err)
			require.Equal(t, c.expected, out)
			require.Equal(t, 10, drawn)
			require.Equal(t, optional.Some("89"), gen.Next())
		})
	}

	// A window that never matches still terminates.
	gen, err := NewGenerator(StrategyCopy, Pair{X: 0, Y: 0})
	require.NoError(t, err)
	out, drawn, err := Take(gen, 5, ParityOdd)
	require.NoError(t, err)
	require.Empty(t, out)
	require.Equal(t, 5, drawn)

	gen, err = NewGenerator(StrategyTwice, Pair{X: 4660046610375530309, Y: 7540113804746346429})
	require.NoError(t, err)
	out, drawn, err = Take(gen, 5, ParityEven)
	require.NoError(t, err)
	require.Empty(t, out)
	require.Equal(t, 1, drawn)

	_, _, err = Take(gen, 5, "prime")
	require.Error(t, err)
	e, ok := err.(exc.Exception)
	require.True(t, ok)
	require.Equal(t, exc.CodeUnknownParity, e.Code())
}
