package fibonacci

import (
	"gopkg.microglot.org/recursion.go/internal/exc"
	xiter "gopkg.microglot.org/recursion.go/internal/iter"
)

// Parity selects which decimal terms a Generator's output keeps.
type Parity string

const (
	ParityAll  Parity = "all"
	ParityEven Parity = "even"
	ParityOdd  Parity = "odd"
)

// Take draws at most n terms from gen and keeps those that match p. It also
// reports how many terms were drawn, which is less than n only when gen was
// exhausted.
func Take(gen Generator, n int, p Parity) ([]string, int, error) {
	drawn := 0
	window := xiter.NewMap(xiter.NewLimit[string](gen, n), func(term string) string {
		drawn = drawn + 1
		return term
	})
	var kept []string
	switch p {
	case ParityAll, "":
		kept = xiter.Collect(window)
	case ParityEven, ParityOdd:
		want := p == ParityEven
		keep := xiter.FilterFunc[string](func(term string) bool {
			return isEven(term) == want
		})
		kept = xiter.Collect(xiter.NewIteratorFilter(window, xiter.Filter[string](keep)))
	default:
		return nil, 0, exc.Newf("only", exc.CodeUnknownParity, "unknown parity %q", string(p))
	}
	return kept, drawn, nil
}

func isEven(term string) bool {
	if term == "" {
		return false
	}
	return (term[len(term)-1]-'0')%2 == 0
}
