package groebner

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy names one of the built-in pair selection policies.
type Strategy string

const (
	StrategyRandom Strategy = "random"
	StrategyFirst  Strategy = "first"
	StrategyDegree Strategy = "degree"
)

// Strategies lists the built-in strategies in the order benchmarks report them.
var Strategies = []Strategy{StrategyRandom, StrategyFirst, StrategyDegree}

var ErrUnknownStrategy = errors.New("unknown pair selection strategy")

func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Strategies {
		if s == known {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Selector picks the next critical pair to process. Only the scheduling differs
// between selectors; every selector leads to a Gröbner basis of the same ideal.
type Selector interface {
	Name() string
	// Select removes one pair from a non-empty pending set and returns it.
	Select(p *PendingSet) CriticalPair
}

// NewSelector builds the selector for a strategy. rng is only used by StrategyRandom.
func NewSelector(s Strategy, rng RandSource) (Selector, error) {
	switch s {
	case StrategyRandom:
		if rng == nil {
			return nil, errors.New("random selection needs a random source")
		}

		return &RandomSelector{rng: rng}, nil
	case StrategyFirst:
		return &FirstSelector{}, nil
	case StrategyDegree:
		return &DegreeSelector{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// RandomSelector picks a pending pair uniformly at random.
type RandomSelector struct {
	rng RandSource
}

func NewRandomSelector(rng RandSource) *RandomSelector {
	return &RandomSelector{rng: rng}
}

func (s *RandomSelector) Name() string { return string(StrategyRandom) }

func (s *RandomSelector) Select(p *PendingSet) CriticalPair {
	return p.RemoveAt(s.rng.IntN(p.Len()))
}

// FirstSelector processes pairs in insertion order.
type FirstSelector struct{}

func (s *FirstSelector) Name() string { return string(StrategyFirst) }

func (s *FirstSelector) Select(p *PendingSet) CriticalPair {
	return p.RemoveAt(0)
}

/*
DegreeSelector picks the pair with the smallest lcm degree of its leading terms,
the earliest inserted one on ties.

The weights are recomputed from scratch whenever pairs were added since the
last selection.
*/
type DegreeSelector struct {
	weights []int
	set     *PendingSet
	version uint64
}

func (s *DegreeSelector) Name() string { return string(StrategyDegree) }

func (s *DegreeSelector) Select(p *PendingSet) CriticalPair {
	if s.set != p || s.version != p.Version() {
		s.recompute(p)
	}

	best := 0
	for i, w := range s.weights {
		if w < s.weights[best] {
			best = i
		}
	}

	c := p.RemoveAt(best)
	s.weights = append(s.weights[:best], s.weights[best+1:]...)
	s.version = p.Version()

	return c
}

func (s *DegreeSelector) recompute(p *PendingSet) {
	s.weights = s.weights[:0]
	for i := 0; i < p.Len(); i++ {
		s.weights = append(s.weights, p.At(i).LcmDegree())
	}

	s.set = p
	s.version = p.Version()
}
