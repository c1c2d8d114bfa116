package groebner

import (
	"github.com/dolthub/swiss"

	"github.com/jonathanmweiss/go-groebner/field"
)

// CriticalPair is an unordered pair of basis elements. {f, g} and {g, f} are the same pair.
type CriticalPair struct {
	F, G *field.Polynomial

	key string
}

func NewCriticalPair(f, g *field.Polynomial) CriticalPair {
	kf, kg := f.Key(), g.Key()
	if kg < kf {
		f, g = g, f
		kf, kg = kg, kf
	}

	return CriticalPair{F: f, G: g, key: kf + "&" + kg}
}

// Key identifies the pair independently of the order of its members.
func (c CriticalPair) Key() string {
	return c.key
}

// LcmDegree is the total degree of lcm(lt(F), lt(G)).
func (c CriticalPair) LcmDegree() int {
	return c.F.LeadingMonomial().Exps.Lcm(c.G.LeadingMonomial().Exps).Degree()
}

/*
PendingSet is the worklist of critical pairs of one Buchberger run.
It keeps insertion order and suppresses duplicates on insert.
*/
type PendingSet struct {
	pairs []CriticalPair
	index *swiss.Map[string, struct{}]

	// version changes every time the content of the set changes.
	version uint64
}

func NewPendingSet() *PendingSet {
	return &PendingSet{
		index: swiss.NewMap[string, struct{}](16),
	}
}

// Add inserts c unless an equal pair is already pending.
func (s *PendingSet) Add(c CriticalPair) (added bool) {
	if s.index.Has(c.key) {
		return false
	}

	s.index.Put(c.key, struct{}{})
	s.pairs = append(s.pairs, c)
	s.version++

	return true
}

func (s *PendingSet) Len() int {
	return len(s.pairs)
}

func (s *PendingSet) At(i int) CriticalPair {
	return s.pairs[i]
}

// RemoveAt removes and returns the i-th pair, keeping the order of the others.
func (s *PendingSet) RemoveAt(i int) CriticalPair {
	c := s.pairs[i]

	copy(s.pairs[i:], s.pairs[i+1:])
	s.pairs[len(s.pairs)-1] = CriticalPair{}
	s.pairs = s.pairs[:len(s.pairs)-1]

	s.index.Delete(c.key)
	s.version++

	return c
}

func (s *PendingSet) Version() uint64 {
	return s.version
}

func (s *PendingSet) Contains(c CriticalPair) bool {
	return s.index.Has(c.key)
}
