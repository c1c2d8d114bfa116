package groebner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriticalPairIsUnordered(t *testing.T) {
	a := assert.New(t)
	r := newTestRing(t, 23, 2)

	f, g := r.MustParse("x1^2 - x2"), r.MustParse("x1*x2 - 1")

	a.Equal(NewCriticalPair(f, g).Key(), NewCriticalPair(g, f).Key())
	a.NotEqual(NewCriticalPair(f, g).Key(), NewCriticalPair(f, f).Key())
	a.Equal(3, NewCriticalPair(f, g).LcmDegree())
}

func TestPendingSet(t *testing.T) {
	a := assert.New(t)
	r := newTestRing(t, 23, 2)

	ps := parseAll(t, r, "x1", "x2", "x1 + x2")

	set := NewPendingSet()
	a.True(set.Add(NewCriticalPair(ps[0], ps[1])))
	a.False(set.Add(NewCriticalPair(ps[1], ps[0])))
	a.True(set.Add(NewCriticalPair(ps[0], ps[2])))
	a.True(set.Add(NewCriticalPair(ps[1], ps[2])))
	a.Equal(3, set.Len())

	v := set.Version()
	c := set.RemoveAt(1)
	a.NotEqual(v, set.Version())
	a.Equal(NewCriticalPair(ps[0], ps[2]).Key(), c.Key())
	a.False(set.Contains(c))
	a.Equal(2, set.Len())

	// order of the remaining pairs is kept.
	a.Equal(NewCriticalPair(ps[0], ps[1]).Key(), set.At(0).Key())
	a.Equal(NewCriticalPair(ps[1], ps[2]).Key(), set.At(1).Key())

	// a removed pair may be queued again.
	a.True(set.Add(c))
}

func TestParseStrategy(t *testing.T) {
	a := assert.New(t)

	for _, s := range Strategies {
		got, err := ParseStrategy(string(s))
		a.NoError(err)
		a.Equal(s, got)

		sel, err := NewSelector(s, NewRand(1))
		a.NoError(err)
		a.Equal(string(s), sel.Name())
	}

	_, err := ParseStrategy("sugar")
	a.ErrorIs(err, ErrUnknownStrategy)

	_, err = NewSelector(StrategyRandom, nil)
	a.Error(err)
}

// degreeFixture returns a set whose pairs have lcm degrees 3, 2, 4, 2 in insertion order.
func degreeFixture(t *testing.T) (*PendingSet, []CriticalPair) {
	r := newTestRing(t, 23, 3)
	ps := parseAll(t, r, "x1^2", "x1*x2", "x3", "x2^2", "x1", "x2")

	pairs := []CriticalPair{
		NewCriticalPair(ps[0], ps[1]), // x1^2*x2
		NewCriticalPair(ps[4], ps[5]), // x1*x2
		NewCriticalPair(ps[0], ps[3]), // x1^2*x2^2
		NewCriticalPair(ps[2], ps[4]), // x1*x3
	}

	set := NewPendingSet()
	for _, c := range pairs {
		set.Add(c)
	}

	return set, pairs
}

func TestFirstSelector(t *testing.T) {
	a := assert.New(t)

	set, pairs := degreeFixture(t)
	sel := &FirstSelector{}

	for _, want := range pairs {
		a.Equal(want.Key(), sel.Select(set).Key())
	}

	a.Zero(set.Len())
}

func TestDegreeSelector(t *testing.T) {
	a := assert.New(t)

	set, pairs := degreeFixture(t)
	sel := &DegreeSelector{}

	// ties go to the earliest inserted pair.
	a.Equal(pairs[1].Key(), sel.Select(set).Key())
	a.Equal(pairs[3].Key(), sel.Select(set).Key())

	// new pairs force a full recomputation of the weights.
	r := newTestRing(t, 23, 3)
	low := NewCriticalPair(r.MustParse("x3"), r.MustParse("x3 + 1"))
	set.Add(low)

	a.Equal(low.Key(), sel.Select(set).Key())
	a.Equal(pairs[0].Key(), sel.Select(set).Key())
	a.Equal(pairs[2].Key(), sel.Select(set).Key())
	a.Zero(set.Len())
}

func TestDegreeSelectorSwitchesSets(t *testing.T) {
	a := assert.New(t)

	sel := &DegreeSelector{}

	set1, pairs := degreeFixture(t)
	a.Equal(pairs[1].Key(), sel.Select(set1).Key())

	set2, pairs := degreeFixture(t)
	a.Equal(pairs[1].Key(), sel.Select(set2).Key())
	a.Equal(pairs[3].Key(), sel.Select(set2).Key())
}

func TestRandomSelector(t *testing.T) {
	a := assert.New(t)

	set, pairs := degreeFixture(t)
	sel := NewRandomSelector(fixedRand(2))

	a.Equal(pairs[2].Key(), sel.Select(set).Key())
	a.Equal(pairs[3].Key(), sel.Select(set).Key())
	a.Equal(pairs[1].Key(), sel.Select(set).Key())
	a.Equal(pairs[0].Key(), sel.Select(set).Key())
}
