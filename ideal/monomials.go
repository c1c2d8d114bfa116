package ideal

import (
	"sync"

	"github.com/floatdrop/lru"

	"github.com/jonathanmweiss/go-groebner/field"
)

type cacheKey struct {
	nvar, degree int
	upTo         bool
}

// monomialCache keeps recent enumerations, which grow quickly with nvar and degree.
type monomialCache struct {
	sync.Locker
	entries *lru.LRU[cacheKey, []field.Exponents]
}

const monomialCacheSize = 64

var enumerations = newMonomialCache(monomialCacheSize)

func newMonomialCache(size int) *monomialCache {
	return &monomialCache{
		Locker:  &sync.Mutex{},
		entries: lru.New[cacheKey, []field.Exponents](size),
	}
}

func (c *monomialCache) load(k cacheKey) []field.Exponents {
	c.Lock()
	defer c.Unlock()

	if v := c.entries.Get(k); v != nil {
		return *v
	}

	return nil
}

func (c *monomialCache) store(k cacheKey, monomials []field.Exponents) {
	c.Lock()
	defer c.Unlock()

	c.entries.Set(k, monomials)
}

/*
AllMonomials lists the exponent vectors in nvar variables of total degree exactly d.
The returned slice is shared: callers must not modify it.
*/
func AllMonomials(nvar, d int) []field.Exponents {
	k := cacheKey{nvar: nvar, degree: d}
	if m := enumerations.load(k); m != nil {
		return m
	}

	var out []field.Exponents
	enumerate(make(field.Exponents, nvar), 0, d, &out)

	enumerations.store(k, out)

	return out
}

// MonomialsUpTo lists the exponent vectors of total degree 1 through d, lowest degree first.
// The returned slice is shared: callers must not modify it.
func MonomialsUpTo(nvar, d int) []field.Exponents {
	k := cacheKey{nvar: nvar, degree: d, upTo: true}
	if m := enumerations.load(k); m != nil {
		return m
	}

	var out []field.Exponents
	for deg := 1; deg <= d; deg++ {
		out = append(out, AllMonomials(nvar, deg)...)
	}

	enumerations.store(k, out)

	return out
}

// enumerate fills positions pos.. of cur with every split of the remaining degree.
func enumerate(cur field.Exponents, pos, remaining int, out *[]field.Exponents) {
	if len(cur) == 0 {
		return
	}

	if pos == len(cur)-1 {
		cur[pos] = uint32(remaining)
		*out = append(*out, cur.Copy())

		return
	}

	for v := 0; v <= remaining; v++ {
		cur[pos] = uint32(v)
		enumerate(cur, pos+1, remaining-v, out)
	}
}
