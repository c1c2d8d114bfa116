package groebner

import (
	"github.com/jonathanmweiss/go-groebner/field"
)

/*
ReduceOneStep cancels the leading term of f using g:

	f - (lt(f)/lt(g)) * g

ok is false, and r is nil, when lt(g) does not divide lt(f). f and g must be nonzero.
*/
func ReduceOneStep(f, g *field.Polynomial) (r *field.Polynomial, ok bool) {
	ratio, ok := f.LeadingTerm().DivideMonomial(g.LeadingTerm())
	if !ok {
		return nil, false
	}

	return f.Sub(ratio.Mul(g)), true
}

// SPolynomial combines f and g so that their leading terms cancel. f and g must be nonzero.
func SPolynomial(f, g *field.Polynomial) *field.Polynomial {
	ltf, ltg := f.LeadingTerm(), g.LeadingTerm()
	lcm := ltf.LcmMonomial(ltg)

	// lcm is a multiple of both leading terms, so these divisions always succeed.
	mf, _ := lcm.DivideMonomial(ltf)
	mg, _ := lcm.DivideMonomial(ltg)

	return f.Mul(mf).Sub(g.Mul(mg))
}

// reducers returns the elements of G whose leading term divides lt(r).
func reducers(r *field.Polynomial, G []*field.Polynomial) []*field.Polynomial {
	lt := r.LeadingMonomial().Exps

	var out []*field.Polynomial
	for _, g := range G {
		if g.IsZero() {
			continue
		}

		if g.LeadingMonomial().Exps.Divides(lt) {
			out = append(out, g)
		}
	}

	return out
}

/*
NormalForm top-reduces f against G. While some generator's leading term divides
the leading term of the remainder, one of them is picked uniformly at random
and a single reduction step is applied. Returns the remainder and the number of
steps taken.

Only the leading term is ever tested, so non-leading terms of the remainder may
still be reducible. That is all Buchberger's S-pair test needs.
*/
func NormalForm(f *field.Polynomial, G []*field.Polynomial, rng RandSource) (*field.Polynomial, int) {
	r := f
	steps := 0

	for !r.IsZero() {
		candidates := reducers(r, G)
		if len(candidates) == 0 {
			break
		}

		g := candidates[rng.IntN(len(candidates))]

		next, ok := ReduceOneStep(r, g)
		if !ok {
			// candidates only holds divisors of lt(r).
			panic("reducer does not divide the leading term")
		}

		r = next
		steps++
	}

	return r, steps
}
