package groebner

import (
	"github.com/jonathanmweiss/go-groebner/field"
)

// IsTopReduced reports whether no leading term in G divides the leading term of f.
// The zero polynomial is top-reduced.
func IsTopReduced(f *field.Polynomial, G []*field.Polynomial) bool {
	if f.IsZero() {
		return true
	}

	return len(reducers(f, G)) == 0
}

// ReducesToZero reports whether the normal form of f against G is zero.
func ReducesToZero(f *field.Polynomial, G []*field.Polynomial, rng RandSource) bool {
	r, _ := NormalForm(f, G, rng)

	return r.IsZero()
}

// IsGroebnerBasis applies Buchberger's criterion: every S-polynomial of G reduces to zero.
func IsGroebnerBasis(G []*field.Polynomial, rng RandSource) bool {
	for i := range G {
		for j := i + 1; j < len(G); j++ {
			if !ReducesToZero(SPolynomial(G[i], G[j]), G, rng) {
				return false
			}
		}
	}

	return true
}

// leadingTermsDivide reports whether every leading term of A is divisible by some leading term of B.
func leadingTermsDivide(A, B []*field.Polynomial) bool {
	for _, a := range A {
		if !a.IsZero() && IsTopReduced(a, B) {
			return false
		}
	}

	return true
}

// SameLeadingTermIdeal reports whether the leading terms of G1 and G2 generate the same monomial ideal.
func SameLeadingTermIdeal(G1, G2 []*field.Polynomial) bool {
	return leadingTermsDivide(G1, G2) && leadingTermsDivide(G2, G1)
}
