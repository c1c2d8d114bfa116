// Package ideal samples random binomial ideals for benchmarking pair selection strategies.
package ideal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathanmweiss/go-groebner/field"
)

// Mode picks how the monomials of a generated binomial are sampled.
type Mode string

const (
	// ModeWeighted first draws a degree uniformly, then a monomial of that degree.
	ModeWeighted Mode = "weighted"
	// ModeUniform draws uniformly among all monomials up to the maximal degree.
	ModeUniform Mode = "uniform"
)

// DefaultMaxCoeff bounds the sampled coefficients.
const DefaultMaxCoeff = 20

var (
	ErrUnknownMode   = errors.New("unknown sampling mode")
	ErrBadParameters = errors.New("invalid generator parameters")
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeWeighted, ModeUniform:
		return m, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

type RandSource interface {
	IntN(n int) int
}

// Generator produces binomials in a fixed polynomial ring.
type Generator struct {
	ring      *field.PolyRing
	maxDegree int
	maxCoeff  int
	rng       RandSource
}

func NewGenerator(ring *field.PolyRing, maxDegree, maxCoeff int, rng RandSource) (*Generator, error) {
	if maxDegree < 1 {
		return nil, fmt.Errorf("%w: max degree %d", ErrBadParameters, maxDegree)
	}

	if maxCoeff < 1 {
		return nil, fmt.Errorf("%w: max coefficient %d", ErrBadParameters, maxCoeff)
	}

	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrBadParameters)
	}

	return &Generator{
		ring:      ring,
		maxDegree: maxDegree,
		maxCoeff:  maxCoeff,
		rng:       rng,
	}, nil
}

func (g *Generator) Ring() *field.PolyRing {
	return g.ring
}

func (g *Generator) coeff() uint64 {
	return uint64(1 + g.rng.IntN(g.maxCoeff))
}

func (g *Generator) pick(monomials []field.Exponents) field.Term {
	return field.Term{Coeff: g.coeff(), Exps: monomials[g.rng.IntN(len(monomials))]}
}

// Weighted samples a binomial whose terms have uniformly drawn degrees.
func (g *Generator) Weighted() *field.Polynomial {
	return g.binomial(func() field.Term {
		degree := 1 + g.rng.IntN(g.maxDegree)
		return g.pick(AllMonomials(g.ring.NVar(), degree))
	})
}

// Uniform samples a binomial whose terms are uniform among all monomials up to the max degree.
func (g *Generator) Uniform() *field.Polynomial {
	monomials := MonomialsUpTo(g.ring.NVar(), g.maxDegree)

	return g.binomial(func() field.Term {
		return g.pick(monomials)
	})
}

/*
binomial draws two terms. Equal monomials may merge into a single term; when
their coefficients cancel the draw is repeated, since generators must be nonzero.
*/
func (g *Generator) binomial(term func() field.Term) *field.Polynomial {
	for {
		p, err := g.ring.NewPolynomial(term(), term())
		if err != nil {
			// both terms come from enumerations of the ring's variables.
			panic(err)
		}

		if !p.IsZero() {
			return p
		}
	}
}

func (g *Generator) Binomial(mode Mode) (*field.Polynomial, error) {
	switch mode {
	case ModeWeighted:
		return g.Weighted(), nil
	case ModeUniform:
		return g.Uniform(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// Ideal returns s sampled binomial generators.
func (g *Generator) Ideal(s int, mode Mode) ([]*field.Polynomial, error) {
	if s < 1 {
		return nil, fmt.Errorf("%w: %d generators", ErrBadParameters, s)
	}

	out := make([]*field.Polynomial, s)
	for i := range out {
		p, err := g.Binomial(mode)
		if err != nil {
			return nil, err
		}

		out[i] = p
	}

	return out, nil
}
