package field

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

/*
Polynomial is a multivariate polynomial over a prime field in canonical form:
terms strictly descending under grevlex, pairwise distinct exponent vectors
and no zero coefficients. The zero polynomial has no terms.

Polynomials are immutable. Every operation returns a new value.
*/
type Polynomial struct {
	f     Field
	nvar  int
	terms []Term

	key string
}

var (
	ErrEmptyPolynomial  = errors.New("polynomial needs at least one term")
	ErrNVarMismatch     = errors.New("all monomials must have the same number of variables")
	ErrNotMonomial      = errors.New("operation is only defined on single-term polynomials")
	ErrZeroPolynomial   = errors.New("the zero polynomial has no leading term")
	ErrExponentOverflow = errors.New("exponent does not fit in 32 bits")
)

/*
NewPolynomial canonicalizes the given terms into a polynomial with nvar variables.
Coefficients are reduced into the field. An empty term list is rejected, though
the terms may still cancel out to the zero polynomial.
*/
func NewPolynomial(f Field, nvar int, terms []Term) (*Polynomial, error) {
	if len(terms) == 0 {
		return nil, ErrEmptyPolynomial
	}

	cpy := make([]Term, len(terms))
	for i, t := range terms {
		if len(t.Exps) != nvar {
			return nil, ErrNVarMismatch
		}

		cpy[i] = Term{Coeff: f.Reduce(t.Coeff), Exps: t.Exps.Copy()}
	}

	return canonicalize(f, nvar, cpy), nil
}

// Zero returns the zero polynomial in nvar variables.
func Zero(f Field, nvar int) *Polynomial {
	return build(f, nvar, nil)
}

// build assumes terms are already canonical.
func build(f Field, nvar int, terms []Term) *Polynomial {
	p := &Polynomial{f: f, nvar: nvar, terms: terms}
	p.key = p.computeKey()

	return p
}

// canonicalize takes ownership of terms.
func canonicalize(f Field, nvar int, terms []Term) *Polynomial {
	slices.SortStableFunc(terms, func(a, b Term) int {
		return CompareGrevlex(b.Exps, a.Exps) // descending.
	})

	out := terms[:0]
	for _, t := range terms {
		if n := len(out); n > 0 && out[n-1].Exps.Equal(t.Exps) {
			out[n-1].Coeff = f.Add(out[n-1].Coeff, t.Coeff)
			continue
		}

		out = append(out, t)
	}

	nonZero := out[:0]
	for _, t := range out {
		if t.Coeff != 0 {
			nonZero = append(nonZero, t)
		}
	}

	if len(nonZero) == 0 {
		nonZero = nil
	}

	return build(f, nvar, nonZero)
}

func preOpVerification(p, q *Polynomial) bool {
	if p.f.Modulus() != q.f.Modulus() {
		return false
	}

	return p.nvar == q.nvar
}

func mustCompatible(p, q *Polynomial) {
	if !preOpVerification(p, q) {
		panic("preOpVerification failed")
	}
}

func (p *Polynomial) Field() Field {
	return p.f
}

func (p *Polynomial) NVar() int {
	return p.nvar
}

func (p *Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Len returns the number of terms.
func (p *Polynomial) Len() int {
	return len(p.terms)
}

// IsMonomial reports whether p has exactly one term.
func (p *Polynomial) IsMonomial() bool {
	return len(p.terms) == 1
}

// Terms returns a copy of the terms in descending order.
func (p *Polynomial) Terms() []Term {
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = Term{Coeff: t.Coeff, Exps: t.Exps.Copy()}
	}

	return out
}

// Degree is the total degree of the leading term, 0 for the zero polynomial.
func (p *Polynomial) Degree() int {
	if p.IsZero() {
		return 0
	}

	return p.terms[0].Degree()
}

// LeadingMonomial returns the leading term. Panics on the zero polynomial.
func (p *Polynomial) LeadingMonomial() Term {
	if p.IsZero() {
		panic(ErrZeroPolynomial)
	}

	t := p.terms[0]

	return Term{Coeff: t.Coeff, Exps: t.Exps.Copy()}
}

// LeadingTerm returns the leading term as a single-term polynomial.
func (p *Polynomial) LeadingTerm() *Polynomial {
	if p.IsZero() {
		panic(ErrZeroPolynomial)
	}

	return build(p.f, p.nvar, p.terms[:1:1])
}

func (p *Polynomial) LeadCoeff() uint64 {
	if p.IsZero() {
		return 0
	}

	return p.terms[0].Coeff
}

func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	mustCompatible(p, q)

	terms := make([]Term, 0, len(p.terms)+len(q.terms))
	terms = append(terms, p.terms...)
	terms = append(terms, q.terms...)

	return canonicalize(p.f, p.nvar, terms)
}

func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	return p.Add(q.Neg())
}

func (p *Polynomial) Neg() *Polynomial {
	return p.MulScalar(p.f.Neg(1))
}

// Mul is the schoolbook product over all term pairs.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	mustCompatible(p, q)

	fld := p.f
	terms := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			terms = append(terms, Term{
				Coeff: fld.Mul(a.Coeff, b.Coeff),
				Exps:  a.Exps.Add(b.Exps),
			})
		}
	}

	return canonicalize(fld, p.nvar, terms)
}

func (p *Polynomial) MulScalar(scalar uint64) *Polynomial {
	fld := p.f
	s := fld.Reduce(scalar)

	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term{Coeff: fld.Mul(t.Coeff, s), Exps: t.Exps}
	}

	return canonicalize(fld, p.nvar, terms)
}

// Monic scales p so its leading coefficient is 1. The zero polynomial is returned as is.
func (p *Polynomial) Monic() *Polynomial {
	if p.IsZero() {
		return p
	}

	inv, err := p.f.Inverse(p.LeadCoeff())
	if err != nil {
		// canonical terms never carry a zero coefficient.
		panic(err)
	}

	return p.MulScalar(inv)
}

/*
DivideMonomial divides the single-term polynomial p by the single-term polynomial q.
ok is false when the exponents of q are not componentwise below those of p.
Panics with ErrNotMonomial if either operand has more or less than one term.
*/
func (p *Polynomial) DivideMonomial(q *Polynomial) (quo *Polynomial, ok bool) {
	mustCompatible(p, q)
	if !p.IsMonomial() || !q.IsMonomial() {
		panic(ErrNotMonomial)
	}

	a, b := p.terms[0], q.terms[0]
	if !b.Exps.Divides(a.Exps) {
		return nil, false
	}

	c, err := p.f.Div(a.Coeff, b.Coeff)
	if err != nil {
		panic(err)
	}

	return build(p.f, p.nvar, []Term{{Coeff: c, Exps: a.Exps.Sub(b.Exps)}}), true
}

// LcmMonomial returns the monic lcm of two single-term polynomials.
func (p *Polynomial) LcmMonomial(q *Polynomial) *Polynomial {
	mustCompatible(p, q)
	if !p.IsMonomial() || !q.IsMonomial() {
		panic(ErrNotMonomial)
	}

	return build(p.f, p.nvar, []Term{{Coeff: 1, Exps: p.terms[0].Exps.Lcm(q.terms[0].Exps)}})
}

func (p *Polynomial) Equals(q *Polynomial) bool {
	if !preOpVerification(p, q) {
		return false
	}

	if len(p.terms) != len(q.terms) {
		return false
	}

	for i := range p.terms {
		if p.terms[i].Coeff != q.terms[i].Coeff || !p.terms[i].Exps.Equal(q.terms[i].Exps) {
			return false
		}
	}

	return true
}

/*
Key is a canonical identity string: equal polynomials over the same field
and number of variables share a key. Used to index sets of polynomials.
*/
func (p *Polynomial) Key() string {
	return p.key
}

func (p *Polynomial) computeKey() string {
	bldr := strings.Builder{}
	bldr.WriteString(strconv.FormatUint(p.f.Modulus(), 10))
	bldr.WriteByte('/')
	bldr.WriteString(strconv.Itoa(p.nvar))

	for _, t := range p.terms {
		bldr.WriteByte('|')
		bldr.WriteString(strconv.FormatUint(t.Coeff, 10))
		for _, e := range t.Exps {
			bldr.WriteByte(',')
			bldr.WriteString(strconv.FormatUint(uint64(e), 10))
		}
	}

	return bldr.String()
}

func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	bldr := strings.Builder{}
	for i, t := range p.terms {
		if i > 0 {
			bldr.WriteString(" + ")
		}

		unit := t.Exps.Degree() == 0
		if t.Coeff != 1 || unit {
			bldr.WriteString(strconv.FormatUint(t.Coeff, 10))
			if !unit {
				bldr.WriteByte('*')
			}
		}

		t.Exps.writeMonomial(&bldr)
	}

	return bldr.String()
}
