package field

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PolyRing is the polynomial ring F[x1, ..., xn] for a fixed field and number of variables.
type PolyRing struct {
	Field
	nvar int
}

var (
	errNoVariables = errors.New("a polynomial ring needs at least one variable")
	errParse       = errors.New("cannot parse polynomial")
)

// NewPolyRing constructs a ring with nvar variables over the provided coefficient field.
func NewPolyRing(f Field, nvar int) (*PolyRing, error) {
	if nvar < 1 {
		return nil, errNoVariables
	}

	return &PolyRing{Field: f, nvar: nvar}, nil
}

func (r *PolyRing) NVar() int { return r.nvar }

func (r *PolyRing) NewPolynomial(terms ...Term) (*Polynomial, error) {
	return NewPolynomial(r.Field, r.nvar, terms)
}

// Monomial builds coeff*x^exps. Missing trailing exponents are zero.
func (r *PolyRing) Monomial(coeff int64, exps ...uint32) (*Polynomial, error) {
	if len(exps) > r.nvar {
		return nil, ErrNVarMismatch
	}

	e := make(Exponents, r.nvar)
	copy(e, exps)

	return r.NewPolynomial(Term{Coeff: r.ReduceInt(coeff), Exps: e})
}

func (r *PolyRing) Zero() *Polynomial {
	return Zero(r.Field, r.nvar)
}

// One is the constant polynomial 1.
func (r *PolyRing) One() *Polynomial {
	return canonicalize(r.Field, r.nvar, []Term{{Coeff: 1, Exps: make(Exponents, r.nvar)}})
}

// MustParse is Parse for literals in tests and examples.
func (r *PolyRing) MustParse(s string) *Polynomial {
	p, err := r.Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

func (r *PolyRing) ParseAll(ss []string) ([]*Polynomial, error) {
	out := make([]*Polynomial, len(ss))
	for i, s := range ss {
		p, err := r.Parse(s)
		if err != nil {
			return nil, err
		}

		out[i] = p
	}

	return out, nil
}

/*
Parse reads a polynomial written as a sum of terms, e.g.

	3*x1^2*x2 - x2 + 5

Variables are x1..xn. Coefficients are integers, possibly negative, and are
reduced into the field. Whitespace is ignored.
*/
func (r *PolyRing) Parse(s string) (*Polynomial, error) {
	src, err := stripSpaces(s)
	if err != nil {
		return nil, err
	}

	if src == "" {
		return nil, fmt.Errorf("%w: empty input", errParse)
	}

	var terms []Term
	for pos := 0; pos < len(src); {
		sign := int64(1)
		switch src[pos] {
		case '+':
			pos++
		case '-':
			sign = -1
			pos++
		default:
			if pos != 0 {
				return nil, fmt.Errorf("%w: expected sign at offset %d in %q", errParse, pos, s)
			}
		}

		end := pos
		for end < len(src) && src[end] != '+' && src[end] != '-' {
			end++
		}

		t, err := r.parseTerm(src[pos:end])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", errParse, s, err)
		}

		if sign < 0 {
			t.Coeff = r.Neg(t.Coeff)
		}

		terms = append(terms, t)
		pos = end
	}

	return r.NewPolynomial(terms...)
}

func isWordByte(c byte) bool {
	return c == 'x' || (c >= '0' && c <= '9')
}

// stripSpaces drops whitespace, refusing any that separates two parts of one number or variable name.
func stripSpaces(s string) (string, error) {
	var bldr strings.Builder
	gap := false

	for i, c := range s {
		if unicode.IsSpace(c) {
			gap = bldr.Len() > 0
			continue
		}

		if gap && c < utf8.RuneSelf && isWordByte(byte(c)) && isWordByte(bldr.String()[bldr.Len()-1]) {
			return "", fmt.Errorf("%w: whitespace inside a token at offset %d in %q", errParse, i, s)
		}

		gap = false
		bldr.WriteRune(c)
	}

	return bldr.String(), nil
}

// parseTerm parses factors joined by '*': integers and powers of variables.
func (r *PolyRing) parseTerm(s string) (Term, error) {
	if s == "" {
		return Term{}, errors.New("empty term")
	}

	t := Term{Coeff: 1, Exps: make(Exponents, r.nvar)}
	for _, factor := range strings.Split(s, "*") {
		if factor == "" {
			return Term{}, errors.New("empty factor")
		}

		if factor[0] != 'x' {
			c, err := strconv.ParseInt(factor, 10, 64)
			if err != nil {
				return Term{}, err
			}

			t.Coeff = r.Mul(t.Coeff, r.ReduceInt(c))

			continue
		}

		name, power, hasPower := strings.Cut(factor[1:], "^")

		idx, err := strconv.Atoi(name)
		if err != nil || idx < 1 || idx > r.nvar {
			return Term{}, fmt.Errorf("unknown variable %q", factor)
		}

		e := uint64(1)
		if hasPower {
			if e, err = strconv.ParseUint(power, 10, 32); err != nil {
				return Term{}, err
			}
		}

		if uint64(t.Exps[idx-1])+e > math.MaxUint32 {
			return Term{}, fmt.Errorf("%w: %s", ErrExponentOverflow, factor)
		}

		t.Exps[idx-1] += uint32(e)
	}

	return t, nil
}
