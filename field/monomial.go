package field

import (
	"math"
	"strconv"
	"strings"
)

// Exponents is the exponent vector of a monomial, one entry per variable.
type Exponents []uint32

// Term is a single coefficient-monomial pair.
type Term struct {
	Coeff uint64
	Exps  Exponents
}

func (e Exponents) Degree() int {
	d := 0
	for _, v := range e {
		d += int(v)
	}

	return d
}

// CompareGrevlex orders exponent vectors by graded reverse lexicographic order.
// It returns 1 if a ranks higher than b, -1 if lower and 0 if they are equal.
// Both vectors must have the same length.
func CompareGrevlex(a, b Exponents) int {
	da, db := a.Degree(), b.Degree()
	switch {
	case da > db:
		return 1
	case da < db:
		return -1
	}

	// tie: the first difference scanning from the last variable decides,
	// and the smaller exponent there wins.
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return 1
		case a[i] > b[i]:
			return -1
		}
	}

	return 0
}

// Divides reports whether e divides o, that is e[i] <= o[i] for every i.
func (e Exponents) Divides(o Exponents) bool {
	for i := range e {
		if e[i] > o[i] {
			return false
		}
	}

	return true
}

func (e Exponents) Equal(o Exponents) bool {
	if len(e) != len(o) {
		return false
	}

	for i := range e {
		if e[i] != o[i] {
			return false
		}
	}

	return true
}

// Add panics with ErrExponentOverflow when a sum leaves the uint32 range.
func (e Exponents) Add(o Exponents) Exponents {
	out := make(Exponents, len(e))
	for i := range e {
		if e[i] > math.MaxUint32-o[i] {
			panic(ErrExponentOverflow)
		}

		out[i] = e[i] + o[i]
	}

	return out
}

// Sub assumes o divides e.
func (e Exponents) Sub(o Exponents) Exponents {
	out := make(Exponents, len(e))
	for i := range e {
		out[i] = e[i] - o[i]
	}

	return out
}

// Lcm is the componentwise maximum.
func (e Exponents) Lcm(o Exponents) Exponents {
	out := make(Exponents, len(e))
	for i := range e {
		out[i] = max(e[i], o[i])
	}

	return out
}

func (e Exponents) Copy() Exponents {
	out := make(Exponents, len(e))
	copy(out, e)

	return out
}

// writeMonomial writes x1^2*x3 style output. Nothing is written for the unit monomial.
func (e Exponents) writeMonomial(bldr *strings.Builder) {
	first := true
	for i, v := range e {
		if v == 0 {
			continue
		}

		if !first {
			bldr.WriteByte('*')
		}
		first = false

		bldr.WriteByte('x')
		bldr.WriteString(strconv.Itoa(i + 1))

		if v != 1 {
			bldr.WriteByte('^')
			bldr.WriteString(strconv.FormatUint(uint64(v), 10))
		}
	}
}

func (e Exponents) String() string {
	bldr := strings.Builder{}
	e.writeMonomial(&bldr)

	if bldr.Len() == 0 {
		return "1"
	}

	return bldr.String()
}

func (t Term) Degree() int {
	return t.Exps.Degree()
}
