package field

import (
	"errors"
	"math/big"

	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

type Field interface {
	Equals(a, b uint64) bool
	Add(a, b uint64) uint64
	Sub(a, b uint64) uint64
	Mul(a, b uint64) uint64
	Pow(base, exp uint64) uint64

	// Div returns a * b^-1, failing with ErrDivisionUndefined when b is the zero residue.
	Div(a, b uint64) (uint64, error)
	Inverse(a uint64) (uint64, error)

	Neg(a uint64) uint64
	Reduce(a uint64) uint64
	ReduceInt(a int64) uint64

	Modulus() uint64
	Generator() uint64
}

type PrimeField struct {
	prime     uint64
	generator uint64

	// log/antilog tables over the generator, only built for small primes.
	exp []uint64
	log []uint64
}

// DefaultPrime is the modulus used when nothing else is configured.
const DefaultPrime = 23

var (
	errPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	errNotPrime      = errors.New("this package only support prime fields. please use a prime order")

	ErrDivisionUndefined = errors.New("division by the zero residue")
)

const maxBitUsage = 63

// primes below this bound multiply through lookup tables.
const tableBound = 1 << 16

/*
NewPrimeField returns the field Z/pZ.
The order is checked for primality since Inverse is only total over nonzero
residues of a prime field.
*/
func NewPrimeField(prime uint64) (Field, error) {
	if prime >= (1 << maxBitUsage) {
		return nil, errPrimeTooLarge
	}

	b := (&big.Int{}).SetUint64(prime)
	// Probably prime is 100% accurate for 64-bit numbers. Thus, we can use one base check.
	if !b.ProbablyPrime(1) {
		return nil, errNotPrime
	}

	g, _, err := ring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	f := &PrimeField{
		prime:     prime,
		generator: g,
	}

	if prime < tableBound {
		f.buildTables()
	}

	return f, nil
}

/*
buildTables fills exp[i] = g^i for i in [0, 2(p-1)) and log[g^i] = i.
The doubled exp table lets Mul add two logs without reducing mod p-1.
*/
func (f *PrimeField) buildTables() {
	order := f.prime - 1

	f.exp = make([]uint64, 2*order)
	f.log = make([]uint64, f.prime)

	x := uint64(1)
	for i := uint64(0); i < order; i++ {
		f.exp[i] = x
		f.exp[i+order] = x
		f.log[x] = i
		x = fieldMul(x, f.generator, f.prime)
	}
}

// MustPrimeField is NewPrimeField for constant moduli known to be prime.
func MustPrimeField(prime uint64) Field {
	f, err := NewPrimeField(prime)
	if err != nil {
		panic(err)
	}

	return f
}

// Modulus implements Field.
func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

func (f *PrimeField) Generator() uint64 {
	return f.generator
}

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

// ReduceInt maps a signed integer onto its residue in [0, p).
func (f *PrimeField) ReduceInt(val int64) uint64 {
	m := int64(f.prime)
	r := val % m
	if r < 0 {
		r += m
	}

	return uint64(r)
}

func (f *PrimeField) Add(a, b uint64) uint64 {
	a, b = f.Reduce(a), f.Reduce(b)

	tmp := a + b // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

// Mul returns a * b (mod field prime).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	if f.exp != nil {
		a, b = f.Reduce(a), f.Reduce(b)
		if a == 0 || b == 0 {
			return 0
		}

		return f.exp[f.log[a]+f.log[b]]
	}

	return fieldMul(a, b, f.prime)
}

func fieldMul(a, b uint64, mod uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(mod)
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	mod := f.prime

	if f.exp != nil {
		base %= mod
		if base == 0 {
			if exp == 0 {
				return 1
			}

			return 0
		}

		order := mod - 1
		return f.exp[fieldMul(f.log[base], exp%order, order)]
	}

	x := uint64(1)
	base %= mod
	for exp > 0 {
		if exp%2 == 1 {
			x = fieldMul(x, base, mod)
		}

		base = fieldMul(base, base, mod)
		exp /= 2
	}

	return x % mod
}

// Inverse runs the extended Euclidean algorithm on (p, a) and returns t with
// t*a = 1 (mod p).
func (f *PrimeField) Inverse(e uint64) (uint64, error) {
	e = f.Reduce(e)
	if e == 0 {
		return 0, ErrDivisionUndefined
	}

	t, newT := int64(0), int64(1)
	r, newR := int64(f.prime), int64(e)

	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}

	// r is gcd(p, e), which is 1 for a prime p.
	if r != 1 {
		return 0, ErrDivisionUndefined
	}

	return f.ReduceInt(t), nil
}

func (f *PrimeField) Div(a, b uint64) (uint64, error) {
	inv, err := f.Inverse(b)
	if err != nil {
		return 0, err
	}

	return f.Mul(f.Reduce(a), inv), nil
}

func (f *PrimeField) Neg(e uint64) uint64 {
	e = f.Reduce(e)
	if e == 0 {
		return 0
	}

	return f.prime - e
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	a, b = f.Reduce(a), f.Reduce(b)
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

func (f *PrimeField) Equals(a, b uint64) bool {
	mod := f.prime
	return (a % mod) == (b % mod)
}
