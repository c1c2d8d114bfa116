package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPrimeField(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(DefaultPrime)
	a.NoError(err)
	a.Equal(uint64(23), f.Modulus())

	// the generator must have order p-1.
	g := f.Generator()
	for _, d := range []uint64{2, 11} {
		a.NotEqual(uint64(1), f.Pow(g, 22/d))
	}

	_, err = NewPrimeField(21)
	a.ErrorIs(err, errNotPrime)

	_, err = NewPrimeField(1 << 63)
	a.ErrorIs(err, errPrimeTooLarge)
}

func TestTablesAgreeWithWideMul(t *testing.T) {
	a := assert.New(t)

	for _, p := range []uint64{5, 23, 257} {
		f := MustPrimeField(p).(*PrimeField)
		a.NotNil(f.exp, "p=%d", p)

		for x := uint64(0); x < p; x++ {
			for y := uint64(0); y < p; y++ {
				a.Equal(fieldMul(x, y, p), f.Mul(x, y), "p=%d %d*%d", p, x, y)
			}

			for _, e := range []uint64{0, 1, 2, p - 1, p, 3*p + 5} {
				want := new(big.Int).Exp(new(big.Int).SetUint64(x), new(big.Int).SetUint64(e), new(big.Int).SetUint64(p))
				a.Equal(want.Uint64(), f.Pow(x, e), "p=%d %d^%d", p, x, e)
			}
		}
	}

	// unreduced inputs go through the table as well.
	f := MustPrimeField(23)
	a.Equal(uint64(1), f.Mul(30, 10))
	a.Equal(uint64(0), f.Mul(46, 5))

	large := MustPrimeField(9191248642791733759).(*PrimeField)
	a.Nil(large.exp)
}

func TestSmallFieldOps(t *testing.T) {
	a := assert.New(t)

	f := MustPrimeField(23)

	a.Equal(uint64(1), f.Add(11, 13))
	a.Equal(uint64(0), f.Add(22, 1))
	a.Equal(uint64(21), f.Sub(1, 3))
	a.Equal(uint64(1), f.Mul(7, 10))
	a.Equal(uint64(12), f.Mul(7, 5))
	a.Equal(uint64(22), f.Neg(1))
	a.Equal(uint64(0), f.Neg(0))
	a.Equal(uint64(22), f.ReduceInt(-1))
	a.Equal(uint64(1), f.ReduceInt(-45))

	inv, err := f.Inverse(5)
	a.NoError(err)
	a.Equal(uint64(14), inv)
	a.Equal(uint64(1), f.Mul(inv, 5))

	q, err := f.Div(1, 2)
	a.NoError(err)
	a.Equal(uint64(12), q)
}

func TestDivisionByZero(t *testing.T) {
	a := assert.New(t)

	f := MustPrimeField(23)

	_, err := f.Inverse(0)
	a.ErrorIs(err, ErrDivisionUndefined)

	// 46 is the zero residue too.
	_, err = f.Inverse(46)
	a.ErrorIs(err, ErrDivisionUndefined)

	for x := uint64(0); x < 23; x++ {
		_, err := f.Div(x, 0)
		a.ErrorIs(err, ErrDivisionUndefined)
	}
}

func TestInverseAgreesWithFermat(t *testing.T) {
	a := assert.New(t)

	for _, p := range []uint64{5, 23, 157, 65537} {
		f := MustPrimeField(p)
		for x := uint64(1); x < min(p, 2000); x++ {
			inv, err := f.Inverse(x)
			a.NoError(err)
			a.Equal(f.Pow(x, p-2), inv, "p=%d x=%d", p, x)
		}
	}
}

func TestCorrectOps(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(9191248642791733759) // p > 2^62
	a.NoError(err)

	n := uint64((1 << 63) - 1)

	e2 := &big.Int{}
	e2.SetUint64(n)
	e2.Mul(e2, e2)
	e2.Mod(e2, new(big.Int).SetUint64(f.Modulus()))

	a.Equal(e2.Uint64(), f.Mul(f.Reduce(n), f.Reduce(n)))

	inv, err := f.Inverse(n)
	a.NoError(err)
	a.Equal(uint64(1), f.Mul(f.Reduce(n), inv))
}

func FuzzInverse(f *testing.F) {
	testcases := []uint64{1, 54347, 4534523, 021310, 1<<63 - 1}
	for _, tc := range testcases {
		f.Add(tc) // Use f.Add to provide a seed corpus
	}

	fld, err := NewPrimeField(9191248642791733759)
	if err != nil {
		f.FailNow()
	}

	f.Fuzz(func(t *testing.T, num uint64) {
		e1 := fld.Reduce(num)
		if e1 == 0 {
			if _, err := fld.Inverse(e1); err == nil {
				t.Fatalf("expected an error for the zero residue")
			}

			return
		}

		e2, err := fld.Inverse(e1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if res := fld.Mul(e1, e2); res != 1 {
			t.Fatalf("expected 1, got %d", res)
		}

		if res := fld.Add(fld.Neg(e1), e1); res != 0 {
			t.Fatalf("expected 0, got %d", res)
		}
	})
}

func BenchmarkMulMod(b *testing.B) {
	f, err := NewPrimeField(9191248642791733759)
	if err != nil {
		b.FailNow()
	}

	e1 := f.Reduce((1 << 63) - 2)
	e2 := f.Reduce((1 << 60) + 312)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Mul(e1, e2)
	}
}
