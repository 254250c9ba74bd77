package bigint

import (
	"fmt"
	"math/big"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulWWGeneric(t *testing.T) {
	rng := newPRNG("test mulWW")
	edge := []Word{0, 1, 2, halfMask, halfMask + 1, ^Word(0) - 1, ^Word(0)}
	check := func(x, y Word) {
		hi, lo := mulWWGeneric(x, y)
		whi, wlo := bits.Mul(uint(x), uint(y))
		require.Equal(t, Word(whi), hi, "x = %x y = %x", x, y)
		require.Equal(t, Word(wlo), lo, "x = %x y = %x", x, y)
	}
	for _, x := range edge {
		for _, y := range edge {
			check(x, y)
		}
	}
	for i := 0; i < 10000; i++ {
		check(rng.word(), rng.word())
	}
}

func TestAddWWGeneric(t *testing.T) {
	rng := newPRNG("test addWW")
	for i := 0; i < 10000; i++ {
		x, y, c := rng.word(), rng.word(), rng.word()&1
		if i < 16 {
			x = ^Word(0) - Word(i&3)
			y = Word(i >> 2)
		}
		s, cc := addWWGeneric(x, y, c)
		ws, wc := bits.Add(uint(x), uint(y), uint(c))
		require.Equal(t, Word(ws), s)
		require.Equal(t, Word(wc), cc)
	}
}

// The active multiply-accumulate must agree with the portable one.
func TestAddMulVVWCrossCheck(t *testing.T) {
	rng := newPRNG("test addMulVVW")
	for i := 0; i < 2000; i++ {
		n := 1 + rng.intn(9)
		x := rng.mkInt(n)
		z := rng.mkInt(n)
		y := rng.word()
		if i%7 == 0 {
			y = ^Word(0)
		}

		z1 := New(n).Set(z)
		z2 := New(n).Set(z)
		c1 := addMulVVW(z1.w, x.w, y)
		c2 := addMulVVWGeneric(z2.w, x.w, y)
		require.Equal(t, c2, c1)
		require.True(t, z1.Equal(z2), "x = %s y = %x z = %s", x, y, z)

		// z + x*y == c<<(W*n) + z'
		want := new(big.Int).Mul(toBig(x), new(big.Int).SetUint64(uint64(y)))
		want.Add(want, toBig(z))
		got := new(big.Int).Lsh(new(big.Int).SetUint64(uint64(c1)), uint(n*WordBits))
		got.Add(got, toBig(z1))
		require.Zero(t, want.Cmp(got))
	}
}

func TestMultiply(t *testing.T) {
	rng := newPRNG("test multiply")
	for i := 0; i < 1000; i++ {
		m := 1 + rng.intn(8)
		n := 1 + rng.intn(8)
		a := rng.mkInt(m)
		b := rng.mkInt(n)

		r := New(m + n)
		// Garbage in the destination must not leak into the product.
		for j := range r.w {
			r.w[j] = rng.word()
		}
		Multiply(r, a, b)

		want := new(big.Int).Mul(toBig(a), toBig(b))
		require.Zero(t, want.Cmp(toBig(r)), "a = %s b = %s r = %s", a, b, r)

		g := multiplyGeneric(New(m+n), a, b)
		require.True(t, g.Equal(r))
	}

	a := New(2)
	require.Panics(t, func() { Multiply(New(3), a, New(2)) })
}

func TestMultiplyMax(t *testing.T) {
	// (2^k - 1)^2 is the largest product; it must fill the result exactly.
	for m := 1; m <= 6; m++ {
		a := New(m)
		for i := range a.w {
			a.w[i] = ^Word(0)
		}
		r := Multiply(New(2*m), a, a)
		want := new(big.Int).Mul(toBig(a), toBig(a))
		require.Zero(t, want.Cmp(toBig(r)))
		require.Equal(t, 2*m*WordBits, r.MaxSetBit())
	}
}

func BenchmarkMultiply(b *testing.B) {
	rng := newPRNG("bench multiply")
	for _, n := range []int{4, 8, 32, 64} {
		x := rng.mkModulus(n)
		y := rng.mkModulus(n)
		r := New(2 * n)
		b.Run(fmt.Sprintf("words=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Multiply(r, x, y)
			}
		})
		b.Run(fmt.Sprintf("generic/words=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				multiplyGeneric(r, x, y)
			}
		})
	}
}
