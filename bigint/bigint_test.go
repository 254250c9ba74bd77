package bigint

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	b, err := hex.DecodeString("0102030405060708090a0b0c0d0e0f1011")
	require.NoError(t, err)

	x := FromBytes(b, RequiredSize(len(b)))
	require.Equal(t, RequiredSize(17), x.Len())
	require.Zero(t, new(big.Int).SetBytes(b).Cmp(toBig(x)))
	require.Equal(t, b, x.Bytes(len(b)))

	// Wider output is zero-padded on the left.
	out := x.Bytes(len(b) + 3)
	require.Equal(t, []byte{0, 0, 0}, out[:3])
	require.Equal(t, b, out[3:])

	require.Panics(t, func() { FromBytes(make([]byte, WordBytes+1), 1) })
	require.Equal(t, 1, RequiredSize(0))
}

func TestGrowShrink(t *testing.T) {
	rng := newPRNG("test grow/shrink")
	for i := 0; i < 200; i++ {
		n := 1 + rng.intn(8)
		x := rng.mkInt(n)
		wide := x.Grow(New(2 * n))
		for j := n; j < 2*n; j++ {
			require.Zero(t, wide.w[j])
		}
		y := wide.Shrink(New(n))
		require.True(t, x.Equal(y), "x = %s y = %s", x, y)
	}
	require.Panics(t, func() { New(3).Grow(New(2)) })
	require.Panics(t, func() { New(2).Shrink(New(3)) })
}

func TestAddSub(t *testing.T) {
	rng := newPRNG("test add/sub")
	for i := 0; i < 2000; i++ {
		n := 1 + rng.intn(6)
		a := rng.mkInt(n)
		b := rng.mkInt(n)
		mod := new(big.Int).Lsh(big.NewInt(1), uint(n*WordBits))

		za, zb := toBig(a), toBig(b)

		s := New(n).Set(a)
		c := s.Add(b)
		want := new(big.Int).Add(za, zb)
		require.Equal(t, Word(want.Rsh(want, uint(n*WordBits)).Uint64()), c)
		require.Zero(t, new(big.Int).Mod(new(big.Int).Add(za, zb), mod).Cmp(toBig(s)))

		d := New(n).Set(a)
		borrow := d.Sub(b)
		if za.Cmp(zb) >= 0 {
			require.Zero(t, borrow)
			require.True(t, a.IsGEQ(b))
		} else {
			require.Equal(t, Word(1), borrow)
			require.False(t, a.IsGEQ(b))
		}
		diff := new(big.Int).Sub(za, zb)
		require.Zero(t, diff.Mod(diff, mod).Cmp(toBig(d)))
	}
}

func TestRotate(t *testing.T) {
	rng := newPRNG("test rotate")
	for i := 0; i < 500; i++ {
		n := 1 + rng.intn(5)
		x := rng.mkInt(n)
		zx := toBig(x)
		top := Word(zx.Bit(n*WordBits - 1))
		low := Word(zx.Bit(0))

		l := New(n).Set(x)
		require.Equal(t, top, l.RotateLeft())
		want := new(big.Int).Lsh(zx, 1)
		want.SetBit(want, n*WordBits, 0)
		require.Zero(t, want.Cmp(toBig(l)))

		r := New(n).Set(x)
		require.Equal(t, low, r.RotateRight())
		require.Zero(t, new(big.Int).Rsh(zx, 1).Cmp(toBig(r)))
	}
}

func TestBitsAndMaxSetBit(t *testing.T) {
	rng := newPRNG("test bits")
	require.Equal(t, 0, New(4).MaxSetBit())
	for i := 0; i < 500; i++ {
		n := 1 + rng.intn(5)
		x := rng.mkInt(n)
		zx := toBig(x)
		require.Equal(t, zx.BitLen(), x.MaxSetBit())
		for j := 0; j < n*WordBits; j += 1 + rng.intn(9) {
			require.Equal(t, zx.Bit(j) == 1, x.TestBit(j))
		}
		require.Zero(t, x.Bit(n*WordBits))
		require.Zero(t, x.Bit(-1))
	}

	x := New(3).SetWord(1)
	require.Equal(t, 1, x.MaxSetBit())
	x.w[2] = 1
	require.Equal(t, 2*WordBits+1, x.MaxSetBit())
}

func TestSelectSwap(t *testing.T) {
	rng := newPRNG("test select")
	a := rng.mkModulus(4)
	b := rng.mkModulus(4)
	x := New(4)

	require.True(t, x.Select(a, b, 1).Equal(a))
	require.True(t, x.Select(a, b, 0).Equal(b))

	c := New(4).Set(a)
	d := New(4).Set(b)
	c.Swap(d, 0)
	require.True(t, c.Equal(a))
	require.True(t, d.Equal(b))
	c.Swap(d, 1)
	require.True(t, c.Equal(b))
	require.True(t, d.Equal(a))

	require.Panics(t, func() { x.Select(a, New(3), 1) })
}

func TestZeroWipe(t *testing.T) {
	x := FromBytes(bytes.Repeat([]byte{0xA5}, 3*WordBytes), 3)
	require.False(t, x.IsZero())
	x.Wipe()
	require.True(t, x.IsZero())
	for _, w := range x.Words() {
		require.Zero(t, w)
	}
}

func TestString(t *testing.T) {
	x := New(2).SetWord(0xab)
	s := x.String()
	require.Equal(t, 2+4*WordBytes, len(s))
	require.Equal(t, "ab", s[len(s)-2:])
}
