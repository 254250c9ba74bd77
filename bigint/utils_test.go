package bigint

import (
	"crypto/sha512"
	"math/big"
)

// Deterministic PRNG (SHA-512 chain) so that failures are reproducible.
type prng struct {
	buf [64]byte
	ptr int
}

func newPRNG(seed string) *prng {
	p := new(prng)
	p.buf = sha512.Sum512([]byte(seed))
	return p
}

func (p *prng) generate(d []byte) {
	for len(d) > 0 {
		if p.ptr == 32 {
			p.buf = sha512.Sum512(p.buf[:])
			p.ptr = 0
		}
		n := copy(d, p.buf[p.ptr:32])
		d = d[n:]
		p.ptr += n
	}
}

func (p *prng) word() Word {
	var bb [WordBytes]byte
	p.generate(bb[:])
	var w Word
	for _, b := range bb {
		w = w<<8 | Word(b)
	}
	return w
}

func (p *prng) intn(n int) int {
	return int(p.word() % Word(n))
}

// mkInt returns a random n-word value. Roughly one value in four has its
// top words cleared or saturated, to reach the carry edge cases.
func (p *prng) mkInt(n int) *Int {
	x := New(n)
	switch p.intn(4) {
	case 0:
		for i := range x.w {
			x.w[i] = ^Word(0)
		}
	case 1:
		x.w[0] = p.word()
	default:
		for i := range x.w {
			x.w[i] = p.word()
		}
	}
	return x
}

// mkModulus returns a random non-zero n-word value.
func (p *prng) mkModulus(n int) *Int {
	x := New(n)
	for i := range x.w {
		x.w[i] = p.word()
	}
	if x.IsZero() {
		x.w[0] = 1
	}
	return x
}

func toBig(x *Int) *big.Int {
	z := new(big.Int)
	var y big.Int
	for i := len(x.w) - 1; i >= 0; i-- {
		y.SetUint64(uint64(x.w[i]))
		z.Lsh(z, WordBits).Add(z, &y)
	}
	return z
}

func fromBig(v *big.Int, n int) *Int {
	return FromBytes(v.Bytes(), n)
}
