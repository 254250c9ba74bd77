package weierstrass

import (
	"crypto/elliptic"
	"crypto/sha512"
	"math/big"

	"github.com/moonfruit/go-pkengine/bigint"
)

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

func (p *prng) bytes(n int) []byte {
	b := make([]byte, n)
	p.generate(b)
	return b
}

func intToBig(x *bigint.Int) *big.Int {
	return new(big.Int).SetBytes(x.Bytes(x.Len() * bigint.WordBytes))
}

// stdCurve returns the standard library implementation of c.
func stdCurve(c *Curve) elliptic.Curve {
	switch c {
	case p256:
		return elliptic.P256()
	case p384:
		return elliptic.P384()
	}
	panic("no standard curve for " + c.Name())
}

func encodePoint(size int, x, y *big.Int) []byte {
	out := make([]byte, 2*size)
	x.FillBytes(out[:size])
	y.FillBytes(out[size:])
	return out
}

// randomPoint returns a random point on c, computed by the standard
// library.
func randomPoint(rng *prng, c *Curve) []byte {
	std := stdCurve(c)
	x, y := std.ScalarBaseMult(rng.bytes(c.Size()))
	return encodePoint(c.Size(), x, y)
}
