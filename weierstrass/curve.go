// Package weierstrass implements scalar multiplication on short
// Weierstrass curves y^2 = x^3 + ax + b over a prime field.
//
// Points are encoded as the concatenation of their affine x and y
// coordinates, each a big-endian byte string of the curve's field size.
// The point at infinity has no encoding.
//
// Scalar multiplication uses complete projective addition formulas and
// processes every scalar bit with the same sequence of field operations,
// so its timing does not depend on the scalar or the base point.
package weierstrass

import (
	"encoding/asn1"
	"encoding/hex"
	"sync"

	"github.com/moonfruit/go-pkengine/bigint"
)

// Curve describes a named short Weierstrass curve. Curve values are
// immutable apart from their constant cache, which is filled once.
type Curve struct {
	name  string
	size  int
	oid   asn1.ObjectIdentifier
	prime []byte
	a     []byte
	b     []byte
	base  []byte
	order []byte

	once  sync.Once
	cache *cache
}

// cache holds the constants derived from a curve definition. All
// Montgomery-form values use the radix of the working width n.
type cache struct {
	n int

	// The prime and its small multiples, for lazy reduction.
	prime [numMultiples]*bigint.Int
	// prime - 2, the exponent for inversion.
	fermat *bigint.Int
	// R^2 mod prime, for conversion into Montgomery form.
	square *bigint.Int
	ninv   bigint.Word

	// Montgomery forms of 1, a, b and 3b.
	one *bigint.Int
	a   *bigint.Int
	b   *bigint.Int
	b3  *bigint.Int
}

func newCurve(name string, oid asn1.ObjectIdentifier, prime, a, b, gx, gy, order string) *Curve {
	c := &Curve{
		name:  name,
		oid:   oid,
		prime: mustDecode(prime),
		a:     mustDecode(a),
		b:     mustDecode(b),
		order: mustDecode(order),
	}
	c.size = len(c.prime)
	c.base = append(mustDecode(gx), mustDecode(gy)...)
	return c
}

func mustDecode(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Name returns the curve name, e.g. "P-256".
func (c *Curve) Name() string { return c.name }

// Size returns the length in bytes of one field element.
func (c *Curve) Size() int { return c.size }

// PointSize returns the length in bytes of an encoded point.
func (c *Curve) PointSize() int { return 2 * c.size }

// Generator returns a copy of the encoded generator point.
func (c *Curve) Generator() []byte {
	return append([]byte(nil), c.base...)
}

// Order returns a copy of the big-endian group order.
func (c *Curve) Order() []byte {
	return append([]byte(nil), c.order...)
}

// Prime returns a copy of the big-endian field prime.
func (c *Curve) Prime() []byte {
	return append([]byte(nil), c.prime...)
}

// Init computes the curve's constant cache. It is called implicitly on
// first use and is safe for concurrent callers; calling it up front keeps
// the one-time cost out of the first scalar multiplication.
func (c *Curve) Init() {
	c.once.Do(c.initCache)
}

func (c *Curve) constants() *cache {
	c.Init()
	return c.cache
}

func (c *Curve) initCache() {
	n := bigint.RequiredSize(c.size) + 1
	k := &cache{n: n}

	k.prime[timesOne] = bigint.FromBytes(c.prime, n)
	for i := timesTwo; i < numMultiples; i++ {
		k.prime[i] = bigint.New(n).Set(k.prime[i-1])
		k.prime[i].Add(k.prime[i-1])
	}

	k.fermat = bigint.New(n).Set(k.prime[timesOne])
	k.fermat.Sub(bigint.New(n).SetWord(2))

	// R mod N, reduced from the (n+1)-word value 2^(W*n).
	r := bigint.New(n + 1)
	r.Words()[n] = 1
	bigint.Reduce(r, k.prime[timesOne])
	k.one = r.Shrink(bigint.New(n))

	k.square = bigint.New(n)
	bigint.ModMultiply(k.square, k.one, k.one, k.prime[timesOne])
	k.ninv = bigint.MontgomeryInverse(k.prime[timesOne])

	f := newField(k)
	k.a = bigint.New(n)
	f.toMont(k.a, bigint.FromBytes(c.a, n))
	b := bigint.FromBytes(c.b, n)
	k.b = bigint.New(n)
	f.toMont(k.b, b)
	b3 := bigint.New(n).Set(b)
	b3.Add(b)
	b3.Add(b)
	k.b3 = bigint.New(n)
	f.toMont(k.b3, b3)

	c.cache = k
}

// RFC 5480, 2.1.1.1. Named Curve
var (
	oidNamedCurveP256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	oidNamedCurveP384 = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
)

var p256 = newCurve("P-256", oidNamedCurveP256,
	"ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
	"ffffffff00000001000000000000000000000000fffffffffffffffffffffffc",
	"5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b",
	"6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
	"4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
	"ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551",
)

var p384 = newCurve("P-384", oidNamedCurveP384,
	"fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff",
	"fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000fffffffc",
	"b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef",
	"aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7",
	"3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f",
	"ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973",
)

// P256 returns NIST P-256 (secp256r1).
func P256() *Curve { return p256 }

// P384 returns NIST P-384 (secp384r1).
func P384() *Curve { return p384 }

// Curves returns every supported curve.
func Curves() []*Curve {
	return []*Curve{p256, p384}
}

// CurveByName returns the supported curve with the given name, or nil.
func CurveByName(name string) *Curve {
	for _, c := range Curves() {
		if c.name == name {
			return c
		}
	}
	return nil
}
