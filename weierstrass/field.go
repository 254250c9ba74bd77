package weierstrass

import "github.com/moonfruit/go-pkengine/bigint"

// Field elements are held in Montgomery form modulo the curve prime N,
// with radix R = 2^(W*n) where n is one word more than the prime needs.
// Values are only partially reduced: every element carries a known bound
// as a small multiple of N, and the spare word keeps all such values and
// their products (below R*N) within Montgomery's input range.
//
// Bounds used below:
//   mul      output < 2N for any inputs below 8N
//   add      output bound is the sum of the input bounds
//   sub      output bound is bound(a) + k*N, where k*N >= bound(b)
// A full reduction to [0, N) only happens when leaving Montgomery form.

// multiple selects one of the cached multiples of the prime.
type multiple int

const (
	timesOne multiple = iota
	timesTwo
	timesFour
	numMultiples
)

// field carries the per-call scratch space for arithmetic over one curve.
type field struct {
	c       *cache
	product *bigint.Int
	tmp     *bigint.Int
}

func newField(c *cache) *field {
	return &field{
		c:       c,
		product: bigint.New(2 * c.n),
		tmp:     bigint.New(c.n),
	}
}

func (f *field) element() *bigint.Int {
	return bigint.New(f.c.n)
}

// mul sets d = a*b/R mod N, d < 2N.
func (f *field) mul(d, a, b *bigint.Int) {
	bigint.MontgomeryMultiply(d, a, b, f.c.prime[timesOne], f.product, f.c.ninv)
}

// add sets d = a + b.
func (f *field) add(d, a, b *bigint.Int) {
	f.tmp.Set(a)
	f.tmp.Add(b)
	d.Set(f.tmp)
}

// sub sets d = a + k*N - b. The caller picks k so that k*N is not below
// the bound of b.
func (f *field) sub(d, a, b *bigint.Int, k multiple) {
	f.tmp.Set(a)
	f.tmp.Add(f.c.prime[k])
	f.tmp.Sub(b)
	d.Set(f.tmp)
}

// toMont sets d to the Montgomery form of a, for any a < 8N. d < 2N.
func (f *field) toMont(d, a *bigint.Int) {
	f.mul(d, a, f.c.square)
}

// fromMont sets d to the plain value of a, fully reduced to [0, N).
func (f *field) fromMont(d, a *bigint.Int) {
	a.Grow(f.product)
	// For a < 8N the result is at most N.
	bigint.Montgomery(d, f.product, f.c.prime[timesOne], f.c.ninv)
	f.canonical(d)
}

// canonical reduces d < 2N to [0, N).
func (f *field) canonical(d *bigint.Int) {
	f.tmp.Set(d)
	borrow := f.tmp.Sub(f.c.prime[timesOne])
	d.Select(f.tmp, d, borrow^1)
}

// exp sets d = a^e in Montgomery form, scanning every bit of e. d < 2N.
func (f *field) exp(d, a, e *bigint.Int) {
	base := f.element().Set(a)
	r := f.element().Set(f.c.one)
	t := f.element()
	s := bigint.New(e.Len()).Set(e)

	for i := e.Len() * bigint.WordBits; i > 0; i-- {
		bit := s.RotateRight()
		f.mul(t, r, base)
		r.Select(t, r, bit)
		f.mul(base, base, base)
	}
	d.Set(r)

	base.Wipe()
	r.Wipe()
	t.Wipe()
	s.Wipe()
}

// invert sets d = 1/a by Fermat's little theorem. d < 2N.
func (f *field) invert(d, a *bigint.Int) {
	f.exp(d, a, f.c.fermat)
}

// wipe zeroises the scratch buffers.
func (f *field) wipe() {
	f.product.Wipe()
	f.tmp.Wipe()
}
