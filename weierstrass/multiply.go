package weierstrass

import (
	"github.com/moonfruit/go-pkengine/bigint"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidLength is returned for a scalar or point of the wrong size.
	ErrInvalidLength = errors.New("weierstrass: invalid length")
	// ErrInvalidPoint is returned for a base point that is not on the curve.
	ErrInvalidPoint = errors.New("weierstrass: invalid point")
	// ErrInfinity is returned when the result is the point at infinity,
	// which has no encoding.
	ErrInfinity = errors.New("weierstrass: point at infinity")
)

// Multiply returns scalar * base, encoded as x || y. If base is nil the
// curve generator is used. The scalar is a big-endian byte string of
// exactly Size() bytes; it need not be reduced modulo the group order.
//
// A supplied base point must be a valid encoding of a point on the curve.
// A scalar that is zero or a multiple of the base point's order yields
// ErrInfinity.
func (c *Curve) Multiply(base, scalar []byte) ([]byte, error) {
	if len(scalar) != c.size {
		return nil, errors.Wrapf(ErrInvalidLength, "%s: scalar is %d bytes, want %d", c.name, len(scalar), c.size)
	}
	if base == nil {
		base = c.base
	}
	if len(base) != 2*c.size {
		return nil, errors.Wrapf(ErrInvalidLength, "%s: point is %d bytes, want %d", c.name, len(base), 2*c.size)
	}

	f := newField(c.constants())
	defer f.wipe()

	w := f.point()
	defer w.wipe()
	if !f.decode(w, base) {
		return nil, errors.Wrapf(ErrInvalidPoint, "%s", c.name)
	}

	acc := f.point()
	defer acc.wipe()
	f.identity(acc)

	sum := f.point()
	defer sum.wipe()
	s := newAdder(f)
	defer s.wipe()

	k := bigint.FromBytes(scalar, bigint.RequiredSize(c.size))
	defer k.Wipe()

	// Least significant bit first: acc += w when the bit is set, then
	// w = 2w. Both additions run for every bit.
	for i := 8 * c.size; i > 0; i-- {
		bit := k.RotateRight()
		s.add(sum, acc, w)
		acc.selectPoint(sum, acc, bit)
		s.add(w, w, w)
	}

	out, ok := f.encode(acc, c.size)
	if !ok {
		return nil, errors.Wrapf(ErrInfinity, "%s", c.name)
	}
	return out, nil
}

// IsOnCurve reports whether point is a valid x || y encoding of a point
// on the curve.
func (c *Curve) IsOnCurve(point []byte) bool {
	if len(point) != 2*c.size {
		return false
	}
	f := newField(c.constants())
	defer f.wipe()
	p := f.point()
	defer p.wipe()
	return f.decode(p, point)
}

// decode loads an affine x || y encoding into p, converting to Montgomery
// form with Z = 1. It reports whether both coordinates are below the prime
// and satisfy y^2 = x^3 + ax + b.
func (f *field) decode(p *point, raw []byte) bool {
	size := len(raw) / 2
	prime := f.c.prime[timesOne]
	x := bigint.FromBytes(raw[:size], f.c.n)
	y := bigint.FromBytes(raw[size:], f.c.n)
	if x.IsGEQ(prime) || y.IsGEQ(prime) {
		return false
	}

	f.toMont(p.x, x)
	f.toMont(p.y, y)
	p.z.Set(f.c.one)

	lhs := f.element()
	rhs := f.element()
	t := f.element()
	f.mul(lhs, p.y, p.y)   // y^2
	f.mul(t, p.x, p.x)     // x^2
	f.mul(rhs, t, p.x)     // x^3
	f.mul(t, f.c.a, p.x)   // ax
	f.add(rhs, rhs, t)     // 4N
	f.add(rhs, rhs, f.c.b) // 6N
	f.fromMont(lhs, lhs)
	f.fromMont(rhs, rhs)
	return lhs.Equal(rhs)
}

// encode converts p to affine coordinates and returns x || y. It reports
// false if p is the point at infinity.
func (f *field) encode(p *point, size int) ([]byte, bool) {
	z := f.element()
	f.fromMont(z, p.z)
	if z.IsZero() {
		return nil, false
	}

	zinv := f.element()
	f.invert(zinv, p.z)

	x := f.element()
	y := f.element()
	f.mul(x, p.x, zinv)
	f.mul(y, p.y, zinv)
	f.fromMont(x, x)
	f.fromMont(y, y)

	out := make([]byte, 2*size)
	x.FillBytes(out[:size])
	y.FillBytes(out[size:])
	return out, true
}
