package bigint

import "fmt"

// Reduce sets x = x mod modulus. The modulus may be shorter than x but
// must not be zero.
//
// This is binary long division: the modulus is shifted left until its top
// bit sits at the top of x, then shifted back down one bit at a time,
// being subtracted from x whenever x is at least as large. The shift count
// is derived from the width of x and the bit length of the modulus, never
// from the value of x, and each subtraction is applied with a mask rather
// than a branch.
func Reduce(x, modulus *Int) *Int {
	if len(modulus.w) > len(x.w) {
		panic(fmt.Sprintf("bigint: reduce: %d-word modulus for %d-word value", len(modulus.w), len(x.w)))
	}
	modBits := modulus.MaxSetBit()
	if modBits == 0 {
		panic("bigint: reduce: zero modulus")
	}

	m := New(len(x.w))
	modulus.Grow(m)
	t := New(len(x.w))

	shift := len(x.w)*WordBits - modBits
	for i := 0; i < shift; i++ {
		m.RotateLeft()
	}
	for i := 0; i <= shift; i++ {
		t.Set(x)
		borrow := t.Sub(m)
		x.Select(t, x, borrow^1)
		m.RotateRight()
	}

	t.Wipe()
	return x
}

// ModMultiply sets result = (a * b) mod modulus. All four values must have
// the same length; the result is always strictly less than modulus.
func ModMultiply(result, a, b, modulus *Int) *Int {
	size := len(modulus.w)
	checkLen("mod multiply", result, modulus)
	checkLen("mod multiply", a, modulus)
	checkLen("mod multiply", b, modulus)

	product := New(2 * size)
	Multiply(product, a, b)
	Reduce(product, modulus)

	// product < modulus < 2^(W*size), so the high half is zero.
	product.Shrink(result)
	product.Wipe()
	return result
}
