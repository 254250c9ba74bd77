package bigint

// Elementary word-vector operations. The raw multiplier is built on a
// single multiply-accumulate-with-carry primitive, addMulVVW, which has a
// portable implementation here and per-architecture implementations
// selected at build time (see arith_*.go). Callers never depend on which
// implementation is active.

const (
	halfBits = WordBits / 2
	halfMask = 1<<halfBits - 1
)

// mulWWGeneric returns the double-width product of x and y as a high/low
// word pair, using only single-width arithmetic on half words.
func mulWWGeneric(x, y Word) (hi, lo Word) {
	x0 := x & halfMask
	x1 := x >> halfBits
	y0 := y & halfMask
	y1 := y >> halfBits

	// x*y = x1*y1<<W + (x1*y0 + x0*y1)<<(W/2) + x0*y0
	w0 := x0 * y0
	t := x1*y0 + w0>>halfBits
	w1 := t & halfMask
	w2 := t >> halfBits
	w1 += x0 * y1
	hi = x1*y1 + w2 + w1>>halfBits
	lo = x * y
	return
}

// addWWGeneric returns x + y + c and the outgoing carry. c MUST be 0 or 1.
func addWWGeneric(x, y, c Word) (sum, carry Word) {
	sum = x + y + c
	// Carry out of the top bit, computed without comparisons.
	carry = ((x & y) | ((x | y) &^ sum)) >> (WordBits - 1)
	return
}

// addMulVVWGeneric sets z[0:len(x)] += x*y and returns the carry word.
// z must be at least as long as x.
func addMulVVWGeneric(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := mulWWGeneric(x[i], y)
		var cc Word
		lo, cc = addWWGeneric(lo, z[i], 0)
		hi += cc
		lo, cc = addWWGeneric(lo, c, 0)
		hi += cc
		z[i] = lo
		c = hi
	}
	return
}
