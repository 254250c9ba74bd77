package bigint

// ModExp sets result = base^exponent mod modulus. result, base and
// modulus must have the same length; exponent may have any length.
//
// The exponent is scanned from its least significant bit through every
// bit of its declared width, whatever its value. Each step squares the
// running base and computes result*base; the product replaces result
// through a masked select when the exponent bit is set, so the sequence
// of multiplications does not depend on the exponent bits.
func ModExp(result, base, modulus, exponent *Int) *Int {
	checkLen("mod exp", result, modulus)
	checkLen("mod exp", base, modulus)

	size := len(modulus.w)
	b := New(size).Set(base)
	e := New(len(exponent.w)).Set(exponent)
	r := New(size).SetWord(1)
	t := New(size)

	// 1 mod modulus is 0 when the modulus is 1.
	Reduce(r, modulus)

	for i := len(e.w) * WordBits; i > 0; i-- {
		bit := e.RotateRight()
		ModMultiply(t, r, b, modulus)
		r.Select(t, r, bit)
		ModMultiply(b, b, b, modulus)
	}
	result.Set(r)

	b.Wipe()
	e.Wipe()
	r.Wipe()
	t.Wipe()
	return result
}
