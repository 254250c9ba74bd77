package bigint

import "fmt"

// Multiply sets result = a * b. result must be exactly a.Len() + b.Len()
// words long; the product of an m-word and an n-word value is always
// below 2^(W*(m+n)), so it never overflows this bound.
//
// The loop structure depends only on the operand lengths.
func Multiply(result, a, b *Int) *Int {
	m := len(a.w)
	n := len(b.w)
	if len(result.w) != m+n {
		panic(fmt.Sprintf("bigint: multiply: result has %d words, need %d", len(result.w), m+n))
	}
	result.Zero()

	// Row i accumulates a[i]*b into result[i:i+n]. result[i+n] has not
	// been written by any earlier row, so the row carry is stored there
	// directly and never needs to travel further.
	for i := 0; i < m; i++ {
		result.w[i+n] = addMulVVW(result.w[i:i+n], b.w, a.w[i])
	}
	return result
}

// multiplyGeneric is Multiply using the portable multiply-accumulate,
// whatever the build selected.
func multiplyGeneric(result, a, b *Int) *Int {
	m := len(a.w)
	n := len(b.w)
	if len(result.w) != m+n {
		panic(fmt.Sprintf("bigint: multiply: result has %d words, need %d", len(result.w), m+n))
	}
	result.Zero()
	for i := 0; i < m; i++ {
		result.w[i+n] = addMulVVWGeneric(result.w[i:i+n], b.w, a.w[i])
	}
	return result
}
