package bigint

import (
	"fmt"
	"math/bits"
)

// Montgomery arithmetic modulo an odd N of n words uses the radix
// R = 2^(W*n). A value x is held as x*R mod N, possibly not fully reduced.

// MontgomeryInverse returns -N^-1 mod 2^W for an odd modulus N.
func MontgomeryInverse(modulus *Int) Word {
	n0 := modulus.w[0]
	if n0&1 == 0 {
		panic("bigint: montgomery: even modulus")
	}
	// Newton iteration; N*N = 1 mod 8 gives 3 correct bits to start,
	// and each step doubles them.
	inv := n0
	for i := 0; i < 6; i++ {
		inv *= 2 - n0*inv
	}
	return -inv
}

// Montgomery sets result = product * R^-1 mod N in relaxed form.
// product must be 2n words and result n words, n being the length of the
// modulus. If product < R*N then result < 2N; the caller keeps enough
// headroom in the top word that 2N fits. ninv is MontgomeryInverse(N).
func Montgomery(result, product, modulus *Int, ninv Word) *Int {
	n := len(modulus.w)
	if len(product.w) != 2*n || len(result.w) != n {
		panic(fmt.Sprintf("bigint: montgomery: %d-word product, %d-word result for %d-word modulus",
			len(product.w), len(result.w), n))
	}

	t := make([]Word, 2*n+1)
	copy(t, product.w)
	for i := 0; i < n; i++ {
		// Choose m so that t + m*N*2^(W*i) clears word i.
		m := t[i] * ninv
		c := addMulVVW(t[i:i+n], modulus.w, m)
		for j := i + n; j < len(t); j++ {
			var s, cc uint
			s, cc = bits.Add(uint(t[j]), uint(c), 0)
			t[j] = Word(s)
			c = Word(cc)
		}
	}
	copy(result.w, t[n:2*n])

	for i := range t {
		t[i] = 0
	}
	return result
}

// MontgomeryMultiply sets result = a * b * R^-1 mod N in relaxed form,
// using product as 2n-word scratch space.
func MontgomeryMultiply(result, a, b, modulus, product *Int, ninv Word) *Int {
	Multiply(product, a, b)
	return Montgomery(result, product, modulus, ninv)
}
