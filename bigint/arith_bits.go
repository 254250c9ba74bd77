//go:build (arm64 || riscv64 || ppc64 || ppc64le || s390x || loong64 || mips64 || mips64le) && !purego

package bigint

import "math/bits"

// addMulVVW sets z[0:len(x)] += x*y and returns the carry word. The
// compiler lowers bits.Mul and bits.Add to the native multiply-high and
// carry-chained add instructions on these architectures.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := bits.Mul(uint(x[i]), uint(y))
		var cc uint
		lo, cc = bits.Add(lo, uint(z[i]), 0)
		hi += cc
		lo, cc = bits.Add(lo, uint(c), 0)
		hi += cc
		z[i] = Word(lo)
		c = Word(hi)
	}
	return
}
