//go:build !purego

package bigint

// addMulVVW sets z[0:len(x)] += x*y and returns the carry word, using a
// MULQ/ADCQ carry chain. z must be at least as long as x.
//
//go:noescape
func addMulVVW(z, x []Word, y Word) (c Word)
