//go:build purego || !(amd64 || arm64 || riscv64 || ppc64 || ppc64le || s390x || loong64 || mips64 || mips64le)

package bigint

func addMulVVW(z, x []Word, y Word) (c Word) {
	return addMulVVWGeneric(z, x, y)
}
