package bigint

import (
	"fmt"
	"math/bits"
)

// This file implements fixed-width unsigned integers stored as a sequence
// of machine words, least significant word first. The word count of a
// value is chosen when it is created and never changes afterwards;
// operations that change magnitude (multiplication, widening, narrowing)
// write into a separately allocated value of the appropriate length.
//
// Unless otherwise stated, binary operations require all operands to
// have the same length and panic otherwise. Such a mismatch is a caller
// bug. Destination and source operands may be the same value.
//
// Operations whose name does not say otherwise run in time that depends
// only on operand lengths, never on operand values.

// Word is one element of a multi-precision value.
type Word uint

// WordBits is the width of a Word in bits.
const WordBits = bits.UintSize

// WordBytes is the width of a Word in bytes.
const WordBytes = WordBits / 8

// Int is a fixed-width unsigned integer.
type Int struct {
	w []Word
}

// New returns a zero value of n words.
func New(n int) *Int {
	if n <= 0 {
		panic(fmt.Sprintf("bigint: invalid size %d", n))
	}
	return &Int{w: make([]Word, n)}
}

// RequiredSize returns the number of words needed to hold a value of
// byteLen bytes.
func RequiredSize(byteLen int) int {
	n := (byteLen + WordBytes - 1) / WordBytes
	if n == 0 {
		n = 1
	}
	return n
}

// FromBytes returns a value of n words initialised from the big-endian
// byte string b. It panics if b has more significant bytes than fit in
// n words.
func FromBytes(b []byte, n int) *Int {
	x := New(n)
	x.SetBytes(b)
	return x
}

// SetBytes loads the big-endian byte string b into x, zero-extending it.
// It panics if b is longer than x.
func (x *Int) SetBytes(b []byte) *Int {
	if len(b) > len(x.w)*WordBytes {
		panic(fmt.Sprintf("bigint: %d bytes do not fit in %d words", len(b), len(x.w)))
	}
	for i := range x.w {
		x.w[i] = 0
	}
	for i := 0; i < len(b); i++ {
		k := len(b) - 1 - i
		x.w[i/WordBytes] |= Word(b[k]) << (8 * uint(i%WordBytes))
	}
	return x
}

// FillBytes writes x into buf as a big-endian byte string of exactly
// len(buf) bytes and returns buf. The most significant bytes of x that do
// not fit are discarded; the caller must size buf for the value.
func (x *Int) FillBytes(buf []byte) []byte {
	for i := 0; i < len(buf); i++ {
		k := len(buf) - 1 - i
		if i/WordBytes < len(x.w) {
			buf[k] = byte(x.w[i/WordBytes] >> (8 * uint(i%WordBytes)))
		} else {
			buf[k] = 0
		}
	}
	return buf
}

// Bytes returns x as a big-endian byte string of n bytes.
func (x *Int) Bytes(n int) []byte {
	return x.FillBytes(make([]byte, n))
}

// Len returns the word count of x.
func (x *Int) Len() int {
	return len(x.w)
}

// Words returns the underlying words of x, least significant first. The
// slice aliases x.
func (x *Int) Words() []Word {
	return x.w
}

// String returns x in hexadecimal, most significant word first.
func (x *Int) String() string {
	s := "0x"
	for i := len(x.w) - 1; i >= 0; i-- {
		s += fmt.Sprintf("%0*x", WordBytes*2, uint(x.w[i]))
	}
	return s
}

func checkLen(op string, x, y *Int) {
	if len(x.w) != len(y.w) {
		panic(fmt.Sprintf("bigint: %s: length mismatch %d != %d", op, len(x.w), len(y.w)))
	}
}

// Zero sets x to 0.
func (x *Int) Zero() *Int {
	for i := range x.w {
		x.w[i] = 0
	}
	return x
}

// Wipe zeroises x. It is meant for values that held key material.
func (x *Int) Wipe() {
	x.Zero()
}

// Set copies y into x.
func (x *Int) Set(y *Int) *Int {
	checkLen("set", x, y)
	copy(x.w, y.w)
	return x
}

// SetWord sets x to the single word v.
func (x *Int) SetWord(v Word) *Int {
	x.Zero()
	x.w[0] = v
	return x
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	var acc Word
	for _, v := range x.w {
		acc |= v
	}
	return acc == 0
}

// Equal reports whether x and y hold the same value.
func (x *Int) Equal(y *Int) bool {
	checkLen("equal", x, y)
	var acc Word
	for i := range x.w {
		acc |= x.w[i] ^ y.w[i]
	}
	return acc == 0
}

// IsGEQ reports whether x >= y.
func (x *Int) IsGEQ(y *Int) bool {
	checkLen("compare", x, y)
	var borrow uint
	for i := range x.w {
		_, borrow = bits.Sub(uint(x.w[i]), uint(y.w[i]), borrow)
	}
	return borrow == 0
}

// Add sets x = x + y and returns the carry out of the top word (0 or 1).
func (x *Int) Add(y *Int) Word {
	checkLen("add", x, y)
	var c uint
	for i := range x.w {
		var s uint
		s, c = bits.Add(uint(x.w[i]), uint(y.w[i]), c)
		x.w[i] = Word(s)
	}
	return Word(c)
}

// Sub sets x = x - y and returns the borrow out of the top word (0 or 1).
func (x *Int) Sub(y *Int) Word {
	checkLen("subtract", x, y)
	var b uint
	for i := range x.w {
		var d uint
		d, b = bits.Sub(uint(x.w[i]), uint(y.w[i]), b)
		x.w[i] = Word(d)
	}
	return Word(b)
}

// RotateLeft shifts x left by one bit, shifting in zero, and returns the
// bit shifted out of the top word.
func (x *Int) RotateLeft() Word {
	var c Word
	for i := range x.w {
		v := x.w[i]
		x.w[i] = v<<1 | c
		c = v >> (WordBits - 1)
	}
	return c
}

// RotateRight shifts x right by one bit, shifting in zero, and returns
// the bit shifted out of the bottom word.
func (x *Int) RotateRight() Word {
	var c Word
	for i := len(x.w) - 1; i >= 0; i-- {
		v := x.w[i]
		x.w[i] = v>>1 | c<<(WordBits-1)
		c = v & 1
	}
	return c
}

// Bit returns bit i of x as 0 or 1. Bits past the end of x read as 0.
func (x *Int) Bit(i int) Word {
	if i < 0 || i >= len(x.w)*WordBits {
		return 0
	}
	return (x.w[i/WordBits] >> uint(i%WordBits)) & 1
}

// TestBit reports whether bit i of x is set.
func (x *Int) TestBit(i int) bool {
	return x.Bit(i) != 0
}

// MaxSetBit returns the 1-based index of the most significant set bit of
// x, or 0 if x is zero. This is the bit length of x. Its running time
// depends on the position of the top bit only through the word scan,
// which always visits every word.
func (x *Int) MaxSetBit() int {
	n := 0
	for i := range x.w {
		l := bits.Len(uint(x.w[i]))
		// Select i*WordBits+l when the word is non-zero.
		m := -((uint(l) | -uint(l)) >> (WordBits - 1))
		n = int(uint(n)&^m | uint(i*WordBits+l)&m)
	}
	return n
}

// Grow zero-extends x into dst, which must be at least as long as x.
func (x *Int) Grow(dst *Int) *Int {
	if len(dst.w) < len(x.w) {
		panic(fmt.Sprintf("bigint: grow: %d words into %d", len(x.w), len(dst.w)))
	}
	copy(dst.w, x.w)
	for i := len(x.w); i < len(dst.w); i++ {
		dst.w[i] = 0
	}
	return dst
}

// Shrink truncates x into dst, which must be no longer than x. The
// discarded high words of x are expected to be zero.
func (x *Int) Shrink(dst *Int) *Int {
	if len(dst.w) > len(x.w) {
		panic(fmt.Sprintf("bigint: shrink: %d words into %d", len(x.w), len(dst.w)))
	}
	copy(dst.w, x.w[:len(dst.w)])
	return dst
}

// mask returns all ones if ctl is 1 and zero if ctl is 0.
func mask(ctl Word) Word {
	return -(ctl & 1)
}

// Select sets x to a if ctl == 1, or to b if ctl == 0, without branching
// on ctl. ctl MUST be 0 or 1.
func (x *Int) Select(a, b *Int, ctl Word) *Int {
	checkLen("select", a, b)
	checkLen("select", x, a)
	m := mask(ctl)
	for i := range x.w {
		x.w[i] = (a.w[i] & m) | (b.w[i] &^ m)
	}
	return x
}

// Swap exchanges the values of x and y if ctl == 1 and leaves them
// unchanged if ctl == 0, without branching on ctl.
func (x *Int) Swap(y *Int, ctl Word) {
	checkLen("swap", x, y)
	m := mask(ctl)
	for i := range x.w {
		t := (x.w[i] ^ y.w[i]) & m
		x.w[i] ^= t
		y.w[i] ^= t
	}
}
