// Package dhe computes finite-field Diffie-Hellman public keys and shared
// secrets on top of the bigint modular exponentiation.
package dhe

import (
	"github.com/moonfruit/go-pkengine/bigint"
	"github.com/pkg/errors"
)

// ErrInvalidLength is returned when an input is longer than the modulus,
// or the modulus is empty.
var ErrInvalidLength = errors.New("dhe: invalid length")

// ErrInvalidModulus is returned when the modulus is zero.
var ErrInvalidModulus = errors.New("dhe: invalid modulus")

// context holds the values of one key computation. It is discarded, after
// being wiped, before Key returns.
type context struct {
	modulus   *bigint.Int
	generator *bigint.Int
	partner   *bigint.Int
	private   *bigint.Int
	result    *bigint.Int
}

func newContext(modulus, generator, partner, private []byte) *context {
	size := bigint.RequiredSize(len(modulus))
	return &context{
		modulus:   bigint.FromBytes(modulus, size),
		generator: bigint.FromBytes(generator, size),
		partner:   bigint.FromBytes(partner, size),
		private:   bigint.FromBytes(private, bigint.RequiredSize(len(private))),
		result:    bigint.New(size),
	}
}

func (ctx *context) wipe() {
	ctx.modulus.Wipe()
	ctx.generator.Wipe()
	ctx.partner.Wipe()
	ctx.private.Wipe()
	ctx.result.Wipe()
}

// Key computes public = generator^private mod modulus and
// shared = partner^private mod modulus. All values are big-endian byte
// strings; their lengths are their declared sizes. Both outputs are
// exactly len(modulus) bytes.
//
// The generator, partner and private exponent must be no longer than the
// modulus. On error nothing is returned.
func Key(modulus, generator, partner, private []byte) (public, shared []byte, err error) {
	if err := checkLengths(modulus, generator, partner, private); err != nil {
		return nil, nil, err
	}

	ctx := newContext(modulus, generator, partner, private)
	defer ctx.wipe()
	if ctx.modulus.IsZero() {
		return nil, nil, ErrInvalidModulus
	}

	bigint.ModExp(ctx.result, ctx.generator, ctx.modulus, ctx.private)
	public = ctx.result.Bytes(len(modulus))

	bigint.ModExp(ctx.result, ctx.partner, ctx.modulus, ctx.private)
	shared = ctx.result.Bytes(len(modulus))

	return public, shared, nil
}

func checkLengths(modulus, generator, partner, private []byte) error {
	if len(modulus) == 0 {
		return errors.Wrap(ErrInvalidLength, "empty modulus")
	}
	if len(generator) > len(modulus) {
		return errors.Wrapf(ErrInvalidLength, "generator is %d bytes, modulus is %d", len(generator), len(modulus))
	}
	if len(partner) > len(modulus) {
		return errors.Wrapf(ErrInvalidLength, "partner key is %d bytes, modulus is %d", len(partner), len(modulus))
	}
	if len(private) > len(modulus) {
		return errors.Wrapf(ErrInvalidLength, "private key is %d bytes, modulus is %d", len(private), len(modulus))
	}
	return nil
}
