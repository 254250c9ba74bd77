package selftest

import (
	"bytes"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/moonfruit/go-pkengine/bigint"
	"github.com/moonfruit/go-pkengine/dhe"
	"github.com/moonfruit/go-pkengine/weierstrass"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// maxOperandBytes bounds the random operand sizes of a cross-check round.
const maxOperandBytes = 72

// CrossCheck runs rounds of random operands through the engine and checks
// the results against math/big. Key agreement is checked for both the
// finite-field and elliptic-curve engines. The same seed always produces
// the same operands.
func CrossCheck(rounds int, seed int64, logger *zap.Logger) Report {
	var r Report
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < rounds; i++ {
		name := fmt.Sprintf("round %d", i)
		r.record(logger, "multiply", name, checkMultiply(rng))
		r.record(logger, "mod_multiply", name, checkModMultiply(rng))
		r.record(logger, "mod_exp", name, checkModExp(rng))
		r.record(logger, "dhe", name, checkDHE(rng))
		r.record(logger, "elliptic", name, checkElliptic(rng))
	}
	logger.Info("cross-check finished",
		zap.Int("rounds", rounds), zap.Int64("seed", seed),
		zap.Int("passed", r.Passed), zap.Int("failed", r.Failed))
	return r
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

// randomModulus returns n random bytes with the top byte non-zero.
func randomModulus(rng *rand.Rand, n int) []byte {
	b := randomBytes(rng, n)
	b[0] |= 1 + byte(rng.Intn(255))
	return b
}

func randomSize(rng *rand.Rand) int {
	return 1 + rng.Intn(maxOperandBytes)
}

func toBig(x *bigint.Int) *big.Int {
	return new(big.Int).SetBytes(x.Bytes(x.Len() * bigint.WordBytes))
}

func checkBig(op string, got *bigint.Int, want *big.Int) error {
	if toBig(got).Cmp(want) != 0 {
		return errors.Wrapf(ErrMismatch, "%s: got %s, want %x", op, got, want)
	}
	return nil
}

func checkMultiply(rng *rand.Rand) error {
	ab, bb := randomBytes(rng, randomSize(rng)), randomBytes(rng, randomSize(rng))
	a, b := load(ab), load(bb)
	result := bigint.New(a.Len() + b.Len())
	bigint.Multiply(result, a, b)

	want := new(big.Int).Mul(new(big.Int).SetBytes(ab), new(big.Int).SetBytes(bb))
	return checkBig("multiply", result, want)
}

func checkModMultiply(rng *rand.Rand) error {
	size := randomSize(rng)
	mb := randomModulus(rng, size)
	ab, bb := randomBytes(rng, size), randomBytes(rng, size)

	m := load(mb)
	result := bigint.New(m.Len())
	bigint.ModMultiply(result, bigint.FromBytes(ab, m.Len()), bigint.FromBytes(bb, m.Len()), m)

	want := new(big.Int).Mul(new(big.Int).SetBytes(ab), new(big.Int).SetBytes(bb))
	want.Mod(want, new(big.Int).SetBytes(mb))
	return checkBig("mod multiply", result, want)
}

func checkModExp(rng *rand.Rand) error {
	size := randomSize(rng)
	mb := randomModulus(rng, size)
	xb := randomBytes(rng, size)
	eb := randomBytes(rng, 1+rng.Intn(size))

	m := load(mb)
	result := bigint.New(m.Len())
	bigint.ModExp(result, bigint.FromBytes(xb, m.Len()), m, load(eb))

	mod := new(big.Int).SetBytes(mb)
	want := new(big.Int).Exp(new(big.Int).SetBytes(xb), new(big.Int).SetBytes(eb), mod)
	want.Mod(want, mod)
	return checkBig("mod exp", result, want)
}

func checkDHE(rng *rand.Rand) error {
	size := randomSize(rng)
	p := randomModulus(rng, size)
	g := randomBytes(rng, 1+rng.Intn(size))
	a := randomBytes(rng, 1+rng.Intn(size))
	b := randomBytes(rng, 1+rng.Intn(size))

	publicA, _, err := dhe.Key(p, g, g, a)
	if err != nil {
		return err
	}
	publicB, sharedB, err := dhe.Key(p, g, publicA, b)
	if err != nil {
		return err
	}
	_, sharedA, err := dhe.Key(p, g, publicB, a)
	if err != nil {
		return err
	}

	mod := new(big.Int).SetBytes(p)
	want := new(big.Int).Exp(new(big.Int).SetBytes(g), new(big.Int).SetBytes(a), mod)
	want.Mod(want, mod)
	if !bytes.Equal(publicA, want.FillBytes(make([]byte, size))) {
		return errors.Wrapf(ErrMismatch, "dhe: public key %x, want %x", publicA, want)
	}
	if !bytes.Equal(sharedA, sharedB) {
		return errors.Wrapf(ErrMismatch, "dhe: shared secrets differ: %x, %x", sharedA, sharedB)
	}
	return nil
}

func checkElliptic(rng *rand.Rand) error {
	curves := weierstrass.Curves()
	c := curves[rng.Intn(len(curves))]
	a, b := randomBytes(rng, c.Size()), randomBytes(rng, c.Size())

	publicA, err := c.Multiply(nil, a)
	if err != nil {
		return errors.WithMessage(err, c.Name())
	}
	publicB, err := c.Multiply(nil, b)
	if err != nil {
		return errors.WithMessage(err, c.Name())
	}
	sharedA, err := c.Multiply(publicB, a)
	if err != nil {
		return errors.WithMessage(err, c.Name())
	}
	sharedB, err := c.Multiply(publicA, b)
	if err != nil {
		return errors.WithMessage(err, c.Name())
	}
	if !bytes.Equal(sharedA, sharedB) {
		return errors.Wrapf(ErrMismatch, "%s: shared points differ: %x, %x", c.Name(), sharedA, sharedB)
	}
	return nil
}
