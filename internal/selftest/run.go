package selftest

import (
	"bytes"
	"fmt"

	"github.com/moonfruit/go-pkengine/bigint"
	"github.com/moonfruit/go-pkengine/dhe"
	"github.com/moonfruit/go-pkengine/weierstrass"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrMismatch is reported when the engine output differs from the
	// expected value.
	ErrMismatch = errors.New("selftest: result mismatch")

	// ErrMalformed is reported for a vector the engine cannot be run on,
	// such as an operand longer than its modulus.
	ErrMalformed = errors.New("selftest: malformed vector")
)

// Report counts the outcome of a run.
type Report struct {
	Passed   int
	Failed   int
	Failures []string
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Merge adds the counts and failures of o to r.
func (r *Report) Merge(o Report) {
	r.Passed += o.Passed
	r.Failed += o.Failed
	r.Failures = append(r.Failures, o.Failures...)
}

func (r *Report) record(logger *zap.Logger, kind, name string, err error) {
	if err == nil {
		r.Passed++
		logger.Debug("case passed", zap.String("kind", kind), zap.String("case", name))
		return
	}
	r.Failed++
	r.Failures = append(r.Failures, fmt.Sprintf("%s/%s: %s", kind, name, err))
	logger.Error("case failed", zap.String("kind", kind), zap.String("case", name), zap.Error(err))
}

// Run executes every case of the suite and logs each failure.
func Run(s *Suite, logger *zap.Logger) Report {
	var r Report
	for _, c := range s.Multiply {
		r.record(logger, "multiply", c.Name, runMultiply(c))
	}
	for _, c := range s.ModMultiply {
		r.record(logger, "mod_multiply", c.Name, runModMultiply(c))
	}
	for _, c := range s.ModExp {
		r.record(logger, "mod_exp", c.Name, runModExp(c))
	}
	for _, c := range s.DHE {
		r.record(logger, "dhe", c.Name, runDHE(c))
	}
	for _, c := range s.Elliptic {
		r.record(logger, "elliptic", c.Name, runElliptic(c))
	}
	logger.Info("vector suite finished", zap.Int("passed", r.Passed), zap.Int("failed", r.Failed))
	return r
}

func load(b []byte) *bigint.Int {
	return bigint.FromBytes(b, bigint.RequiredSize(len(b)))
}

func compare(result *bigint.Int, expected []byte) error {
	if len(expected) > result.Len()*bigint.WordBytes {
		return errors.Wrapf(ErrMalformed, "expected value is %d bytes, result holds %d",
			len(expected), result.Len()*bigint.WordBytes)
	}
	if !result.Equal(bigint.FromBytes(expected, result.Len())) {
		return errors.Wrapf(ErrMismatch, "got %s, want %x", result, expected)
	}
	return nil
}

// loadModulus checks that operands fit the modulus width and that the
// modulus is non-zero, then loads it.
func loadModulus(modulus []byte, operands ...[]byte) (*bigint.Int, error) {
	for _, op := range operands {
		if len(op) > len(modulus) {
			return nil, errors.Wrapf(ErrMalformed, "operand is %d bytes, modulus is %d", len(op), len(modulus))
		}
	}
	m := load(modulus)
	if m.IsZero() {
		return nil, errors.Wrap(ErrMalformed, "zero modulus")
	}
	return m, nil
}

func runMultiply(c MultiplyCase) error {
	a, b := load(c.A), load(c.B)
	result := bigint.New(a.Len() + b.Len())
	bigint.Multiply(result, a, b)
	return compare(result, c.Expected)
}

func runModMultiply(c ModMultiplyCase) error {
	m, err := loadModulus(c.Modulus, c.A, c.B)
	if err != nil {
		return err
	}
	n := m.Len()
	result := bigint.New(n)
	bigint.ModMultiply(result, bigint.FromBytes(c.A, n), bigint.FromBytes(c.B, n), m)
	return compare(result, c.Expected)
}

func runModExp(c ModExpCase) error {
	m, err := loadModulus(c.Modulus, c.Base)
	if err != nil {
		return err
	}
	n := m.Len()
	result := bigint.New(n)
	bigint.ModExp(result, bigint.FromBytes(c.Base, n), m, load(c.Exponent))
	return compare(result, c.Expected)
}

func runDHE(c DHECase) error {
	public, shared, err := dhe.Key(c.Modulus, c.Generator, c.Partner, c.Private)
	if err != nil {
		return err
	}
	if !bytes.Equal(public, c.Public) {
		return errors.Wrapf(ErrMismatch, "public key %x, want %x", public, []byte(c.Public))
	}
	if !bytes.Equal(shared, c.Shared) {
		return errors.Wrapf(ErrMismatch, "shared secret %x, want %x", shared, []byte(c.Shared))
	}
	return nil
}

func runElliptic(c EllipticCase) error {
	curve := weierstrass.CurveByName(c.Curve)
	if curve == nil {
		return errors.Wrapf(ErrMalformed, "unknown curve %q", c.Curve)
	}
	var base []byte
	if len(c.Base) > 0 {
		base = c.Base
	}
	out, err := curve.Multiply(base, c.Scalar)
	if c.ExpectedFailure {
		if err == nil {
			return errors.Wrapf(ErrMismatch, "expected failure, got %x", out)
		}
		return nil
	}
	if err != nil {
		return err
	}
	if !bytes.Equal(out, c.Expected) {
		return errors.Wrapf(ErrMismatch, "got %x, want %x", out, []byte(c.Expected))
	}
	return nil
}
