package weierstrass

import (
	"io"

	"github.com/moonfruit/go-pkengine/bigint"
	"github.com/pkg/errors"
)

// ErrInvalidKey is returned for a private scalar that is zero or not below
// the group order.
var ErrInvalidKey = errors.New("weierstrass: invalid private key")

// PublicKey is a point on a curve, encoded as x‖y.
type PublicKey struct {
	curve *Curve
	point []byte
}

// NewPublicKey checks that point lies on c and wraps a copy of it.
func NewPublicKey(c *Curve, point []byte) (*PublicKey, error) {
	if len(point) != c.PointSize() {
		return nil, errors.Wrapf(ErrInvalidLength, "public key is %d bytes, want %d", len(point), c.PointSize())
	}
	if !c.IsOnCurve(point) {
		return nil, ErrInvalidPoint
	}
	return &PublicKey{curve: c, point: append([]byte(nil), point...)}, nil
}

// Curve returns the key's curve.
func (pk *PublicKey) Curve() *Curve { return pk.curve }

// Bytes returns a copy of the encoded point.
func (pk *PublicKey) Bytes() []byte {
	return append([]byte(nil), pk.point...)
}

// PrivateKey is a scalar in [1, order).
type PrivateKey struct {
	curve  *Curve
	raw    []byte
	public *PublicKey
}

// GenerateKey draws a private key for c from rand by rejection sampling.
func GenerateKey(c *Curve, rand io.Reader) (*PrivateKey, error) {
	raw := make([]byte, c.Size())
	for {
		if _, err := io.ReadFull(rand, raw); err != nil {
			return nil, errors.Wrap(err, "reading random scalar")
		}
		sk, err := NewPrivateKey(c, raw)
		if err == nil {
			for i := range raw {
				raw[i] = 0
			}
			return sk, nil
		}
		if !errors.Is(err, ErrInvalidKey) {
			return nil, err
		}
	}
}

// NewPrivateKey wraps a copy of the big-endian scalar raw, which must be
// exactly Size bytes, non-zero and below the group order.
func NewPrivateKey(c *Curve, raw []byte) (*PrivateKey, error) {
	if len(raw) != c.Size() {
		return nil, errors.Wrapf(ErrInvalidLength, "private key is %d bytes, want %d", len(raw), c.Size())
	}
	n := bigint.RequiredSize(c.Size())
	k := bigint.FromBytes(raw, n)
	order := bigint.FromBytes(c.order, n)
	defer k.Wipe()
	if k.IsZero() || k.IsGEQ(order) {
		return nil, ErrInvalidKey
	}

	sk := &PrivateKey{curve: c, raw: append([]byte(nil), raw...)}
	point, err := c.Multiply(nil, sk.raw)
	if err != nil {
		return nil, err
	}
	sk.public = &PublicKey{curve: c, point: point}
	return sk, nil
}

// Curve returns the key's curve.
func (sk *PrivateKey) Curve() *Curve { return sk.curve }

// Bytes returns a copy of the scalar.
func (sk *PrivateKey) Bytes() []byte {
	return append([]byte(nil), sk.raw...)
}

// Public returns the public key sk·G.
func (sk *PrivateKey) Public() *PublicKey {
	return sk.public
}

// SharedSecret returns the x coordinate of sk·pk, Size bytes long.
func (sk *PrivateKey) SharedSecret(pk *PublicKey) ([]byte, error) {
	if pk.curve != sk.curve {
		return nil, errors.Errorf("weierstrass: %s public key used with %s private key", pk.curve.Name(), sk.curve.Name())
	}
	point, err := sk.curve.Multiply(pk.point, sk.raw)
	if err != nil {
		return nil, err
	}
	return point[:sk.curve.Size()], nil
}
