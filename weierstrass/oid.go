package weierstrass

import (
	"encoding/asn1"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// ErrUnknownCurve is returned for a named-curve identifier that does not
// match a supported curve.
var ErrUnknownCurve = errors.New("weierstrass: unknown curve")

// OID returns a copy of the curve's named-curve object identifier.
func (c *Curve) OID() asn1.ObjectIdentifier {
	return append(asn1.ObjectIdentifier(nil), c.oid...)
}

// MarshalOID returns the DER encoding of the curve's object identifier,
// as carried in the parameters of an id-ecPublicKey algorithm identifier.
func (c *Curve) MarshalOID() []byte {
	var b cryptobyte.Builder
	b.AddASN1ObjectIdentifier(c.oid)
	return b.BytesOrPanic()
}

// CurveByOID returns the curve named by a DER-encoded OBJECT IDENTIFIER.
func CurveByOID(der []byte) (*Curve, error) {
	input := cryptobyte.String(der)
	var oid asn1.ObjectIdentifier
	if !input.PeekASN1Tag(cryptobyte_asn1.OBJECT_IDENTIFIER) {
		return nil, errors.Wrap(ErrUnknownCurve, "not an object identifier")
	}
	if !input.ReadASN1ObjectIdentifier(&oid) || !input.Empty() {
		return nil, errors.Wrap(ErrUnknownCurve, "malformed object identifier")
	}
	for _, c := range Curves() {
		if oid.Equal(c.oid) {
			return c, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownCurve, "%s", oid)
}
