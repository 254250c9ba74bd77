// Package selftest runs known-answer vectors and randomised oracle checks
// against every engine entry point.
package selftest

import (
	_ "embed"
	"encoding/hex"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed vectors.yaml
var defaultVectors []byte

// Hex is a byte string written in YAML as big-endian hex. Its length is the
// declared size of the value it carries.
type Hex []byte

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *Hex) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrapf(err, "invalid hex %q", s)
	}
	*h = b
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h Hex) MarshalYAML() (interface{}, error) {
	return hex.EncodeToString(h), nil
}

type MultiplyCase struct {
	Name     string `yaml:"name"`
	A        Hex    `yaml:"a"`
	B        Hex    `yaml:"b"`
	Expected Hex    `yaml:"expected"`
}

type ModMultiplyCase struct {
	Name     string `yaml:"name"`
	A        Hex    `yaml:"a"`
	B        Hex    `yaml:"b"`
	Modulus  Hex    `yaml:"modulus"`
	Expected Hex    `yaml:"expected"`
}

type ModExpCase struct {
	Name     string `yaml:"name"`
	Base     Hex    `yaml:"base"`
	Modulus  Hex    `yaml:"modulus"`
	Exponent Hex    `yaml:"exponent"`
	Expected Hex    `yaml:"expected"`
}

type DHECase struct {
	Name      string `yaml:"name"`
	Modulus   Hex    `yaml:"modulus"`
	Generator Hex    `yaml:"generator"`
	Partner   Hex    `yaml:"partner"`
	Private   Hex    `yaml:"private"`
	Public    Hex    `yaml:"public"`
	Shared    Hex    `yaml:"shared"`
}

// EllipticCase multiplies Base (the curve generator when empty) by Scalar.
// A case marked ExpectedFailure passes when the engine rejects it.
type EllipticCase struct {
	Name            string `yaml:"name"`
	Curve           string `yaml:"curve"`
	Base            Hex    `yaml:"base,omitempty"`
	Scalar          Hex    `yaml:"scalar"`
	Expected        Hex    `yaml:"expected,omitempty"`
	ExpectedFailure bool   `yaml:"expected_failure,omitempty"`
}

// Suite is a set of known-answer vectors.
type Suite struct {
	Multiply    []MultiplyCase    `yaml:"multiply"`
	ModMultiply []ModMultiplyCase `yaml:"mod_multiply"`
	ModExp      []ModExpCase      `yaml:"mod_exp"`
	DHE         []DHECase         `yaml:"dhe"`
	Elliptic    []EllipticCase    `yaml:"elliptic"`
}

// Len returns the number of cases in the suite.
func (s *Suite) Len() int {
	return len(s.Multiply) + len(s.ModMultiply) + len(s.ModExp) + len(s.DHE) + len(s.Elliptic)
}

// Parse decodes a YAML vector suite. Unknown keys are rejected.
func Parse(data []byte) (*Suite, error) {
	s := &Suite{}
	if err := yaml.UnmarshalStrict(data, s); err != nil {
		return nil, errors.Wrap(err, "parsing vector suite")
	}
	return s, nil
}

// Load reads a YAML vector suite from path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading vector suite %s", path)
	}
	return Parse(data)
}

// Default returns the built-in vector suite.
func Default() *Suite {
	s, err := Parse(defaultVectors)
	if err != nil {
		panic(err)
	}
	return s
}
