package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(args ...string) error {
	cmd := newCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestDefaultSuite(t *testing.T) {
	require.NoError(t, execute("--log-level", "error"))
	require.NoError(t, execute("--log-level", "error", "--rounds", "2", "--seed", "7"))
}

func TestVectorFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
mod_exp:
  - name: "5^6 mod 23"
    base: "05"
    modulus: "17"
    exponent: "06"
    expected: "08"
`), 0o600))
	require.NoError(t, execute("--vectors", good, "--log-level", "error"))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
multiply:
  - name: "wrong"
    a: "03"
    b: "05"
    expected: "0010"
`), 0o600))
	err := execute("--vectors", bad, "--log-level", "fatal")
	require.EqualError(t, err, "1 of 1 checks failed")

	require.Error(t, execute("--vectors", filepath.Join(dir, "missing.yaml")))
}

func TestInvalidArguments(t *testing.T) {
	require.Error(t, execute("--log-level", "loud"))
	require.Error(t, execute("extra"))
}
