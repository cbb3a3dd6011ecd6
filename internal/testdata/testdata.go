// Package testdata provides deterministic test data generation for tests and
// fuzzers, keyed by a per-suite name so that seed corpora are stable across
// runs.
package testdata

import "golang.org/x/crypto/sha3"

// A DRBG is a deterministic random bit generator backed by SHAKE128.
type DRBG struct {
	shake sha3.ShakeHash
}

// New returns a DRBG seeded with the given name.
func New(name string) *DRBG {
	shake := sha3.NewShake128()
	_, _ = shake.Write([]byte(name))
	return &DRBG{shake: shake}
}

// Data returns the next n bytes of deterministic output.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.shake.Read(b)
	return b
}
