package random

import (
	"crypto/rand"
	"encoding/hex"
)

// Random provides random token generation that can be mocked for testing
type Random interface {
	// HexToken returns a hex-encoded string built from nbytes random bytes
	// (so the result is 2*nbytes characters long).
	HexToken(nbytes int) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// HexToken returns a cryptographically random hex string of 2*nbytes characters
func (r *CryptoRandom) HexToken(nbytes int) string {
	if nbytes <= 0 {
		return ""
	}
	b := make([]byte, nbytes)
	// crypto/rand.Read never fails on supported platforms
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
