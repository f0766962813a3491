package mocks

import (
	"fmt"
	"sync/atomic"

	"github.com/ajmarsh/context-collapse-server/internal/dependencies/random"
)

// MockRandom is a deterministic implementation of Random for testing.
// Tokens are sequential so tests can predict and distinguish them.
type MockRandom struct {
	counter atomic.Uint64
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// HexToken returns a deterministic hex-looking token of 2*nbytes characters
func (r *MockRandom) HexToken(nbytes int) string {
	n := r.counter.Add(1)
	s := fmt.Sprintf("%0*x", 2*nbytes, n)
	return s[len(s)-2*nbytes:]
}
