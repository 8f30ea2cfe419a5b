// internal/words/random.go
//
// Random sources for target selection.

package words

import (
	cryptorand "crypto/rand"
	"math/rand/v2"
)

// Source picks an index in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a ChaCha8 generator seeded from crypto/rand.
// Create one per process and keep drawing from it.
func NewSource() *rand.Rand {
	var seed [32]byte
	_, _ = cryptorand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeededSource returns a reproducible generator, for tests and replays.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
