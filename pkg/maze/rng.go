package maze

import "math/rand/v2"

// Source is the randomness capability the generators consume: a stream of
// uniform integers in a caller-specified range. For a fixed seed and a fixed
// sequence of bounds the stream must replay identically. Generators call it
// with the exact same bound sequence for a given grid size, which is what
// makes mazes reproducible from their seed.
//
// *rand/v2.Rand satisfies Source directly.
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
}

// NewSource returns a deterministic PCG-backed source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// RandomSeed draws a seed from the process-wide entropy-seeded generator.
// Callers that want a reproducible maze without choosing a seed themselves
// should draw one here, log it, and pass it to [NewSource].
func RandomSeed() uint64 {
	return rand.Uint64()
}
