package core

import "math/rand/v2"

// IntSource yields uniform integers in [0, n). *rand.Rand and *RNG both
// satisfy it, as does any deterministic stub a test wants to inject.
type IntSource interface {
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// FillPercent sets each cell of buf to 1 when a draw in [0, 100) falls below
// percent and to 0 otherwise. Every cell consumes exactly one draw, so
// percent <= 0 clears the buffer and percent >= 100 fills it.
func FillPercent(src IntSource, buf []uint8, percent int) {
	for i := range buf {
		if src.IntN(100) < percent {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}
