package core

import (
	"math/rand/v2"
	"time"
)

// Rand is the uniform integer source used for object placement
type Rand interface {
	// IntN returns a value in [0, n)
	IntN(n int) int
}

// NewRand returns a time-seeded PCG generator
func NewRand() *rand.Rand {
	return NewSeededRand(uint64(time.Now().UnixNano()))
}

// NewSeededRand returns a deterministic PCG generator
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}
