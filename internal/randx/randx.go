// Package randx holds the small random helpers used by task generation.
// Every helper takes the generator explicitly so callers control seeding.
package randx

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// New returns a reproducible generator for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Fresh returns a generator seeded from the wall clock mixed with OS entropy.
// Used in production so every batch differs.
func Fresh() *rand.Rand {
	var buf [8]byte
	_, _ = crand.Read(buf[:])
	seed := binary.LittleEndian.Uint64(buf[:]) ^ uint64(time.Now().UnixNano())
	return New(seed)
}

// IntInRange returns a uniform integer in [min, max]. It panics when
// min > max.
func IntInRange(r *rand.Rand, min, max int) int {
	if min > max {
		panic("randx: IntInRange called with min > max")
	}
	return min + r.IntN(max-min+1)
}

// PickOne returns a uniform element of set. It panics on an empty set.
func PickOne[T any](r *rand.Rand, set []T) T {
	if len(set) == 0 {
		panic("randx: PickOne called with empty set")
	}
	return set[r.IntN(len(set))]
}
