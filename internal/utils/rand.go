package utils

import (
	crand "crypto/rand"
	"encoding/binary"

	"golang.org/x/exp/rand"
)

// A Rand is a PRNG seeded from cryptographic randomness.
// It is not cryptographically secure, and must not be used to generate secrets.
type Rand struct {
	src *rand.Rand
}

// NewRand creates a new Rand.
func NewRand() *Rand {
	var seed [8]byte
	_, _ = crand.Read(seed[:])
	return &Rand{src: rand.New(rand.NewSource(binary.BigEndian.Uint64(seed[:])))}
}

// Int31n returns a random number in [0, n).
func (r *Rand) Int31n(n int32) int32 {
	return r.src.Int31n(n)
}

// Jitter returns a duration-like value in [0, n).
func (r *Rand) Jitter(n int64) int64 {
	return r.src.Int63n(n)
}
