package rng

import (
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
)

// Source is the uniform random source consumed by spawn policies,
// post-spawn effects, world construction and creature behavior.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// New returns a PCG-backed generator seeded from seed.
func New(seed int64) *rand.Rand {
	return Derive(seed, "")
}

// Derive returns an independent generator for a named component of a seeded run.
// The same (seed, label) pair always yields the same stream, so adding a map or a
// policy does not shift the draws of the others.
func Derive(seed int64, label string) *rand.Rand {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))

	h, _ := blake2b.New256(nil) // nil key never errors
	h.Write(buf[:])
	h.Write([]byte(label))
	sum := h.Sum(nil)

	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(sum[0:8]),
		binary.LittleEndian.Uint64(sum[8:16]),
	))
}

// RandomSeed picks a seed for runs configured without one.
// Log it: it is the only way to replay such a run.
func RandomSeed() int64 {
	return rand.Int64()
}
