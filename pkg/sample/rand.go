// Package sample draws uniformly distributed points from typedgeo shapes.
// The shapes only see a Source; Rand is a PCG-backed Source whose sequence
// is fixed by its seed, so tests built on it are reproducible.
package sample

import "github.com/MichaelTJones/pcg"

// Source produces uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// streamID selects the PCG stream; every Rand uses the same one so that
// equal seeds produce equal sequences.
const streamID = 0xda3e39cb94b95bdb

// Rand is a deterministic PCG32 generator.
type Rand struct {
	r *pcg.PCG32
}

// New returns a generator seeded with seed.
func New(seed uint64) *Rand {
	r := &Rand{r: pcg.NewPCG32()}
	r.Seed(seed)
	return r
}

// Seed resets the generator.
func (r *Rand) Seed(seed uint64) {
	r.r.Seed(seed, streamID)
}

// Uint32 returns 32 random bits.
func (r *Rand) Uint32() uint32 { return r.r.Random() }

// Intn returns a value in [0, n). n must be positive and fit in 32 bits.
func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.r.Random()) / (1 << 32)
}

// Float32 returns a value in [0, 1).
func (r *Rand) Float32() float32 {
	// 24 bits keep the result strictly below 1 after rounding.
	return float32(r.r.Random()>>8) / (1 << 24)
}
