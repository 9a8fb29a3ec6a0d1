// Package random provides the seeded number source handed to actors.
package random

import (
	"math/rand"
	"time"
)

// Source is a seeded uniform generator. Each owner holds its own instance,
// so actors can be given a shared or an independent stream.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// New creates a source seeded with seed.
func New(seed int64) *Source {
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// NewFromClock creates a source seeded from the wall clock.
func NewFromClock() *Source {
	return New(time.Now().UnixNano())
}

// Seed reseeds the source deterministically.
func (s *Source) Seed(seed int64) {
	s.rng.Seed(seed)
	s.seed = seed
}

// CurrentSeed returns the last seed applied.
func (s *Source) CurrentSeed() int64 {
	return s.seed
}

// NextInt returns a value in the inclusive range [min, max].
// Callers must not pass min > max.
func (s *Source) NextInt(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

// NextFloat returns a value in [min, max).
func (s *Source) NextFloat(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
