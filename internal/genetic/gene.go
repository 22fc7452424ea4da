// Package genetic provides the evolvable lookup genes and their random generation,
// mutation and crossover operators.
package genetic

import (
	"math/rand"
	"time"
)

// DefaultMutationRate is the probability that Choose discards both parents
const DefaultMutationRate = 0.01

// Gene is a value that can be recombined with another of its kind
type Gene[T any] interface {
	// Choose produces a child from the receiver and other. With the evolver's
	// mutation rate the parents are ignored and a fresh random value is returned.
	Choose(other T, e *Evolver) T
}

// Evolver carries the random source and mutation rate shared by gene operators.
// It is not safe for concurrent use; give each goroutine its own.
type Evolver struct {
	rng          *rand.Rand
	mutationRate float64
}

// NewEvolver creates an evolver; a nil rng is replaced by a time-seeded source
func NewEvolver(rng *rand.Rand, mutationRate float64) *Evolver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Evolver{rng: rng, mutationRate: mutationRate}
}

// MutationRate returns the configured mutation probability
func (e *Evolver) MutationRate() float64 {
	return e.mutationRate
}

// Rand exposes the underlying random source
func (e *Evolver) Rand() *rand.Rand {
	return e.rng
}

// Intn returns a uniform index in [0, n)
func (e *Evolver) Intn(n int) int {
	return e.rng.Intn(n)
}

// Mutates reports whether the next recombination should mutate
func (e *Evolver) Mutates() bool {
	return e.rng.Float64() < e.mutationRate
}

// choose2 picks one of the two parents uniformly
func choose2[T any](e *Evolver, a, b T) T {
	if e.rng.Intn(2) == 0 {
		return a
	}
	return b
}
