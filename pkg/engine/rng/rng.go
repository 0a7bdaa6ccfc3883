// Package rng provides the random source collaborator used by generation
// and gameplay. Components take a Source rather than reaching for the
// global math/rand state, so tests can substitute a fixed sequence.
package rng

import (
	"math/rand"
	"time"
)

// Source is the contract the engine expects from a random number provider.
type Source interface {
	// Integer returns a uniform integer in [min, max] inclusive.
	Integer(min, max int) int

	// Chance returns true with probability p, clamped to [0, 1].
	Chance(p float64) bool

	// Shuffle permutes n elements using the given swap function.
	Shuffle(n int, swap func(i, j int))
}

// Choice returns a uniform pick from list, or the zero value if list is empty.
func Choice[T any](src Source, list []T) T {
	var zero T
	if len(list) == 0 {
		return zero
	}
	return list[src.Integer(0, len(list)-1)]
}

type mathSource struct {
	r *rand.Rand
}

// New creates a math/rand backed Source. A zero seed uses the current time.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathSource{r: rand.New(rand.NewSource(seed))}
}

func (s *mathSource) Integer(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.r.Intn(max-min+1)
}

func (s *mathSource) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

func (s *mathSource) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}
