package rng

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the random source every generator draws from. Implementations
// must be safe for concurrent use.
type Source interface {
	IntN(n int) int
	Float64() float64
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a deterministic source for the given seed.
func New(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSeeded returns a source seeded from the wall clock.
func NewTimeSeeded() Source {
	return New(uint64(time.Now().UnixNano()))
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Bool is a fair coin flip.
func Bool(src Source) bool {
	return src.IntN(2) == 1
}

// IntRange returns a uniform integer in [min, max].
func IntRange(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.IntN(max-min+1)
}

// Chance reports whether a percentage roll succeeds: rand <= percentage/100.
func Chance(src Source, percentage float64) bool {
	if percentage <= 0 {
		return false
	}
	return src.Float64() <= percentage/100
}

// Pick returns a uniformly chosen element. ok is false for an empty slice.
func Pick[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	if len(items) == 1 {
		return items[0], true
	}
	return items[src.IntN(len(items))], true
}
