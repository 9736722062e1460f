// Package randutil provides a seedable random source for score jitter,
// sample shuffling, and reply selection. Production code seeds from the
// clock; tests pin the seed and assert exact outputs.
package randutil

import (
	"math/rand"
	"sync"
	"time"
)

// Source wraps a rand.Rand behind a mutex so a single source can be
// shared across concurrent requests.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source seeded from the current time.
func New() *Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Source with a fixed seed for reproducible output.
func NewSeeded(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float64InRange returns a uniform value in [lo, hi).
func (s *Source) Float64InRange(lo, hi float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.Float64()*(hi-lo)
}

// IntInRange returns a uniform value in [lo, hi] inclusive.
// When hi <= lo it returns lo without drawing from the source.
func (s *Source) IntInRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.Intn(hi-lo+1)
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(n, swap)
}

// Intn returns a uniform value in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Pick returns one uniformly random element of pool. Pool must be
// non-empty.
func Pick[T any](s *Source, pool []T) T {
	return pool[s.Intn(len(pool))]
}
