package engine

import (
	"math/rand"
	"sync"
	"time"
)

// lockedRand is a concurrency-safe Rand backed by math/rand.
// GetLiveQuotes draws from multiple goroutines, and *rand.Rand alone is
// not safe for concurrent use.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand returns the default random source
func NewRand() Rand {
	return &lockedRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}
