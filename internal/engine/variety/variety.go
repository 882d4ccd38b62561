// internal/engine/variety/variety.go
package variety

import (
	"math/rand"
	"sync"
)

// Source supplies the cosmetic randomness used for display values such as
// proficiency estimates and alternative-path jitter. Implementations must be
// safe for concurrent use.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Fixed always returns the midpoint. It is the default and makes every
// analysis reproducible.
type Fixed struct{}

func (Fixed) Float64() float64 { return 0.5 }

type seeded struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// Seeded returns a reproducible pseudo-random source.
func Seeded(seed int64) Source {
	return &seeded{rnd: rand.New(rand.NewSource(seed))}
}

func (s *seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// Between maps src onto [lo, hi).
func Between(src Source, lo, hi float64) float64 {
	if src == nil {
		src = Fixed{}
	}
	return lo + src.Float64()*(hi-lo)
}
