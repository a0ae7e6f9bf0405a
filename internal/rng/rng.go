package rng

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/fortunabot/fortuna/internal/rng Source

// Source provides the randomness the outcome generators consume.
type Source interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64

	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}

// Config for the default source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// defaultSource implements Source using math/rand
type defaultSource struct {
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &defaultSource{
		random: rand.New(rand.NewSource(seed)),
	}
}

func (s *defaultSource) Float64() float64 {
	return s.random.Float64()
}

func (s *defaultSource) Intn(n int) int {
	if n < 1 {
		n = 1
	}
	return s.random.Intn(n)
}
