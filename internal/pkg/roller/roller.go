// Package roller provides a seedable dice.Roller for simulations that need
// millions of cheap, reproducible rolls.
package roller

import (
	"math/rand/v2"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/0xSalik/statsproject/internal/errors"
)

// Config for the seeded roller
type Config struct {
	// Seed fixes the generator state. Zero picks a time based seed.
	Seed uint64
}

// Seeded rolls dice from a PCG generator seeded exactly once
type Seeded struct {
	seed uint64
	rng  *rand.Rand
}

var _ dice.Roller = (*Seeded)(nil)

// New creates a seeded roller
func New(cfg *Config) *Seeded {
	var seed uint64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = uint64(time.Now().UnixNano())
	}

	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// Seed returns the seed the generator started from
func (s *Seeded) Seed() uint64 {
	return s.seed
}

// Roll returns a face in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	return s.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative: %d", count)
	}

	faces := make([]int, count)
	for i := range faces {
		face, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		faces[i] = face
	}
	return faces, nil
}
