// Package simulation rolls dice and tallies the sums that come up
package simulation

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/0xSalik/statsproject/internal/entities"
	"github.com/0xSalik/statsproject/internal/errors"
)

// cancelCheckInterval is how many trials run between context checks
const cancelCheckInterval = 1 << 14

// Config holds the dependencies for the simulation engine
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Engine produces observed distributions from its own random source. The
// source is never reseeded between trials or runs.
type Engine struct {
	roller dice.Roller
}

// NewEngine creates a simulation engine with the provided dependencies
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Engine{roller: cfg.Roller}, nil
}

// Run performs cfg.TrialCount trials of cfg.DiceCount dice and counts each
// sum. The returned counts always add up to cfg.TrialCount. A roller failure
// or cancellation aborts the run and no partial distribution is returned.
func (e *Engine) Run(ctx context.Context, cfg entities.SimulationConfig) (*entities.ObservedDistribution, error) {
	observed, err := entities.NewObservedDistribution(cfg.Range())
	if err != nil {
		return nil, err
	}

	counts := observed.Counts
	offset := observed.Range.Min
	sides := cfg.SidesCount

	for trial := int64(0); trial < cfg.TrialCount; trial++ {
		if trial%cancelCheckInterval == 0 && ctx.Err() != nil {
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "simulation canceled").
				WithMeta("trials_completed", trial)
		}

		sum := 0
		for d := 0; d < cfg.DiceCount; d++ {
			face, err := e.roller.Roll(sides)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to roll die %d of trial %d", d+1, trial+1)
			}
			if face < 1 || face > sides {
				return nil, errors.Internalf("roller returned face %d for a d%d", face, sides)
			}
			sum += face
		}
		counts[sum-offset]++
	}

	return observed, nil
}
