// Package experiment runs the full dice experiment: exact theory, simulation
// and the Chi-Squared comparison of the two.
package experiment

//go:generate mockgen -destination=mock/mock_service.go -package=experimentmock github.com/0xSalik/statsproject/internal/orchestrators/experiment Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/0xSalik/statsproject/internal/combinatorics"
	"github.com/0xSalik/statsproject/internal/distribution"
	"github.com/0xSalik/statsproject/internal/entities"
	"github.com/0xSalik/statsproject/internal/errors"
	"github.com/0xSalik/statsproject/internal/goodnessoffit"
	"github.com/0xSalik/statsproject/internal/pkg/clock"
	"github.com/0xSalik/statsproject/internal/pkg/idgen"
	outcometable "github.com/0xSalik/statsproject/internal/repositories/outcome_table"
	"github.com/0xSalik/statsproject/internal/simulation"
)

// Service defines the experiment operations
type Service interface {
	// Run simulates cfg.TrialCount rolls and compares them to the exact distribution
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)

	// Theory returns the exact number of ways to roll each sum
	Theory(ctx context.Context, input *TheoryInput) (*TheoryOutput, error)
}

// Config holds the dependencies for the experiment orchestrator
type Config struct {
	Roller        dice.Roller
	OutcomeTables outcometable.Repository
	IDGenerator   idgen.Generator
	Clock         clock.Clock

	// TableTTL is passed to the cache on store; zero uses the cache default
	TableTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.OutcomeTables == nil {
		vb.RequiredField("OutcomeTables")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TableTTL < 0 {
		vb.Field("TableTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	engine        *simulation.Engine
	outcomeTables outcometable.Repository
	idGen         idgen.Generator
	clock         clock.Clock
	tableTTL      time.Duration
}

// NewOrchestrator creates a new experiment orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	engine, err := simulation.NewEngine(&simulation.Config{Roller: cfg.Roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create simulation engine")
	}

	return &orchestrator{
		engine:        engine,
		outcomeTables: cfg.OutcomeTables,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
		tableTTL:      cfg.TableTTL,
	}, nil
}

// Run validates the config, then builds the expected distribution, simulates
// the observed one and evaluates the fit
func (o *orchestrator) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	cfg := input.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := o.idGen.Generate()
	startedAt := o.clock.Now()

	table, cached, err := o.outcomeTable(ctx, cfg.DiceCount, cfg.SidesCount)
	if err != nil {
		return nil, err
	}

	expected, err := distribution.FromTable(cfg, table)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build expected distribution")
	}

	observed, err := o.engine.Run(ctx, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to simulate %s", cfg.Notation()).
			WithMeta("run_id", runID)
	}

	fit, err := goodnessoffit.Evaluate(observed, expected)
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate goodness of fit")
	}

	finishedAt := o.clock.Now()

	slog.Info("Simulation completed",
		"run_id", runID,
		"notation", cfg.Notation(),
		"trials", cfg.TrialCount,
		"chi_squared", fit.ChiSquared,
		"degrees_of_freedom", fit.DegreesOfFreedom,
		"table_cached", cached,
		"duration", finishedAt.Sub(startedAt),
	)

	return &RunOutput{
		RunID:       runID,
		Config:      cfg,
		Expected:    expected,
		Observed:    observed,
		Fit:         fit,
		TableCached: cached,
		StartedAt:   startedAt,
		FinishedAt:  finishedAt,
	}, nil
}

// Theory returns the exact outcome table for the requested dice
func (o *orchestrator) Theory(ctx context.Context, input *TheoryInput) (*TheoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("dice_count", input.DiceCount, entities.MinDiceCount, entities.MaxDiceCount, vb)
	errors.ValidateRange("sides_count", input.SidesCount, entities.MinSidesCount, entities.MaxSidesCount, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	table, cached, err := o.outcomeTable(ctx, input.DiceCount, input.SidesCount)
	if err != nil {
		return nil, err
	}

	return &TheoryOutput{
		Table:  table,
		Cached: cached,
	}, nil
}

// outcomeTable loads the table from the cache or computes and stores it. The
// cache is best effort: its failures are logged and never fail the caller.
func (o *orchestrator) outcomeTable(ctx context.Context, diceCount, sidesCount int) (*combinatorics.Table, bool, error) {
	getOutput, err := o.outcomeTables.Get(ctx, outcometable.GetInput{
		DiceCount:  diceCount,
		SidesCount: sidesCount,
	})
	if err == nil {
		return getOutput.Table, true, nil
	}
	if !errors.IsNotFound(err) {
		slog.Warn("Outcome table cache unavailable",
			"dice_count", diceCount,
			"sides_count", sidesCount,
			"error", err,
		)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, false, errors.WrapWithCode(ctxErr, errors.CodeCanceled, "outcome table lookup canceled")
	}

	table := combinatorics.NewTable(diceCount, sidesCount)

	if _, err := o.outcomeTables.Put(ctx, outcometable.PutInput{
		Table: table,
		TTL:   o.tableTTL,
	}); err != nil {
		slog.Warn("Failed to cache outcome table",
			"dice_count", diceCount,
			"sides_count", sidesCount,
			"error", err,
		)
	}

	return table, false, nil
}
