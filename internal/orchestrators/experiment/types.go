package experiment

import (
	"time"

	"github.com/0xSalik/statsproject/internal/combinatorics"
	"github.com/0xSalik/statsproject/internal/entities"
)

// RunInput defines the request for one simulation run
type RunInput struct {
	Config entities.SimulationConfig
}

// RunOutput carries everything the reporting layer needs. All fields are
// read-only once returned.
type RunOutput struct {
	RunID       string
	Config      entities.SimulationConfig
	Expected    *entities.ExpectedDistribution
	Observed    *entities.ObservedDistribution
	Fit         *entities.GoodnessOfFitResult
	TableCached bool
	StartedAt   time.Time
	FinishedAt  time.Time
}

// TheoryInput defines the request for an exact outcome table
type TheoryInput struct {
	DiceCount  int
	SidesCount int
}

// TheoryOutput contains the exact outcome table
type TheoryOutput struct {
	Table  *combinatorics.Table
	Cached bool
}
