package entities

import (
	"fmt"

	"github.com/0xSalik/statsproject/internal/errors"
)

// Supported input ranges. The core packages trust their callers; these bounds
// are enforced where a config enters the system.
const (
	MinDiceCount  = 1
	MaxDiceCount  = 10
	MinSidesCount = 2
	MaxSidesCount = 100
	MinTrialCount = 1
)

// SimulationConfig describes one run: roll DiceCount dice of SidesCount sides,
// TrialCount times. It is a value type and is never mutated after creation.
type SimulationConfig struct {
	DiceCount  int   `json:"dice_count"`
	SidesCount int   `json:"sides_count"`
	TrialCount int64 `json:"trial_count"`
}

// NewSimulationConfig creates a config from already validated parameters
func NewSimulationConfig(diceCount, sidesCount int, trialCount int64) SimulationConfig {
	return SimulationConfig{
		DiceCount:  diceCount,
		SidesCount: sidesCount,
		TrialCount: trialCount,
	}
}

// Validate checks the config against the supported ranges
func (c SimulationConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("dice_count", c.DiceCount, MinDiceCount, MaxDiceCount, vb)
	errors.ValidateRange("sides_count", c.SidesCount, MinSidesCount, MaxSidesCount, vb)
	errors.ValidateAtLeast("trial_count", c.TrialCount, MinTrialCount, vb)

	return vb.Build()
}

// Range returns the attainable sums [DiceCount, DiceCount*SidesCount]
func (c SimulationConfig) Range() SumRange {
	return SumRange{Min: c.DiceCount, Max: c.DiceCount * c.SidesCount}
}

// DegreesOfFreedom is the number of sum categories minus one
func (c SimulationConfig) DegreesOfFreedom() int {
	return c.Range().Max - c.Range().Min
}

// Notation returns the conventional dice notation, e.g. "2d6"
func (c SimulationConfig) Notation() string {
	return fmt.Sprintf("%dd%d", c.DiceCount, c.SidesCount)
}

// SumRange is an inclusive range of dice sums
type SumRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Len returns the number of sums in the range, or 0 for an empty range
func (r SumRange) Len() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// Contains reports whether sum lies inside the range
func (r SumRange) Contains(sum int) bool {
	return sum >= r.Min && sum <= r.Max
}

// Sums lists every sum in ascending order
func (r SumRange) Sums() []int {
	sums := make([]int, 0, r.Len())
	for sum := r.Min; sum <= r.Max; sum++ {
		sums = append(sums, sum)
	}
	return sums
}

// GoodnessOfFitResult is the Chi-Squared comparison of one observed and one
// expected distribution over the same sum range.
type GoodnessOfFitResult struct {
	ChiSquared       float64 `json:"chi_squared"`
	DegreesOfFreedom int     `json:"degrees_of_freedom"`
}
