// Package distribution turns exact outcome counts into expected sum counts
// for a given number of trials.
package distribution

import (
	"math/big"

	"github.com/0xSalik/statsproject/internal/combinatorics"
	"github.com/0xSalik/statsproject/internal/entities"
	"github.com/0xSalik/statsproject/internal/errors"
)

// Expected builds the theoretical distribution for cfg from scratch
func Expected(cfg entities.SimulationConfig) (*entities.ExpectedDistribution, error) {
	return FromTable(cfg, combinatorics.NewTable(cfg.DiceCount, cfg.SidesCount))
}

// FromTable scales a precomputed outcome table to cfg.TrialCount trials.
// Each entry is ways(sum) * trials / sides^dice, evaluated exactly and then
// rounded once to float64.
func FromTable(cfg entities.SimulationConfig, table *combinatorics.Table) (*entities.ExpectedDistribution, error) {
	if table == nil {
		return nil, errors.InvalidArgument("outcome table is required")
	}
	if table.DiceCount() != cfg.DiceCount || table.SidesCount() != cfg.SidesCount {
		return nil, errors.InvalidArgumentf("outcome table %dd%d does not match config %s",
			table.DiceCount(), table.SidesCount(), cfg.Notation())
	}

	expected, err := entities.NewExpectedDistribution(cfg.Range())
	if err != nil {
		return nil, err
	}

	total := table.Total()
	if total.Sign() <= 0 {
		// nothing can be rolled; leave every sum at zero
		return expected, nil
	}

	trials := big.NewInt(cfg.TrialCount)
	scaled := new(big.Int)
	ratio := new(big.Rat)
	for i, sum := range expected.Range.Sums() {
		scaled.Mul(table.Ways(sum), trials)
		expected.Counts[i], _ = ratio.SetFrac(scaled, total).Float64()
	}

	return expected, nil
}
