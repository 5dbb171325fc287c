package distribution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xSalik/statsproject/internal/combinatorics"
	"github.com/0xSalik/statsproject/internal/distribution"
	"github.com/0xSalik/statsproject/internal/entities"
	"github.com/0xSalik/statsproject/internal/errors"
)

func TestExpected_TwoD6(t *testing.T) {
	cfg := entities.NewSimulationConfig(2, 6, 36000)

	expected, err := distribution.Expected(cfg)
	require.NoError(t, err)

	assert.Equal(t, entities.SumRange{Min: 2, Max: 12}, expected.Range)
	require.Len(t, expected.Counts, 11)
	assert.InDelta(t, 36000.0/36, expected.At(2), 1e-9)
	assert.InDelta(t, 36000.0*6/36, expected.At(7), 1e-9)
	assert.InDelta(t, 36000.0/36, expected.At(12), 1e-9)
	assert.Zero(t, expected.At(1))
	assert.Zero(t, expected.At(13))
}

func TestExpected_OneD6IsExact(t *testing.T) {
	expected, err := distribution.Expected(entities.NewSimulationConfig(1, 6, 6000))
	require.NoError(t, err)

	for _, sum := range expected.Range.Sums() {
		assert.Equal(t, 1000.0, expected.At(sum))
	}
}

func TestExpected_TotalsMatchTrials(t *testing.T) {
	configs := []entities.SimulationConfig{
		entities.NewSimulationConfig(1, 2, 1),
		entities.NewSimulationConfig(2, 6, 1000),
		entities.NewSimulationConfig(3, 6, 7),
		entities.NewSimulationConfig(5, 20, 123456),
		entities.NewSimulationConfig(10, 100, 1_000_000),
	}

	for _, cfg := range configs {
		t.Run(cfg.Notation(), func(t *testing.T) {
			expected, err := distribution.Expected(cfg)
			require.NoError(t, err)

			assert.Len(t, expected.Counts, cfg.Range().Len())
			assert.InEpsilon(t, float64(cfg.TrialCount), expected.Total(), 1e-9)
			for _, c := range expected.Counts {
				assert.Greater(t, c, 0.0, "every attainable sum has a positive expectation")
			}
		})
	}
}

func TestExpected_Idempotent(t *testing.T) {
	cfg := entities.NewSimulationConfig(4, 8, 50000)

	first, err := distribution.Expected(cfg)
	require.NoError(t, err)
	second, err := distribution.Expected(cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFromTable(t *testing.T) {
	cfg := entities.NewSimulationConfig(3, 6, 216)

	t.Run("uses the supplied counts", func(t *testing.T) {
		expected, err := distribution.FromTable(cfg, combinatorics.NewTable(3, 6))
		require.NoError(t, err)
		assert.Equal(t, 1.0, expected.At(3))
		assert.Equal(t, 27.0, expected.At(10))
		assert.Equal(t, 27.0, expected.At(11))
	})

	t.Run("nil table", func(t *testing.T) {
		_, err := distribution.FromTable(cfg, nil)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("mismatched table", func(t *testing.T) {
		_, err := distribution.FromTable(cfg, combinatorics.NewTable(2, 6))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "does not match config 3d6")
	})
}
