package simulation_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xSalik/statsproject/internal/entities"
	"github.com/0xSalik/statsproject/internal/errors"
	"github.com/0xSalik/statsproject/internal/pkg/roller"
	"github.com/0xSalik/statsproject/internal/simulation"
	"github.com/0xSalik/statsproject/internal/testutils"
)

func newEngine(t *testing.T, r dice.Roller) *simulation.Engine {
	t.Helper()
	engine, err := simulation.NewEngine(&simulation.Config{Roller: r})
	require.NoError(t, err)
	return engine
}

func TestNewEngine(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     *simulation.Config
		wantErr bool
	}{
		{name: "valid", cfg: &simulation.Config{Roller: roller.New(nil)}},
		{name: "nil config", cfg: nil, wantErr: true},
		{name: "missing roller", cfg: &simulation.Config{}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine, err := simulation.NewEngine(tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidArgument(err))
				assert.Nil(t, engine)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, engine)
		})
	}
}

func TestEngine_RoundRobinIsUniform(t *testing.T) {
	engine := newEngine(t, &testutils.CycleRoller{})

	observed, err := engine.Run(context.Background(), entities.NewSimulationConfig(1, 6, 6000))
	require.NoError(t, err)

	assert.Equal(t, entities.SumRange{Min: 1, Max: 6}, observed.Range)
	for sum := 1; sum <= 6; sum++ {
		assert.Equal(t, int64(1000), observed.At(sum), "sum %d", sum)
	}
}

func TestEngine_TotalEqualsTrials(t *testing.T) {
	configs := []entities.SimulationConfig{
		entities.NewSimulationConfig(1, 2, 1),
		entities.NewSimulationConfig(2, 6, 10_000),
		entities.NewSimulationConfig(3, 6, 9_999),
		entities.NewSimulationConfig(10, 100, 2_500),
	}

	engine := newEngine(t, roller.New(&roller.Config{Seed: 2024}))
	for _, cfg := range configs {
		t.Run(cfg.Notation(), func(t *testing.T) {
			observed, err := engine.Run(context.Background(), cfg)
			require.NoError(t, err)
			assert.Len(t, observed.Counts, cfg.Range().Len())
			assert.Equal(t, cfg.TrialCount, observed.Total())
		})
	}
}

func TestEngine_RepeatedRunsKeepTotals(t *testing.T) {
	engine := newEngine(t, roller.New(&roller.Config{Seed: 11}))
	cfg := entities.NewSimulationConfig(2, 6, 5000)

	first, err := engine.Run(context.Background(), cfg)
	require.NoError(t, err)
	second, err := engine.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, cfg.TrialCount, first.Total())
	assert.Equal(t, cfg.TrialCount, second.Total())
	assert.NotEqual(t, first.Counts, second.Counts, "generator state carries over between runs")
}

func TestEngine_SameSeedSameCounts(t *testing.T) {
	cfg := entities.NewSimulationConfig(3, 8, 20_000)

	a, err := newEngine(t, roller.New(&roller.Config{Seed: 5})).Run(context.Background(), cfg)
	require.NoError(t, err)
	b, err := newEngine(t, roller.New(&roller.Config{Seed: 5})).Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Counts, b.Counts)
}

func TestEngine_OneRollPerDie(t *testing.T) {
	r := &testutils.CycleRoller{}
	engine := newEngine(t, r)

	_, err := engine.Run(context.Background(), entities.NewSimulationConfig(4, 6, 250))
	require.NoError(t, err)
	assert.Equal(t, 1000, r.Calls)
}

func TestEngine_RollerFailure(t *testing.T) {
	engine := newEngine(t, &testutils.FailingRoller{AllowedRolls: 5})

	observed, err := engine.Run(context.Background(), entities.NewSimulationConfig(2, 6, 10))
	require.Error(t, err)
	assert.Nil(t, observed)
	assert.True(t, errors.IsInternal(err))
	assert.Contains(t, err.Error(), "failed to roll die 2 of trial 3")
}

func TestEngine_IllegalFace(t *testing.T) {
	engine := newEngine(t, &testutils.FixedRoller{Face: 7})

	_, err := engine.Run(context.Background(), entities.NewSimulationConfig(1, 6, 10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roller returned face 7 for a d6")
}

func TestEngine_Canceled(t *testing.T) {
	engine := newEngine(t, roller.New(&roller.Config{Seed: 1}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	observed, err := engine.Run(ctx, entities.NewSimulationConfig(2, 6, 1_000_000))
	require.Error(t, err)
	assert.Nil(t, observed)
	assert.True(t, errors.IsCanceled(err))
	assert.Equal(t, int64(0), errors.GetMeta(err)["trials_completed"])
}
