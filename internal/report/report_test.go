package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xSalik/statsproject/internal/combinatorics"
	"github.com/0xSalik/statsproject/internal/distribution"
	"github.com/0xSalik/statsproject/internal/entities"
	"github.com/0xSalik/statsproject/internal/errors"
)

func newUniformReport(t *testing.T) *Report {
	t.Helper()

	cfg := entities.NewSimulationConfig(1, 6, 6000)
	expected, err := distribution.Expected(cfg)
	require.NoError(t, err)

	observed, err := entities.NewObservedDistribution(cfg.Range())
	require.NoError(t, err)
	for i := range observed.Counts {
		observed.Counts[i] = 1000
	}

	return &Report{
		RunID:    "run_1",
		Config:   cfg,
		Expected: expected,
		Observed: observed,
		Fit:      &entities.GoodnessOfFitResult{ChiSquared: 0, DegreesOfFreedom: 5},
	}
}

func TestBar(t *testing.T) {
	testCases := []struct {
		name        string
		observed    int64
		maxExpected float64
		want        int
	}{
		{name: "matches max expected", observed: 1000, maxExpected: 1000, want: BarWidth},
		{name: "half of max expected", observed: 500, maxExpected: 1000, want: 15},
		{name: "truncates", observed: 99, maxExpected: 1000, want: 2},
		{name: "above max expected", observed: 1100, maxExpected: 1000, want: 33},
		{name: "nothing observed", observed: 0, maxExpected: 1000, want: 0},
		{name: "no expected counts", observed: 10, maxExpected: 0, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bar := Bar(tc.observed, tc.maxExpected)
			assert.Len(t, bar, tc.want)
			assert.Equal(t, strings.Repeat("#", tc.want), bar)
		})
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, newUniformReport(t)))

	out := buf.String()
	assert.Contains(t, out, "--- Simulation Results for 6000 trials of rolling 1d6 ---")
	assert.Contains(t, out, "Run: run_1")
	assert.Contains(t, out, "| Sum  | Expected Count     | Observed Count     | Distribution Bar")
	assert.Contains(t, out, "| 1    | 1000.00            | 1000               | "+strings.Repeat("#", 30)+"\n")
	assert.Contains(t, out, "| 6    | 1000.00            | 1000               | ")
	assert.NotContains(t, out, "| 7    |")
	assert.Contains(t, out, "Chi-Squared (χ²) Statistic: 0.0000")
	assert.Contains(t, out, "Degrees of Freedom: 5")
	assert.True(t, strings.HasSuffix(out, Interpretation+"\n"))
}

func TestRender_RowsCoverEverySum(t *testing.T) {
	cfg := entities.NewSimulationConfig(2, 6, 36)
	expected, err := distribution.Expected(cfg)
	require.NoError(t, err)
	observed, err := entities.NewObservedDistribution(cfg.Range())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, &Report{
		Config:   cfg,
		Expected: expected,
		Observed: observed,
		Fit:      &entities.GoodnessOfFitResult{ChiSquared: 36, DegreesOfFreedom: 10},
	}))

	out := buf.String()
	for sum := 2; sum <= 12; sum++ {
		assert.Contains(t, out, fmt.Sprintf("| %-4d | ", sum))
	}
	assert.Contains(t, out, "| 7    | 6.00               | 0                  | \n")
	assert.NotContains(t, out, "Run:")
}

func TestRender_Invalid(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	err = Render(&buf, &Report{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Expected")
	assert.Contains(t, err.Error(), "Fit")

	r := newUniformReport(t)
	other, nerr := entities.NewObservedDistribution(entities.NewSimulationConfig(2, 6, 1).Range())
	require.NoError(t, nerr)
	r.Observed = other
	err = Render(&buf, r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.Unavailable("closed pipe")
}

func TestRender_WriteError(t *testing.T) {
	err := Render(failingWriter{}, newUniformReport(t))
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
}

func TestRenderTheory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTheory(&buf, &TheoryReport{
		Table:  combinatorics.NewTable(2, 6),
		Cached: true,
	}))

	out := buf.String()
	assert.Contains(t, out, "--- Exact Outcomes for 2d6 (36 total) ---")
	assert.Contains(t, out, "Loaded from outcome table cache")
	assert.Contains(t, out, "| 2    | 1                        | 0.02777778\n")
	assert.Contains(t, out, "| 7    | 6                        | 0.16666667\n")
	assert.Contains(t, out, "| 12   | 1                        | 0.02777778\n")
}

func TestRenderTheory_LargeCounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTheory(&buf, &TheoryReport{Table: combinatorics.NewTable(10, 100)}))

	out := buf.String()
	assert.Contains(t, out, "(100000000000000000000 total)")
	assert.Contains(t, out, "| 10   | 1                        | ")
	assert.NotContains(t, out, "cache")
}

func TestRenderTheory_Invalid(t *testing.T) {
	err := RenderTheory(&bytes.Buffer{}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	err = RenderTheory(&bytes.Buffer{}, &TheoryReport{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
