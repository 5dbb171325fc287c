// Package goodnessoffit compares observed sum counts with expected ones using
// Pearson's Chi-Squared statistic.
package goodnessoffit

import (
	"gonum.org/v1/gonum/stat"

	"github.com/0xSalik/statsproject/internal/entities"
	"github.com/0xSalik/statsproject/internal/errors"
)

// Evaluate returns Σ (observed-expected)²/expected over every sum whose
// expected count is positive, together with the degrees of freedom
// (max sum - min sum). Sums with a non-positive expectation contribute
// nothing. Neither input is modified.
func Evaluate(
	observed *entities.ObservedDistribution,
	expected *entities.ExpectedDistribution,
) (*entities.GoodnessOfFitResult, error) {
	if observed == nil || expected == nil {
		return nil, errors.InvalidArgument("observed and expected distributions are required")
	}
	if observed.Range != expected.Range {
		return nil, errors.InvalidArgumentf("observed sums [%d,%d] do not match expected sums [%d,%d]",
			observed.Range.Min, observed.Range.Max, expected.Range.Min, expected.Range.Max)
	}
	if len(observed.Counts) != len(expected.Counts) {
		return nil, errors.InvalidArgumentf("observed has %d counts, expected has %d",
			len(observed.Counts), len(expected.Counts))
	}

	obs := make([]float64, 0, len(expected.Counts))
	exp := make([]float64, 0, len(expected.Counts))
	for i, e := range expected.Counts {
		if e <= 0 {
			continue
		}
		obs = append(obs, float64(observed.Counts[i]))
		exp = append(exp, e)
	}

	return &entities.GoodnessOfFitResult{
		ChiSquared:       stat.ChiSquare(obs, exp),
		DegreesOfFreedom: expected.Range.Max - expected.Range.Min,
	}, nil
}
