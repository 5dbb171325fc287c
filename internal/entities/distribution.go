package entities

import (
	"github.com/0xSalik/statsproject/internal/errors"
)

// ExpectedDistribution holds the theoretical count for every sum in Range.
// Counts[i] belongs to sum Range.Min+i.
type ExpectedDistribution struct {
	Range  SumRange
	Counts []float64
}

// NewExpectedDistribution allocates a zeroed distribution covering r
func NewExpectedDistribution(r SumRange) (*ExpectedDistribution, error) {
	if r.Len() == 0 {
		return nil, errors.ResourceExhaustedf("cannot allocate expected counts for sums [%d,%d]", r.Min, r.Max)
	}
	return &ExpectedDistribution{
		Range:  r,
		Counts: make([]float64, r.Len()),
	}, nil
}

// At returns the expected count for sum, or 0 outside the range
func (d *ExpectedDistribution) At(sum int) float64 {
	if !d.Range.Contains(sum) {
		return 0
	}
	return d.Counts[sum-d.Range.Min]
}

// Total sums the expected counts
func (d *ExpectedDistribution) Total() float64 {
	var total float64
	for _, c := range d.Counts {
		total += c
	}
	return total
}

// Max returns the largest expected count
func (d *ExpectedDistribution) Max() float64 {
	var maxCount float64
	for _, c := range d.Counts {
		if c > maxCount {
			maxCount = c
		}
	}
	return maxCount
}

// ObservedDistribution holds the simulated count for every sum in Range.
// Counts[i] belongs to sum Range.Min+i.
type ObservedDistribution struct {
	Range  SumRange
	Counts []int64
}

// NewObservedDistribution allocates a zeroed distribution covering r
func NewObservedDistribution(r SumRange) (*ObservedDistribution, error) {
	if r.Len() == 0 {
		return nil, errors.ResourceExhaustedf("cannot allocate observed counts for sums [%d,%d]", r.Min, r.Max)
	}
	return &ObservedDistribution{
		Range:  r,
		Counts: make([]int64, r.Len()),
	}, nil
}

// At returns the observed count for sum, or 0 outside the range
func (d *ObservedDistribution) At(sum int) int64 {
	if !d.Range.Contains(sum) {
		return 0
	}
	return d.Counts[sum-d.Range.Min]
}

// Total sums the observed counts
func (d *ObservedDistribution) Total() int64 {
	var total int64
	for _, c := range d.Counts {
		total += c
	}
	return total
}
