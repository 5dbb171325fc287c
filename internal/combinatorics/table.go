package combinatorics

import (
	"math/big"

	"github.com/0xSalik/statsproject/internal/entities"
	"github.com/0xSalik/statsproject/internal/errors"
)

// Table holds the exact number of ways to roll every attainable sum for one
// dice/sides pair.
type Table struct {
	dice  int
	sides int
	rng   entities.SumRange
	ways  []*big.Int
	total *big.Int
}

// NewTable builds the outcome table by convolving the single-die uniform
// distribution with itself once per die.
func NewTable(diceCount, sidesCount int) *Table {
	// partial[s] counts the ways the dice placed so far reach sum s
	partial := []*big.Int{big.NewInt(1)}

	for die := 1; die <= diceCount; die++ {
		next := make([]*big.Int, die*sidesCount+1)
		for s := range next {
			next[s] = new(big.Int)
		}
		for s, ways := range partial {
			if ways.Sign() == 0 {
				continue
			}
			for face := 1; face <= sidesCount; face++ {
				next[s+face].Add(next[s+face], ways)
			}
		}
		partial = next
	}

	rng := entities.SumRange{Min: diceCount, Max: diceCount * sidesCount}
	return &Table{
		dice:  diceCount,
		sides: sidesCount,
		rng:   rng,
		ways:  partial[rng.Min : rng.Max+1],
		total: TotalOutcomes(diceCount, sidesCount),
	}
}

// NewTableFromCounts rebuilds a table from previously computed counts, one per
// sum in ascending order. The counts must cover the full range and add up to
// sides^dice.
func NewTableFromCounts(diceCount, sidesCount int, counts []*big.Int) (*Table, error) {
	rng := entities.SumRange{Min: diceCount, Max: diceCount * sidesCount}
	if len(counts) != rng.Len() {
		return nil, errors.InvalidArgumentf("outcome table %dd%d needs %d counts, got %d",
			diceCount, sidesCount, rng.Len(), len(counts))
	}

	total := TotalOutcomes(diceCount, sidesCount)
	sum := new(big.Int)
	ways := make([]*big.Int, len(counts))
	for i, c := range counts {
		if c == nil || c.Sign() < 0 {
			return nil, errors.InvalidArgumentf("outcome table %dd%d has an invalid count for sum %d",
				diceCount, sidesCount, rng.Min+i)
		}
		ways[i] = new(big.Int).Set(c)
		sum.Add(sum, c)
	}
	if sum.Cmp(total) != 0 {
		return nil, errors.InvalidArgumentf("outcome table %dd%d counts add up to %s, want %s",
			diceCount, sidesCount, sum.String(), total.String())
	}

	return &Table{
		dice:  diceCount,
		sides: sidesCount,
		rng:   rng,
		ways:  ways,
		total: total,
	}, nil
}

// DiceCount returns the number of dice the table was built for
func (t *Table) DiceCount() int { return t.dice }

// SidesCount returns the number of sides per die
func (t *Table) SidesCount() int { return t.sides }

// Range returns the attainable sums
func (t *Table) Range() entities.SumRange { return t.rng }

// Ways returns the number of ways to roll sum; zero when sum is unreachable
func (t *Table) Ways(sum int) *big.Int {
	if !t.rng.Contains(sum) {
		return new(big.Int)
	}
	return new(big.Int).Set(t.ways[sum-t.rng.Min])
}

// WaysUint64 is Ways narrowed to 64 bits. Counts that do not fit are reported
// as OutOfRange rather than wrapped.
func (t *Table) WaysUint64(sum int) (uint64, error) {
	ways := t.Ways(sum)
	if !ways.IsUint64() {
		return 0, errors.OutOfRangef("ways to roll %d on %dd%d exceed 64 bits", sum, t.dice, t.sides).
			WithMeta("ways", ways.String())
	}
	return ways.Uint64(), nil
}

// Counts returns a copy of every count in ascending sum order
func (t *Table) Counts() []*big.Int {
	counts := make([]*big.Int, len(t.ways))
	for i, w := range t.ways {
		counts[i] = new(big.Int).Set(w)
	}
	return counts
}

// Total returns sides^dice, the number of equally likely outcomes
func (t *Table) Total() *big.Int {
	return new(big.Int).Set(t.total)
}

// Probability returns ways(sum)/sides^dice rounded to the nearest float64.
// An empty outcome space yields 0.
func (t *Table) Probability(sum int) float64 {
	if t.total.Sign() <= 0 {
		return 0
	}
	p, _ := new(big.Rat).SetFrac(t.Ways(sum), t.total).Float64()
	return p
}
