package outcometable

import (
	"encoding/json"
	"math/big"
	"time"

	"github.com/0xSalik/statsproject/internal/combinatorics"
	"github.com/0xSalik/statsproject/internal/errors"
)

// record is the stored form of a table. Counts are decimal strings because
// they exceed 64 bits at the top of the supported range.
type record struct {
	DiceCount  int       `json:"dice_count"`
	SidesCount int       `json:"sides_count"`
	Counts     []string  `json:"counts"`
	CachedAt   time.Time `json:"cached_at"`
}

func newRecord(table *combinatorics.Table, now time.Time) *record {
	counts := table.Counts()
	rec := &record{
		DiceCount:  table.DiceCount(),
		SidesCount: table.SidesCount(),
		Counts:     make([]string, len(counts)),
		CachedAt:   now,
	}
	for i, c := range counts {
		rec.Counts[i] = c.String()
	}
	return rec
}

func (r *record) table() (*combinatorics.Table, error) {
	counts := make([]*big.Int, len(r.Counts))
	for i, s := range r.Counts {
		c, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, errors.InvalidArgumentf("count %q is not a decimal integer", s)
		}
		counts[i] = c
	}
	return combinatorics.NewTableFromCounts(r.DiceCount, r.SidesCount, counts)
}

// decodeRecord parses a stored entry and checks it holds the requested dice
func decodeRecord(raw []byte, diceCount, sidesCount int) (*combinatorics.Table, time.Time, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, time.Time{}, err
	}
	if rec.DiceCount != diceCount || rec.SidesCount != sidesCount {
		return nil, time.Time{}, errors.InvalidArgumentf("entry holds %dd%d", rec.DiceCount, rec.SidesCount)
	}

	table, err := rec.table()
	if err != nil {
		return nil, time.Time{}, err
	}
	if err := checkShape(table); err != nil {
		return nil, time.Time{}, err
	}
	return table, rec.CachedAt, nil
}

// checkShape rejects tables that cannot be a dice sum distribution: the lowest
// and highest sums have exactly one way each and counts mirror around the
// middle of the range.
func checkShape(table *combinatorics.Table) error {
	rng := table.Range()
	one := big.NewInt(1)
	if table.Ways(rng.Min).Cmp(one) != 0 || table.Ways(rng.Max).Cmp(one) != 0 {
		return errors.InvalidArgumentf("outcome table %dd%d must have one way to roll %d and %d",
			table.DiceCount(), table.SidesCount(), rng.Min, rng.Max)
	}
	for sum := rng.Min; sum <= rng.Max; sum++ {
		mirror := rng.Min + rng.Max - sum
		if table.Ways(sum).Cmp(table.Ways(mirror)) != 0 {
			return errors.InvalidArgumentf("outcome table %dd%d ways for %d and %d differ",
				table.DiceCount(), table.SidesCount(), sum, mirror)
		}
	}
	return nil
}

func validateGet(input GetInput) error {
	vb := errors.NewValidationBuilder()
	if input.DiceCount < 0 {
		vb.Field("DiceCount", "must not be negative")
	}
	if input.SidesCount < 1 {
		vb.Field("SidesCount", "must be positive")
	}
	return vb.Build()
}

func validatePut(input PutInput) error {
	vb := errors.NewValidationBuilder()
	if input.Table == nil {
		vb.RequiredField("Table")
	}
	if input.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}
