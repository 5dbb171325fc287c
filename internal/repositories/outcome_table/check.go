package outcometable

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/0xSalik/statsproject/internal/combinatorics"
	"github.com/0xSalik/statsproject/internal/entities"
	"github.com/0xSalik/statsproject/internal/errors"
	redisclient "github.com/0xSalik/statsproject/internal/redis"
)

// CheckOutput lists the cached entries that no longer decode
type CheckOutput struct {
	Checked int
	Corrupt []CorruptEntry
}

// CorruptEntry is one unreadable key and the reason it failed
type CorruptEntry struct {
	Key    string
	Reason string
}

// Check scans every outcome table key in Redis, decodes it and compares it
// with a freshly computed table. Keys that expire during the scan are skipped.
func Check(ctx context.Context, client redisclient.Client) (*CheckOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client is required")
	}

	output := &CheckOutput{}
	iter := client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		raw, err := client.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}
		output.Checked++

		var diceCount, sidesCount int
		if _, err := fmt.Sscanf(strings.TrimPrefix(key, keyPrefix), "%dd%d", &diceCount, &sidesCount); err != nil {
			output.Corrupt = append(output.Corrupt, CorruptEntry{Key: key, Reason: "key does not name dice"})
			continue
		}
		if diceCount < entities.MinDiceCount || diceCount > entities.MaxDiceCount ||
			sidesCount < entities.MinSidesCount || sidesCount > entities.MaxSidesCount {
			output.Corrupt = append(output.Corrupt, CorruptEntry{Key: key, Reason: "dice outside the supported range"})
			continue
		}

		table, _, err := decodeRecord(raw, diceCount, sidesCount)
		if err != nil {
			output.Corrupt = append(output.Corrupt, CorruptEntry{Key: key, Reason: err.Error()})
			continue
		}
		if sum, ok := firstDifference(table, combinatorics.NewTable(diceCount, sidesCount)); !ok {
			output.Corrupt = append(output.Corrupt, CorruptEntry{
				Key:    key,
				Reason: fmt.Sprintf("ways to roll %d differ from the exact count", sum),
			})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan outcome tables")
	}

	slog.Debug("Checked outcome tables",
		"checked", output.Checked,
		"corrupt", len(output.Corrupt),
	)

	return output, nil
}

// firstDifference compares two tables over the same range and returns the
// first sum whose counts differ
func firstDifference(got, want *combinatorics.Table) (int, bool) {
	for _, sum := range want.Range().Sums() {
		if got.Ways(sum).Cmp(want.Ways(sum)) != 0 {
			return sum, false
		}
	}
	return 0, true
}

// Remove deletes the given entries and returns how many existed
func Remove(ctx context.Context, client redisclient.Client, entries []CorruptEntry) (int64, error) {
	if client == nil {
		return 0, errors.InvalidArgument("client is required")
	}
	if len(entries) == 0 {
		return 0, nil
	}

	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}

	deleted, err := client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to delete %d outcome tables", len(keys))
	}
	return deleted, nil
}
