// Package outcometable caches exact outcome tables so repeated runs with the
// same dice skip the convolution. Entries are disposable: a miss or an
// unreadable entry simply means the table is computed again.
package outcometable

import (
	"context"
	"fmt"
	"time"

	"github.com/0xSalik/statsproject/internal/combinatorics"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=outcometablemock github.com/0xSalik/statsproject/internal/repositories/outcome_table Repository

// DefaultTTL is how long a cached table lives when no TTL is given
const DefaultTTL = 24 * time.Hour

// GetInput identifies the table to load
type GetInput struct {
	DiceCount  int
	SidesCount int
}

// GetOutput contains the cached table
type GetOutput struct {
	Table    *combinatorics.Table
	CachedAt time.Time
}

// PutInput contains the table to cache
type PutInput struct {
	Table *combinatorics.Table
	TTL   time.Duration
}

// PutOutput reports when the cached entry expires
type PutOutput struct {
	ExpiresAt time.Time
}

// Repository defines the outcome table cache operations
type Repository interface {
	// Get loads a table; a miss is reported as NotFound
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a table, replacing any previous entry for the same dice
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

// Key returns the cache key for a dice/sides pair, e.g. "outcome_table:2d6"
func Key(diceCount, sidesCount int) string {
	return fmt.Sprintf("%s%dd%d", keyPrefix, diceCount, sidesCount)
}

const keyPrefix = "outcome_table:"
