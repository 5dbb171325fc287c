package outcometable

import (
	"context"
	"sync"
	"time"

	"github.com/0xSalik/statsproject/internal/errors"
	"github.com/0xSalik/statsproject/internal/pkg/clock"
)

type entry struct {
	rec       *record
	expiresAt time.Time
}

// InMemoryRepository implements Repository for a single process
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]entry
}

// NewInMemory creates an in-memory cache. A nil clock uses real time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]entry),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Get loads a table if it is present and not expired
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateGet(input); err != nil {
		return nil, err
	}

	key := Key(input.DiceCount, input.SidesCount)

	r.mu.RLock()
	e, ok := r.store[key]
	r.mu.RUnlock()

	if !ok || !r.clock.Now().Before(e.expiresAt) {
		return nil, errors.NotFoundf("outcome table %dd%d not cached", input.DiceCount, input.SidesCount)
	}

	// rebuild from the stored strings so callers never share big.Int values
	table, err := e.rec.table()
	if err != nil {
		return nil, errors.Wrap(err, "failed to rebuild outcome table")
	}

	return &GetOutput{
		Table:    table,
		CachedAt: e.rec.CachedAt,
	}, nil
}

// Put stores a table with the given TTL, DefaultTTL when zero
func (r *InMemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	now := r.clock.Now()
	e := entry{
		rec:       newRecord(input.Table, now),
		expiresAt: now.Add(ttl),
	}

	r.mu.Lock()
	r.store[Key(input.Table.DiceCount(), input.Table.SidesCount())] = e
	r.mu.Unlock()

	return &PutOutput{
		ExpiresAt: e.expiresAt,
	}, nil
}
