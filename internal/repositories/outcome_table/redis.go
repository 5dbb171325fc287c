package outcometable

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/0xSalik/statsproject/internal/errors"
	"github.com/0xSalik/statsproject/internal/pkg/clock"
	redisclient "github.com/0xSalik/statsproject/internal/redis"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis backed outcome table cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get loads a table. Entries that no longer decode into a consistent table are
// dropped and reported as a miss.
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateGet(input); err != nil {
		return nil, err
	}

	key := Key(input.DiceCount, input.SidesCount)
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("outcome table %dd%d not cached", input.DiceCount, input.SidesCount)
		}
		return nil, errors.Wrapf(err, "failed to get outcome table from Redis")
	}

	table, cachedAt, err := decodeRecord(raw, input.DiceCount, input.SidesCount)
	if err != nil {
		return nil, r.evict(ctx, key, err)
	}

	return &GetOutput{
		Table:    table,
		CachedAt: cachedAt,
	}, nil
}

// Put stores a table with the given TTL, DefaultTTL when zero
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	now := r.clock.Now()
	raw, err := json.Marshal(newRecord(input.Table, now))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal outcome table")
	}

	key := Key(input.Table.DiceCount(), input.Table.SidesCount())
	if err := r.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store outcome table in Redis")
	}

	return &PutOutput{
		ExpiresAt: now.Add(ttl),
	}, nil
}

func (r *redisRepository) evict(ctx context.Context, key string, cause error) error {
	slog.Warn("Dropping unreadable outcome table",
		"key", key,
		"error", cause,
	)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		slog.Warn("Failed to drop unreadable outcome table",
			"key", key,
			"error", err,
		)
	}
	return errors.WrapWithCode(cause, errors.CodeNotFound, "outcome table entry unreadable").
		WithMeta("key", key)
}
