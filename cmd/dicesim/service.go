package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/0xSalik/statsproject/internal/errors"
	"github.com/0xSalik/statsproject/internal/orchestrators/experiment"
	"github.com/0xSalik/statsproject/internal/pkg/clock"
	"github.com/0xSalik/statsproject/internal/pkg/idgen"
	"github.com/0xSalik/statsproject/internal/pkg/roller"
	"github.com/0xSalik/statsproject/internal/redis"
	outcometable "github.com/0xSalik/statsproject/internal/repositories/outcome_table"
)

// serviceOptions selects the random source and outcome table cache
type serviceOptions struct {
	Seed       uint64
	Crypto     bool
	RedisAddr  string
	OutcomeTTL time.Duration
}

// serviceFactory builds the experiment service. The returned cleanup func is
// never nil.
type serviceFactory func(ctx context.Context, opts serviceOptions) (experiment.Service, func(), error)

func buildService(ctx context.Context, opts serviceOptions) (experiment.Service, func(), error) {
	cleanup := func() {}

	var r dice.Roller
	if opts.Crypto {
		r = dice.DefaultRoller
		slog.Debug("Using crypto roller")
	} else {
		seeded := roller.New(&roller.Config{Seed: opts.Seed})
		slog.Debug("Using seeded roller", "seed", seeded.Seed())
		r = seeded
	}

	clk := clock.New()

	var tables outcometable.Repository
	if opts.RedisAddr != "" {
		client, err := redis.Connect(ctx, opts.RedisAddr, &redis.Options{
			DialTimeout: 5 * time.Second,
		})
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() {
			if err := client.Close(); err != nil {
				slog.Warn("Failed to close redis client", "error", err)
			}
		}

		tables, err = outcometable.NewRedis(&outcometable.RedisConfig{
			Client: client,
			Clock:  clk,
		})
		if err != nil {
			cleanup()
			return nil, func() {}, errors.Wrap(err, "failed to create outcome table cache")
		}
		slog.Debug("Using redis outcome table cache", "addr", opts.RedisAddr)
	} else {
		// lives only as long as this process
		tables = outcometable.NewInMemory(clk)
	}

	svc, err := experiment.NewOrchestrator(&experiment.Config{
		Roller:        r,
		OutcomeTables: tables,
		IDGenerator:   idgen.NewUUID("run"),
		Clock:         clk,
		TableTTL:      opts.OutcomeTTL,
	})
	if err != nil {
		cleanup()
		return nil, func() {}, errors.Wrap(err, "failed to create experiment service")
	}

	return svc, cleanup, nil
}
