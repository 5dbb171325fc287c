package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/0xSalik/statsproject/internal/errors"
	"github.com/0xSalik/statsproject/internal/redis"
	outcometable "github.com/0xSalik/statsproject/internal/repositories/outcome_table"
)

func newCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Maintain the Redis outcome table cache",
	}
	cmd.AddCommand(newCacheCheckCmd(a))
	return cmd
}

func newCacheCheckCmd(a *app) *cobra.Command {
	var (
		redisAddr string
		remove    bool
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Find cached outcome tables that no longer decode",
		Long: `Scan every outcome table in Redis and report the entries that cannot be
read back. With --delete the unreadable entries are removed after confirmation:

  dicesim cache check --redis localhost:6379
  dicesim cache check --redis localhost:6379 --delete --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := a.cfg.RedisAddr
			if cmd.Flags().Changed("redis") {
				addr = redisAddr
			}
			if addr == "" {
				return errors.FailedPrecondition("no redis address: set --redis or DICESIM_REDIS_ADDR")
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			client, err := redis.Connect(ctx, addr, &redis.Options{DialTimeout: 5 * time.Second})
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close() // nolint:errcheck // nothing left to do with it
			}()

			fmt.Fprintln(out, "Connected to Redis:", addr)
			fmt.Fprintln(out, "Scanning for unreadable outcome tables...")

			output, err := outcometable.Check(ctx, client)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\nChecked %d keys, found %d unreadable entries\n", output.Checked, len(output.Corrupt))
			if len(output.Corrupt) == 0 {
				return nil
			}

			fmt.Fprintln(out, "\nUnreadable keys:")
			for _, entry := range output.Corrupt {
				fmt.Fprintf(out, "  - %s (%s)\n", entry.Key, entry.Reason)
			}

			if !remove {
				return nil
			}
			if !yes {
				fmt.Fprint(out, "\nDo you want to DELETE these entries? (yes/no): ")
				in := bufio.NewScanner(cmd.InOrStdin())
				if !in.Scan() || strings.TrimSpace(in.Text()) != "yes" {
					fmt.Fprintln(out, "Aborted - no changes made")
					return nil
				}
			}

			deleted, err := outcometable.Remove(ctx, client, output.Corrupt)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted %d entries\n", deleted)
			return nil
		},
	}

	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address; overrides DICESIM_REDIS_ADDR")
	cmd.Flags().BoolVar(&remove, "delete", false, "delete unreadable entries")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the delete confirmation")

	return cmd
}
