package main

import (
	"github.com/spf13/cobra"

	"github.com/0xSalik/statsproject/internal/orchestrators/experiment"
	"github.com/0xSalik/statsproject/internal/report"
)

func newTheoryCmd(a *app) *cobra.Command {
	var (
		diceCount  int
		sidesCount int
		redisAddr  string
	)

	cmd := &cobra.Command{
		Use:   "theory",
		Short: "Print the exact number of ways to roll each sum",
		Long: `Print the exact outcome counts and probabilities for N dice with S sides:

  dicesim theory --dice 2 --sides 6
  dicesim theory --dice 10 --sides 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := serviceOptions{
				Seed:       a.cfg.Seed,
				RedisAddr:  a.cfg.RedisAddr,
				OutcomeTTL: a.cfg.OutcomeTTL,
			}
			if cmd.Flags().Changed("redis") {
				opts.RedisAddr = redisAddr
			}

			ctx := cmd.Context()
			svc, cleanup, err := a.newService(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			output, err := svc.Theory(ctx, &experiment.TheoryInput{
				DiceCount:  diceCount,
				SidesCount: sidesCount,
			})
			if err != nil {
				return err
			}

			return report.RenderTheory(cmd.OutOrStdout(), &report.TheoryReport{
				Table:  output.Table,
				Cached: output.Cached,
			})
		},
	}

	cmd.Flags().IntVar(&diceCount, "dice", 0, "number of dice (1-10)")
	cmd.Flags().IntVar(&sidesCount, "sides", 0, "number of sides on each die (2-100)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the outcome table cache")
	_ = cmd.MarkFlagRequired("dice")
	_ = cmd.MarkFlagRequired("sides")

	return cmd
}
