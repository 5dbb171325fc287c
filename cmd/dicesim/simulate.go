package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/0xSalik/statsproject/internal/entities"
	"github.com/0xSalik/statsproject/internal/orchestrators/experiment"
	"github.com/0xSalik/statsproject/internal/report"
)

const intro = `--- Statistical Simulation Toolkit ---
This tool simulates rolling multiple dice and compares the results
to the theoretical probabilities using a Chi-Squared test.
`

func newSimulateCmd(a *app) *cobra.Command {
	var (
		diceCount  int
		sidesCount int
		trialCount int64
		seed       uint64
		useCrypto  bool
		redisAddr  string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate dice rolls and test them against the exact distribution",
		Long: `Roll N dice with S sides T times, then compare the observed sums to the
exact expected counts with a Chi-Squared goodness of fit test.

Parameters not given as flags are asked for interactively:

  dicesim simulate
  dicesim simulate --dice 2 --sides 6 --trials 1000000
  dicesim simulate --dice 3 --sides 20 --trials 50000 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			out := cmd.OutOrStdout()

			if !flags.Changed("dice") || !flags.Changed("sides") || !flags.Changed("trials") {
				fmt.Fprint(out, intro+"\n")
				fmt.Fprintln(out, "Enter simulation parameters:")

				p := newPrompter(cmd.InOrStdin(), out)
				var err error
				if !flags.Changed("dice") {
					diceCount, err = p.Int("Number of dice to roll (e.g., 2)",
						entities.MinDiceCount, entities.MaxDiceCount)
					if err != nil {
						return err
					}
				}
				if !flags.Changed("sides") {
					sidesCount, err = p.Int("Number of sides on each die (e.g., 6)",
						entities.MinSidesCount, entities.MaxSidesCount)
					if err != nil {
						return err
					}
				}
				if !flags.Changed("trials") {
					trialCount, err = p.Int64("Total number of trials (e.g., 1000000)",
						entities.MinTrialCount, math.MaxInt64)
					if err != nil {
						return err
					}
				}
			}

			opts := serviceOptions{
				Seed:       a.cfg.Seed,
				Crypto:     useCrypto,
				RedisAddr:  a.cfg.RedisAddr,
				OutcomeTTL: a.cfg.OutcomeTTL,
			}
			if flags.Changed("seed") {
				opts.Seed = seed
			}
			if flags.Changed("redis") {
				opts.RedisAddr = redisAddr
			}

			ctx := cmd.Context()
			svc, cleanup, err := a.newService(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(out, "\nCalculating theoretical probabilities...")
			fmt.Fprintf(out, "Running simulation with %d trials...\n", trialCount)

			output, err := svc.Run(ctx, &experiment.RunInput{
				Config: entities.NewSimulationConfig(diceCount, sidesCount, trialCount),
			})
			if err != nil {
				return err
			}

			return report.Render(out, &report.Report{
				RunID:    output.RunID,
				Config:   output.Config,
				Expected: output.Expected,
				Observed: output.Observed,
				Fit:      output.Fit,
			})
		},
	}

	cmd.Flags().IntVar(&diceCount, "dice", 0, "number of dice to roll (1-10)")
	cmd.Flags().IntVar(&sidesCount, "sides", 0, "number of sides on each die (2-100)")
	cmd.Flags().Int64Var(&trialCount, "trials", 0, "number of trials (at least 1)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the random source; 0 seeds from the clock")
	cmd.Flags().BoolVar(&useCrypto, "crypto", false, "roll with the crypto random source instead of the seeded one")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the outcome table cache; empty keeps it in memory")
	cmd.MarkFlagsMutuallyExclusive("seed", "crypto")

	return cmd
}
