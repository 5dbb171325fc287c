// Package main is the entry point for the dicesim command line tool
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/0xSalik/statsproject/internal/config"
	"github.com/0xSalik/statsproject/internal/errors"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// app carries the dependencies shared by every command
type app struct {
	loadConfig func() (*config.Config, error)
	newService serviceFactory

	cfg *config.Config
}

func defaultApp() *app {
	return &app{
		loadConfig: config.Load,
		newService: buildService,
	}
}

func newRootCmd(a *app) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "dicesim",
		Short: "Dice sum simulation and Chi-Squared goodness of fit",
		Long: `dicesim simulates rolling multiple dice and compares the results
to the theoretical probabilities using a Chi-Squared test.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))

			a.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides DICESIM_LOG_LEVEL")

	cmd.AddCommand(newSimulateCmd(a))
	cmd.AddCommand(newTheoryCmd(a))
	cmd.AddCommand(newCacheCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(defaultApp()).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
