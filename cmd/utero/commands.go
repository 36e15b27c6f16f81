package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/utero/internal/cli"
	"go.uber.org/zap"
)

var (
	predictToday string
	tokenTTL     time.Duration
	secretLength int
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Print the prediction for the stored cycle history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd.Context(), func(runtime cli.Runtime) error {
			return cli.RunPredictCommand(runtime, predictToday)
		})
	},
}

var logPeriodCmd = &cobra.Command{
	Use:   "log-period <start YYYY-MM-DD> <end YYYY-MM-DD>",
	Short: "Log a period, replacing the latest one when the dates overlap it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd.Context(), func(runtime cli.Runtime) error {
			return cli.RunLogPeriodCommand(cmd.Context(), runtime, args[0], args[1])
		})
	},
}

var symptomCmd = &cobra.Command{
	Use:   "symptom <date YYYY-MM-DD> <symptom>",
	Short: "Toggle a symptom on a day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd.Context(), func(runtime cli.Runtime) error {
			return cli.RunToggleSymptomCommand(cmd.Context(), runtime, args[0], args[1])
		})
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunTokenCommand(cmd.OutOrStdout(), os.Getenv("SECRET_KEY"), tokenTTL, time.Now())
	},
}

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Generate a random SECRET_KEY",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunSecretCommand(cmd.OutOrStdout(), secretLength)
	},
}

func init() {
	predictCmd.Flags().StringVar(&predictToday, "today", "", "Evaluate as of this date (YYYY-MM-DD) instead of the current day")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 720*time.Hour, "Token lifetime")
	secretCmd.Flags().IntVar(&secretLength, "length", 48, "Key length")
}

func withRuntime(ctx context.Context, run func(cli.Runtime) error) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	tracker, closeStore, err := openTracker(ctx, config, nil, logger)
	if err != nil {
		return fmt.Errorf("store init failed: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("store close failed", zap.Error(err))
		}
	}()

	return run(cli.Runtime{
		Tracker:  tracker,
		Location: config.Location,
		Now:      time.Now,
		Out:      os.Stdout,
	})
}
