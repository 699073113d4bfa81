package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nandanmaalige/fitness-forge/internal/config"
)

var cfg config.Config

// rootCmd serves the API when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "fitness",
	Short: "Fitness tracking API",
	Long: `Fitness tracking API for users, workouts, exercises, goals,
nutrition entries and daily activity logs.

Configuration is read from the environment and an optional .env file:
  STORAGE_DRIVER   memory (default) or postgres
  POSTGRES_URL     connection string used when STORAGE_DRIVER=postgres
  SEED_DEMO_DATA   seed the demo account on start (default true)
  KAFKA_BROKERS    comma separated brokers; empty disables change events`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		return cfg.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
