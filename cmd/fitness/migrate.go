package main

import (
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/nandanmaalige/fitness-forge/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the postgres tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.StorageDriver != config.StoragePostgres {
			return errors.New("migrate requires STORAGE_DRIVER=postgres")
		}
		_, closeStore, err := openStore(cmd.Context(), cfg, true)
		if err != nil {
			return err
		}
		defer closeStore()
		log.Printf("schema applied")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo account unless it already exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.StorageDriver != config.StoragePostgres {
			return errors.New("seed requires STORAGE_DRIVER=postgres; the memory store is seeded on serve")
		}
		store, closeStore, err := openStore(cmd.Context(), cfg, true)
		if err != nil {
			return err
		}
		defer closeStore()
		return seedDemoData(cmd.Context(), store)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd)
}
