package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"newsboard/internal/database"
)

var resetSeed bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDatabase()
		if err != nil {
			return err
		}
		return db.Close()
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load development data into an empty database",
	Long: `Load development data into an empty database.

With --reset every news table is truncated first and ids restart at 1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if resetSeed {
			slog.Warn("truncating news tables before seeding")
			return database.Reseed(db)
		}
		return database.Seed(db)
	},
}

func init() {
	seedCmd.Flags().BoolVar(&resetSeed, "reset", false, "Truncate all news tables before seeding")
}
