// Package main is the entry point for the newsboard API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support. The migrate and seed
// subcommands manage the database without starting the server.
package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"newsboard/internal/config"
	"newsboard/internal/database"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "newsboard",
	Short: "newsboard - JSON API for articles, topics, users and comments",
	Long: `newsboard serves a read/write JSON API over a PostgreSQL database of
news articles, topics, users and comments.

Running without a subcommand starts the server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found, using environment variables")
	}

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// setupLogger installs the default slog logger. Text output at info level
// unless verbose is set.
func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))
}

// openDatabase loads configuration, connects to PostgreSQL and applies
// pending migrations.
func openDatabase() (*config.Config, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	db, err := database.Connect(cfg.DSN(), cfg.DBMaxConns)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return cfg, db, nil
}
