package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emre/uniportal/internal/app/migrations"
	"github.com/emre/uniportal/internal/config"
	"github.com/emre/uniportal/internal/db"
	"github.com/emre/uniportal/internal/pkg/logger"
	"github.com/emre/uniportal/internal/seed"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration and seeding tool",
	Long: `Applies SQL migrations and optionally seeds sample data.

Examples:
  migrate up                 # Apply pending migrations
  migrate up --seed          # Apply migrations, then seed sample data
  migrate seed               # Seed sample data only`,
}

var seedAfterUp bool

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, database, err := connect()
		if err != nil {
			return err
		}
		defer database.Close()

		migrator := migrations.NewMigrator(database.Pool)
		if err := migrator.MigrateFromDirectory(cfg.Migrations.Dir); err != nil {
			return err
		}
		logger.Info().Msg("Migrations applied")

		if seedAfterUp {
			return seed.CreateDefaultData(context.Background(), database.Pool, logger.Logger())
		}
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed sample data into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, database, err := connect()
		if err != nil {
			return err
		}
		defer database.Close()

		return seed.CreateDefaultData(context.Background(), database.Pool, logger.Logger())
	},
}

func connect() (*config.Config, *db.PostgresDB, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, database, nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", filepath.Join("configs", "config.yaml"), "Path to config file")
	upCmd.Flags().BoolVar(&seedAfterUp, "seed", false, "Seed sample data after migrating")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(seedCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
