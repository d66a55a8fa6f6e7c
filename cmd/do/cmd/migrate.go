package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itssocoldhere/glowbio/internal/config"
	"github.com/itssocoldhere/glowbio/internal/db"
)

func MigrateCmd() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply (or roll back one) SQL storage migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			return runMigrate(cmd, cfg.StorageDriver, cfg.DBConnection, down)
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "Roll back the most recent migration")
	return cmd
}

func runMigrate(cmd *cobra.Command, driver, connection string, down bool) error {
	if driver != "sqlite" && driver != "pgx" {
		fmt.Fprintf(cmd.OutOrStdout(), "storage driver %q has no migrations\n", driver)
		return nil
	}

	database, err := db.Init(driver, connection)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close(database)

	if down {
		if err := db.MigrateDown(database.DB, driver); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "rolled back one migration")
		return nil
	}

	if err := db.RunMigrations(database.DB, driver); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
	return nil
}
