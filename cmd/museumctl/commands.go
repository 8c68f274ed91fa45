package main

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres"
	pgseed "github.com/heartmarshall/memoriaviva-backend/internal/adapter/postgres/seed"
	"github.com/heartmarshall/memoriaviva-backend/internal/app"
	"github.com/heartmarshall/memoriaviva-backend/internal/app/seeder"
	"github.com/heartmarshall/memoriaviva-backend/internal/config"
)

// Compile-time interface assertion.
var _ seeder.SeedRepo = (*pgseed.Repo)(nil)

const commandTimeout = 10 * time.Minute

// connect loads configuration, honoring --config, and opens the database
// pool. The caller must close the pool.
func connect(ctx context.Context, cmd *cobra.Command) (*pgxpool.Pool, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(cfg.Log)

	if cfg.Database.DSN == "" {
		return nil, nil, fmt.Errorf("database.dsn is required")
	}
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, logger, nil
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
		defer cancel()

		pool, logger, err := connect(ctx, cmd)
		if err != nil {
			return err
		}
		defer pool.Close()

		return postgres.Migrate(ctx, pool, logger)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
		defer cancel()

		pool, _, err := connect(ctx, cmd)
		if err != nil {
			return err
		}
		defer pool.Close()

		provider, closeDB, err := postgres.NewMigrator(pool)
		if err != nil {
			return err
		}
		defer closeDB()

		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		out := cmd.OutOrStdout()
		for _, s := range statuses {
			applied := "pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(out, "%5d  %-40s  %s\n", s.Source.Version, s.Source.Path, applied)
		}
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample catalog into the database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		phases, _ := cmd.Flags().GetStringSlice("phase")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		seederConfig, _ := cmd.Flags().GetString("seeder-config")

		seederCfg, err := seeder.LoadConfig(seederConfig)
		if err != nil {
			return err
		}
		if dryRun {
			seederCfg.DryRun = true
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
		defer cancel()

		pool, logger, err := connect(ctx, cmd)
		if err != nil {
			return err
		}
		defer pool.Close()

		pipeline := seeder.NewPipeline(logger, pgseed.New(pool), *seederCfg)
		if err := pipeline.Run(ctx, phases); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		results := pipeline.Results()
		for _, phase := range slices.Sorted(maps.Keys(results)) {
			r := results[phase]
			status := "ok"
			if r.Err != nil {
				status = r.Err.Error()
			}
			fmt.Fprintf(out, "%-14s inserted=%-4d skipped=%-4d %s\n", phase, r.Inserted, r.Skipped, status)
		}
		if pipeline.HasErrors() {
			return fmt.Errorf("one or more phases failed")
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
	},
}
