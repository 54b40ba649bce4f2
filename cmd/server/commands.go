package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/phrazzld/clients-api/internal/config"
	"github.com/phrazzld/clients-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Configuration and logging are set up in
// PersistentPreRunE so every subcommand shares them.
func newRootCmd() *cobra.Command {
	var (
		cfg *config.Config
		log *slog.Logger
	)

	root := &cobra.Command{
		Use:           "clients-api",
		Short:         "Client records REST API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}

			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			log, err = setupAppLogger(cfg)
			if err != nil {
				return err
			}

			log.Info("configuration loaded",
				"port", cfg.Server.Port,
				"log_level", cfg.Server.LogLevel,
				"auto_migrate", cfg.Database.AutoMigrate)
			return nil
		},
	}

	root.AddCommand(
		newServeCmd(func() (*config.Config, *slog.Logger) { return cfg, log }),
		newMigrateCmd(func() (*config.Config, *slog.Logger) { return cfg, log }),
	)
	return root
}

// depsFunc returns the configuration and logger prepared by the root command.
type depsFunc func() (*config.Config, *slog.Logger)

func newServeCmd(deps depsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := deps()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := setupAppDatabase(ctx, cfg, log)
			if err != nil {
				return err
			}

			if cfg.Database.AutoMigrate {
				if err := postgres.Migrate(ctx, db, log, "up"); err != nil {
					_ = db.Close()
					return fmt.Errorf("failed to apply migrations: %w", err)
				}
			}

			app, err := newApplication(cfg, log, db)
			if err != nil {
				_ = db.Close()
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer app.cleanup()

			return app.Run(ctx)
		},
	}
}

// migrationTimeout bounds a single migrate invocation.
const migrationTimeout = 5 * time.Minute

func newMigrateCmd(deps depsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate <up|down|status|version|redo|reset|up-to VERSION|down-to VERSION>",
		Short: "Manage the database schema",
		Long: `Run a goose command against the embedded SQL migrations.

The serve command applies pending migrations on startup unless
database.auto_migrate is false; use this command to manage them by hand.`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"up", "down", "status", "version", "redo", "reset", "up-to", "down-to"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := deps()

			ctx, cancel := context.WithTimeout(cmd.Context(), migrationTimeout)
			defer cancel()

			db, err := setupAppDatabase(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Error("error closing database connection", "error", err)
				}
			}()

			return postgres.Migrate(ctx, db, log, args[0], args[1:]...)
		},
	}
}
