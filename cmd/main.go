package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"slotbook/cmd/bootstrap"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/infra/db"
	"slotbook/internal/infra/postgres"
	"slotbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// Never expose debug output because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "slotbook",
		Short:        "Availability and booking conflict engine",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			app := fx.New(bootstrap.Module(cfg, bootstrap.Options{MigrateOnStart: migrateUp}))
			if err := app.Start(cmd.Context()); err != nil {
				return fmt.Errorf("start application: %w", err)
			}

			<-app.Done()

			stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := app.Stop(stopCtx); err != nil {
				slog.Error("application stop failed", "error", err)
			}
			slog.Info("application stopped")
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "apply the database schema on startup")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

			pool, cleanup, err := db.Connect(cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			return postgres.Migrate(cmd.Context(), pool, logger)
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
