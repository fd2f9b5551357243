package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amm-colonia/inscripciones-api/pkg/config"
	"github.com/amm-colonia/inscripciones-api/pkg/database"
	"github.com/amm-colonia/inscripciones-api/pkg/logger"
)

// env holds the collaborators a subcommand needs. Tests swap openDB for sqlmock.
type env struct {
	loadConfig func() (*config.Config, error)
	openDB     func(ctx context.Context, cfg *config.Config) (*sqlx.DB, error)
	newLogger  func(cfg *config.Config) (*zap.Logger, error)
}

func defaultEnv() *env {
	return &env{
		loadConfig: config.Load,
		openDB: func(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
			return database.NewPostgres(ctx, cfg.Database)
		},
		newLogger: logger.New,
	}
}

// session opens the database for one command run.
func (e *env) session(ctx context.Context) (*sqlx.DB, *zap.Logger, error) {
	cfg, err := e.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logr, err := e.newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	db, err := e.openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return db, logr, nil
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "campctl",
		Short:         "Maintenance commands for the summer camp registrations API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(e), newAdminCmd(e), newStatsCmd(e))
	return root
}
