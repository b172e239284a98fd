package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"flowboard/internal/api"
	"flowboard/internal/auth"
	"flowboard/internal/config"
	"flowboard/internal/repository"
	"flowboard/internal/service"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		a          = &app{}
	)

	rootCmd := &cobra.Command{
		Use:           "flowboard",
		Short:         "Project and task tracking API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			a.cfg = cfg
			a.log = newLogger(cfg.Log)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (yaml, toml or json)")

	rootCmd.AddCommand(
		newServeCommand(a),
		newMigrateCommand(a),
		newSeedCommand(a),
		newTokenCommand(a),
	)
	return rootCmd
}

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "Run the HTTP API and the digest job",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			svc := service.New(repository.NewStore(db), a.log)

			scheduler := service.NewSchedulerService(time.Local, a.log)
			if _, err := scheduler.Schedule("digest", a.cfg.Digest.DailyAt, a.cfg.Digest.Interval, func() {
				jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				svc.Digest.Run(jobCtx)
			}); err != nil {
				return fmt.Errorf("schedule digest: %w", err)
			}
			scheduler.Start()
			defer scheduler.Stop()

			gin.SetMode(a.cfg.Server.Mode)
			router := api.NewRouter(svc, a.resolver(), a.log)

			a.log.Info("FlowBoard started.")
			if err := api.Serve(ctx, a.cfg.Server, router, a.log); err != nil {
				return err
			}
			a.log.Info("Shutdown complete.")
			return nil
		},
	}
}

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Args:  cobra.NoArgs,
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Opening the database migrates it.
			db, err := a.openDB()
			if err != nil {
				return err
			}
			closeDB(db)
			a.log.WithField("dsn", a.cfg.Database.DSN).Info("database migrated")
			return nil
		},
	}
}

func newSeedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Args:  cobra.NoArgs,
		Short: "Load the demo team, project and tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			svc := service.New(repository.NewStore(db), a.log)
			if err := svc.Seed.Run(cmd.Context()); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			return nil
		},
	}
}

func newTokenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "token <userId>",
		Args:  cobra.ExactArgs(1),
		Short: "Issue a bearer token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := auth.NewTokenManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
			token, err := tokens.Issue(args[0], time.Now())
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

func (a *app) openDB() (*gorm.DB, error) {
	db, err := repository.NewDB(a.cfg.Database.DSN, a.log)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	return db, nil
}

func (a *app) resolver() auth.Resolver {
	chain := auth.Chain{DefaultUserID: a.cfg.Auth.DefaultUserID}
	if a.cfg.Auth.JWTSecret != "" {
		chain.Tokens = auth.NewTokenManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
	}
	return chain
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func newLogger(cfg config.Log) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		log.SetLevel(level)
	}
	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
