package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dhank77/undangan.love/internal/infra/logger"
	"github.com/dhank77/undangan.love/pkg/db"
	"github.com/dhank77/undangan.love/pkg/env"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "undangan",
	Short: "Wedding invitation builder backend",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		env.Load(envFiles...)
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func connect(ctx context.Context, log *logrus.Logger) (*db.UOWFactory, error) {
	dbConfig := db.NewConfig()
	pool, err := pgxpool.New(ctx, dbConfig.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %v", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to db: %v", err)
	}
	log.WithField("host", dbConfig.Host).Info("connected to postgres")
	return db.NewUoWFactory(pool), nil
}

func newLogger() *logrus.Logger {
	return logger.New()
}
