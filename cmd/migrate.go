package cmd

import (
	"github.com/dhank77/undangan.love/internal/infra/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		uowFactory, err := connect(cmd.Context(), log)
		if err != nil {
			return err
		}
		defer uowFactory.Pool.Close()

		applied, err := db.Migrate(cmd.Context(), uowFactory)
		if err != nil {
			return err
		}
		log.WithField("applied", applied).Info("migrations done")
		return nil
	},
}
