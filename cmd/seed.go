package cmd

import (
	"github.com/dhank77/undangan.love/internal/infra/db/repo"
	"github.com/dhank77/undangan.love/internal/infra/db/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the stock invitation templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		uowFactory, err := connect(cmd.Context(), log)
		if err != nil {
			return err
		}
		defer uowFactory.Pool.Close()

		_, err = seed.Run(cmd.Context(), repo.NewStore(uowFactory))
		return err
	},
}
