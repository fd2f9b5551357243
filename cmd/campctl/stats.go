package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amm-colonia/inscripciones-api/internal/repository"
)

func newStatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print how many registrations are stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := e.session(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			total, err := repository.NewRegistrationRepository(db).Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registrations: %d\n", total)
			return nil
		},
	}
}
