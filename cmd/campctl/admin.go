package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amm-colonia/inscripciones-api/internal/models"
	"github.com/amm-colonia/inscripciones-api/internal/repository"
	"github.com/amm-colonia/inscripciones-api/internal/service"
)

const adminPasswordEnv = "CAMPCTL_ADMIN_PASSWORD"

func newAdminCmd(e *env) *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Manage dashboard administrators",
	}
	admin.AddCommand(newAdminCreateCmd(e))
	return admin
}

func newAdminCreateCmd(e *env) *cobra.Command {
	var req models.CreateAdminRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator account",
		Long: `Create an administrator who can sign in to the dashboard.

The password is read from --password or, when the flag is omitted, from
the ` + adminPasswordEnv + ` environment variable.

Example:
  campctl admin create --email coordinacion@colonia-amm.org --name "Coordinación"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				req.Password = os.Getenv(adminPasswordEnv)
			}

			db, logr, err := e.session(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			auth := service.NewAuthService(repository.NewUserRepository(db), nil, logr, service.AuthConfig{})
			user, err := auth.CreateAdmin(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "administrator email")
	cmd.Flags().StringVar(&req.FullName, "name", "", "administrator full name")
	cmd.Flags().StringVar(&req.Password, "password", "", "administrator password (min 8 characters)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
