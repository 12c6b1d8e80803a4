package cmd

import (
	"billed/internal/client"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
	loginAsAdmin  bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the gateway and keep the session locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newClientEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		login := &client.Login{
			Store:   env.store,
			Session: env.session,
			Nav:     env.nav,
			Logger:  env.logger,
		}

		ctx := cmd.Context()
		if loginAsAdmin {
			err = login.HandleSubmitAdmin(ctx, loginEmail, loginPassword)
		} else {
			err = login.HandleSubmitEmployee(ctx, loginEmail, loginPassword)
		}
		if err != nil {
			return err
		}
		return env.save()
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	loginCmd.Flags().BoolVar(&loginAsAdmin, "admin", false, "log in as administrator")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}
