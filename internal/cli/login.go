package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with a demo account and show its dashboard",
		Long:  "Authenticate against the in-memory credential directory and render the dashboard for the account's role. Try admin@platform.com/admin123.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runLogin(cmd *cobra.Command, email, password string) error {
	ctx := cmd.Context()

	state, container, err := newState(ctx)
	if err != nil {
		return err
	}

	identity, err := state.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n\n", identity.Name, identity.Role)
	return renderCurrentScreen(ctx, state, container)
}
