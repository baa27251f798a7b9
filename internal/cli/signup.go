package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you/homestay/domain"
)

func newSignupCmd() *cobra.Command {
	var name, email, password, role string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account and show its dashboard",
		Long:  "Register a new account in the in-memory credential directory, log it in, and render the dashboard for the chosen role.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignup(cmd, domain.SignupRequest{
				Name:     name,
				Email:    email,
				Password: password,
				Role:     domain.Role(role),
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (min 6 characters)")
	cmd.Flags().StringVar(&role, "role", "tourist", "account role (admin|host|tourist|guide)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runSignup(cmd *cobra.Command, req domain.SignupRequest) error {
	ctx := cmd.Context()

	state, container, err := newState(ctx)
	if err != nil {
		return err
	}

	identity, err := state.Signup(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("Registered %s as %s (account %s)\n\n", identity.Email, identity.Role, identity.ID)
	return renderCurrentScreen(ctx, state, container)
}
