package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you/homestay/domain"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo <role>",
		Short: "Explore a dashboard as a demo identity",
		Long:  "Pick one of the predefined demo identities (admin, host, tourist or guide), bypassing authentication, and render that role's dashboard.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, domain.Role(args[0]))
		},
	}
	return cmd
}

func runDemo(cmd *cobra.Command, role domain.Role) error {
	ctx := cmd.Context()

	state, container, err := newState(ctx)
	if err != nil {
		return err
	}

	identity, err := state.SelectDemo(role)
	if err != nil {
		return err
	}

	fmt.Printf("Exploring as %s (%s)\n\n", identity.Name, identity.Role)
	return renderCurrentScreen(ctx, state, container)
}

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the demo identities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfiles(cmd)
		},
	}
}

func runProfiles(cmd *cobra.Command) error {
	state, _, err := newState(cmd.Context())
	if err != nil {
		return err
	}

	for _, p := range state.Profiles() {
		fmt.Printf("%s - %s (%s)\n", p.Title, p.Name, p.Role)
		fmt.Printf("  %s\n", p.Description)
		for _, f := range p.Features {
			fmt.Printf("  - %s\n", f)
		}
		fmt.Println()
	}
	return nil
}
