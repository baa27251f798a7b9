// Package cli defines the cobra command tree for the homestay demo.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/you/homestay/internal/app"
	"github.com/you/homestay/internal/config"
)

var flagConfig string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "homestay",
		Short:         "Role-based travel marketplace demo",
		Long:          "An in-memory travel marketplace demo. Log in, sign up or pick a demo identity, and browse the dashboard for that role: admin, host, tourist or guide.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "config/config.yml", "path to the config file")

	root.AddCommand(
		newLoginCmd(),
		newSignupCmd(),
		newDemoCmd(),
		newProfilesCmd(),
		newListingsCmd(),
		newBookCmd(),
		newVersionCmd(),
	)

	return root
}

// newState builds a fully seeded application for one command invocation.
// Everything lives in process memory, so each run starts from the same
// mock data set.
func newState(ctx context.Context) (*app.State, *app.Container, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	container, err := app.NewContainer(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return app.NewState(container), container, nil
}
