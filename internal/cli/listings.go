package cli

import (
	"github.com/spf13/cobra"

	"github.com/you/homestay/domain"
	"github.com/you/homestay/internal/engines"
)

func newListingsCmd() *cobra.Command {
	var filters engines.Filters

	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Browse homestay listings as the demo tourist",
		Long:  "Browse the mock listing collection as the demo tourist, optionally filtered. All filters combine; a listing must pass every one.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListings(cmd, filters)
		},
	}

	cmd.Flags().StringVar(&filters.Location, "location", "", "location substring, case-insensitive")
	cmd.Flags().Float64Var(&filters.MinPrice, "min-price", 0, "minimum nightly price")
	cmd.Flags().Float64Var(&filters.MaxPrice, "max-price", 0, "maximum nightly price")
	cmd.Flags().IntVar(&filters.MinGuests, "guests", 0, "minimum sleeping capacity")
	cmd.Flags().Float64Var(&filters.MinRating, "rating", 0, "minimum rating")
	cmd.Flags().StringSliceVar(&filters.Amenities, "amenity", nil, "required amenity, any match (repeatable)")

	return cmd
}

func runListings(cmd *cobra.Command, filters engines.Filters) error {
	ctx := cmd.Context()

	state, container, err := newState(ctx)
	if err != nil {
		return err
	}

	identity, err := state.SelectDemo(domain.RoleTourist)
	if err != nil {
		return err
	}

	engine, err := engines.NewTouristEngine(ctx, identity, container.HomestayRepo, container.AttractionRepo, container.BookingRepo, container.BookingSvc)
	if err != nil {
		return err
	}

	filtered, err := engine.SetFilters(ctx, filters)
	if err != nil {
		return err
	}
	return printListings(filtered)
}
