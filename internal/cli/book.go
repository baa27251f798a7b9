package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/you/homestay/domain"
	"github.com/you/homestay/internal/engines"
)

const dateLayout = "2006-01-02"

func newBookCmd() *cobra.Command {
	var listing, checkIn, checkOut, note string
	var guests int

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a homestay as the demo tourist",
		Long:  "Price and submit a booking for a listing as the demo tourist. The total is the nightly rate times the number of nights, partial days rounded up.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := time.Parse(dateLayout, checkIn)
			if err != nil {
				return fmt.Errorf("invalid check-in date: %w", err)
			}
			out, err := time.Parse(dateLayout, checkOut)
			if err != nil {
				return fmt.Errorf("invalid check-out date: %w", err)
			}
			return runBook(cmd, listing, in, out, guests, note)
		},
	}

	cmd.Flags().StringVar(&listing, "listing", "", "listing ID")
	cmd.Flags().StringVar(&checkIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&guests, "guests", 1, "number of guests")
	cmd.Flags().StringVar(&note, "note", "", "special request for the host")
	_ = cmd.MarkFlagRequired("listing")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("check-out")

	return cmd
}

func runBook(cmd *cobra.Command, listing string, checkIn, checkOut time.Time, guests int, note string) error {
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

	booking, err := engine.Book(ctx, listing, checkIn, checkOut, guests, note)
	if err != nil {
		return err
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	fmt.Printf("Booked %s for %s\n", booking.HomestayTitle, booking.TouristName)
	fmt.Printf("  %s → %s (%d nights), %d guests\n",
		booking.CheckIn.Format(dateLayout), booking.CheckOut.Format(dateLayout), nights, booking.Guests)
	fmt.Printf("  total:  $%.2f\n", booking.TotalPrice)
	fmt.Printf("  status: %s\n", booking.Status)
	return nil
}
