package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/you/homestay/domain"
	"github.com/you/homestay/internal/app"
	"github.com/you/homestay/internal/engines"
)

// renderCurrentScreen routes the application state to a screen and prints
// the dashboard for it.
func renderCurrentScreen(ctx context.Context, state *app.State, c *app.Container) error {
	snap, err := state.Snapshot()
	if err != nil {
		fmt.Printf("screen: %s\n", snap.Screen)
		return err
	}

	switch snap.Screen {
	case domain.ScreenAdminDashboard:
		return renderAdminDashboard(ctx, c)
	case domain.ScreenHostDashboard:
		return renderHostDashboard(ctx, snap.Identity, c)
	case domain.ScreenTouristDashboard:
		return renderTouristDashboard(ctx, snap.Identity, c)
	case domain.ScreenGuideDashboard:
		return renderGuideDashboard(ctx, snap.Identity, c)
	default:
		fmt.Printf("screen: %s\n", snap.Screen)
		if snap.LastError != "" {
			fmt.Printf("error: %s\n", snap.LastError)
		}
		return nil
	}
}

func renderAdminDashboard(ctx context.Context, c *app.Container) error {
	engine := engines.NewAdminEngine(c.HomestayRepo, c.AttractionRepo, c.BookingRepo)

	totals, err := engine.Totals(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Platform Administrator Dashboard")
	fmt.Printf("  bookings:    %d\n", totals.Bookings)
	fmt.Printf("  revenue:     $%.2f\n", totals.Revenue)
	fmt.Printf("  homestays:   %d\n", totals.Homestays)
	fmt.Printf("  attractions: %d\n", totals.Attractions)
	return nil
}

func renderHostDashboard(ctx context.Context, identity *domain.Identity, c *app.Container) error {
	engine, err := engines.NewHostEngine(ctx, identity, c.HomestayRepo, c.BookingRepo)
	if err != nil {
		return err
	}

	stats, err := engine.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Host Dashboard - %s\n", identity.Name)
	fmt.Printf("  revenue:         $%.2f\n", stats.TotalRevenue)
	fmt.Printf("  active bookings: %d\n", stats.ActiveBookings)
	fmt.Printf("  listings:        %d\n", stats.Listings)
	fmt.Printf("  occupancy:       %d%%\n", stats.OccupancyRate)

	recent, err := engine.RecentBookings(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Recent bookings:")
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, b := range recent {
		fmt.Fprintf(w, "  %s\t%s\t%s → %s\t$%.2f\t%s\n",
			b.HomestayTitle, b.TouristName,
			b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"),
			b.TotalPrice, b.Status)
	}
	return w.Flush()
}

func renderTouristDashboard(ctx context.Context, identity *domain.Identity, c *app.Container) error {
	engine, err := engines.NewTouristEngine(ctx, identity, c.HomestayRepo, c.AttractionRepo, c.BookingRepo, c.BookingSvc)
	if err != nil {
		return err
	}

	stats, err := engine.Stats(ctx, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Tourist Dashboard - %s\n", identity.Name)
	fmt.Printf("  upcoming trips: %d\n", stats.UpcomingTrips)
	fmt.Printf("  total bookings: %d\n", stats.TotalBookings)
	fmt.Printf("  favorites:      %d\n", stats.SavedFavorites)

	if err := printListings(engine.Listings()); err != nil {
		return err
	}

	recommended, err := engine.RecommendedAttractions(ctx, "")
	if err != nil {
		return err
	}
	fmt.Println("Recommended attractions:")
	for _, a := range recommended {
		fmt.Printf("  %s (%s) - %s\n", a.Name, a.Category, a.Location)
	}
	return nil
}

func renderGuideDashboard(ctx context.Context, identity *domain.Identity, c *app.Container) error {
	engine, err := engines.NewGuideEngine(ctx, identity, c.AttractionRepo, c.TourRepo)
	if err != nil {
		return err
	}

	stats := engine.Stats()

	fmt.Printf("Local Guide Dashboard - %s\n", identity.Name)
	fmt.Printf("  active tours:  %d\n", stats.ActiveTours)
	fmt.Printf("  tour bookings: %d\n", stats.TourBookings)
	fmt.Printf("  earnings:      $%.2f\n", stats.TotalEarnings)
	fmt.Printf("  rating:        %.1f\n", stats.AverageRating)

	fmt.Println("Tours:")
	for _, t := range engine.Tours() {
		fmt.Printf("  %s (%s) - $%.2f\n", t.Title, t.Duration, t.Price)
	}
	fmt.Println("Curated attractions:")
	for _, a := range engine.Attractions() {
		fmt.Printf("  %s (%s) - %s\n", a.Name, a.Category, a.Location)
	}
	return nil
}

func printListings(listings []domain.Homestay) error {
	fmt.Println("Listings:")
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, h := range listings {
		fmt.Fprintf(w, "  %s\t%s\t%s\t$%.2f/night\tsleeps %d\trated %.1f\n",
			h.ID, h.Title, h.Location, h.Price, h.MaxGuests, h.Rating)
	}
	return w.Flush()
}
