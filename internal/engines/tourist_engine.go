package engines

import (
	"context"
	"strings"
	"time"

	"github.com/you/homestay/domain"
)

// recommendedLimit caps the attraction recommendations shown on the
// tourist dashboard.
const recommendedLimit = 3

// TouristStats summarizes the tourist dashboard headline figures.
type TouristStats struct {
	UpcomingTrips  int
	TotalBookings  int
	SavedFavorites int
}

// TouristEngine drives the tourist dashboard: browsing and filtering
// listings, saving favorite attractions and booking stays.
type TouristEngine struct {
	identity    *domain.Identity
	homestays   domain.HomestayRepository
	attractions domain.AttractionRepository
	bookings    domain.BookingRepository
	bookingSvc  domain.BookingService

	listings  []domain.Homestay
	filters   Filters
	favorites map[string]struct{}
}

// NewTouristEngine loads the initial unfiltered listing view for the given
// tourist identity.
func NewTouristEngine(ctx context.Context, identity *domain.Identity, homestays domain.HomestayRepository, attractions domain.AttractionRepository, bookings domain.BookingRepository, bookingSvc domain.BookingService) (*TouristEngine, error) {
	all, err := homestays.All(ctx)
	if err != nil {
		return nil, err
	}
	return &TouristEngine{
		identity:    identity,
		homestays:   homestays,
		attractions: attractions,
		bookings:    bookings,
		bookingSvc:  bookingSvc,
		listings:    all,
		favorites:   make(map[string]struct{}),
	}, nil
}

// Listings returns the current (possibly filtered) working copy.
func (e *TouristEngine) Listings() []domain.Homestay {
	out := make([]domain.Homestay, len(e.listings))
	copy(out, e.listings)
	return out
}

// SetFilters replaces the active filter set and recomputes the working
// copy from the source collection.
func (e *TouristEngine) SetFilters(ctx context.Context, f Filters) ([]domain.Homestay, error) {
	all, err := e.homestays.All(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Homestay, 0, len(all))
	for _, h := range all {
		if f.Match(h) {
			filtered = append(filtered, h)
		}
	}
	e.filters = f
	e.listings = filtered
	return e.Listings(), nil
}

// ResetFilters clears all filters and restores the full listing view.
func (e *TouristEngine) ResetFilters(ctx context.Context) ([]domain.Homestay, error) {
	return e.SetFilters(ctx, Filters{})
}

// Filters returns the active filter set.
func (e *TouristEngine) Filters() Filters { return e.filters }

// ToggleFavorite adds the attraction to the favorite set if absent,
// removes it if present. Toggling twice restores the original state.
func (e *TouristEngine) ToggleFavorite(attractionID string) {
	if _, ok := e.favorites[attractionID]; ok {
		delete(e.favorites, attractionID)
		return
	}
	e.favorites[attractionID] = struct{}{}
}

// IsFavorite reports whether the attraction is in the favorite set.
func (e *TouristEngine) IsFavorite(attractionID string) bool {
	_, ok := e.favorites[attractionID]
	return ok
}

// Favorites returns the favorited attractions in source-collection order.
func (e *TouristEngine) Favorites(ctx context.Context) ([]domain.Attraction, error) {
	all, err := e.attractions.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Attraction, 0, len(e.favorites))
	for _, a := range all {
		if _, ok := e.favorites[a.ID]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

// MyBookings returns every booking made by this tourist.
func (e *TouristEngine) MyBookings(ctx context.Context) ([]domain.Booking, error) {
	all, err := e.bookings.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(all))
	for _, b := range all {
		if b.TouristID == e.identity.ID {
			out = append(out, b)
		}
	}
	return out, nil
}

// UpcomingBookings returns this tourist's confirmed bookings whose
// check-in date is after now.
func (e *TouristEngine) UpcomingBookings(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	mine, err := e.MyBookings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(mine))
	for _, b := range mine {
		if b.Status == domain.BookingConfirmed && b.CheckIn.After(now) {
			out = append(out, b)
		}
	}
	return out, nil
}

// RecommendedAttractions returns up to three attractions near the given
// location. With no location, or no matches, it falls back to the first
// three attractions.
func (e *TouristEngine) RecommendedAttractions(ctx context.Context, location string) ([]domain.Attraction, error) {
	all, err := e.attractions.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Attraction
	if location != "" {
		want := strings.ToLower(location)
		for _, a := range all {
			if strings.Contains(strings.ToLower(a.Location), want) {
				out = append(out, a)
				if len(out) == recommendedLimit {
					return out, nil
				}
			}
		}
	}
	if len(out) > 0 {
		return out, nil
	}
	if len(all) > recommendedLimit {
		all = all[:recommendedLimit]
	}
	return all, nil
}

// Book prices and submits a booking for the given listing on behalf of
// this tourist.
func (e *TouristEngine) Book(ctx context.Context, listingID string, checkIn, checkOut time.Time, guests int, note string) (*domain.Booking, error) {
	draft, err := e.bookingSvc.Draft(ctx, listingID, checkIn, checkOut, guests, note)
	if err != nil {
		return nil, err
	}
	return e.bookingSvc.Submit(ctx, e.identity, draft)
}

// Stats computes the tourist dashboard headline figures.
func (e *TouristEngine) Stats(ctx context.Context, now time.Time) (TouristStats, error) {
	mine, err := e.MyBookings(ctx)
	if err != nil {
		return TouristStats{}, err
	}
	upcoming := 0
	for _, b := range mine {
		if b.Status == domain.BookingConfirmed && b.CheckIn.After(now) {
			upcoming++
		}
	}
	return TouristStats{
		UpcomingTrips:  upcoming,
		TotalBookings:  len(mine),
		SavedFavorites: len(e.favorites),
	}, nil
}
