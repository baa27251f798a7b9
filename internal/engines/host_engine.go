package engines

import (
	"context"
	"strconv"

	"github.com/you/homestay/domain"
)

// recentBookingsLimit caps the recent-bookings panel on the host dashboard.
const recentBookingsLimit = 3

// demoOccupancyRate is the fixed occupancy figure shown on the host
// dashboard; the demo data set carries no calendar to derive it from.
const demoOccupancyRate = 75

// HostStats summarizes the host dashboard headline figures.
type HostStats struct {
	TotalRevenue   float64
	ActiveBookings int
	Listings       int
	OccupancyRate  int
}

// HostEngine drives the host dashboard: managing listings and reviewing
// bookings and revenue for the properties the host owns.
type HostEngine struct {
	identity *domain.Identity
	bookings domain.BookingRepository

	listings []domain.Homestay
}

// NewHostEngine loads the host's working copy of the listing collection.
func NewHostEngine(ctx context.Context, identity *domain.Identity, homestays domain.HomestayRepository, bookings domain.BookingRepository) (*HostEngine, error) {
	all, err := homestays.All(ctx)
	if err != nil {
		return nil, err
	}
	return &HostEngine{
		identity: identity,
		bookings: bookings,
		listings: all,
	}, nil
}

// Listings returns the host's working copy of the listing collection.
func (e *HostEngine) Listings() []domain.Homestay {
	out := make([]domain.Homestay, len(e.listings))
	copy(out, e.listings)
	return out
}

// AddHomestay appends a new listing owned by this host to the working
// copy. The new listing gets the next sequential ID and starts available.
func (e *HostEngine) AddHomestay(title, description, location string, price float64, maxGuests, bedrooms, bathrooms int) *domain.Homestay {
	h := domain.Homestay{
		ID:           strconv.Itoa(len(e.listings) + 1),
		Title:        title,
		Description:  description,
		Location:     location,
		Price:        price,
		HostID:       e.identity.ID,
		HostName:     e.identity.Name,
		Availability: true,
		MaxGuests:    maxGuests,
		Bedrooms:     bedrooms,
		Bathrooms:    bathrooms,
	}
	e.listings = append(e.listings, h)
	return &h
}

// Bookings returns every booking against a property owned by this host.
func (e *HostEngine) Bookings(ctx context.Context) ([]domain.Booking, error) {
	all, err := e.bookings.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(all))
	for _, b := range all {
		if b.HostID == e.identity.ID {
			out = append(out, b)
		}
	}
	return out, nil
}

// RecentBookings returns the first few bookings against this host's
// properties, in collection order.
func (e *HostEngine) RecentBookings(ctx context.Context) ([]domain.Booking, error) {
	mine, err := e.Bookings(ctx)
	if err != nil {
		return nil, err
	}
	if len(mine) > recentBookingsLimit {
		mine = mine[:recentBookingsLimit]
	}
	return mine, nil
}

// TotalRevenue sums the total price of every booking against this
// host's properties, regardless of status.
func (e *HostEngine) TotalRevenue(ctx context.Context) (float64, error) {
	mine, err := e.Bookings(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, b := range mine {
		total += b.TotalPrice
	}
	return total, nil
}

// Stats computes the host dashboard headline figures.
func (e *HostEngine) Stats(ctx context.Context) (HostStats, error) {
	mine, err := e.Bookings(ctx)
	if err != nil {
		return HostStats{}, err
	}
	var revenue float64
	active := 0
	for _, b := range mine {
		revenue += b.TotalPrice
		if b.Status == domain.BookingConfirmed {
			active++
		}
	}
	owned := 0
	for _, h := range e.listings {
		if h.HostID == e.identity.ID {
			owned++
		}
	}
	return HostStats{
		TotalRevenue:   revenue,
		ActiveBookings: active,
		Listings:       owned,
		OccupancyRate:  demoOccupancyRate,
	}, nil
}
