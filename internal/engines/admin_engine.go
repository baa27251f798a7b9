package engines

import (
	"context"

	"github.com/you/homestay/domain"
)

// AdminTotals summarizes the platform-wide figures shown on the admin
// dashboard.
type AdminTotals struct {
	Bookings    int
	Revenue     float64
	Homestays   int
	Attractions int
}

// AdminEngine drives the admin dashboard: a read-only platform overview
// across every collection.
type AdminEngine struct {
	homestays   domain.HomestayRepository
	attractions domain.AttractionRepository
	bookings    domain.BookingRepository
}

func NewAdminEngine(homestays domain.HomestayRepository, attractions domain.AttractionRepository, bookings domain.BookingRepository) *AdminEngine {
	return &AdminEngine{
		homestays:   homestays,
		attractions: attractions,
		bookings:    bookings,
	}
}

// Totals computes the platform-wide counters. Revenue is the sum of
// every booking's total price, regardless of status.
func (e *AdminEngine) Totals(ctx context.Context) (AdminTotals, error) {
	bookings, err := e.bookings.All(ctx)
	if err != nil {
		return AdminTotals{}, err
	}
	homestays, err := e.homestays.All(ctx)
	if err != nil {
		return AdminTotals{}, err
	}
	attractions, err := e.attractions.All(ctx)
	if err != nil {
		return AdminTotals{}, err
	}
	var revenue float64
	for _, b := range bookings {
		revenue += b.TotalPrice
	}
	return AdminTotals{
		Bookings:    len(bookings),
		Revenue:     revenue,
		Homestays:   len(homestays),
		Attractions: len(attractions),
	}, nil
}

// Homestays returns the full listing collection for the moderation view.
func (e *AdminEngine) Homestays(ctx context.Context) ([]domain.Homestay, error) {
	return e.homestays.All(ctx)
}

// Bookings returns the full booking collection for the moderation view.
func (e *AdminEngine) Bookings(ctx context.Context) ([]domain.Booking, error) {
	return e.bookings.All(ctx)
}
