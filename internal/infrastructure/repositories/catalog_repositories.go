package repositories

import (
	"context"
	"sync"

	"github.com/you/homestay/domain"
)

// MemoryHomestayRepository implements domain.HomestayRepository over the
// shared read-only listing collection. Callers receive copies, so engine
// filtering can never mutate the source.
type MemoryHomestayRepository struct {
	homestays []domain.Homestay
}

// NewMemoryHomestayRepository creates a repository over homestays.
func NewMemoryHomestayRepository(homestays []domain.Homestay) *MemoryHomestayRepository {
	return &MemoryHomestayRepository{homestays: homestays}
}

// All implements domain.HomestayRepository
func (r *MemoryHomestayRepository) All(_ context.Context) ([]domain.Homestay, error) {
	out := make([]domain.Homestay, len(r.homestays))
	copy(out, r.homestays)
	return out, nil
}

// FindByID implements domain.HomestayRepository
func (r *MemoryHomestayRepository) FindByID(_ context.Context, id string) (*domain.Homestay, error) {
	for _, h := range r.homestays {
		if h.ID == id {
			clone := h
			return &clone, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

// MemoryAttractionRepository implements domain.AttractionRepository.
type MemoryAttractionRepository struct {
	attractions []domain.Attraction
}

// NewMemoryAttractionRepository creates a repository over attractions.
func NewMemoryAttractionRepository(attractions []domain.Attraction) *MemoryAttractionRepository {
	return &MemoryAttractionRepository{attractions: attractions}
}

// All implements domain.AttractionRepository
func (r *MemoryAttractionRepository) All(_ context.Context) ([]domain.Attraction, error) {
	out := make([]domain.Attraction, len(r.attractions))
	copy(out, r.attractions)
	return out, nil
}

// MemoryTourRepository implements domain.TourRepository.
type MemoryTourRepository struct {
	tours []domain.Tour
}

// NewMemoryTourRepository creates a repository over tours.
func NewMemoryTourRepository(tours []domain.Tour) *MemoryTourRepository {
	return &MemoryTourRepository{tours: tours}
}

// All implements domain.TourRepository
func (r *MemoryTourRepository) All(_ context.Context) ([]domain.Tour, error) {
	out := make([]domain.Tour, len(r.tours))
	copy(out, r.tours)
	return out, nil
}

// MemoryBookingRepository implements domain.BookingRepository. Unlike the
// other catalog collections it accepts appends: submitted booking drafts
// land here as pending bookings.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

// NewMemoryBookingRepository creates a repository seeded with bookings.
func NewMemoryBookingRepository(bookings []domain.Booking) *MemoryBookingRepository {
	return &MemoryBookingRepository{bookings: bookings}
}

// All implements domain.BookingRepository
func (r *MemoryBookingRepository) All(_ context.Context) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

// Append implements domain.BookingRepository
func (r *MemoryBookingRepository) Append(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, *booking)
	return nil
}

// Compile-time interface compliance verification
var (
	_ domain.HomestayRepository   = (*MemoryHomestayRepository)(nil)
	_ domain.AttractionRepository = (*MemoryAttractionRepository)(nil)
	_ domain.TourRepository       = (*MemoryTourRepository)(nil)
	_ domain.BookingRepository    = (*MemoryBookingRepository)(nil)
)
