package mocks

import (
	"context"

	"github.com/you/homestay/domain"
)

// MockHomestayRepository implements domain.HomestayRepository for testing
type MockHomestayRepository struct {
	AllFunc      func(ctx context.Context) ([]domain.Homestay, error)
	FindByIDFunc func(ctx context.Context, id string) (*domain.Homestay, error)
}

// NewMockHomestayRepository creates a new MockHomestayRepository
func NewMockHomestayRepository() *MockHomestayRepository {
	return &MockHomestayRepository{}
}

// All returns the listing collection
func (m *MockHomestayRepository) All(ctx context.Context) ([]domain.Homestay, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	// Default behavior: empty collection
	return nil, nil
}

// FindByID finds a listing by ID
func (m *MockHomestayRepository) FindByID(ctx context.Context, id string) (*domain.Homestay, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrListingNotFound
}

// MockAttractionRepository implements domain.AttractionRepository for testing
type MockAttractionRepository struct {
	AllFunc func(ctx context.Context) ([]domain.Attraction, error)
}

// NewMockAttractionRepository creates a new MockAttractionRepository
func NewMockAttractionRepository() *MockAttractionRepository {
	return &MockAttractionRepository{}
}

// All returns the attraction collection
func (m *MockAttractionRepository) All(ctx context.Context) ([]domain.Attraction, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	// Default behavior: empty collection
	return nil, nil
}

// MockTourRepository implements domain.TourRepository for testing
type MockTourRepository struct {
	AllFunc func(ctx context.Context) ([]domain.Tour, error)
}

// NewMockTourRepository creates a new MockTourRepository
func NewMockTourRepository() *MockTourRepository {
	return &MockTourRepository{}
}

// All returns the tour collection
func (m *MockTourRepository) All(ctx context.Context) ([]domain.Tour, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	// Default behavior: empty collection
	return nil, nil
}

// MockBookingRepository implements domain.BookingRepository for testing
type MockBookingRepository struct {
	AllFunc    func(ctx context.Context) ([]domain.Booking, error)
	AppendFunc func(ctx context.Context, booking *domain.Booking) error

	// Appended records every booking passed to Append when AppendFunc is nil.
	Appended []domain.Booking
}

// NewMockBookingRepository creates a new MockBookingRepository
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{}
}

// All returns the booking collection
func (m *MockBookingRepository) All(ctx context.Context) ([]domain.Booking, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	// Default behavior: empty collection
	return nil, nil
}

// Append appends a booking
func (m *MockBookingRepository) Append(ctx context.Context, booking *domain.Booking) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, booking)
	}
	// Default behavior: record and succeed
	m.Appended = append(m.Appended, *booking)
	return nil
}

// Compile-time interface compliance verification
var (
	_ domain.HomestayRepository   = (*MockHomestayRepository)(nil)
	_ domain.AttractionRepository = (*MockAttractionRepository)(nil)
	_ domain.TourRepository       = (*MockTourRepository)(nil)
	_ domain.BookingRepository    = (*MockBookingRepository)(nil)
)
