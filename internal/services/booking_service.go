package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/you/homestay/domain"
)

// BookingServiceImpl implements domain.BookingService.
type BookingServiceImpl struct {
	homestayRepo domain.HomestayRepository
	bookingRepo  domain.BookingRepository
	audit        domain.AuditLogger
}

// NewBookingService creates a new booking service.
func NewBookingService(
	homestayRepo domain.HomestayRepository,
	bookingRepo domain.BookingRepository,
	audit domain.AuditLogger,
) *BookingServiceImpl {
	return &BookingServiceImpl{
		homestayRepo: homestayRepo,
		bookingRepo:  bookingRepo,
		audit:        audit,
	}
}

// Price implements domain.BookingService. Nights are counted as the ceiling
// of the stay duration in days, so a partial last day still bills a full
// night. A degenerate range (check-out not after check-in) is an explicit
// error rather than a zero-night draft.
func (b *BookingServiceImpl) Price(checkIn, checkOut time.Time, nightlyRate float64) (int, float64, error) {
	if !checkOut.After(checkIn) {
		return 0, 0, domain.ErrInvalidDateRange
	}
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	return nights, float64(nights) * nightlyRate, nil
}

// ValidateGuests implements domain.BookingService.
func (b *BookingServiceImpl) ValidateGuests(guests, maxGuests int) error {
	if guests < 1 {
		return domain.ErrInvalidGuestCount
	}
	if maxGuests > 0 && guests > maxGuests {
		return domain.ErrGuestCountExceeded
	}
	return nil
}

// Draft implements domain.BookingService. It prices the stay against the
// listing's nightly rate and capacity and returns an ephemeral draft; the
// shared collections are untouched until Submit.
func (b *BookingServiceImpl) Draft(ctx context.Context, listingID string, checkIn, checkOut time.Time, guests int, note string) (*domain.BookingDraft, error) {
	listing, err := b.homestayRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if err := b.ValidateGuests(guests, listing.MaxGuests); err != nil {
		return nil, err
	}

	nights, total, err := b.Price(checkIn, checkOut, listing.Price)
	if err != nil {
		return nil, err
	}

	return &domain.BookingDraft{
		ID:         uuid.NewString(),
		ListingID:  listingID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     guests,
		Nights:     nights,
		TotalPrice: total,
		Note:       note,
	}, nil
}

// Submit implements domain.BookingService. The draft becomes a pending
// booking appended to the booking collection.
func (b *BookingServiceImpl) Submit(ctx context.Context, tourist *domain.Identity, draft *domain.BookingDraft) (*domain.Booking, error) {
	listing, err := b.homestayRepo.FindByID(ctx, draft.ListingID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:            draft.ID,
		HomestayID:    listing.ID,
		HomestayTitle: listing.Title,
		HostID:        listing.HostID,
		CheckIn:       draft.CheckIn,
		CheckOut:      draft.CheckOut,
		Guests:        draft.Guests,
		TotalPrice:    draft.TotalPrice,
		Status:        domain.BookingPending,
	}
	if tourist != nil {
		booking.TouristID = tourist.ID
		booking.TouristName = tourist.Name
	}

	if err := b.bookingRepo.Append(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	_ = b.audit.LogEvent(ctx, domain.NewAuditEvent(domain.BookingSubmittedEvent).
		WithIdentity(tourist).
		WithMetadata("listing_id", listing.ID).
		WithMetadata("nights", draft.Nights).
		WithMetadata("total_price", draft.TotalPrice))

	return booking, nil
}

// Compile-time interface compliance verification
var _ domain.BookingService = (*BookingServiceImpl)(nil)
