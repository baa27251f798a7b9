package domain

import (
	"context"
	"time"
)

// UserRepository defines credential directory access. Records are appended
// and read, never mutated or deleted.
type UserRepository interface {
	Append(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Count(ctx context.Context) (int, error)
}

// HomestayRepository defines read access to the shared listing collection.
type HomestayRepository interface {
	All(ctx context.Context) ([]Homestay, error)
	FindByID(ctx context.Context, id string) (*Homestay, error)
}

// AttractionRepository defines read access to the attraction collection.
type AttractionRepository interface {
	All(ctx context.Context) ([]Attraction, error)
}

// TourRepository defines read access to the tour collection.
type TourRepository interface {
	All(ctx context.Context) ([]Tour, error)
}

// BookingRepository defines access to the booking collection. Submitted
// drafts are appended as pending bookings.
type BookingRepository interface {
	All(ctx context.Context) ([]Booking, error)
	Append(ctx context.Context, booking *Booking) error
}

// SessionService defines the mock-authentication session store.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*Identity, error)
	Signup(ctx context.Context, req SignupRequest) (*Identity, error)
	Logout()
	ClearError()
	Snapshot() SessionState
}

// DemoSelector defines the alternate identity path that bypasses
// authentication.
type DemoSelector interface {
	Profiles() []DemoProfile
	Select(role Role) (*Identity, error)
}

// ViewRouter decides which top-level screen to show.
type ViewRouter interface {
	Decide(session, demo *Identity, mode ViewMode) (Screen, error)
}

// PolicyService defines dashboard access policy checks.
type PolicyService interface {
	CanView(role Role, screen Screen) (bool, error)
}

// BookingService defines booking draft pricing and submission.
type BookingService interface {
	Price(checkIn, checkOut time.Time, nightlyRate float64) (nights int, total float64, err error)
	ValidateGuests(guests, maxGuests int) error
	Draft(ctx context.Context, listingID string, checkIn, checkOut time.Time, guests int, note string) (*BookingDraft, error)
	Submit(ctx context.Context, tourist *Identity, draft *BookingDraft) (*Booking, error)
}

// PasswordService defines password hashing for the credential directory.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// AuditLogger records business events for observability.
type AuditLogger interface {
	LogEvent(ctx context.Context, event *AuditEvent) error
}
