package domain

import "time"

// Role classifies every account on the platform. The four values below are
// the only ones the view router knows how to dispatch; anything else is
// rejected with ErrInvalidUserType.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleHost    Role = "host"
	RoleTourist Role = "tourist"
	RoleGuide   Role = "guide"
)

// Roles lists every dispatchable role in a stable order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleHost, RoleTourist, RoleGuide}
}

// Valid reports whether r is one of the four platform roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHost, RoleTourist, RoleGuide:
		return true
	}
	return false
}

// User is a credential record in the directory. The password hash never
// leaves the directory; everything outside the session store works with
// Identity values instead.
type User struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the credential-free view of a user exposed to the UI layer.
// It is produced by a successful login or signup, or by the demo selector.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// Identity strips the credential fields from a directory record.
func (u *User) Identity() *Identity {
	return &Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// SignupRequest carries validated signup input into the session service.
type SignupRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required,min=6"`
	Role     Role   `validate:"required,oneof=admin host tourist guide"`
}

// SessionState is the renderer-facing snapshot of the session store.
// Exactly one of Identity set / Identity nil holds at any time; Pending is
// true only while a login or signup is in flight.
type SessionState struct {
	Identity  *Identity
	Pending   bool
	LastError string
}

// Homestay is a bookable listing.
type Homestay struct {
	ID           string
	Title        string
	Description  string
	Location     string
	Price        float64
	Rating       float64
	Amenities    []string
	Images       []string
	HostID       string
	HostName     string
	Availability bool
	MaxGuests    int
	Bedrooms     int
	Bathrooms    int
}

// Attraction is a point of interest recommended to tourists, curated by a
// local guide.
type Attraction struct {
	ID          string
	Name        string
	Description string
	Location    string
	Category    string
	Rating      float64
	GuideID     string
}

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a reservation of a homestay for a date range.
type Booking struct {
	ID            string
	HomestayID    string
	HomestayTitle string
	HostID        string
	TouristID     string
	TouristName   string
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	TotalPrice    float64
	Status        BookingStatus
}

// BookingDraft is a priced reservation proposal before submission.
type BookingDraft struct {
	ID         string
	ListingID  string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	Nights     int
	TotalPrice float64
	Note       string
}

// Tour is a guided experience offered by a local guide.
type Tour struct {
	ID       string
	Title    string
	Duration string
	Price    float64
	Rating   float64
	GuideID  string
}

// DemoProfile is one of the predefined archetypes offered by the demo
// identity selector. Selecting one bypasses the credential directory
// entirely.
type DemoProfile struct {
	ID          string
	Name        string
	Email       string
	Role        Role
	Title       string
	Description string
	Features    []string
}

// Identity converts a demo profile into the same identity shape that the
// session store produces, so the view router treats both paths uniformly.
func (p *DemoProfile) Identity() *Identity {
	return &Identity{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
		Role:  p.Role,
	}
}
