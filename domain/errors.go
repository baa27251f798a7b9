package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyRegistered = errors.New("user with this email already exists")
	ErrAuthInProgress         = errors.New("another login or signup is already in progress")
)

// Routing and authorization errors
var (
	ErrInvalidUserType = errors.New("invalid user type")
	ErrAccessDenied    = errors.New("access denied")
)

// Booking errors
var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrInvalidDateRange   = errors.New("check-out must be after check-in")
	ErrInvalidGuestCount  = errors.New("guest count must be at least 1")
	ErrGuestCountExceeded = errors.New("guest count exceeds listing capacity")
)
