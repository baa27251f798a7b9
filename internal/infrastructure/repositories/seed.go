package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/you/homestay/domain"
)

// DemoAccount pairs a directory record with its demo plaintext password so
// the seeder can hash it on the way in. Plaintext never leaves this package
// except through the CLI help text.
type DemoAccount struct {
	Name     string
	Email    string
	Role     domain.Role
	Password string
}

// DemoAccounts returns the four archetype accounts the demo ships with.
func DemoAccounts() []DemoAccount {
	return []DemoAccount{
		{Name: "Admin User", Email: "admin@platform.com", Role: domain.RoleAdmin, Password: "admin123"},
		{Name: "Sarah Johnson", Email: "sarah@host.com", Role: domain.RoleHost, Password: "host123"},
		{Name: "Michael Chen", Email: "michael@tourist.com", Role: domain.RoleTourist, Password: "tourist123"},
		{Name: "Elena Rodriguez", Email: "elena@guide.com", Role: domain.RoleGuide, Password: "guide123"},
	}
}

// SeedUsers appends the demo accounts to the directory, hashing each
// password. IDs follow the directory-size rule used everywhere else.
func SeedUsers(ctx context.Context, repo domain.UserRepository, passwords domain.PasswordService) error {
	for _, acct := range DemoAccounts() {
		hash, err := passwords.Hash(acct.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password for %s: %w", acct.Email, err)
		}

		n, err := repo.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count directory: %w", err)
		}

		user := &domain.User{
			ID:           fmt.Sprintf("%d", n+1),
			Name:         acct.Name,
			Email:        acct.Email,
			Role:         acct.Role,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}
		if err := repo.Append(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", acct.Email, err)
		}
	}
	return nil
}

// SeedHomestays returns the mock listing collection.
func SeedHomestays() []domain.Homestay {
	return []domain.Homestay{
		{
			ID:           "1",
			Title:        "Cozy Mountain Cabin",
			Description:  "A rustic cabin with sweeping mountain views and a wood stove.",
			Location:     "Aspen, Colorado",
			Price:        120,
			Rating:       4.8,
			Amenities:    []string{"WiFi", "Kitchen", "Fireplace", "Parking"},
			HostID:       "2",
			HostName:     "Sarah Johnson",
			Availability: true,
			MaxGuests:    4,
			Bedrooms:     2,
			Bathrooms:    1,
		},
		{
			ID:           "2",
			Title:        "Beachfront Villa",
			Description:  "Wake up to the sound of waves in this airy villa right on the sand.",
			Location:     "Malibu, California",
			Price:        350,
			Rating:       4.9,
			Amenities:    []string{"WiFi", "Pool", "Kitchen", "Air Conditioning"},
			HostID:       "2",
			HostName:     "Sarah Johnson",
			Availability: true,
			MaxGuests:    8,
			Bedrooms:     4,
			Bathrooms:    3,
		},
		{
			ID:           "3",
			Title:        "Historic City Loft",
			Description:  "Exposed brick and tall windows in the heart of the old town.",
			Location:     "Boston, Massachusetts",
			Price:        95,
			Rating:       4.5,
			Amenities:    []string{"WiFi", "Kitchen", "Washer"},
			HostID:       "2",
			HostName:     "Sarah Johnson",
			Availability: true,
			MaxGuests:    2,
			Bedrooms:     1,
			Bathrooms:    1,
		},
		{
			ID:           "4",
			Title:        "Lakeside Cottage",
			Description:  "A quiet cottage with a private dock and canoe.",
			Location:     "Lake Tahoe, California",
			Price:        180,
			Rating:       4.7,
			Amenities:    []string{"WiFi", "Kitchen", "Fireplace", "Lake Access"},
			HostID:       "2",
			HostName:     "Sarah Johnson",
			Availability: true,
			MaxGuests:    6,
			Bedrooms:     3,
			Bathrooms:    2,
		},
	}
}

// SeedAttractions returns the mock attraction collection.
func SeedAttractions() []domain.Attraction {
	return []domain.Attraction{
		{ID: "1", Name: "Maroon Bells", Description: "Twin peaks mirrored in a glacial lake.", Location: "Aspen, Colorado", Category: "Nature", Rating: 4.9, GuideID: "4"},
		{ID: "2", Name: "Old Town Walking Trail", Description: "Self-guided loop past the city's oldest buildings.", Location: "Boston, Massachusetts", Category: "History", Rating: 4.4, GuideID: "4"},
		{ID: "3", Name: "Malibu Pier", Description: "Classic pier with cafes and surf views.", Location: "Malibu, California", Category: "Leisure", Rating: 4.3, GuideID: "4"},
		{ID: "4", Name: "Emerald Bay Lookout", Description: "Panoramic viewpoint over the clearest corner of the lake.", Location: "Lake Tahoe, California", Category: "Nature", Rating: 4.8, GuideID: "4"},
		{ID: "5", Name: "Aspen Art Museum", Description: "Contemporary art in a woven timber shell.", Location: "Aspen, Colorado", Category: "Culture", Rating: 4.2, GuideID: "4"},
	}
}

// SeedTours returns the mock tour collection.
func SeedTours() []domain.Tour {
	return []domain.Tour{
		{ID: "1", Title: "Mountain Photography Tour", Duration: "3 hours", Price: 85, Rating: 4.8, GuideID: "4"},
		{ID: "2", Title: "Local Culture Walking Tour", Duration: "2 hours", Price: 45, Rating: 4.6, GuideID: "4"},
		{ID: "3", Title: "Sunset Kayak Trip", Duration: "4 hours", Price: 110, Rating: 4.9, GuideID: "4"},
	}
}

// SeedBookings returns the mock booking collection.
func SeedBookings() []domain.Booking {
	return []domain.Booking{
		{
			ID:            "1",
			HomestayID:    "1",
			HomestayTitle: "Cozy Mountain Cabin",
			HostID:        "2",
			TouristID:     "3",
			TouristName:   "Michael Chen",
			CheckIn:       date(2024, time.October, 10),
			CheckOut:      date(2024, time.October, 13),
			Guests:        2,
			TotalPrice:    360,
			Status:        domain.BookingConfirmed,
		},
		{
			ID:            "2",
			HomestayID:    "2",
			HomestayTitle: "Beachfront Villa",
			HostID:        "2",
			TouristID:     "3",
			TouristName:   "Michael Chen",
			CheckIn:       date(2024, time.December, 20),
			CheckOut:      date(2024, time.December, 27),
			Guests:        4,
			TotalPrice:    2450,
			Status:        domain.BookingConfirmed,
		},
		{
			ID:            "3",
			HomestayID:    "3",
			HomestayTitle: "Historic City Loft",
			HostID:        "2",
			TouristID:     "3",
			TouristName:   "Michael Chen",
			CheckIn:       date(2024, time.September, 2),
			CheckOut:      date(2024, time.September, 4),
			Guests:        2,
			TotalPrice:    190,
			Status:        domain.BookingPending,
		},
		{
			ID:            "4",
			HomestayID:    "4",
			HomestayTitle: "Lakeside Cottage",
			HostID:        "2",
			TouristID:     "5",
			TouristName:   "John Smith",
			CheckIn:       date(2024, time.August, 15),
			CheckOut:      date(2024, time.August, 18),
			Guests:        5,
			TotalPrice:    540,
			Status:        domain.BookingCancelled,
		},
	}
}

// DemoProfiles returns the archetype cards shown by the demo picker.
func DemoProfiles() []domain.DemoProfile {
	return []domain.DemoProfile{
		{
			ID:          "1",
			Name:        "Admin User",
			Email:       "admin@platform.com",
			Role:        domain.RoleAdmin,
			Title:       "Platform Administrator",
			Description: "Manage platform content, approve listings, track analytics, and moderate user interactions.",
			Features:    []string{"Content Management", "User Analytics", "Listing Approval", "Platform Moderation"},
		},
		{
			ID:          "2",
			Name:        "Sarah Johnson",
			Email:       "sarah@host.com",
			Role:        domain.RoleHost,
			Title:       "Homestay Host",
			Description: "List your properties, manage bookings, communicate with guests, and track earnings.",
			Features:    []string{"Property Listings", "Booking Management", "Guest Communication", "Revenue Tracking"},
		},
		{
			ID:          "3",
			Name:        "Michael Chen",
			Email:       "michael@tourist.com",
			Role:        domain.RoleTourist,
			Title:       "Tourist",
			Description: "Search homestays, make bookings, discover attractions, and get personalized recommendations.",
			Features:    []string{"Homestay Search", "Booking System", "Attraction Discovery", "Personal Recommendations"},
		},
		{
			ID:          "4",
			Name:        "Elena Rodriguez",
			Email:       "elena@guide.com",
			Role:        domain.RoleGuide,
			Title:       "Local Guide",
			Description: "Share local insights, create tours, recommend attractions, and connect with tourists.",
			Features:    []string{"Tour Creation", "Local Insights", "Attraction Recommendations", "Tourist Interaction"},
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
