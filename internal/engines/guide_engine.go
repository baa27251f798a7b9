package engines

import (
	"context"
	"strconv"

	"github.com/you/homestay/domain"
)

// Fixed demo figures for the guide dashboard; the mock data set carries
// no tour-booking collection to derive them from.
const (
	demoGuideEarnings     = 2450.0
	demoGuideTourBookings = 23
	demoGuideRating       = 4.7
)

// GuideStats summarizes the guide dashboard headline figures.
type GuideStats struct {
	ActiveTours   int
	TourBookings  int
	TotalEarnings float64
	AverageRating float64
}

// GuideEngine drives the guide dashboard: curating attractions and
// managing the guide's tour offerings.
type GuideEngine struct {
	identity *domain.Identity

	attractions []domain.Attraction
	tours       []domain.Tour
}

// NewGuideEngine loads the guide's curated attractions and the tour
// working copy.
func NewGuideEngine(ctx context.Context, identity *domain.Identity, attractions domain.AttractionRepository, tours domain.TourRepository) (*GuideEngine, error) {
	allAttractions, err := attractions.All(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]domain.Attraction, 0, len(allAttractions))
	for _, a := range allAttractions {
		if a.GuideID == identity.ID {
			mine = append(mine, a)
		}
	}
	allTours, err := tours.All(ctx)
	if err != nil {
		return nil, err
	}
	return &GuideEngine{
		identity:    identity,
		attractions: mine,
		tours:       allTours,
	}, nil
}

// Attractions returns the attractions curated by this guide.
func (e *GuideEngine) Attractions() []domain.Attraction {
	out := make([]domain.Attraction, len(e.attractions))
	copy(out, e.attractions)
	return out
}

// Tours returns the guide's working copy of the tour collection.
func (e *GuideEngine) Tours() []domain.Tour {
	out := make([]domain.Tour, len(e.tours))
	copy(out, e.tours)
	return out
}

// AddTour appends a new tour offered by this guide to the working copy.
func (e *GuideEngine) AddTour(title, duration string, price float64) *domain.Tour {
	t := domain.Tour{
		ID:       strconv.Itoa(len(e.tours) + 1),
		Title:    title,
		Duration: duration,
		Price:    price,
		GuideID:  e.identity.ID,
	}
	e.tours = append(e.tours, t)
	return &t
}

// AddAttraction appends a new curated attraction to the working copy.
func (e *GuideEngine) AddAttraction(name, description, location, category string) *domain.Attraction {
	a := domain.Attraction{
		ID:          strconv.Itoa(len(e.attractions) + 1),
		Name:        name,
		Description: description,
		Location:    location,
		Category:    category,
		GuideID:     e.identity.ID,
	}
	e.attractions = append(e.attractions, a)
	return &a
}

// Stats computes the guide dashboard headline figures.
func (e *GuideEngine) Stats() GuideStats {
	return GuideStats{
		ActiveTours:   len(e.tours),
		TourBookings:  demoGuideTourBookings,
		TotalEarnings: demoGuideEarnings,
		AverageRating: demoGuideRating,
	}
}
