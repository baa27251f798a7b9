// Package engines holds the per-role dashboard view-state engines. Each
// engine owns a locally mutable working copy of the mock collections it
// cares about; the shared source collections are never mutated.
package engines

import (
	"strings"

	"github.com/you/homestay/domain"
)

// Filters is the tourist search filter set. Zero values mean "not set";
// all set predicates must hold for a listing to pass (conjunction).
type Filters struct {
	Location  string
	MinPrice  float64
	MaxPrice  float64
	MinGuests int
	MinRating float64
	Amenities []string
}

// Match reports whether h passes every set predicate.
func (f Filters) Match(h domain.Homestay) bool {
	if f.Location != "" && !strings.Contains(strings.ToLower(h.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.MinPrice > 0 && h.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && h.Price > f.MaxPrice {
		return false
	}
	if f.MinGuests > 0 && h.MaxGuests < f.MinGuests {
		return false
	}
	if f.MinRating > 0 && h.Rating < f.MinRating {
		return false
	}
	if len(f.Amenities) > 0 && !hasAnyAmenity(h.Amenities, f.Amenities) {
		return false
	}
	return true
}

// hasAnyAmenity reports whether the listing offers at least one of the
// requested amenities.
func hasAnyAmenity(offered, requested []string) bool {
	for _, want := range requested {
		for _, have := range offered {
			if have == want {
				return true
			}
		}
	}
	return false
}
