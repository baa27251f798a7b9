package services

import (
	"errors"
	"testing"

	"github.com/you/homestay/domain"
	"github.com/you/homestay/internal/mocks"
)

func demoProfilesForTest() []domain.DemoProfile {
	return []domain.DemoProfile{
		{ID: "1", Name: "Admin User", Email: "admin@platform.com", Role: domain.RoleAdmin, Title: "Platform Administrator"},
		{ID: "3", Name: "Michael Chen", Email: "michael@tourist.com", Role: domain.RoleTourist, Title: "Tourist"},
	}
}

func TestDemoSelectorImpl_Select(t *testing.T) {
	selector := NewDemoSelector(demoProfilesForTest(), mocks.NewMockAuditLogger())

	id, err := selector.Select(domain.RoleTourist)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if id.Name != "Michael Chen" || id.Role != domain.RoleTourist {
		t.Errorf("unexpected identity: %+v", id)
	}
}

func TestDemoSelectorImpl_Select_UnknownRole(t *testing.T) {
	selector := NewDemoSelector(demoProfilesForTest(), mocks.NewMockAuditLogger())

	if _, err := selector.Select(domain.RoleGuide); !errors.Is(err, domain.ErrInvalidUserType) {
		t.Errorf("expected ErrInvalidUserType for role without a profile, got %v", err)
	}
}

func TestDemoSelectorImpl_ProfilesAreCopies(t *testing.T) {
	selector := NewDemoSelector(demoProfilesForTest(), mocks.NewMockAuditLogger())

	profiles := selector.Profiles()
	profiles[0].Name = "mutated"

	if selector.Profiles()[0].Name != "Admin User" {
		t.Error("mutating the returned slice must not affect the selector")
	}
}
