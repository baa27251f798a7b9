package services

import (
	"testing"

	"github.com/you/homestay/domain"
)

func TestPolicyServiceImpl_CanView(t *testing.T) {
	policy, err := NewPolicyService()
	if err != nil {
		t.Fatalf("failed to create policy service: %v", err)
	}

	tests := []struct {
		name     string
		role     domain.Role
		screen   domain.Screen
		expected bool
	}{
		{name: "admin views admin dashboard", role: domain.RoleAdmin, screen: domain.ScreenAdminDashboard, expected: true},
		{name: "host views host dashboard", role: domain.RoleHost, screen: domain.ScreenHostDashboard, expected: true},
		{name: "tourist views tourist dashboard", role: domain.RoleTourist, screen: domain.ScreenTouristDashboard, expected: true},
		{name: "guide views guide dashboard", role: domain.RoleGuide, screen: domain.ScreenGuideDashboard, expected: true},
		{name: "tourist cannot view admin dashboard", role: domain.RoleTourist, screen: domain.ScreenAdminDashboard, expected: false},
		{name: "host cannot view guide dashboard", role: domain.RoleHost, screen: domain.ScreenGuideDashboard, expected: false},
		{name: "unknown role has no grants", role: domain.Role("robot"), screen: domain.ScreenAdminDashboard, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := policy.CanView(tt.role, tt.screen)
			if err != nil {
				t.Fatalf("CanView returned error: %v", err)
			}
			if ok != tt.expected {
				t.Errorf("CanView(%q, %q) = %v, want %v", tt.role, tt.screen, ok, tt.expected)
			}
		})
	}
}
