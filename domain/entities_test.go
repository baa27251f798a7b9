package domain

import (
	"testing"
	"time"
)

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{name: "admin role", role: RoleAdmin, expected: true},
		{name: "host role", role: RoleHost, expected: true},
		{name: "tourist role", role: RoleTourist, expected: true},
		{name: "guide role", role: RoleGuide, expected: true},
		{name: "unknown role", role: Role("superuser"), expected: false},
		{name: "empty role", role: Role(""), expected: false},
		{name: "case differs", role: Role("Admin"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.Valid(); got != tt.expected {
				t.Errorf("Role(%q).Valid() = %v, want %v", tt.role, got, tt.expected)
			}
		})
	}
}

func TestUser_Identity_StripsCredentials(t *testing.T) {
	user := &User{
		ID:           "2",
		Name:         "Sarah Johnson",
		Email:        "sarah@host.com",
		Role:         RoleHost,
		PasswordHash: "$2a$10$notarealhash",
		CreatedAt:    time.Now(),
	}

	id := user.Identity()

	if id.ID != user.ID || id.Name != user.Name || id.Email != user.Email || id.Role != user.Role {
		t.Errorf("identity fields do not match user: %+v vs %+v", id, user)
	}
}

func TestDemoProfile_Identity_MatchesSessionShape(t *testing.T) {
	profile := &DemoProfile{
		ID:       "3",
		Name:     "Michael Chen",
		Email:    "michael@tourist.com",
		Role:     RoleTourist,
		Title:    "Tourist",
		Features: []string{"Homestay Search", "Booking System"},
	}

	id := profile.Identity()

	if id.ID != "3" || id.Name != "Michael Chen" || id.Email != "michael@tourist.com" || id.Role != RoleTourist {
		t.Errorf("unexpected identity from demo profile: %+v", id)
	}
}

func TestDashboardScreen(t *testing.T) {
	tests := []struct {
		name        string
		role        Role
		expected    Screen
		expectedErr error
	}{
		{name: "admin", role: RoleAdmin, expected: ScreenAdminDashboard},
		{name: "host", role: RoleHost, expected: ScreenHostDashboard},
		{name: "tourist", role: RoleTourist, expected: ScreenTouristDashboard},
		{name: "guide", role: RoleGuide, expected: ScreenGuideDashboard},
		{name: "unknown role", role: Role("robot"), expected: ScreenInvalidUserType, expectedErr: ErrInvalidUserType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen, err := DashboardScreen(tt.role)
			if screen != tt.expected {
				t.Errorf("expected screen %q, got %q", tt.expected, screen)
			}
			if err != tt.expectedErr {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestAuditEvent_Builders(t *testing.T) {
	id := &Identity{ID: "1", Name: "Admin User", Email: "admin@platform.com", Role: RoleAdmin}

	event := NewAuditEvent(UserLoginEvent).
		WithIdentity(id).
		WithScreen(ScreenAdminDashboard).
		WithMetadata("source", "cli")

	if !event.Success {
		t.Error("new event should default to success")
	}
	if event.UserID != "1" || event.Email != "admin@platform.com" || event.Role != RoleAdmin {
		t.Errorf("identity fields not applied: %+v", event)
	}
	if event.Screen != ScreenAdminDashboard {
		t.Errorf("expected screen to be set, got %q", event.Screen)
	}
	if event.Metadata["source"] != "cli" {
		t.Errorf("metadata not applied: %+v", event.Metadata)
	}

	event.WithError(ErrInvalidCredentials)
	if event.Success {
		t.Error("event with error should not be success")
	}
	if event.ErrorMsg != ErrInvalidCredentials.Error() {
		t.Errorf("expected error message %q, got %q", ErrInvalidCredentials.Error(), event.ErrorMsg)
	}
}
