package services

import (
	"context"
	"testing"
	"time"

	"github.com/you/homestay/domain"
	"github.com/you/homestay/internal/mocks"
)

// createSessionServiceForTest creates a SessionService with mock
// dependencies; nil arguments are replaced with defaults. Latency is zero so
// tests that do not exercise the pending window run instantly.
func createSessionServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	latency time.Duration) *SessionServiceImpl {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}

	return NewSessionService(userRepo, passwordSvc, mocks.NewMockAuditLogger(), latency)
}

// createDirectoryUser creates a valid credential record for testing. The
// password hash follows the MockPasswordService fake scheme.
func createDirectoryUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           "2",
		Name:         "Sarah Johnson",
		Email:        "sarah@host.com",
		Role:         domain.RoleHost,
		PasswordHash: "hashed_host123",
		CreatedAt:    time.Now(),
	}
}

// seedDirectory appends users to a repository, failing the test on error.
func seedDirectory(t *testing.T, repo domain.UserRepository, users ...*domain.User) {
	t.Helper()

	for _, u := range users {
		if err := repo.Append(context.Background(), u); err != nil {
			t.Fatalf("failed to seed directory: %v", err)
		}
	}
}
