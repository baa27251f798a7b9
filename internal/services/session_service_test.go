package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/homestay/domain"
	"github.com/you/homestay/internal/infrastructure/repositories"
	"github.com/you/homestay/internal/mocks"
)

func TestSessionServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name             string
		email            string
		password         string
		setupMocks       func(*mocks.MockUserRepository, *mocks.MockPasswordService)
		expectedError    error
		validateIdentity func(t *testing.T, id *domain.Identity)
	}{
		{
			name:     "successful login",
			email:    "sarah@host.com",
			password: "host123",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createDirectoryUser(t), nil
				}
			},
			expectedError: nil,
			validateIdentity: func(t *testing.T, id *domain.Identity) {
				if id == nil {
					t.Fatal("identity is nil")
				}
				if id.Name != "Sarah Johnson" {
					t.Errorf("expected name %q, got %q", "Sarah Johnson", id.Name)
				}
				if id.Role != domain.RoleHost {
					t.Errorf("expected role %q, got %q", domain.RoleHost, id.Role)
				}
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@nowhere.com",
			password: "whatever",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				// Default: FindByEmail misses
			},
			expectedError: domain.ErrInvalidCredentials,
			validateIdentity: func(t *testing.T, id *domain.Identity) {
				if id != nil {
					t.Error("expected identity to be nil on failure")
				}
			},
		},
		{
			name:     "wrong password",
			email:    "sarah@host.com",
			password: "wrong",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createDirectoryUser(t), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
			validateIdentity: func(t *testing.T, id *domain.Identity) {
				if id != nil {
					t.Error("expected identity to be nil on failure")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tt.setupMocks(userRepo, passwordSvc)

			svc := createSessionServiceForTest(t, userRepo, passwordSvc, 0)
			identity, err := svc.Login(context.Background(), tt.email, tt.password)

			if !errors.Is(err, tt.expectedError) {
				t.Errorf("expected error %v, got %v", tt.expectedError, err)
			}
			tt.validateIdentity(t, identity)

			state := svc.Snapshot()
			if state.Pending {
				t.Error("pending must be false once the operation completes")
			}
			if tt.expectedError != nil {
				if state.Identity != nil {
					t.Error("session identity must stay unset on failure")
				}
				if state.LastError != tt.expectedError.Error() {
					t.Errorf("expected lastError %q, got %q", tt.expectedError.Error(), state.LastError)
				}
			} else {
				if state.Identity == nil {
					t.Fatal("session identity must be set on success")
				}
				if state.LastError != "" {
					t.Errorf("expected lastError cleared, got %q", state.LastError)
				}
			}
		})
	}
}

// The caller-visible failure must not distinguish "no such email" from
// "wrong password".
func TestSessionServiceImpl_Login_FlatErrorMessage(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		if email == "sarah@host.com" {
			return createDirectoryUser(t), nil
		}
		return nil, domain.ErrUserNotFound
	}

	svc := createSessionServiceForTest(t, userRepo, nil, 0)

	_, errUnknown := svc.Login(context.Background(), "ghost@nowhere.com", "host123")
	_, errWrongPw := svc.Login(context.Background(), "sarah@host.com", "wrong")

	if errUnknown == nil || errWrongPw == nil {
		t.Fatal("both logins must fail")
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Errorf("failure messages must be identical, got %q and %q", errUnknown, errWrongPw)
	}
}

func TestSessionServiceImpl_Signup(t *testing.T) {
	tests := []struct {
		name          string
		req           domain.SignupRequest
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPasswordService)
		expectedError error
		validateUser  func(t *testing.T, id *domain.Identity)
	}{
		{
			name: "successful signup",
			req: domain.SignupRequest{
				Name:     "New Tourist",
				Email:    "new@tourist.com",
				Password: "tourist456",
				Role:     domain.RoleTourist,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.CountFunc = func(ctx context.Context) (int, error) { return 4, nil }
			},
			expectedError: nil,
			validateUser: func(t *testing.T, id *domain.Identity) {
				if id == nil {
					t.Fatal("identity is nil")
				}
				if id.ID != "5" {
					t.Errorf("expected ID 5 (directory size + 1), got %q", id.ID)
				}
				if id.Role != domain.RoleTourist {
					t.Errorf("expected role tourist, got %q", id.Role)
				}
			},
		},
		{
			name: "email already registered",
			req: domain.SignupRequest{
				Name:     "Impostor",
				Email:    "sarah@host.com",
				Password: "host123",
				Role:     domain.RoleHost,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createDirectoryUser(t), nil
				}
			},
			expectedError: domain.ErrEmailAlreadyRegistered,
			validateUser: func(t *testing.T, id *domain.Identity) {
				if id != nil {
					t.Error("expected identity to be nil when email is taken")
				}
			},
		},
		{
			name: "invalid role rejected",
			req: domain.SignupRequest{
				Name:     "Robot",
				Email:    "robot@platform.com",
				Password: "beepboop",
				Role:     domain.Role("robot"),
			},
			setupMocks:    func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {},
			expectedError: nil, // validation errors are wrapped, checked below
			validateUser: func(t *testing.T, id *domain.Identity) {
				if id != nil {
					t.Error("expected identity to be nil for invalid role")
				}
			},
		},
		{
			name: "missing name rejected",
			req: domain.SignupRequest{
				Email:    "anon@platform.com",
				Password: "secret1",
				Role:     domain.RoleGuide,
			},
			setupMocks:    func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {},
			expectedError: nil,
			validateUser: func(t *testing.T, id *domain.Identity) {
				if id != nil {
					t.Error("expected identity to be nil for missing name")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tt.setupMocks(userRepo, passwordSvc)

			svc := createSessionServiceForTest(t, userRepo, passwordSvc, 0)
			identity, err := svc.Signup(context.Background(), tt.req)

			switch {
			case tt.expectedError != nil:
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
			case tt.name == "successful signup":
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			default:
				if err == nil {
					t.Error("expected a validation error")
				}
			}
			tt.validateUser(t, identity)
		})
	}
}

// Signing up and immediately logging back in with the same password must
// succeed and preserve the chosen role.
func TestSessionService_SignupThenLogin(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()
	svc := createSessionServiceForTest(t, repo, nil, 0)

	created, err := svc.Signup(context.Background(), domain.SignupRequest{
		Name:     "Ana Silva",
		Email:    "ana@guide.com",
		Password: "guide456",
		Role:     domain.RoleGuide,
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if created.ID != "1" {
		t.Errorf("expected first record to get ID 1, got %q", created.ID)
	}

	svc.Logout()

	loggedIn, err := svc.Login(context.Background(), "ana@guide.com", "guide456")
	if err != nil {
		t.Fatalf("login after signup failed: %v", err)
	}
	if loggedIn.Role != domain.RoleGuide {
		t.Errorf("expected role guide, got %q", loggedIn.Role)
	}
	if loggedIn.ID != created.ID {
		t.Errorf("expected same identity, got %q and %q", created.ID, loggedIn.ID)
	}
}

// The session service must behave identically over the sqlite-backed
// directory and the in-memory one.
func TestSessionService_SignupThenLogin_SQLiteDirectory(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	repo, err := repositories.NewGormUserRepository(db)
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}

	svc := createSessionServiceForTest(t, repo, nil, 0)

	created, err := svc.Signup(context.Background(), domain.SignupRequest{
		Name:     "Ana Silva",
		Email:    "ana@guide.com",
		Password: "guide456",
		Role:     domain.RoleGuide,
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if created.ID != "1" {
		t.Errorf("expected first record to get ID 1, got %q", created.ID)
	}

	svc.Logout()

	loggedIn, err := svc.Login(context.Background(), "ana@guide.com", "guide456")
	if err != nil {
		t.Fatalf("login after signup failed: %v", err)
	}
	if loggedIn.Role != domain.RoleGuide {
		t.Errorf("expected role guide, got %q", loggedIn.Role)
	}
}

func TestSessionService_LogoutIdempotent(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return createDirectoryUser(t), nil
	}
	svc := createSessionServiceForTest(t, userRepo, nil, 0)

	if _, err := svc.Login(context.Background(), "sarah@host.com", "host123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	svc.Logout()
	first := svc.Snapshot()

	svc.Logout()
	second := svc.Snapshot()

	if first.Identity != nil || second.Identity != nil {
		t.Error("identity must be absent after logout")
	}
	if first.LastError != "" || second.LastError != "" {
		t.Error("lastError must be absent after logout")
	}
	if first != second {
		t.Errorf("second logout changed state: %+v vs %+v", first, second)
	}
}

func TestSessionService_ClearError(t *testing.T) {
	svc := createSessionServiceForTest(t, nil, nil, 0)

	if _, err := svc.Login(context.Background(), "ghost@nowhere.com", "x"); err == nil {
		t.Fatal("expected login to fail")
	}
	if svc.Snapshot().LastError == "" {
		t.Fatal("expected lastError to be set")
	}

	svc.ClearError()
	if svc.Snapshot().LastError != "" {
		t.Error("ClearError must clear lastError")
	}

	// Idempotent.
	svc.ClearError()
	if svc.Snapshot().LastError != "" {
		t.Error("repeated ClearError must stay clear")
	}
}

// A login or signup started while another is pending is rejected, not
// queued.
func TestSessionService_OverlappingAuthRejected(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return createDirectoryUser(t), nil
	}
	svc := createSessionServiceForTest(t, userRepo, nil, 200*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Login(context.Background(), "sarah@host.com", "host123")
		done <- err
	}()

	// Wait for the first login to enter its pending window.
	deadline := time.After(2 * time.Second)
	for !svc.Snapshot().Pending {
		select {
		case <-deadline:
			t.Fatal("first login never became pending")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if _, err := svc.Login(context.Background(), "sarah@host.com", "host123"); !errors.Is(err, domain.ErrAuthInProgress) {
		t.Errorf("expected ErrAuthInProgress, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), domain.SignupRequest{
		Name: "X", Email: "x@y.com", Password: "secret1", Role: domain.RoleTourist,
	}); !errors.Is(err, domain.ErrAuthInProgress) {
		t.Errorf("expected ErrAuthInProgress for signup, got %v", err)
	}

	if err := <-done; err != nil {
		t.Fatalf("first login failed: %v", err)
	}

	state := svc.Snapshot()
	if state.Pending {
		t.Error("pending must clear when the first login completes")
	}
	if state.Identity == nil {
		t.Error("first login must still succeed")
	}
	if state.LastError != "" {
		t.Errorf("rejected overlap must not overwrite the winning login's state, got %q", state.LastError)
	}
}
