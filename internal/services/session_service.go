package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/you/homestay/domain"
)

// SessionServiceImpl implements domain.SessionService. It is the only
// component that ever sees passwords; everything it hands out is a
// credential-free Identity.
//
// State machine: Anonymous -> Authenticating -> Authenticated, with
// Authenticating falling back to Anonymous on failure. A login or signup
// started while another is pending is rejected with ErrAuthInProgress
// rather than queued.
type SessionServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	audit       domain.AuditLogger
	validate    *validator.Validate

	// latency simulates the remote-call delay of a real backend. There is
	// no cancellation path: once started, a login or signup always runs to
	// completion and always clears pending.
	latency time.Duration

	mu        sync.Mutex
	identity  *domain.Identity
	pending   bool
	lastError string
}

// NewSessionService creates a new session service.
func NewSessionService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	audit domain.AuditLogger,
	latency time.Duration,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		audit:       audit,
		validate:    validator.New(),
		latency:     latency,
	}
}

// Login implements domain.SessionService. The failure message is
// deliberately flat: callers cannot distinguish an unknown email from a
// wrong password.
func (s *SessionServiceImpl) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	identity, err := s.authenticate(ctx, email, password)
	s.finish(identity, err)

	if err != nil {
		_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserLoginFailureEvent).WithEmail(email).WithError(err))
		return nil, err
	}
	_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserLoginEvent).WithIdentity(identity))
	return identity, nil
}

func (s *SessionServiceImpl) authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	s.simulateLatency()

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return user.Identity(), nil
}

// Signup implements domain.SessionService. A new credential record is
// appended to the directory with an identifier derived from the directory
// size; records are never mutated or deleted afterwards.
func (s *SessionServiceImpl) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Identity, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	identity, err := s.register(ctx, req)
	s.finish(identity, err)

	if err != nil {
		_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserRegistrationEvent).WithEmail(req.Email).WithError(err))
		return nil, err
	}
	_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserRegistrationEvent).WithIdentity(identity))
	return identity, nil
}

func (s *SessionServiceImpl) register(ctx context.Context, req domain.SignupRequest) (*domain.Identity, error) {
	s.simulateLatency()

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid signup input: %w", err)
	}

	// Case-sensitive exact match, same as the directory lookup.
	if existing, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailAlreadyRegistered
	}

	hash, err := s.passwordSvc.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	n, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to size directory: %w", err)
	}

	user := &domain.User{
		ID:           strconv.Itoa(n + 1),
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Append(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user.Identity(), nil
}

// Logout implements domain.SessionService. Idempotent: calling it while
// already anonymous is a no-op.
func (s *SessionServiceImpl) Logout() {
	s.mu.Lock()
	wasAuthenticated := s.identity != nil
	identity := s.identity
	s.identity = nil
	s.lastError = ""
	s.mu.Unlock()

	if wasAuthenticated {
		_ = s.audit.LogEvent(context.Background(), domain.NewAuditEvent(domain.UserLogoutEvent).WithIdentity(identity))
	}
}

// ClearError implements domain.SessionService. Idempotent.
func (s *SessionServiceImpl) ClearError() {
	s.mu.Lock()
	s.lastError = ""
	s.mu.Unlock()
}

// Snapshot implements domain.SessionService.
func (s *SessionServiceImpl) Snapshot() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := domain.SessionState{
		Pending:   s.pending,
		LastError: s.lastError,
	}
	if s.identity != nil {
		clone := *s.identity
		state.Identity = &clone
	}
	return state
}

// begin moves the store into Authenticating, rejecting overlap.
func (s *SessionServiceImpl) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending {
		return domain.ErrAuthInProgress
	}
	s.pending = true
	s.lastError = ""
	return nil
}

// finish leaves Authenticating: into Authenticated on success, back to the
// previous state with lastError set on failure. Always clears pending.
func (s *SessionServiceImpl) finish(identity *domain.Identity, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = false
	if err != nil {
		s.lastError = err.Error()
		return
	}
	s.identity = identity
	s.lastError = ""
}

func (s *SessionServiceImpl) simulateLatency() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

// Compile-time interface compliance verification
var _ domain.SessionService = (*SessionServiceImpl)(nil)
