package app

import (
	"context"
	"sync"

	"github.com/you/homestay/domain"
)

// Snapshot is the full view-state picture a renderer needs for one frame.
type Snapshot struct {
	Screen    domain.Screen
	Identity  *domain.Identity
	Pending   bool
	LastError string
}

// State is the top-level application state: the session store, the demo
// identity slot and the pre-authentication view mode. It owns the routing
// inputs; everything else lives in the container's services.
type State struct {
	session domain.SessionService
	demoSvc domain.DemoSelector
	router  domain.ViewRouter

	mu       sync.Mutex
	demo     *domain.Identity
	viewMode domain.ViewMode
}

// NewState wires the application state over the container's services. The
// initial view mode is the login form.
func NewState(c *Container) *State {
	return &State{
		session:  c.SessionSvc,
		demoSvc:  c.DemoSvc,
		router:   c.RouterSvc,
		viewMode: domain.ViewModeLogin,
	}
}

// SetViewMode switches among the pre-authentication screens. It has no
// visible effect while any identity is active.
func (s *State) SetViewMode(mode domain.ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = mode
}

// Login authenticates against the credential directory through the
// session store.
func (s *State) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	return s.session.Login(ctx, email, password)
}

// Signup registers a new directory account through the session store.
func (s *State) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Identity, error) {
	return s.session.Signup(ctx, req)
}

// SelectDemo fills the demo identity slot with the archetype for the
// given role, bypassing the credential directory.
func (s *State) SelectDemo(role domain.Role) (*domain.Identity, error) {
	identity, err := s.demoSvc.Select(role)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.demo = identity
	s.mu.Unlock()
	return identity, nil
}

// Profiles returns the archetype cards for the demo picker.
func (s *State) Profiles() []domain.DemoProfile {
	return s.demoSvc.Profiles()
}

// Logout clears both identity slots, real and demo, and returns the view
// to the login form.
func (s *State) Logout() {
	s.session.Logout()
	s.mu.Lock()
	s.demo = nil
	s.viewMode = domain.ViewModeLogin
	s.mu.Unlock()
}

// ClearError clears the session store's last error.
func (s *State) ClearError() {
	s.session.ClearError()
}

// CurrentIdentity returns the active identity, preferring the session
// identity over the demo one, or nil when browsing anonymously.
func (s *State) CurrentIdentity() *domain.Identity {
	sess := s.session.Snapshot()
	if sess.Identity != nil {
		return sess.Identity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.demo
}

// Snapshot routes the current identities and view mode to a screen and
// bundles it with the session fields a renderer displays.
func (s *State) Snapshot() (Snapshot, error) {
	sess := s.session.Snapshot()

	s.mu.Lock()
	demo := s.demo
	mode := s.viewMode
	s.mu.Unlock()

	// On a routing error the returned screen is still meaningful (the
	// invalid-user-type error screen), so the snapshot carries both.
	screen, err := s.router.Decide(sess.Identity, demo, mode)

	identity := sess.Identity
	if identity == nil {
		identity = demo
	}
	return Snapshot{
		Screen:    screen,
		Identity:  identity,
		Pending:   sess.Pending,
		LastError: sess.LastError,
	}, err
}
