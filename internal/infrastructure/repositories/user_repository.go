package repositories

import (
	"context"
	"sync"

	"github.com/you/homestay/domain"
)

// MemoryUserRepository implements domain.UserRepository with an in-memory
// directory. Records are appended and never mutated, matching the mock
// directory the demo runs on.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []*domain.User
}

// NewMemoryUserRepository creates an empty in-memory directory.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

// Append implements domain.UserRepository. Email uniqueness is enforced with
// a case-sensitive exact match.
func (r *MemoryUserRepository) Append(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyRegistered
		}
	}

	clone := *user
	r.users = append(r.users, &clone)
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindByID implements domain.UserRepository
func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Count implements domain.UserRepository
func (r *MemoryUserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MemoryUserRepository)(nil)
