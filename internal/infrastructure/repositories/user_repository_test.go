package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/you/homestay/domain"
)

func newDirectoryUser(id, email string) *domain.User {
	return &domain.User{
		ID:           id,
		Name:         "Test User",
		Email:        email,
		Role:         domain.RoleTourist,
		PasswordHash: "hashed_password",
		CreatedAt:    time.Now(),
	}
}

func TestMemoryUserRepository_AppendAndFind(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	if err := repo.Append(ctx, newDirectoryUser("1", "sarah@host.com")); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	found, err := repo.FindByEmail(ctx, "sarah@host.com")
	if err != nil {
		t.Fatalf("FindByEmail returned error: %v", err)
	}
	if found.ID != "1" {
		t.Errorf("expected ID 1, got %s", found.ID)
	}

	byID, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if byID.Email != "sarah@host.com" {
		t.Errorf("expected email sarah@host.com, got %s", byID.Email)
	}
}

func TestMemoryUserRepository_DuplicateEmailRejected(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	if err := repo.Append(ctx, newDirectoryUser("1", "sarah@host.com")); err != nil {
		t.Fatalf("first Append returned error: %v", err)
	}

	err := repo.Append(ctx, newDirectoryUser("2", "sarah@host.com"))
	if !errors.Is(err, domain.ErrEmailAlreadyRegistered) {
		t.Errorf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestMemoryUserRepository_EmailMatchIsCaseSensitive(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	if err := repo.Append(ctx, newDirectoryUser("1", "sarah@host.com")); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	if _, err := repo.FindByEmail(ctx, "Sarah@host.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected case-sensitive lookup to miss, got %v", err)
	}
}

func TestMemoryUserRepository_Count(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	for i, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		if err := repo.Append(ctx, newDirectoryUser(string(rune('1'+i)), email)); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected count 3, got %d", n)
	}
}

func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	if err := repo.Append(ctx, newDirectoryUser("1", "sarah@host.com")); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	found, _ := repo.FindByEmail(ctx, "sarah@host.com")
	found.Name = "mutated"

	again, _ := repo.FindByEmail(ctx, "sarah@host.com")
	if again.Name != "Test User" {
		t.Error("mutating a returned record must not affect the directory")
	}
}

func TestMemoryUserRepository_FindMisses(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "nobody@nowhere.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, "404"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
