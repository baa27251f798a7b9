package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/you/homestay/domain"
)

// GormUserRepository implements domain.UserRepository using GORM. The demo
// runs it against an in-memory SQLite database; it exists to prove the
// session store works unchanged against a real persistence layer.
type GormUserRepository struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           string    `gorm:"primaryKey;size:32"`
	Name         string    `gorm:"size:255"`
	Email        string    `gorm:"uniqueIndex;size:255"`
	Role         string    `gorm:"index;size:32"`
	PasswordHash string    `gorm:"column:password"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewGormUserRepository creates a user repository over db, migrating the
// users table.
func NewGormUserRepository(db *gorm.DB) (*GormUserRepository, error) {
	if err := db.AutoMigrate(&DBUser{}); err != nil {
		return nil, err
	}
	return &GormUserRepository{db: db}, nil
}

// Append implements domain.UserRepository
func (r *GormUserRepository) Append(ctx context.Context, user *domain.User) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrEmailAlreadyRegistered
	}
	return r.db.WithContext(ctx).Create(r.domainToDB(user)).Error
}

// FindByEmail implements domain.UserRepository
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Count implements domain.UserRepository
func (r *GormUserRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DBUser{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// domainToDB converts a domain user to the database model
func (r *GormUserRepository) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         string(user.Role),
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

// dbToDomain converts a database model to a domain user
func (r *GormUserRepository) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		Role:         domain.Role(dbUser.Role),
		PasswordHash: dbUser.PasswordHash,
		CreatedAt:    dbUser.CreatedAt,
	}
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*GormUserRepository)(nil)
