package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"food-ordering-api/auth"
	"food-ordering-api/models"
)

// UserStore persists user identities and their password hashes.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// RegisterParams enumerates every field accepted at registration.
type RegisterParams struct {
	Username string
	Email    string
	Password string
	FullName string
}

// Register creates a new user with a bcrypt-hashed password. Username is
// checked before email, so a request colliding on both reports the username
// conflict. The application-level checks are a fast path; the unique indexes
// on username and email are the authoritative guard, and a constraint
// violation from the insert is mapped back to the right Duplicate error.
func (s *UserStore) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", p.Username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateUsername
	}
	if err := db.Model(&models.User{}).Where("email = ?", p.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: hash,
		FullName:     p.FullName,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.duplicateError(ctx, p.Username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// duplicateError re-probes which unique column a lost insert race collided on.
func (s *UserStore) duplicateError(ctx context.Context, username string) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	if err == nil && count > 0 {
		return ErrDuplicateUsername
	}
	return ErrDuplicateEmail
}

// VerifyCredentials looks the user up by username and compares the password
// against the stored hash. Unknown username and wrong password fail with the
// same error.
func (s *UserStore) VerifyCredentials(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// FindByUsername returns the user or ErrNotFound.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindByEmail returns the user or ErrNotFound.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}
