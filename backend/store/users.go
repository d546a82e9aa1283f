package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studytutor/backend/models"
)

// CreateUser registers a new account. The password is bcrypt-hashed before
// it touches the database.
func (s *Store) CreateUser(username, email, password, fullName string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		LastActive:   time.Now(),
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies credentials and returns the account. Unknown user
// and wrong password both come back as ErrInvalidCredentials.
func (s *Store) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func (s *Store) GetUserByID(userID string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureUser creates a guest placeholder row for an unknown identifier.
// Legacy installs carried progress rows for users that never registered;
// callers that import such data invoke this deliberately. Read paths never do.
func (s *Store) EnsureUser(userID string) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	prefix := userID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}

	guest := models.User{
		UserID:       userID,
		Username:     "guest_" + prefix,
		Email:        fmt.Sprintf("%s@guest.local", userID),
		PasswordHash: "legacy",
		LastActive:   time.Now(),
	}

	if err := s.DB.Create(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil // lost a race, row exists now
		}
		return err
	}
	return nil
}

// UpdateProfile changes the mutable profile fields.
func (s *Store) UpdateProfile(userID, email, fullName string) error {
	err := s.DB.Model(&models.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"email": email, "full_name": fullName}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateUser
	}
	return err
}

func (s *Store) TouchLastActive(userID string) error {
	return s.DB.Model(&models.User{}).
		Where("user_id = ?", userID).
		Update("last_active", time.Now()).Error
}
