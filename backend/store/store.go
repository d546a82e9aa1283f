// Package store is the persistence gateway: all reads and writes to the
// users, progress, quiz_attempts and chat_sessions tables go through it.
// Reads are side-effect-free; guest rows are only created by an explicit
// EnsureUser call.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateUser signals a unique-constraint hit on username or email.
	ErrDuplicateUser = errors.New("username or email already exists")

	// ErrInvalidCredentials covers both unknown user and wrong password,
	// so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}
