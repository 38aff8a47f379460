package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/florianfabre/countrynews/internal/entities"
)

var (
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserStore defines the user data access the account service needs.
type UserStore interface {
	CreateUser(username, password string) (*entities.User, error)
	GetUserByUsername(username string) (*entities.User, error)
	DeleteUser(username string) error
	CountUsers() (int64, error)
}

// Service handles account creation, authentication, and deletion.
type Service struct {
	users    UserStore
	verifier PasswordVerifier
}

// NewService creates a new account service.
func NewService(users UserStore, verifier PasswordVerifier) *Service {
	return &Service{
		users:    users,
		verifier: verifier,
	}
}

// CreateAccount registers a new user. It fails with ErrUserExists when a
// user with the same username (case-sensitive exact match) already exists.
func (s *Service) CreateAccount(username, password string) (*entities.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	_, err := s.users.GetUserByUsername(username)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	stored, err := s.verifier.Encode(password)
	if err != nil {
		return nil, fmt.Errorf("failed to encode password: %w", err)
	}

	user, err := s.users.CreateUser(username, stored)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate validates credentials and returns the user. A missing user
// and a wrong password both return ErrInvalidCredentials; callers must not
// distinguish the two cases in what they surface.
func (s *Service) Authenticate(username, password string) (*entities.User, error) {
	user, err := s.users.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.verifier.Check(password, user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// DeleteAccount unconditionally deletes the user with the given username.
// Callers are responsible for verifying that the requester owns the
// account. The user's favourite links are not cleaned up.
func (s *Service) DeleteAccount(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	return s.users.DeleteUser(username)
}

// HasUsers returns true if any users exist in the database.
func (s *Service) HasUsers() (bool, error) {
	count, err := s.users.CountUsers()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
