package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/florianfabre/countrynews/internal/config"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrPasswordTooLong = errors.New("password exceeds maximum length of 72 bytes")
)

// PasswordVerifier abstracts how credentials are stored and checked, so a
// hashing scheme can be introduced without touching the account service.
type PasswordVerifier interface {
	// Encode transforms a password into its stored representation.
	Encode(password string) (string, error)
	// Check compares a password against its stored representation.
	Check(password, stored string) error
}

// NewVerifier returns the verifier for the configured password scheme.
// The default scheme stores passwords as-is.
func NewVerifier(cfg config.Auth) PasswordVerifier {
	if cfg.PasswordScheme == config.PasswordSchemeBcrypt {
		return &BcryptVerifier{Cost: cfg.BcryptCost}
	}
	return &PlaintextVerifier{}
}

// PlaintextVerifier stores passwords unmodified. Kept for compatibility
// with existing database files; a known security gap.
type PlaintextVerifier struct{}

func (v *PlaintextVerifier) Encode(password string) (string, error) {
	return password, nil
}

func (v *PlaintextVerifier) Check(password, stored string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(stored)) != 1 {
		return ErrInvalidPassword
	}
	return nil
}

// BcryptVerifier stores bcrypt hashes instead of raw passwords.
type BcryptVerifier struct {
	Cost int
}

func (v *BcryptVerifier) Encode(password string) (string, error) {
	// bcrypt has a 72-byte limit
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (v *BcryptVerifier) Check(password, stored string) error {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}
		return err
	}
	return nil
}
