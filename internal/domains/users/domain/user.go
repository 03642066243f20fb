package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName       = errors.New("name is required")
	ErrEmptyEmail      = errors.New("email is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrWeakPassword    = errors.New("password must be at least 4 characters")
	ErrInvalidUserType = errors.New("user type must be customer or admin")
)

// UserType distinguishes storefront customers from back-office admins.
type UserType string

const (
	TypeCustomer UserType = "customer"
	TypeAdmin    UserType = "admin"
)

// User represents a registered account. PasswordHash holds the bcrypt digest,
// never the raw password.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	UserType     UserType
	RegisteredAt time.Time
}

// NewUser builds a customer account ensuring required invariants.
func NewUser(id, name, email, passwordHash, phone string) (*User, error) {
	user := &User{
		ID:           id,
		Name:         strings.TrimSpace(name),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Phone:        strings.TrimSpace(phone),
		UserType:     TypeCustomer,
		RegisteredAt: time.Now(),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// NormalizeEmail lowercases and trims an address so lookups are
// case-insensitive. The seeded admin login is a bare word, so no structural
// validation is applied here.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate re-applies core invariants for persistence.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if strings.TrimSpace(u.PasswordHash) == "" {
		return ErrEmptyPassword
	}
	switch u.UserType {
	case TypeCustomer, TypeAdmin:
		return nil
	default:
		return ErrInvalidUserType
	}
}

// IsAdmin reports whether the account may reach back-office operations.
func (u *User) IsAdmin() bool {
	return u.UserType == TypeAdmin
}

// ValidatePassword checks raw-password strength before hashing.
func ValidatePassword(password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < 4 {
		return ErrWeakPassword
	}
	return nil
}
