package ports

import (
	"context"

	"github.com/Mitesh0126/nursery-haven/internal/domains/users/domain"
)

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// AuthResult pairs a signed token with the authenticated account.
type AuthResult struct {
	Token string
	User  *domain.User
}

// Service exposes user bounded context use cases to adapters.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, email string)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListCustomers(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
	EnsureAdmin(ctx context.Context, email, password string) error
}
