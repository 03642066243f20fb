package application

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Mitesh0126/nursery-haven/internal/domains/users/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/users/ports"
	"github.com/Mitesh0126/nursery-haven/internal/shared/auth"
)

// Service exposes user bounded context use cases.
type Service struct {
	repo     ports.Repository
	sessions ports.SessionStore
	tokens   *auth.Manager
}

func NewService(repo ports.Repository, sessions ports.SessionStore, tokens *auth.Manager) *Service {
	if sessions == nil {
		sessions = ports.NoopSessionStore
	}
	return &Service{repo: repo, sessions: sessions, tokens: tokens}
}

// Register creates a customer account and signs it in.
func (s *Service) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, mapError(err)
	}
	email := domain.NormalizeEmail(input.Email)
	if email == "" {
		return nil, mapError(domain.ErrEmptyEmail)
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ports.ErrEmailTaken
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user, err := domain.NewUser(uuid.NewString(), input.Name, email, hash, input.Phone)
	if err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.issueSession(ctx, saved)
}

// Login verifies credentials and returns a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, mapError(ports.ErrInvalidCredentials)
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, mapError(ports.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, mapError(ports.ErrInvalidCredentials)
	}
	return s.issueSession(ctx, user)
}

// Logout drops any stored session for the account.
func (s *Service) Logout(ctx context.Context, email string) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return
	}
	_ = s.sessions.Delete(ctx, email)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCustomers returns customer accounts only; admins stay out of the
// back-office customer table.
func (s *Service) ListCustomers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers := make([]*domain.User, 0, len(users))
	for _, user := range users {
		if user.UserType == domain.TypeCustomer {
			customers = append(customers, user)
		}
	}
	return customers, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	_ = s.sessions.Delete(ctx, user.Email)
	return s.repo.Delete(ctx, id)
}

// EnsureAdmin seeds the back-office account on startup when it is missing.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	email = domain.NormalizeEmail(email)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, ports.ErrNotFound) {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	admin, err := domain.NewUser(uuid.NewString(), "Admin", email, hash, "")
	if err != nil {
		return err
	}
	admin.UserType = domain.TypeAdmin
	_, err = s.repo.Save(ctx, admin)
	return err
}

func (s *Service) issueSession(ctx context.Context, user *domain.User) (*ports.AuthResult, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.UserType))
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, user.Email, token); err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

var _ ports.Service = (*Service)(nil)
