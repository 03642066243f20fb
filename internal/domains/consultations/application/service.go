package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Mitesh0126/nursery-haven/internal/domains/consultations/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/consultations/ports"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid consultation input")

// Service exposes consultation bounded context use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Submit records a new pending consultation request.
func (s *Service) Submit(ctx context.Context, input ports.SubmitInput) (*domain.Consultation, error) {
	consultation, err := domain.NewConsultation(uuid.NewString(), input.Name, input.Email, input.Message)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.repo.Save(ctx, consultation)
}

// List returns all requests, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Consultation, error) {
	return s.repo.List(ctx)
}

// UpdateStatus moves a request to a new handling state.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Consultation, error) {
	consultation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := consultation.SetStatus(status); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.repo.Save(ctx, consultation)
}

// Delete removes a request.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

var _ ports.Service = (*Service)(nil)
