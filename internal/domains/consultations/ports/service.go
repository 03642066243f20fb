package ports

import (
	"context"

	"github.com/Mitesh0126/nursery-haven/internal/domains/consultations/domain"
)

// SubmitInput carries the public consultation form fields.
type SubmitInput struct {
	Name    string
	Email   string
	Message string
}

// Service exposes consultation bounded context use cases to adapters.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*domain.Consultation, error)
	List(ctx context.Context) ([]*domain.Consultation, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Consultation, error)
	Delete(ctx context.Context, id string) error
}
