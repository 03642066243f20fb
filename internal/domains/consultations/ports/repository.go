package ports

import (
	"context"
	"errors"

	"github.com/Mitesh0126/nursery-haven/internal/domains/consultations/domain"
)

var ErrNotFound = errors.New("consultation not found")

type Repository interface {
	Save(ctx context.Context, consultation *domain.Consultation) (*domain.Consultation, error)
	GetByID(ctx context.Context, id string) (*domain.Consultation, error)
	List(ctx context.Context) ([]*domain.Consultation, error)
	Delete(ctx context.Context, id string) error
}
