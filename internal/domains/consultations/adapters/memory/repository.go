package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Mitesh0126/nursery-haven/internal/domains/consultations/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/consultations/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory consultation persistence adapter.
type Repository struct {
	mu            sync.RWMutex
	consultations map[string]*domain.Consultation
}

func NewRepository() *Repository {
	return &Repository{consultations: map[string]*domain.Consultation{}}
}

func (r *Repository) Save(_ context.Context, consultation *domain.Consultation) (*domain.Consultation, error) {
	if consultation == nil {
		return nil, errors.New("consultation is nil")
	}
	if err := consultation.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *consultation
	r.consultations[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	consultation, ok := r.consultations[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *consultation
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Consultation, 0, len(r.consultations))
	for _, consultation := range r.consultations {
		clone := *consultation
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.consultations[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.consultations, id)
	return nil
}
