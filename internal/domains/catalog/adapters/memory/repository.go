package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/Mitesh0126/nursery-haven/internal/domains/catalog/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory product persistence adapter. The mutex makes the
// read-check-decrement sequence atomic per call, matching the conditional
// UPDATE the postgres adapter uses.
type Repository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewRepository() *Repository {
	return &Repository{products: map[string]*domain.Product{}}
}

func (r *Repository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := *product
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	// Stock belongs to the atomic primitives; an update keeps whatever level
	// concurrent checkouts have left.
	if existing, ok := r.products[clone.ID]; ok {
		clone.Stock = existing.Stock
	}
	r.products[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) List(_ context.Context, filter ports.ListFilter) ([]*domain.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		if !matches(product, filter) {
			continue
		}
		clone := *product
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if filter.Limit > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		start := (page - 1) * filter.Limit
		if start >= len(matched) {
			return []*domain.Product{}, total, nil
		}
		end := start + filter.Limit
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *Repository) DecrementStock(_ context.Context, id string, qty int) (ports.StockLevel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return ports.StockLevel{}, ports.ErrNotFound
	}
	if product.Stock < qty {
		return ports.StockLevel{Old: product.Stock, New: product.Stock}, ports.ErrInsufficientStock
	}
	level := ports.StockLevel{Old: product.Stock, New: product.Stock - qty}
	product.Stock = level.New
	return level, nil
}

func (r *Repository) IncrementStock(_ context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return ports.ErrNotFound
	}
	product.Stock += qty
	return nil
}

func (r *Repository) SetStock(_ context.Context, id string, stock int) (*domain.Product, error) {
	if stock < 0 {
		return nil, domain.ErrNegativeStock
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	product.Stock = stock
	clone := *product
	return &clone, nil
}

func matches(product *domain.Product, filter ports.ListFilter) bool {
	if filter.Category != "" && filter.Category != "all" && product.Category != filter.Category {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(product.Name), needle) &&
			!strings.Contains(strings.ToLower(product.Description), needle) &&
			!strings.Contains(strings.ToLower(product.Category), needle) {
			return false
		}
	}
	return true
}
