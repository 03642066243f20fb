package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Mitesh0126/nursery-haven/internal/domains/catalog/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/catalog/ports"
)

const defaultPageSize = 12

// Service orchestrates the catalog bounded context use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListProducts returns a newest-first page of products matching the filter.
func (s *Service) ListProducts(ctx context.Context, filter ports.ListFilter) (*ports.ProductPage, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ProductPage{
		Products:   products,
		Total:      total,
		TotalPages: totalPages,
		Page:       filter.Page,
	}, nil
}

// ListAllProducts returns the whole catalog newest first, for the back-office
// table that renders without pagination.
func (s *Service) ListAllProducts(ctx context.Context) ([]*domain.Product, error) {
	products, _, err := s.repo.List(ctx, ports.ListFilter{})
	return products, err
}

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, product)
}

// UpdateProduct overrides an existing product with new state, keeping identity and creation time.
func (s *Service) UpdateProduct(ctx context.Context, id string, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	// Edits do not own the stock level; repositories keep the stored value.
	product.Stock = existing.Stock
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, product)
}

func (s *Service) ToggleStatus(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.ToggleStatus()
	return s.repo.Save(ctx, product)
}

// SetStock applies an absolute admin restock through the repository's atomic
// stock primitive so it serializes with in-flight checkouts.
func (s *Service) SetStock(ctx context.Context, id string, stock int) (*domain.Product, error) {
	if stock < 0 {
		return nil, mapError(domain.ErrNegativeStock)
	}
	return s.repo.SetStock(ctx, id, stock)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

var _ ports.Service = (*Service)(nil)
