package ports

import (
	"context"

	"github.com/Mitesh0126/nursery-haven/internal/domains/catalog/domain"
)

// ProductPage is a paginated listing result.
type ProductPage struct {
	Products   []*domain.Product
	Total      int64
	TotalPages int
	Page       int
}

// Service exposes catalog use cases to adapters.
type Service interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, filter ListFilter) (*ProductPage, error)
	ListAllProducts(ctx context.Context) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, product *domain.Product) (*domain.Product, error)
	ToggleStatus(ctx context.Context, id string) (*domain.Product, error)
	SetStock(ctx context.Context, id string, stock int) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
