package ports

import (
	"context"
	"errors"

	"github.com/Mitesh0126/nursery-haven/internal/domains/catalog/domain"
)

var (
	ErrNotFound          = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ListFilter narrows and paginates catalog listings.
type ListFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// StockLevel reports stock before and after an atomic adjustment.
type StockLevel struct {
	Old int
	New int
}

// Repository persists products. DecrementStock, IncrementStock, and SetStock
// are the only stock mutation primitives; each is atomic per product so
// concurrent checkouts, cancellations, and restocks serialize on the same
// write. Save never touches the stock column of an existing product.
type Repository interface {
	// Save inserts a product, or updates the fields the catalog owns. On
	// update the stored stock level is left alone; stock moves only through
	// the primitives below.
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns the matching page plus the total match count.
	List(ctx context.Context, filter ListFilter) ([]*domain.Product, int64, error)
	Delete(ctx context.Context, id string) error
	// DecrementStock subtracts qty only when stock >= qty, in a single
	// conditional write. Returns ErrInsufficientStock otherwise.
	DecrementStock(ctx context.Context, id string, qty int) (StockLevel, error)
	// IncrementStock adds qty back, used by order cancellation.
	IncrementStock(ctx context.Context, id string, qty int) error
	// SetStock overwrites the stock level in a single write, used by admin
	// restock.
	SetStock(ctx context.Context, id string, stock int) (*domain.Product, error)
}
