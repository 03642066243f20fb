package ports

import (
	"context"
	"errors"

	catalogports "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/ports"
	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// ListFilter narrows order listings.
type ListFilter struct {
	Status     string
	CustomerID string
}

// Repository persists orders.
type Repository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// GetByOrderID resolves the human-readable ORD-... identifier.
	GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error)
	// List returns matching orders newest first.
	List(ctx context.Context, filter ListFilter) ([]*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

// TxRepos bundles the repositories bound to one unit of work.
type TxRepos struct {
	Catalog catalogports.Repository
	Orders  Repository
}

// UnitOfWork runs fn so that every write inside it commits or rolls back as
// one. Checkout and cancellation both run through it: a failed cart item or
// a failed order persist must leave no stock decrement behind.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos TxRepos) error) error
}

// Customer is the snapshot of the buyer captured on the order.
type Customer struct {
	ID    string
	Name  string
	Email string
}

// CustomerDirectory resolves the authenticated customer for checkout.
type CustomerDirectory interface {
	GetCustomer(ctx context.Context, id string) (Customer, error)
}
