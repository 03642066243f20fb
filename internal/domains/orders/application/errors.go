package application

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart signals checkout was called without any line items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrMissingSchedule signals neither delivery nor pickup details were supplied.
	ErrMissingSchedule = errors.New("delivery or pickup details are required")
)

// ItemNotFoundError names the cart entry whose product does not exist.
type ItemNotFoundError struct {
	ProductID string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// InsufficientStockError reports available versus requested quantities for
// the offending product.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s. Available: %d, Requested: %d", e.Name, e.Available, e.Requested)
}
