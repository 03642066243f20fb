package domain

import (
	"errors"
	"strings"
	"time"
)

// Status enumerates product visibility in the storefront.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var (
	ErrEmptyName     = errors.New("product name is required")
	ErrEmptyCategory = errors.New("product category is required")
	ErrInvalidPrice  = errors.New("price must be greater than zero")
	ErrNegativeStock = errors.New("stock must not be negative")
	ErrInvalidStatus = errors.New("product status is invalid")
)

// Product models a sellable nursery item. Stock never goes below zero
// after a committed operation.
type Product struct {
	ID               string
	Name             string
	Price            float64
	OriginalPrice    float64
	Description      string
	Category         string
	Image            string
	Stock            int
	Status           Status
	CareInstructions string
	IsPopular        bool
	CreatedAt        time.Time
}

// NewProduct validates and constructs a product aggregate.
func NewProduct(id, name string, price float64, category, image string) (*Product, error) {
	product := &Product{
		ID:       id,
		Name:     strings.TrimSpace(name),
		Price:    price,
		Category: strings.TrimSpace(category),
		Image:    image,
		Status:   StatusActive,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Validate enforces invariants on the aggregate.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(p.Category) == "" {
		return ErrEmptyCategory
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	if !isValidStatus(p.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// ToggleStatus flips the product between active and inactive.
func (p *Product) ToggleStatus() Status {
	if p.Status == StatusActive {
		p.Status = StatusInactive
	} else {
		p.Status = StatusActive
	}
	return p.Status
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}
