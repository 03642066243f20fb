package mapper

import (
	"time"

	"github.com/Mitesh0126/nursery-haven/internal/domains/catalog/domain"
)

// Product is the transport representation of a catalog product.
type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Price            float64   `json:"price"`
	OriginalPrice    float64   `json:"originalPrice,omitempty"`
	Description      string    `json:"description,omitempty"`
	Category         string    `json:"category"`
	Image            string    `json:"image,omitempty"`
	Stock            int       `json:"stock"`
	Status           string    `json:"status"`
	CareInstructions string    `json:"careInstructions,omitempty"`
	IsPopular        bool      `json:"isPopular"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToDomainProduct converts a transport product into the catalog domain model.
func ToDomainProduct(product Product) *domain.Product {
	return &domain.Product{
		ID:               product.ID,
		Name:             product.Name,
		Price:            product.Price,
		OriginalPrice:    product.OriginalPrice,
		Description:      product.Description,
		Category:         product.Category,
		Image:            product.Image,
		Stock:            product.Stock,
		Status:           domain.Status(product.Status),
		CareInstructions: product.CareInstructions,
		IsPopular:        product.IsPopular,
		CreatedAt:        product.CreatedAt,
	}
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *domain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{
		ID:               product.ID,
		Name:             product.Name,
		Price:            product.Price,
		OriginalPrice:    product.OriginalPrice,
		Description:      product.Description,
		Category:         product.Category,
		Image:            product.Image,
		Stock:            product.Stock,
		Status:           string(product.Status),
		CareInstructions: product.CareInstructions,
		IsPopular:        product.IsPopular,
		CreatedAt:        product.CreatedAt,
	}
}

// FromDomainProducts converts a slice of domain products.
func FromDomainProducts(products []*domain.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, product := range products {
		out = append(out, FromDomainProduct(product))
	}
	return out
}
