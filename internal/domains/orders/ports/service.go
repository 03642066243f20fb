package ports

import (
	"context"

	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/domain"
)

// CartItem is one client-supplied cart entry. Only the reference and the
// quantity are trusted; price and name are re-read from the catalog.
type CartItem struct {
	ProductID string
	Quantity  int
}

// PlaceOrderInput carries everything checkout needs. CustomerID comes from
// the auth context, never the request body.
type PlaceOrderInput struct {
	CustomerID    string
	Items         []CartItem
	PaymentMethod domain.PaymentMethod
	Pricing       domain.PricingOptions
	Delivery      *domain.DeliveryDetails
	Pickup        *domain.PickupDetails
}

// OrderConfirmation is what the customer gets back from checkout.
type OrderConfirmation struct {
	OrderID       string
	TransactionID string
	Total         float64
	Status        domain.Status
}

// Service exposes the order use cases to adapters.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderConfirmation, error)
	CancelOrder(ctx context.Context, id string) error
	AdvanceFulfillment(ctx context.Context, id string) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	GetOrderByOrderID(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, filter ListFilter) ([]*domain.Order, error)
}
