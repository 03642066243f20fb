package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	catalogports "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/ports"
	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/ports"
)

// Service orchestrates order placement, cancellation, and fulfillment.
type Service struct {
	uow       ports.UnitOfWork
	orders    ports.Repository
	customers ports.CustomerDirectory
	pricing   domain.PricingConfig
}

func NewService(uow ports.UnitOfWork, orders ports.Repository, customers ports.CustomerDirectory, pricing domain.PricingConfig) *Service {
	return &Service{uow: uow, orders: orders, customers: customers, pricing: pricing}
}

// PlaceOrder validates the cart, then runs the whole stock-and-persist
// sequence inside one unit of work. Items are processed in the order given;
// duplicate product entries are independent sequential deductions, so a later
// entry sees the stock the earlier one left. Any failure rolls back every
// decrement made in the same request.
func (s *Service) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*ports.OrderConfirmation, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	customer, err := s.customers.GetCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	var confirmation *ports.OrderConfirmation
	err = s.uow.Do(ctx, func(ctx context.Context, repos ports.TxRepos) error {
		lines := make([]domain.LineItem, 0, len(input.Items))
		for _, item := range input.Items {
			product, err := repos.Catalog.GetByID(ctx, item.ProductID)
			if errors.Is(err, catalogports.ErrNotFound) {
				return &ItemNotFoundError{ProductID: item.ProductID}
			}
			if err != nil {
				return err
			}
			level, err := repos.Catalog.DecrementStock(ctx, item.ProductID, item.Quantity)
			if errors.Is(err, catalogports.ErrInsufficientStock) {
				return &InsufficientStockError{
					ProductID: product.ID,
					Name:      product.Name,
					Available: level.Old,
					Requested: item.Quantity,
				}
			}
			if err != nil {
				return err
			}
			// Snapshot uses the server-side product, never client payload.
			lines = append(lines, domain.LineItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Image:     product.Image,
				Quantity:  item.Quantity,
			})
		}

		order := &domain.Order{
			ID:            uuid.NewString(),
			OrderID:       domain.NewOrderID(),
			TransactionID: domain.NewTransactionID(),
			CustomerID:    customer.ID,
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			Items:         lines,
			Totals:        s.pricing.Compute(lines, input.Pricing, input.PaymentMethod),
			PaymentMethod: input.PaymentMethod,
			PaymentStatus: domain.PaymentCompleted,
			Status:        domain.StatusProcessing,
			Delivery:      input.Delivery,
			Pickup:        input.Pickup,
			CreatedAt:     time.Now(),
		}
		created, err := repos.Orders.Create(ctx, order)
		if err != nil {
			return err
		}
		confirmation = &ports.OrderConfirmation{
			OrderID:       created.OrderID,
			TransactionID: created.TransactionID,
			Total:         created.Totals.Total,
			Status:        created.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confirmation, nil
}

// CancelOrder restores stock for every line item, then deletes the order.
// Both happen in one unit of work; products that no longer exist are skipped.
func (s *Service) CancelOrder(ctx context.Context, id string) error {
	return s.uow.Do(ctx, func(ctx context.Context, repos ports.TxRepos) error {
		order, err := repos.Orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		for _, item := range order.Items {
			if err := repos.Catalog.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, catalogports.ErrNotFound) {
					continue
				}
				return err
			}
		}
		return repos.Orders.Delete(ctx, order.ID)
	})
}

// AdvanceFulfillment steps the order along processing -> shipped -> delivered.
// Delivered orders are returned unchanged.
func (s *Service) AdvanceFulfillment(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := order.Status
	order.AdvanceFulfillment()
	if order.Status == before {
		return order, nil
	}
	return s.orders.Update(ctx, order)
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *Service) GetOrderByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orders.GetByOrderID(ctx, orderID)
}

func (s *Service) ListOrders(ctx context.Context, filter ports.ListFilter) ([]*domain.Order, error) {
	return s.orders.List(ctx, filter)
}

func validateInput(input ports.PlaceOrderInput) error {
	if strings.TrimSpace(input.CustomerID) == "" {
		return fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}
	if len(input.Items) == 0 {
		return ErrEmptyCart
	}
	for _, item := range input.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return fmt.Errorf("%w: product id is required", ErrInvalidInput)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrInvalidQuantity)
		}
	}
	if !domain.IsValidPaymentMethod(input.PaymentMethod) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrInvalidPaymentMethod)
	}
	if input.Delivery == nil && input.Pickup == nil {
		return ErrMissingSchedule
	}
	if input.Delivery != nil {
		if strings.TrimSpace(input.Delivery.Name) == "" ||
			strings.TrimSpace(input.Delivery.Phone) == "" ||
			strings.TrimSpace(input.Delivery.Address) == "" {
			return fmt.Errorf("%w: delivery name, phone, and address are required", ErrInvalidInput)
		}
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
