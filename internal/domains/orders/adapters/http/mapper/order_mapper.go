package mapper

import (
	"time"

	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/ports"
)

// LineItem is the transport shape of a purchase-time snapshot.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}

// DeliveryDetails is the transport shape of a home-delivery schedule.
type DeliveryDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pin     string `json:"pin,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// PickupDetails is the transport shape of an in-store pickup schedule.
type PickupDetails struct {
	FulfillmentType     string `json:"fulfillmentType,omitempty"`
	PreferredDate       string `json:"preferredDate,omitempty"`
	PreferredTime       string `json:"preferredTime,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// Order is the transport representation of an order aggregate.
type Order struct {
	ID            string           `json:"id"`
	OrderID       string           `json:"orderId"`
	TransactionID string           `json:"transactionId"`
	CustomerID    string           `json:"customerId"`
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	Items         []LineItem       `json:"items"`
	Subtotal      float64          `json:"subtotal"`
	BulkDiscount  float64          `json:"bulkDiscount"`
	Tax           float64          `json:"tax"`
	Shipping      float64          `json:"shipping"`
	CODCharge     float64          `json:"codCharge"`
	Total         float64          `json:"total"`
	PaymentMethod string           `json:"paymentMethod"`
	PaymentStatus string           `json:"paymentStatus"`
	OrderStatus   string           `json:"orderStatus"`
	Delivery      *DeliveryDetails `json:"deliveryDetails,omitempty"`
	Pickup        *PickupDetails   `json:"pickupDetails,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// Confirmation is the checkout success payload.
type Confirmation struct {
	OrderID       string  `json:"orderId"`
	TransactionID string  `json:"transactionId"`
	Total         float64 `json:"total"`
	Status        string  `json:"orderStatus"`
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *domain.Order) Order {
	if order == nil {
		return Order{}
	}
	items := make([]LineItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
		})
	}
	out := Order{
		ID:            order.ID,
		OrderID:       order.OrderID,
		TransactionID: order.TransactionID,
		CustomerID:    order.CustomerID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Items:         items,
		Subtotal:      order.Totals.Subtotal,
		BulkDiscount:  order.Totals.BulkDiscount,
		Tax:           order.Totals.Tax,
		Shipping:      order.Totals.Shipping,
		CODCharge:     order.Totals.CODCharge,
		Total:         order.Totals.Total,
		PaymentMethod: string(order.PaymentMethod),
		PaymentStatus: string(order.PaymentStatus),
		OrderStatus:   string(order.Status),
		CreatedAt:     order.CreatedAt,
	}
	if order.Delivery != nil {
		out.Delivery = &DeliveryDetails{
			Name:    order.Delivery.Name,
			Phone:   order.Delivery.Phone,
			Address: order.Delivery.Address,
			City:    order.Delivery.City,
			State:   order.Delivery.State,
			Pin:     order.Delivery.Pin,
			Notes:   order.Delivery.Notes,
		}
	}
	if order.Pickup != nil {
		out.Pickup = &PickupDetails{
			FulfillmentType:     order.Pickup.FulfillmentType,
			PreferredDate:       order.Pickup.PreferredDate,
			PreferredTime:       order.Pickup.PreferredTime,
			SpecialInstructions: order.Pickup.SpecialInstructions,
		}
	}
	return out
}

// FromDomainOrders converts a slice of domain orders.
func FromDomainOrders(orders []*domain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomainOrder(order))
	}
	return out
}

// FromConfirmation converts a checkout confirmation.
func FromConfirmation(confirmation *ports.OrderConfirmation) Confirmation {
	if confirmation == nil {
		return Confirmation{}
	}
	return Confirmation{
		OrderID:       confirmation.OrderID,
		TransactionID: confirmation.TransactionID,
		Total:         confirmation.Total,
		Status:        string(confirmation.Status),
	}
}

// ToDeliveryDetails converts transport delivery details into the domain model.
func ToDeliveryDetails(details *DeliveryDetails) *domain.DeliveryDetails {
	if details == nil {
		return nil
	}
	return &domain.DeliveryDetails{
		Name:    details.Name,
		Phone:   details.Phone,
		Address: details.Address,
		City:    details.City,
		State:   details.State,
		Pin:     details.Pin,
		Notes:   details.Notes,
	}
}

// ToPickupDetails converts transport pickup details into the domain model.
func ToPickupDetails(details *PickupDetails) *domain.PickupDetails {
	if details == nil {
		return nil
	}
	return &domain.PickupDetails{
		FulfillmentType:     details.FulfillmentType,
		PreferredDate:       details.PreferredDate,
		PreferredTime:       details.PreferredTime,
		SpecialInstructions: details.SpecialInstructions,
	}
}
