package domain

import (
	"errors"
	"strings"
	"time"
)

// Status enumerates delivery progression. Distinct from payment status.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

// fulfillmentFlow is the explicit state table: delivered maps to itself,
// making it terminal without special casing at call sites.
var fulfillmentFlow = map[Status]Status{
	StatusProcessing: StatusShipped,
	StatusShipped:    StatusDelivered,
	StatusDelivered:  StatusDelivered,
}

// PaymentStatus tracks the simulated payment outcome.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// PaymentMethod enumerates the accepted payment options.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod"
)

var (
	ErrInvalidStatus        = errors.New("order status is invalid")
	ErrInvalidPaymentMethod = errors.New("payment method is invalid")
	ErrNoLineItems          = errors.New("order must contain at least one item")
	ErrInvalidQuantity      = errors.New("quantity must be greater than zero")
)

// LineItem is a purchase-time snapshot of a product. Name, price, and image
// are captured at checkout and never re-joined against the catalog.
type LineItem struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	Quantity  int
}

// DeliveryDetails holds the home-delivery address for an order.
type DeliveryDetails struct {
	Name    string
	Phone   string
	Address string
	City    string
	State   string
	Pin     string
	Notes   string
}

// PickupDetails holds the basket-ready pickup schedule for an order.
type PickupDetails struct {
	FulfillmentType     string
	PreferredDate       string
	PreferredTime       string
	SpecialInstructions string
}

// Order models a placed order aggregate. Totals are computed once at
// creation and never recomputed.
type Order struct {
	ID            string
	OrderID       string
	TransactionID string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	Items         []LineItem
	Totals        Totals
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	Status        Status
	Delivery      *DeliveryDetails
	Pickup        *PickupDetails
	CreatedAt     time.Time
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return ErrNoLineItems
	}
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	if !IsValidPaymentMethod(o.PaymentMethod) {
		return ErrInvalidPaymentMethod
	}
	return nil
}

// AdvanceFulfillment moves the order one step along the delivery flow.
// Delivered is terminal; advancing it is a no-op.
func (o *Order) AdvanceFulfillment() Status {
	if next, ok := fulfillmentFlow[o.Status]; ok {
		o.Status = next
	}
	return o.Status
}

// TotalQuantity sums the quantities across all line items.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// IsValidPaymentMethod reports whether the method is one the store accepts.
func IsValidPaymentMethod(method PaymentMethod) bool {
	switch method {
	case PaymentCard, PaymentUPI, PaymentCOD:
		return true
	default:
		return false
	}
}

// ParsePaymentMethod normalizes a wire value into a PaymentMethod.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	method := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	if !IsValidPaymentMethod(method) {
		return "", ErrInvalidPaymentMethod
	}
	return method, nil
}

func isValidStatus(status Status) bool {
	_, ok := fulfillmentFlow[status]
	return ok
}
