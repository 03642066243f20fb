package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmemory "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/adapters/memory"
	catalogdomain "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/domain"
	ordersmemory "github.com/Mitesh0126/nursery-haven/internal/domains/orders/adapters/memory"
	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/ports"
)

type fakeDirectory struct {
	customers map[string]ports.Customer
}

func (f *fakeDirectory) GetCustomer(_ context.Context, id string) (ports.Customer, error) {
	if customer, ok := f.customers[id]; ok {
		return customer, nil
	}
	return ports.Customer{}, errors.New("customer not found")
}

type checkoutFixture struct {
	catalog *catalogmemory.Repository
	orders  *ordersmemory.Repository
	svc     *Service
}

func newCheckoutFixture(t *testing.T, products ...*catalogdomain.Product) *checkoutFixture {
	t.Helper()
	catalog := catalogmemory.NewRepository()
	for _, product := range products {
		_, err := catalog.Save(context.Background(), product)
		require.NoError(t, err)
	}
	orders := ordersmemory.NewRepository()
	directory := &fakeDirectory{customers: map[string]ports.Customer{
		"cust-1": {ID: "cust-1", Name: "Asha", Email: "asha@example.com"},
	}}
	svc := NewService(ordersmemory.NewUnitOfWork(catalog, orders), orders, directory, domain.DefaultPricingConfig())
	return &checkoutFixture{catalog: catalog, orders: orders, svc: svc}
}

func product(id, name string, price float64, stock int) *catalogdomain.Product {
	return &catalogdomain.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: "indoor",
		Stock:    stock,
		Status:   catalogdomain.StatusActive,
	}
}

func placeInput(items ...ports.CartItem) ports.PlaceOrderInput {
	return ports.PlaceOrderInput{
		CustomerID:    "cust-1",
		Items:         items,
		PaymentMethod: domain.PaymentCard,
		Delivery:      &domain.DeliveryDetails{Name: "Asha", Phone: "9876543210", Address: "12 Garden Lane"},
	}
}

func stockOf(t *testing.T, fx *checkoutFixture, id string) int {
	t.Helper()
	p, err := fx.catalog.GetByID(context.Background(), id)
	require.NoError(t, err)
	return p.Stock
}

func TestPlaceOrder_DecrementsStockAndPersists(t *testing.T) {
	fx := newCheckoutFixture(t, product("p1", "Monstera", 100, 10))
	ctx := context.Background()

	confirmation, err := fx.svc.PlaceOrder(ctx, placeInput(ports.CartItem{ProductID: "p1", Quantity: 2}))
	require.NoError(t, err)
	assert.Regexp(t, `^ORD-`, confirmation.OrderID)
	assert.Regexp(t, `^TXN-`, confirmation.TransactionID)
	assert.Equal(t, domain.StatusProcessing, confirmation.Status)
	assert.Equal(t, 286.00, confirmation.Total)

	assert.Equal(t, 8, stockOf(t, fx, "p1"))

	order, err := fx.svc.GetOrderByOrderID(ctx, confirmation.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "cust-1", order.CustomerID)
	assert.Equal(t, "asha@example.com", order.CustomerEmail)
	assert.Equal(t, domain.PaymentCompleted, order.PaymentStatus)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Monstera", order.Items[0].Name)
	assert.Equal(t, 100.00, order.Items[0].Price)
}

func TestPlaceOrder_SnapshotsServerPrices(t *testing.T) {
	fx := newCheckoutFixture(t, product("p1", "Fiddle Leaf Fig", 450, 5))
	ctx := context.Background()

	// The cart only names product and quantity; price comes from the catalog.
	confirmation, err := fx.svc.PlaceOrder(ctx, placeInput(ports.CartItem{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)

	order, err := fx.svc.GetOrderByOrderID(ctx, confirmation.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 450.00, order.Items[0].Price)
	assert.Equal(t, 450.00, order.Totals.Subtotal)
}

func TestPlaceOrder_InsufficientStockRollsBackEarlierLines(t *testing.T) {
	fx := newCheckoutFixture(t,
		product("p1", "Monstera", 100, 10),
		product("p2", "Bonsai", 300, 1),
	)
	ctx := context.Background()

	_, err := fx.svc.PlaceOrder(ctx, placeInput(
		ports.CartItem{ProductID: "p1", Quantity: 3},
		ports.CartItem{ProductID: "p2", Quantity: 2},
	))

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "p2", stockErr.ProductID)
	assert.Equal(t, "Bonsai", stockErr.Name)
	assert.Equal(t, 1, stockErr.Available)
	assert.Equal(t, 2, stockErr.Requested)

	// The earlier decrement of p1 must be undone.
	assert.Equal(t, 10, stockOf(t, fx, "p1"))
	assert.Equal(t, 1, stockOf(t, fx, "p2"))

	orders, err := fx.svc.ListOrders(ctx, ports.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrder_UnknownProductAbortsCheckout(t *testing.T) {
	fx := newCheckoutFixture(t, product("p1", "Monstera", 100, 10))
	ctx := context.Background()

	_, err := fx.svc.PlaceOrder(ctx, placeInput(
		ports.CartItem{ProductID: "p1", Quantity: 1},
		ports.CartItem{ProductID: "ghost", Quantity: 1},
	))

	var notFound *ItemNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost", notFound.ProductID)
	assert.Equal(t, 10, stockOf(t, fx, "p1"))
}

func TestPlaceOrder_DuplicateLinesDeductSequentially(t *testing.T) {
	fx := newCheckoutFixture(t, product("p1", "Monstera", 100, 5))
	ctx := context.Background()

	_, err := fx.svc.PlaceOrder(ctx, placeInput(
		ports.CartItem{ProductID: "p1", Quantity: 3},
		ports.CartItem{ProductID: "p1", Quantity: 3},
	))

	// The second line sees the stock the first one left: 2 remaining for a
	// request of 3.
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 5, stockOf(t, fx, "p1"))
}

func TestPlaceOrder_ExactStockSucceeds(t *testing.T) {
	fx := newCheckoutFixture(t, product("p1", "Monstera", 100, 2))
	ctx := context.Background()

	_, err := fx.svc.PlaceOrder(ctx, placeInput(ports.CartItem{ProductID: "p1", Quantity: 2}))
	require.NoError(t, err)
	assert.Equal(t, 0, stockOf(t, fx, "p1"))

	// A follow-up purchase of the now-empty product fails cleanly.
	_, err = fx.svc.PlaceOrder(ctx, placeInput(ports.CartItem{ProductID: "p1", Quantity: 1}))
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 0, stockErr.Available)
	assert.Equal(t, 0, stockOf(t, fx, "p1"))
}

func TestPlaceOrder_Validation(t *testing.T) {
	fx := newCheckoutFixture(t, product("p1", "Monstera", 100, 10))
	ctx := context.Background()

	_, err := fx.svc.PlaceOrder(ctx, placeInput())
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = fx.svc.PlaceOrder(ctx, placeInput(ports.CartItem{ProductID: "p1", Quantity: 0}))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = fx.svc.PlaceOrder(ctx, placeInput(ports.CartItem{ProductID: " ", Quantity: 1}))
	assert.ErrorIs(t, err, ErrInvalidInput)

	badMethod := placeInput(ports.CartItem{ProductID: "p1", Quantity: 1})
	badMethod.PaymentMethod = "cheque"
	_, err = fx.svc.PlaceOrder(ctx, badMethod)
	assert.ErrorIs(t, err, ErrInvalidInput)

	noSchedule := placeInput(ports.CartItem{ProductID: "p1", Quantity: 1})
	noSchedule.Delivery = nil
	_, err = fx.svc.PlaceOrder(ctx, noSchedule)
	assert.ErrorIs(t, err, ErrMissingSchedule)

	partialAddress := placeInput(ports.CartItem{ProductID: "p1", Quantity: 1})
	partialAddress.Delivery = &domain.DeliveryDetails{Name: "Asha"}
	_, err = fx.svc.PlaceOrder(ctx, partialAddress)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Pickup alone satisfies the schedule requirement.
	pickupOnly := placeInput(ports.CartItem{ProductID: "p1", Quantity: 1})
	pickupOnly.Delivery = nil
	pickupOnly.Pickup = &domain.PickupDetails{FulfillmentType: "pickup", PreferredDate: "2026-09-01"}
	_, err = fx.svc.PlaceOrder(ctx, pickupOnly)
	assert.NoError(t, err)
}

func TestCancelOrder_RestoresStock(t *testing.T) {
	fx := newCheckoutFixture(t, product("p1", "Monstera", 100, 10))
	ctx := context.Background()

	confirmation, err := fx.svc.PlaceOrder(ctx, placeInput(ports.CartItem{ProductID: "p1", Quantity: 4}))
	require.NoError(t, err)
	assert.Equal(t, 6, stockOf(t, fx, "p1"))

	order, err := fx.svc.GetOrderByOrderID(ctx, confirmation.OrderID)
	require.NoError(t, err)

	require.NoError(t, fx.svc.CancelOrder(ctx, order.ID))
	assert.Equal(t, 10, stockOf(t, fx, "p1"))

	_, err = fx.svc.GetOrder(ctx, order.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestCancelOrder_SkipsDeletedProducts(t *testing.T) {
	fx := newCheckoutFixture(t,
		product("p1", "Monstera", 100, 10),
		product("p2", "Bonsai", 300, 5),
	)
	ctx := context.Background()

	confirmation, err := fx.svc.PlaceOrder(ctx, placeInput(
		ports.CartItem{ProductID: "p1", Quantity: 2},
		ports.CartItem{ProductID: "p2", Quantity: 1},
	))
	require.NoError(t, err)

	require.NoError(t, fx.catalog.Delete(ctx, "p2"))

	order, err := fx.svc.GetOrderByOrderID(ctx, confirmation.OrderID)
	require.NoError(t, err)
	require.NoError(t, fx.svc.CancelOrder(ctx, order.ID))

	// p1 is restored; the vanished p2 is silently skipped.
	assert.Equal(t, 10, stockOf(t, fx, "p1"))
}

func TestCancelOrder_UnknownOrder(t *testing.T) {
	fx := newCheckoutFixture(t)
	err := fx.svc.CancelOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestAdvanceFulfillment_StepsAndStops(t *testing.T) {
	fx := newCheckoutFixture(t, product("p1", "Monstera", 100, 10))
	ctx := context.Background()

	confirmation, err := fx.svc.PlaceOrder(ctx, placeInput(ports.CartItem{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)
	order, err := fx.svc.GetOrderByOrderID(ctx, confirmation.OrderID)
	require.NoError(t, err)

	shipped, err := fx.svc.AdvanceFulfillment(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, shipped.Status)

	delivered, err := fx.svc.AdvanceFulfillment(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, delivered.Status)

	still, err := fx.svc.AdvanceFulfillment(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, still.Status)

	persisted, err := fx.svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, persisted.Status)
}

func TestListOrders_Filters(t *testing.T) {
	fx := newCheckoutFixture(t, product("p1", "Monstera", 100, 100))
	ctx := context.Background()

	first, err := fx.svc.PlaceOrder(ctx, placeInput(ports.CartItem{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)
	_, err = fx.svc.PlaceOrder(ctx, placeInput(ports.CartItem{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)

	firstOrder, err := fx.svc.GetOrderByOrderID(ctx, first.OrderID)
	require.NoError(t, err)
	_, err = fx.svc.AdvanceFulfillment(ctx, firstOrder.ID)
	require.NoError(t, err)

	all, err := fx.svc.ListOrders(ctx, ports.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	shipped, err := fx.svc.ListOrders(ctx, ports.ListFilter{Status: "shipped"})
	require.NoError(t, err)
	require.Len(t, shipped, 1)
	assert.Equal(t, first.OrderID, shipped[0].OrderID)

	mine, err := fx.svc.ListOrders(ctx, ports.ListFilter{CustomerID: "cust-1"})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := fx.svc.ListOrders(ctx, ports.ListFilter{CustomerID: "stranger"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
