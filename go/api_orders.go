package nurseryserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Mitesh0126/nursery-haven/internal/domains/orders/adapters/http/mapper"
	orderapp "github.com/Mitesh0126/nursery-haven/internal/domains/orders/application"
	ordersdomain "github.com/Mitesh0126/nursery-haven/internal/domains/orders/domain"
	orderports "github.com/Mitesh0126/nursery-haven/internal/domains/orders/ports"
	userports "github.com/Mitesh0126/nursery-haven/internal/domains/users/ports"
	apierrors "github.com/Mitesh0126/nursery-haven/internal/shared/errors"
)

// OrderAPI implements the customer-facing order endpoints.
type OrderAPI struct {
	service orderports.Service
}

// NewOrderAPI wires dependencies.
func NewOrderAPI(service orderports.Service) OrderAPI {
	return OrderAPI{service: service}
}

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// placeOrderRequest carries only product references and quantities; prices
// are read server-side at checkout.
type placeOrderRequest struct {
	Items             []cartItemRequest                `json:"items"`
	PaymentMethod     string                           `json:"paymentMethod"`
	FreeShippingOptIn bool                             `json:"freeShippingOptIn"`
	BulkDiscountOptIn bool                             `json:"bulkDiscountOptIn"`
	Delivery          *orderhttpmapper.DeliveryDetails `json:"deliveryDetails"`
	Pickup            *orderhttpmapper.PickupDetails   `json:"pickupDetails"`
}

type placeOrderResponse struct {
	Message string                       `json:"message"`
	Order   orderhttpmapper.Confirmation `json:"order"`
}

// Post /api/orders
// Checkout: deduct stock and record the order atomically
func (api *OrderAPI) PlaceOrder(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		respondError(c, http.StatusUnauthorized, errors.New("access token required"))
		return
	}
	var payload placeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	items := make([]orderports.CartItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, orderports.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	confirmation, err := api.service.PlaceOrder(c.Request.Context(), orderports.PlaceOrderInput{
		CustomerID:    claims.UserID,
		Items:         items,
		PaymentMethod: ordersdomain.PaymentMethod(payload.PaymentMethod),
		Pricing: ordersdomain.PricingOptions{
			FreeShippingOptIn: payload.FreeShippingOptIn,
			BulkDiscountOptIn: payload.BulkDiscountOptIn,
		},
		Delivery: orderhttpmapper.ToDeliveryDetails(payload.Delivery),
		Pickup:   orderhttpmapper.ToPickupDetails(payload.Pickup),
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, placeOrderResponse{
		Message: "Order placed successfully",
		Order:   orderhttpmapper.FromConfirmation(confirmation),
	})
}

// Get /api/orders
// Customers see their own orders; admins see everything
func (api *OrderAPI) ListOrders(c *gin.Context) {
	claims := currentClaims(c)
	filter := orderports.ListFilter{}
	if !isAdmin(c) {
		filter.CustomerID = claims.UserID
	}
	orders, err := api.service.ListOrders(c.Request.Context(), filter)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrders(orders))
}

// Get /api/orders/:orderId
// Look up an order by its public ORD-... identifier
func (api *OrderAPI) GetOrder(c *gin.Context) {
	claims := currentClaims(c)
	order, err := api.service.GetOrderByOrderID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	// Customers cannot read other customers' orders.
	if !isAdmin(c) && order.CustomerID != claims.UserID {
		respondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

func respondOrderError(c *gin.Context, err error) {
	var stockErr *orderapp.InsufficientStockError
	var itemErr *orderapp.ItemNotFoundError
	switch {
	case errors.As(err, &stockErr):
		respondProblem(c, apierrors.NewInsufficientStockProblem(stockErr.ProductID, stockErr.Name, stockErr.Available, stockErr.Requested))
	case errors.As(err, &itemErr):
		respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, orderapp.ErrEmptyCart),
		errors.Is(err, orderapp.ErrInvalidInput),
		errors.Is(err, orderapp.ErrMissingSchedule):
		respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, orderports.ErrNotFound):
		respondError(c, http.StatusNotFound, errors.New("order not found"))
	case errors.Is(err, userports.ErrNotFound):
		respondError(c, http.StatusNotFound, errors.New("customer not found"))
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
