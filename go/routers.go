package nurseryserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Access marks who may call a route.
type Access int

const (
	// AccessPublic routes need no token.
	AccessPublic Access = iota
	// AccessUser routes need a valid bearer token.
	AccessUser
	// AccessAdmin routes additionally need the admin user type.
	AccessAdmin
)

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	Access      Access
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handler sets mounted on the router.
type ApiHandleFunctions struct {
	AuthAPI         AuthAPI
	CatalogAPI      CatalogAPI
	OrderAPI        OrderAPI
	ConsultationAPI ConsultationAPI
	AdminAPI        AdminAPI
}

// NewRouter returns a gin engine with all storefront and back-office routes
// mounted. The auth middleware guards user and admin routes.
func NewRouter(handlers ApiHandleFunctions, auth *AuthMiddleware) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handlers, auth)
}

// NewRouterWithGinEngine mounts the routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handlers ApiHandleFunctions, auth *AuthMiddleware) *gin.Engine {
	for _, route := range getRoutes(handlers) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandler
		}
		chain := make([]gin.HandlerFunc, 0, 3)
		switch route.Access {
		case AccessUser:
			chain = append(chain, auth.RequireUser())
		case AccessAdmin:
			chain = append(chain, auth.RequireUser(), auth.RequireAdmin())
		}
		chain = append(chain, route.HandlerFunc)
		router.Handle(route.Method, route.Pattern, chain...)
	}
	return router
}

func defaultHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{})
}

func getRoutes(handlers ApiHandleFunctions) []Route {
	return []Route{
		{"Health", http.MethodGet, "/", AccessPublic, health},

		{"Register", http.MethodPost, "/api/auth/register", AccessPublic, handlers.AuthAPI.Register},
		{"Login", http.MethodPost, "/api/auth/login", AccessPublic, handlers.AuthAPI.Login},

		{"ListProducts", http.MethodGet, "/api/products", AccessPublic, handlers.CatalogAPI.ListProducts},
		{"GetProduct", http.MethodGet, "/api/products/:id", AccessPublic, handlers.CatalogAPI.GetProduct},
		{"CreateProduct", http.MethodPost, "/api/products", AccessAdmin, handlers.CatalogAPI.CreateProduct},

		{"ListPlants", http.MethodGet, "/api/plants", AccessPublic, handlers.CatalogAPI.ListPlants},
		{"GetPlant", http.MethodGet, "/api/plants/:id", AccessPublic, handlers.CatalogAPI.GetProduct},
		{"CreatePlant", http.MethodPost, "/api/plants", AccessAdmin, handlers.CatalogAPI.CreateProduct},
		{"UpdatePlant", http.MethodPut, "/api/plants/:id", AccessAdmin, handlers.CatalogAPI.UpdateProduct},
		{"TogglePlantStatus", http.MethodPut, "/api/plants/:id/status", AccessAdmin, handlers.CatalogAPI.ToggleStatus},
		{"SetPlantStock", http.MethodPut, "/api/plants/:id/stock", AccessAdmin, handlers.CatalogAPI.SetStock},
		{"DeletePlant", http.MethodDelete, "/api/plants/:id", AccessAdmin, handlers.CatalogAPI.DeleteProduct},

		{"PlaceOrder", http.MethodPost, "/api/orders", AccessUser, handlers.OrderAPI.PlaceOrder},
		{"ListOrders", http.MethodGet, "/api/orders", AccessUser, handlers.OrderAPI.ListOrders},
		{"GetOrder", http.MethodGet, "/api/orders/:orderId", AccessUser, handlers.OrderAPI.GetOrder},

		{"SubmitConsultation", http.MethodPost, "/api/consultations", AccessPublic, handlers.ConsultationAPI.Submit},
		{"ListConsultations", http.MethodGet, "/api/consultations", AccessAdmin, handlers.ConsultationAPI.List},
		{"UpdateConsultation", http.MethodPut, "/api/consultations/:id", AccessAdmin, handlers.ConsultationAPI.UpdateStatus},
		{"DeleteConsultation", http.MethodDelete, "/api/consultations/:id", AccessAdmin, handlers.ConsultationAPI.Delete},

		{"AdminDashboard", http.MethodGet, "/api/admin/dashboard", AccessAdmin, handlers.AdminAPI.Dashboard},
		{"AdminAnalytics", http.MethodGet, "/api/admin/analytics", AccessAdmin, handlers.AdminAPI.Analytics},
		{"AdminListCustomers", http.MethodGet, "/api/admin/customers", AccessAdmin, handlers.AdminAPI.ListCustomers},
		{"AdminGetCustomer", http.MethodGet, "/api/admin/customers/:id", AccessAdmin, handlers.AdminAPI.GetCustomer},
		{"AdminDeleteCustomer", http.MethodDelete, "/api/admin/customers/:id", AccessAdmin, handlers.AdminAPI.DeleteCustomer},
		{"AdminListOrders", http.MethodGet, "/api/admin/orders", AccessAdmin, handlers.AdminAPI.ListOrders},
		{"AdminGetOrder", http.MethodGet, "/api/admin/orders/:id", AccessAdmin, handlers.AdminAPI.GetOrder},
		{"AdminAdvanceOrder", http.MethodPut, "/api/admin/orders/:id/status", AccessAdmin, handlers.AdminAPI.AdvanceOrderStatus},
		{"AdminDeleteOrder", http.MethodDelete, "/api/admin/orders/:id", AccessAdmin, handlers.AdminAPI.DeleteOrder},
	}
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "nursery-haven-api"})
}
