package nurseryserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminports "github.com/Mitesh0126/nursery-haven/internal/domains/admin/ports"
	orderhttpmapper "github.com/Mitesh0126/nursery-haven/internal/domains/orders/adapters/http/mapper"
	orderports "github.com/Mitesh0126/nursery-haven/internal/domains/orders/ports"
	userhttpmapper "github.com/Mitesh0126/nursery-haven/internal/domains/users/adapters/http/mapper"
	userports "github.com/Mitesh0126/nursery-haven/internal/domains/users/ports"
)

// AdminAPI implements the back-office endpoints: dashboard, analytics,
// customer management, and order fulfillment.
type AdminAPI struct {
	reports adminports.Service
	orders  orderports.Service
	users   userports.Service
}

// NewAdminAPI wires dependencies.
func NewAdminAPI(reports adminports.Service, orders orderports.Service, users userports.Service) AdminAPI {
	return AdminAPI{reports: reports, orders: orders, users: users}
}

type dashboardStatsResponse struct {
	TotalCustomers       int     `json:"totalCustomers"`
	TotalProducts        int     `json:"totalProducts"`
	TotalOrders          int     `json:"totalOrders"`
	CompletedOrders      int     `json:"completedOrders"`
	TotalRevenue         float64 `json:"totalRevenue"`
	PendingConsultations int     `json:"pendingConsultations"`
}

type dashboardResponse struct {
	Stats        dashboardStatsResponse  `json:"stats"`
	RecentOrders []orderhttpmapper.Order `json:"recentOrders"`
}

type chartDataResponse struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type categoryDataResponse struct {
	Labels   []string  `json:"labels"`
	Revenues []float64 `json:"revenues"`
	Orders   []int     `json:"orders"`
}

type periodBreakdownResponse struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type analyticsResponse struct {
	TodayRevenue     float64                   `json:"todayRevenue"`
	MonthRevenue     float64                   `json:"monthRevenue"`
	YearRevenue      float64                   `json:"yearRevenue"`
	ChartData        chartDataResponse         `json:"chartData"`
	DistributionData chartDataResponse         `json:"distributionData"`
	CategoryData     categoryDataResponse      `json:"categoryData"`
	RevenueBreakdown []periodBreakdownResponse `json:"revenueBreakdown"`
}

// Get /api/admin/dashboard
// Headline counters plus the most recent orders
func (api *AdminAPI) Dashboard(c *gin.Context) {
	dashboard, err := api.reports.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, dashboardResponse{
		Stats: dashboardStatsResponse{
			TotalCustomers:       dashboard.Stats.TotalCustomers,
			TotalProducts:        dashboard.Stats.TotalProducts,
			TotalOrders:          dashboard.Stats.TotalOrders,
			CompletedOrders:      dashboard.Stats.CompletedOrders,
			TotalRevenue:         dashboard.Stats.TotalRevenue,
			PendingConsultations: dashboard.Stats.PendingConsultations,
		},
		RecentOrders: orderhttpmapper.FromDomainOrders(dashboard.RecentOrders),
	})
}

// Get /api/admin/analytics
// Revenue report with a zero-filled chart for the requested timeframe/metric
func (api *AdminAPI) Analytics(c *gin.Context) {
	timeframe := adminports.Timeframe(c.DefaultQuery("timeframe", string(adminports.TimeframeDaily)))
	metric := adminports.Metric(c.DefaultQuery("metric", string(adminports.MetricRevenue)))
	analytics, err := api.reports.Analytics(c.Request.Context(), timeframe, metric)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	breakdown := make([]periodBreakdownResponse, 0, len(analytics.RevenueBreakdown))
	for _, row := range analytics.RevenueBreakdown {
		breakdown = append(breakdown, periodBreakdownResponse(row))
	}
	c.JSON(http.StatusOK, analyticsResponse{
		TodayRevenue:     analytics.TodayRevenue,
		MonthRevenue:     analytics.MonthRevenue,
		YearRevenue:      analytics.YearRevenue,
		ChartData:        chartDataResponse(analytics.Chart),
		DistributionData: chartDataResponse(analytics.Distribution),
		CategoryData:     categoryDataResponse(analytics.Category),
		RevenueBreakdown: breakdown,
	})
}

// Get /api/admin/customers
// All customer accounts, newest registrations first
func (api *AdminAPI) ListCustomers(c *gin.Context) {
	customers, err := api.users.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, userhttpmapper.FromDomainUsers(customers))
}

// Get /api/admin/customers/:id
// Fetch one customer account
func (api *AdminAPI) GetCustomer(c *gin.Context) {
	customer, err := api.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, userhttpmapper.FromDomainUser(customer))
}

// Delete /api/admin/customers/:id
// Remove a customer account
func (api *AdminAPI) DeleteCustomer(c *gin.Context) {
	if err := api.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// Get /api/admin/orders
// All orders with optional status and customer filters
func (api *AdminAPI) ListOrders(c *gin.Context) {
	orders, err := api.orders.ListOrders(c.Request.Context(), orderports.ListFilter{
		Status:     c.Query("status"),
		CustomerID: c.Query("customerId"),
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrders(orders))
}

// Get /api/admin/orders/:id
// Fetch one order by primary key
func (api *AdminAPI) GetOrder(c *gin.Context) {
	order, err := api.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Put /api/admin/orders/:id/status
// Step the order to the next fulfillment state
func (api *AdminAPI) AdvanceOrderStatus(c *gin.Context) {
	order, err := api.orders.AdvanceFulfillment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": orderhttpmapper.FromDomainOrder(order)})
}

// Delete /api/admin/orders/:id
// Cancel an order and restore its stock
func (api *AdminAPI) DeleteOrder(c *gin.Context) {
	if err := api.orders.CancelOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully and stock restored"})
}
