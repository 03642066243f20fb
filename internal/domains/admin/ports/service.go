package ports

import (
	"context"

	ordersdomain "github.com/Mitesh0126/nursery-haven/internal/domains/orders/domain"
)

// Timeframe selects the chart bucketing for analytics.
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeYearly  Timeframe = "yearly"
)

// Metric selects what the analytics chart measures.
type Metric string

const (
	MetricRevenue   Metric = "revenue"
	MetricOrders    Metric = "orders"
	MetricCustomers Metric = "customers"
)

// DashboardStats are the headline counters for the back-office landing page.
type DashboardStats struct {
	TotalCustomers       int
	TotalProducts        int
	TotalOrders          int
	CompletedOrders      int
	TotalRevenue         float64
	PendingConsultations int
}

// Dashboard pairs the counters with the most recent orders.
type Dashboard struct {
	Stats        DashboardStats
	RecentOrders []*ordersdomain.Order
}

// ChartData is a label-aligned series; missing buckets are zero-filled.
type ChartData struct {
	Labels []string
	Values []float64
}

// CategoryData reports revenue and order counts per product category.
type CategoryData struct {
	Labels   []string
	Revenues []float64
	Orders   []int
}

// PeriodBreakdown is one row of the revenue table.
type PeriodBreakdown struct {
	Period  string
	Revenue float64
	Orders  int
}

// Analytics is the full payload for the admin analytics page.
type Analytics struct {
	TodayRevenue     float64
	MonthRevenue     float64
	YearRevenue      float64
	Chart            ChartData
	Distribution     ChartData
	Category         CategoryData
	RevenueBreakdown []PeriodBreakdown
}

// Service exposes back-office reporting use cases.
type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Analytics(ctx context.Context, timeframe Timeframe, metric Metric) (*Analytics, error)
}
