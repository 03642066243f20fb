package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mitesh0126/nursery-haven/internal/domains/admin/ports"
	catalogmemory "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/adapters/memory"
	catalogdomain "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/domain"
	consultationsmemory "github.com/Mitesh0126/nursery-haven/internal/domains/consultations/adapters/memory"
	consultationsdomain "github.com/Mitesh0126/nursery-haven/internal/domains/consultations/domain"
	ordersmemory "github.com/Mitesh0126/nursery-haven/internal/domains/orders/adapters/memory"
	ordersdomain "github.com/Mitesh0126/nursery-haven/internal/domains/orders/domain"
	usersmemory "github.com/Mitesh0126/nursery-haven/internal/domains/users/adapters/memory"
	usersdomain "github.com/Mitesh0126/nursery-haven/internal/domains/users/domain"
)

// reportNow pins the reporting window to a Sunday at noon.
var reportNow = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

type reportFixture struct {
	orders        *ordersmemory.Repository
	catalog       *catalogmemory.Repository
	users         *usersmemory.Repository
	consultations *consultationsmemory.Repository
	svc           *Service
}

func newReportFixture() *reportFixture {
	fx := &reportFixture{
		orders:        ordersmemory.NewRepository(),
		catalog:       catalogmemory.NewRepository(),
		users:         usersmemory.NewRepository(),
		consultations: consultationsmemory.NewRepository(),
	}
	fx.svc = NewService(fx.orders, fx.catalog, fx.users, fx.consultations, WithClock(func() time.Time {
		return reportNow
	}))
	return fx
}

func (fx *reportFixture) addOrder(t *testing.T, id, customer string, created time.Time, payment ordersdomain.PaymentStatus, total float64, items ...ordersdomain.LineItem) {
	t.Helper()
	if len(items) == 0 {
		items = []ordersdomain.LineItem{{ProductID: "p1", Name: "Monstera", Price: total, Quantity: 1}}
	}
	_, err := fx.orders.Create(context.Background(), &ordersdomain.Order{
		ID:            id,
		OrderID:       "ORD-" + id,
		TransactionID: "TXN-" + id,
		CustomerID:    customer,
		Items:         items,
		Totals:        ordersdomain.Totals{Total: total},
		PaymentMethod: ordersdomain.PaymentCard,
		PaymentStatus: payment,
		Status:        ordersdomain.StatusProcessing,
		CreatedAt:     created,
	})
	require.NoError(t, err)
}

func (fx *reportFixture) addProduct(t *testing.T, id, category string) {
	t.Helper()
	_, err := fx.catalog.Save(context.Background(), &catalogdomain.Product{
		ID:       id,
		Name:     "Plant " + id,
		Price:    100,
		Category: category,
	})
	require.NoError(t, err)
}

func TestDashboard(t *testing.T) {
	fx := newReportFixture()
	ctx := context.Background()

	fx.addProduct(t, "p1", "indoor")
	fx.addProduct(t, "p2", "outdoor")

	for i, user := range []*usersdomain.User{
		{Name: "Asha", Email: "asha@example.com", PasswordHash: "x", UserType: usersdomain.TypeCustomer},
		{Name: "Ravi", Email: "ravi@example.com", PasswordHash: "x", UserType: usersdomain.TypeCustomer},
		{Name: "Admin", Email: "admin", PasswordHash: "x", UserType: usersdomain.TypeAdmin},
	} {
		user.ID = string(rune('u' + i))
		_, err := fx.users.Save(ctx, user)
		require.NoError(t, err)
	}

	pending, err := consultationsdomain.NewConsultation("c1", "Asha", "asha@example.com", "help")
	require.NoError(t, err)
	_, err = fx.consultations.Save(ctx, pending)
	require.NoError(t, err)
	resolved, err := consultationsdomain.NewConsultation("c2", "Ravi", "ravi@example.com", "advice")
	require.NoError(t, err)
	require.NoError(t, resolved.SetStatus(consultationsdomain.StatusResolved))
	_, err = fx.consultations.Save(ctx, resolved)
	require.NoError(t, err)

	fx.addOrder(t, "o1", "u", reportNow.Add(-1*time.Hour), ordersdomain.PaymentCompleted, 500)
	fx.addOrder(t, "o2", "v", reportNow.Add(-2*time.Hour), ordersdomain.PaymentPending, 300)
	for i := 0; i < 6; i++ {
		fx.addOrder(t, string(rune('a'+i)), "u", reportNow.Add(-time.Duration(3+i)*time.Hour), ordersdomain.PaymentCompleted, 100)
	}

	dashboard, err := fx.svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, dashboard.Stats.TotalProducts)
	assert.Equal(t, 8, dashboard.Stats.TotalOrders)
	// The admin account stays out of the customer count.
	assert.Equal(t, 2, dashboard.Stats.TotalCustomers)
	assert.Equal(t, 1, dashboard.Stats.PendingConsultations)
	assert.Equal(t, 7, dashboard.Stats.CompletedOrders)
	assert.Equal(t, 1100.00, dashboard.Stats.TotalRevenue)

	// Five most recent orders, newest first.
	require.Len(t, dashboard.RecentOrders, 5)
	assert.Equal(t, "o1", dashboard.RecentOrders[0].ID)
	assert.Equal(t, "o2", dashboard.RecentOrders[1].ID)
}

func TestAnalytics_RevenueWindows(t *testing.T) {
	fx := newReportFixture()
	ctx := context.Background()

	fx.addOrder(t, "o1", "u1", reportNow.Add(-2*time.Hour), ordersdomain.PaymentCompleted, 500)
	fx.addOrder(t, "o2", "u2", time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC), ordersdomain.PaymentCompleted, 300)
	fx.addOrder(t, "o3", "u1", time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC), ordersdomain.PaymentCompleted, 200)
	// Pending payments never count toward revenue.
	fx.addOrder(t, "o4", "u2", reportNow.Add(-1*time.Hour), ordersdomain.PaymentPending, 1000)
	// Last year is outside every window.
	fx.addOrder(t, "o5", "u1", time.Date(2025, time.December, 31, 10, 0, 0, 0, time.UTC), ordersdomain.PaymentCompleted, 999)

	analytics, err := fx.svc.Analytics(ctx, ports.TimeframeDaily, ports.MetricRevenue)
	require.NoError(t, err)

	assert.Equal(t, 500.00, analytics.TodayRevenue)
	assert.Equal(t, 800.00, analytics.MonthRevenue)
	assert.Equal(t, 1000.00, analytics.YearRevenue)

	require.Len(t, analytics.Chart.Labels, 7)
	assert.Equal(t, "8/24/2026", analytics.Chart.Labels[0])
	assert.Equal(t, "8/30/2026", analytics.Chart.Labels[6])
	assert.Equal(t, 500.00, analytics.Chart.Values[6])
	// Days without sales stay zero-filled.
	assert.Equal(t, 0.00, analytics.Chart.Values[5])

	assert.Equal(t, []string{"Today", "This Month", "This Year"}, analytics.Distribution.Labels)
	assert.Equal(t, []float64{500, 800, 1000}, analytics.Distribution.Values)

	require.Len(t, analytics.RevenueBreakdown, 3)
	assert.Equal(t, ports.PeriodBreakdown{Period: "Today", Revenue: 500, Orders: 1}, analytics.RevenueBreakdown[0])
	assert.Equal(t, ports.PeriodBreakdown{Period: "This Month", Revenue: 800, Orders: 2}, analytics.RevenueBreakdown[1])
	assert.Equal(t, ports.PeriodBreakdown{Period: "This Year", Revenue: 1000, Orders: 3}, analytics.RevenueBreakdown[2])
}

func TestAnalytics_MonthlyAndYearlyBuckets(t *testing.T) {
	fx := newReportFixture()
	ctx := context.Background()

	fx.addOrder(t, "o1", "u1", time.Date(2026, time.May, 15, 10, 0, 0, 0, time.UTC), ordersdomain.PaymentCompleted, 250)
	fx.addOrder(t, "o2", "u1", reportNow.Add(-1*time.Hour), ordersdomain.PaymentCompleted, 100)

	monthly, err := fx.svc.Analytics(ctx, ports.TimeframeMonthly, ports.MetricRevenue)
	require.NoError(t, err)
	require.Len(t, monthly.Chart.Labels, 6)
	assert.Equal(t, "Mar 2026", monthly.Chart.Labels[0])
	assert.Equal(t, "Aug 2026", monthly.Chart.Labels[5])
	assert.Equal(t, 250.00, monthly.Chart.Values[2])
	assert.Equal(t, 100.00, monthly.Chart.Values[5])

	yearly, err := fx.svc.Analytics(ctx, ports.TimeframeYearly, ports.MetricRevenue)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024", "2025", "2026"}, yearly.Chart.Labels)
	assert.Equal(t, 350.00, yearly.Chart.Values[2])
}

func TestAnalytics_OrdersAndCustomersMetrics(t *testing.T) {
	fx := newReportFixture()
	ctx := context.Background()

	fx.addOrder(t, "o1", "u1", reportNow.Add(-1*time.Hour), ordersdomain.PaymentCompleted, 100)
	fx.addOrder(t, "o2", "u1", reportNow.Add(-2*time.Hour), ordersdomain.PaymentPending, 100)
	fx.addOrder(t, "o3", "u2", reportNow.Add(-3*time.Hour), ordersdomain.PaymentCompleted, 100)

	// Order counts include pending payments.
	orders, err := fx.svc.Analytics(ctx, ports.TimeframeDaily, ports.MetricOrders)
	require.NoError(t, err)
	assert.Equal(t, 3.00, orders.Chart.Values[6])

	// Customers are counted once per bucket, however many orders they placed.
	customers, err := fx.svc.Analytics(ctx, ports.TimeframeDaily, ports.MetricCustomers)
	require.NoError(t, err)
	assert.Equal(t, 2.00, customers.Chart.Values[6])
}

func TestAnalytics_CategoryPerformance(t *testing.T) {
	fx := newReportFixture()
	ctx := context.Background()

	fx.addProduct(t, "p1", "indoor")
	fx.addProduct(t, "p2", "outdoor")

	fx.addOrder(t, "o1", "u1", reportNow.Add(-1*time.Hour), ordersdomain.PaymentCompleted, 500,
		ordersdomain.LineItem{ProductID: "p1", Name: "Monstera", Price: 100, Quantity: 2},
		ordersdomain.LineItem{ProductID: "p2", Name: "Rose Bush", Price: 300, Quantity: 1},
	)
	// A sale of a since-deleted product credits no category.
	fx.addOrder(t, "o2", "u1", reportNow.Add(-2*time.Hour), ordersdomain.PaymentCompleted, 200,
		ordersdomain.LineItem{ProductID: "ghost", Name: "Gone", Price: 200, Quantity: 1},
	)

	analytics, err := fx.svc.Analytics(ctx, ports.TimeframeDaily, ports.MetricRevenue)
	require.NoError(t, err)

	assert.Equal(t, []string{"indoor", "outdoor"}, analytics.Category.Labels)
	assert.Equal(t, []float64{200, 300}, analytics.Category.Revenues)
	assert.Equal(t, []int{1, 1}, analytics.Category.Orders)
}

func TestAnalytics_ValidatesInputs(t *testing.T) {
	fx := newReportFixture()
	ctx := context.Background()

	// Blank values fall back to the defaults.
	_, err := fx.svc.Analytics(ctx, "", "")
	require.NoError(t, err)

	_, err = fx.svc.Analytics(ctx, "weekly", ports.MetricRevenue)
	assert.Error(t, err)

	_, err = fx.svc.Analytics(ctx, ports.TimeframeDaily, "profit")
	assert.Error(t, err)
}
