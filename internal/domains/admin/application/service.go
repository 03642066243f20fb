package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Mitesh0126/nursery-haven/internal/domains/admin/ports"
	catalogdomain "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/domain"
	catalogports "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/ports"
	consultationsdomain "github.com/Mitesh0126/nursery-haven/internal/domains/consultations/domain"
	consultationsports "github.com/Mitesh0126/nursery-haven/internal/domains/consultations/ports"
	ordersdomain "github.com/Mitesh0126/nursery-haven/internal/domains/orders/domain"
	ordersports "github.com/Mitesh0126/nursery-haven/internal/domains/orders/ports"
	usersdomain "github.com/Mitesh0126/nursery-haven/internal/domains/users/domain"
	usersports "github.com/Mitesh0126/nursery-haven/internal/domains/users/ports"
)

const recentOrderLimit = 5

// Service computes back-office reports by aggregating over the other bounded
// contexts' repositories. Source data sets are fetched concurrently.
type Service struct {
	orders        ordersports.Repository
	catalog       catalogports.Repository
	users         usersports.Repository
	consultations consultationsports.Repository
	now           func() time.Time
}

type Option func(*Service)

// WithClock overrides the wall clock, for deterministic reporting windows.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	orders ordersports.Repository,
	catalog catalogports.Repository,
	users usersports.Repository,
	consultations consultationsports.Repository,
	opts ...Option,
) *Service {
	s := &Service{
		orders:        orders,
		catalog:       catalog,
		users:         users,
		consultations: consultations,
		now:           time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Dashboard returns headline counters plus the five most recent orders.
// Revenue counts only completed payments.
func (s *Service) Dashboard(ctx context.Context) (*ports.Dashboard, error) {
	orders, products, users, consultations, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := ports.DashboardStats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
	}
	for _, user := range users {
		if user.UserType == usersdomain.TypeCustomer {
			stats.TotalCustomers++
		}
	}
	for _, consultation := range consultations {
		if consultation.Status == consultationsdomain.StatusPending {
			stats.PendingConsultations++
		}
	}
	for _, order := range orders {
		if order.PaymentStatus == ordersdomain.PaymentCompleted {
			stats.CompletedOrders++
			stats.TotalRevenue += order.Totals.Total
		}
	}

	recent := orders
	if len(recent) > recentOrderLimit {
		recent = recent[:recentOrderLimit]
	}
	return &ports.Dashboard{Stats: stats, RecentOrders: recent}, nil
}

// Analytics builds the revenue report: period totals, a zero-filled chart for
// the requested timeframe and metric, the revenue distribution, per-category
// performance, and a period breakdown table.
func (s *Service) Analytics(ctx context.Context, timeframe ports.Timeframe, metric ports.Metric) (*ports.Analytics, error) {
	switch timeframe {
	case ports.TimeframeDaily, ports.TimeframeMonthly, ports.TimeframeYearly:
	case "":
		timeframe = ports.TimeframeDaily
	default:
		return nil, fmt.Errorf("unknown timeframe %q", timeframe)
	}
	switch metric {
	case ports.MetricRevenue, ports.MetricOrders, ports.MetricCustomers:
	case "":
		metric = ports.MetricRevenue
	default:
		return nil, fmt.Errorf("unknown metric %q", metric)
	}

	var (
		orders   []*ordersdomain.Order
		products []*catalogdomain.Product
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		orders, err = s.orders.List(groupCtx, ordersports.ListFilter{})
		return err
	})
	group.Go(func() error {
		var err error
		products, _, err = s.catalog.List(groupCtx, catalogports.ListFilter{})
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	result := &ports.Analytics{}
	todayOrders, monthOrders, yearOrders := 0, 0, 0
	for _, order := range orders {
		if order.PaymentStatus != ordersdomain.PaymentCompleted {
			continue
		}
		if !order.CreatedAt.Before(today) {
			result.TodayRevenue += order.Totals.Total
			todayOrders++
		}
		if !order.CreatedAt.Before(startOfMonth) {
			result.MonthRevenue += order.Totals.Total
			monthOrders++
		}
		if !order.CreatedAt.Before(startOfYear) {
			result.YearRevenue += order.Totals.Total
			yearOrders++
		}
	}

	result.Chart = buildChart(orders, now, timeframe, metric)
	result.Distribution = ports.ChartData{
		Labels: []string{"Today", "This Month", "This Year"},
		Values: []float64{result.TodayRevenue, result.MonthRevenue, result.YearRevenue},
	}
	result.Category = buildCategoryData(orders, products)
	result.RevenueBreakdown = []ports.PeriodBreakdown{
		{Period: "Today", Revenue: result.TodayRevenue, Orders: todayOrders},
		{Period: "This Month", Revenue: result.MonthRevenue, Orders: monthOrders},
		{Period: "This Year", Revenue: result.YearRevenue, Orders: yearOrders},
	}
	return result, nil
}

// bucket is one chart slot: the display label plus the key orders hash into.
type bucket struct {
	label string
	key   string
	start time.Time
}

func buildChart(orders []*ordersdomain.Order, now time.Time, timeframe ports.Timeframe, metric ports.Metric) ports.ChartData {
	var buckets []bucket
	switch timeframe {
	case ports.TimeframeMonthly:
		for i := 5; i >= 0; i-- {
			month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
			buckets = append(buckets, bucket{
				label: month.Format("Jan 2006"),
				key:   month.Format("2006-01"),
				start: month,
			})
		}
	case ports.TimeframeYearly:
		for i := 2; i >= 0; i-- {
			year := time.Date(now.Year()-i, time.January, 1, 0, 0, 0, 0, now.Location())
			buckets = append(buckets, bucket{
				label: year.Format("2006"),
				key:   year.Format("2006"),
				start: year,
			})
		}
	default:
		for i := 6; i >= 0; i-- {
			day := time.Date(now.Year(), now.Month(), now.Day()-i, 0, 0, 0, 0, now.Location())
			buckets = append(buckets, bucket{
				label: day.Format("1/2/2006"),
				key:   day.Format("2006-01-02"),
				start: day,
			})
		}
	}

	keyFor := func(t time.Time) string {
		switch timeframe {
		case ports.TimeframeMonthly:
			return t.Format("2006-01")
		case ports.TimeframeYearly:
			return t.Format("2006")
		default:
			return t.Format("2006-01-02")
		}
	}

	windowStart := buckets[0].start
	values := map[string]float64{}
	customers := map[string]map[string]struct{}{}
	for _, order := range orders {
		if order.CreatedAt.Before(windowStart) {
			continue
		}
		// Only the revenue metric is restricted to completed payments.
		if metric == ports.MetricRevenue && order.PaymentStatus != ordersdomain.PaymentCompleted {
			continue
		}
		key := keyFor(order.CreatedAt)
		switch metric {
		case ports.MetricOrders:
			values[key]++
		case ports.MetricCustomers:
			if customers[key] == nil {
				customers[key] = map[string]struct{}{}
			}
			customers[key][order.CustomerID] = struct{}{}
		default:
			values[key] += order.Totals.Total
		}
	}
	if metric == ports.MetricCustomers {
		for key, set := range customers {
			values[key] = float64(len(set))
		}
	}

	chart := ports.ChartData{
		Labels: make([]string, 0, len(buckets)),
		Values: make([]float64, 0, len(buckets)),
	}
	for _, b := range buckets {
		chart.Labels = append(chart.Labels, b.label)
		chart.Values = append(chart.Values, values[b.key])
	}
	return chart
}

func buildCategoryData(orders []*ordersdomain.Order, products []*catalogdomain.Product) ports.CategoryData {
	categoryByProduct := make(map[string]string, len(products))
	for _, product := range products {
		categoryByProduct[product.ID] = product.Category
	}

	type categoryTotals struct {
		revenue float64
		orders  int
	}
	totals := map[string]*categoryTotals{}
	for _, order := range orders {
		if order.PaymentStatus != ordersdomain.PaymentCompleted {
			continue
		}
		for _, item := range order.Items {
			category, ok := categoryByProduct[item.ProductID]
			if !ok {
				// Product was deleted since the sale; no category to credit.
				continue
			}
			if totals[category] == nil {
				totals[category] = &categoryTotals{}
			}
			totals[category].revenue += float64(item.Quantity) * item.Price
			totals[category].orders++
		}
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	data := ports.CategoryData{
		Labels:   make([]string, 0, len(categories)),
		Revenues: make([]float64, 0, len(categories)),
		Orders:   make([]int, 0, len(categories)),
	}
	for _, category := range categories {
		data.Labels = append(data.Labels, category)
		data.Revenues = append(data.Revenues, totals[category].revenue)
		data.Orders = append(data.Orders, totals[category].orders)
	}
	return data
}

func (s *Service) fetchAll(ctx context.Context) (
	[]*ordersdomain.Order,
	[]*catalogdomain.Product,
	[]*usersdomain.User,
	[]*consultationsdomain.Consultation,
	error,
) {
	var (
		orders        []*ordersdomain.Order
		products      []*catalogdomain.Product
		users         []*usersdomain.User
		consultations []*consultationsdomain.Consultation
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		orders, err = s.orders.List(groupCtx, ordersports.ListFilter{})
		return err
	})
	group.Go(func() error {
		var err error
		products, _, err = s.catalog.List(groupCtx, catalogports.ListFilter{})
		return err
	})
	group.Go(func() error {
		var err error
		users, err = s.users.List(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		consultations, err = s.consultations.List(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, nil, nil, nil, err
	}
	return orders, products, users, consultations, nil
}

var _ ports.Service = (*Service)(nil)
