//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	catalogpostgres "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/adapters/persistence/postgres"
	catalogdomain "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/ports"
	"github.com/Mitesh0126/nursery-haven/internal/platform/migrations"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("nursery_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func sampleOrder(id string) *domain.Order {
	return &domain.Order{
		ID:            id,
		OrderID:       "ORD-" + id,
		TransactionID: "TXN-" + id,
		CustomerID:    "cust-1",
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		Items: []domain.LineItem{
			{ProductID: "p1", Name: "Monstera", Price: 100, Image: "monstera.jpg", Quantity: 2},
		},
		Totals:        domain.Totals{Subtotal: 200, Tax: 36, Shipping: 50, Total: 286},
		PaymentMethod: domain.PaymentCard,
		PaymentStatus: domain.PaymentCompleted,
		Status:        domain.StatusProcessing,
		Delivery:      &domain.DeliveryDetails{Name: "Asha", Phone: "9876543210", Address: "12 Garden Lane"},
		CreatedAt:     time.Now(),
	}
}

func TestRepository_CreateAndFetch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleOrder("o1"))
	require.NoError(t, err)
	assert.Equal(t, "ORD-o1", created.OrderID)

	fetched, err := repo.GetByID(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, "Monstera", fetched.Items[0].Name)
	assert.Equal(t, 286.00, fetched.Totals.Total)
	require.NotNil(t, fetched.Delivery)
	assert.Equal(t, "12 Garden Lane", fetched.Delivery.Address)
	assert.Nil(t, fetched.Pickup)

	byOrderID, err := repo.GetByOrderID(ctx, "ORD-o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", byOrderID.ID)

	_, err = repo.GetByOrderID(ctx, "ORD-missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_ListFilters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	first := sampleOrder("o1")
	first.CreatedAt = time.Now().Add(-time.Hour)
	_, err := repo.Create(ctx, first)
	require.NoError(t, err)

	second := sampleOrder("o2")
	second.CustomerID = "cust-2"
	second.Status = domain.StatusShipped
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)

	all, err := repo.List(ctx, ports.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "o2", all[0].ID)

	shipped, err := repo.List(ctx, ports.ListFilter{Status: "shipped"})
	require.NoError(t, err)
	require.Len(t, shipped, 1)
	assert.Equal(t, "o2", shipped[0].ID)

	mine, err := repo.List(ctx, ports.ListFilter{CustomerID: "cust-1"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "o1", mine[0].ID)
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleOrder("o1"))
	require.NoError(t, err)

	created.AdvanceFulfillment()
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, updated.Status)

	require.NoError(t, repo.Delete(ctx, "o1"))
	_, err = repo.GetByID(ctx, "o1")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "o1"), ports.ErrNotFound)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	catalogRepo := catalogpostgres.NewRepository(db)
	ctx := context.Background()

	_, err := catalogRepo.Save(ctx, &catalogdomain.Product{
		ID:        "p1",
		Name:      "Monstera",
		Price:     100,
		Category:  "indoor",
		Stock:     10,
		Status:    catalogdomain.StatusActive,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	uow := NewUnitOfWork(db)
	boom := errors.New("boom")
	err = uow.Do(ctx, func(ctx context.Context, repos ports.TxRepos) error {
		if _, err := repos.Catalog.DecrementStock(ctx, "p1", 4); err != nil {
			return err
		}
		if _, err := repos.Orders.Create(ctx, sampleOrder("o1")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// The decrement and the insert both rolled back.
	product, err := catalogRepo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, product.Stock)

	_, err = NewRepository(db).GetByID(ctx, "o1")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	catalogRepo := catalogpostgres.NewRepository(db)
	ctx := context.Background()

	_, err := catalogRepo.Save(ctx, &catalogdomain.Product{
		ID:        "p1",
		Name:      "Monstera",
		Price:     100,
		Category:  "indoor",
		Stock:     10,
		Status:    catalogdomain.StatusActive,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	uow := NewUnitOfWork(db)
	err = uow.Do(ctx, func(ctx context.Context, repos ports.TxRepos) error {
		if _, err := repos.Catalog.DecrementStock(ctx, "p1", 4); err != nil {
			return err
		}
		_, err := repos.Orders.Create(ctx, sampleOrder("o1"))
		return err
	})
	require.NoError(t, err)

	product, err := catalogRepo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 6, product.Stock)

	order, err := NewRepository(db).GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "ORD-o1", order.OrderID)
}
