package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	nurseryserver "github.com/Mitesh0126/nursery-haven/go"

	adminapp "github.com/Mitesh0126/nursery-haven/internal/domains/admin/application"
	catalogmemory "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/application"
	catalogports "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/ports"
	consultationmemory "github.com/Mitesh0126/nursery-haven/internal/domains/consultations/adapters/memory"
	consultationpostgres "github.com/Mitesh0126/nursery-haven/internal/domains/consultations/adapters/persistence/postgres"
	consultationapp "github.com/Mitesh0126/nursery-haven/internal/domains/consultations/application"
	consultationports "github.com/Mitesh0126/nursery-haven/internal/domains/consultations/ports"
	ordersmemory "github.com/Mitesh0126/nursery-haven/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Mitesh0126/nursery-haven/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/Mitesh0126/nursery-haven/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/Mitesh0126/nursery-haven/internal/domains/orders/application"
	ordersports "github.com/Mitesh0126/nursery-haven/internal/domains/orders/ports"
	"github.com/Mitesh0126/nursery-haven/internal/domains/users/adapters/directory"
	usersmemory "github.com/Mitesh0126/nursery-haven/internal/domains/users/adapters/memory"
	usersobs "github.com/Mitesh0126/nursery-haven/internal/domains/users/adapters/observability"
	userspostgres "github.com/Mitesh0126/nursery-haven/internal/domains/users/adapters/persistence/postgres"
	usersredis "github.com/Mitesh0126/nursery-haven/internal/domains/users/adapters/persistence/redis"
	usersapp "github.com/Mitesh0126/nursery-haven/internal/domains/users/application"
	usersports "github.com/Mitesh0126/nursery-haven/internal/domains/users/ports"
	"github.com/Mitesh0126/nursery-haven/internal/platform/migrations"
	platformobservability "github.com/Mitesh0126/nursery-haven/internal/platform/observability"
	platformpostgres "github.com/Mitesh0126/nursery-haven/internal/platform/postgres"
	"github.com/Mitesh0126/nursery-haven/internal/shared/auth"
)

// Run boots the Nursery Haven HTTP API with observability, repositories, and
// services wired. Postgres and Redis are optional; without them the process
// runs on in-memory adapters.
func Run(ctx context.Context) error {
	const serviceName = "nursery-haven-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	tokens := auth.NewManager(cfg.JWTSecret)

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()

	var (
		catalogRepo      catalogports.Repository
		orderRepo        ordersports.Repository
		userRepo         usersports.Repository
		consultationRepo consultationports.Repository
		uow              ordersports.UnitOfWork
		sessions         usersports.SessionStore
	)
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		catalogRepo = catalogpostgres.NewRepository(db)
		orderRepo = orderspostgres.NewRepository(db)
		userRepo = userspostgres.NewRepository(db)
		consultationRepo = consultationpostgres.NewRepository(db)
		uow = orderspostgres.NewUnitOfWork(db)
		sessions = userspostgres.NewSessionStore(db, cfg.SessionTTL)
	} else {
		memCatalog := catalogmemory.NewRepository()
		memOrders := ordersmemory.NewRepository()
		catalogRepo = memCatalog
		orderRepo = memOrders
		userRepo = usersmemory.NewRepository()
		consultationRepo = consultationmemory.NewRepository()
		uow = ordersmemory.NewUnitOfWork(memCatalog, memOrders)
		sessions = usersmemory.NewSessionStore()
	}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("failed to connect to redis, keeping fallback session store", slog.String("error", err.Error()))
		} else {
			defer client.Close()
			sessions = usersredis.NewSessionStore(client, cfg.SessionTTL)
			logger.Info("sessions stored in redis", slog.String("addr", cfg.RedisAddr))
		}
	}

	catalogService := catalogapp.NewService(catalogRepo)
	userService := usersobs.New(
		usersapp.NewService(userRepo, sessions, tokens),
		usersobs.WithLogger(logger),
		usersobs.WithTracer(instruments.Tracer("internal.users.application")),
		usersobs.WithMeter(instruments.Meter("internal.users.application")),
	)
	if err := userService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	consultationService := consultationapp.NewService(consultationRepo)
	orderService := ordersobs.New(
		ordersapp.NewService(uow, orderRepo, directory.New(userRepo), cfg.Pricing),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	adminService := adminapp.NewService(orderRepo, catalogRepo, userRepo, consultationRepo)

	handlers := nurseryserver.ApiHandleFunctions{
		AuthAPI:         nurseryserver.NewAuthAPI(userService),
		CatalogAPI:      nurseryserver.NewCatalogAPI(catalogService),
		OrderAPI:        nurseryserver.NewOrderAPI(orderService),
		ConsultationAPI: nurseryserver.NewConsultationAPI(consultationService),
		AdminAPI:        nurseryserver.NewAdminAPI(adminService, orderService, userService),
	}

	router := nurseryserver.NewRouter(handlers, nurseryserver.NewAuthMiddleware(tokens))
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("Nursery Haven API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("Nursery Haven API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}
