package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/marketplace-admin-api/internal/application/analytics"
	"github.com/jhoicas/marketplace-admin-api/internal/application/auth"
	"github.com/jhoicas/marketplace-admin-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
	"github.com/jhoicas/marketplace-admin-api/internal/infrastructure/memory"
	"github.com/jhoicas/marketplace-admin-api/internal/infrastructure/mongostore"
	infrapdf "github.com/jhoicas/marketplace-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/marketplace-admin-api/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/marketplace-admin-api/internal/interfaces/http"
	"github.com/jhoicas/marketplace-admin-api/pkg/config"
	"github.com/jhoicas/marketplace-admin-api/pkg/logger"
)

// repositories puertos de persistencia del driver elegido.
type repositories struct {
	accounts repository.AccountRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	tasks    repository.TaskRepository
	users    repository.UserRepository

	ping  func(ctx context.Context) error
	close func() error
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		s := memory.NewStore()
		return &repositories{
			accounts: s.Accounts(),
			products: s.Products(),
			orders:   s.Orders(),
			tasks:    s.Tasks(),
			users:    s.Users(),
			ping:     func(context.Context) error { return nil },
			close:    s.Close,
		}, nil
	}
	s, err := mongostore.NewStore(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return &repositories{
		accounts: s.Accounts(),
		products: s.Products(),
		orders:   s.Orders(),
		tasks:    s.Tasks(),
		users:    s.Users(),
		ping:     s.Ping,
		close:    s.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := repos.close(); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento")
		}
	}()

	accountUC := usecase.NewAccountUseCase(repos.accounts)
	productUC := usecase.NewProductUseCase(repos.products)
	orderUC := usecase.NewOrderUseCase(repos.orders)
	taskUC := usecase.NewTaskUseCase(repos.tasks)
	userUC := usecase.NewUserUseCase(repos.users)
	statsUC := analytics.NewStatsUseCase(repos.accounts, repos.products, repos.orders, repos.tasks, repos.users)
	reportUC := usecase.NewReportUseCase(repos.orders, infrapdf.NewOrderReportGenerator())
	authUC := auth.NewAuthUseCase(repos.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Admin inicial: sólo si vienen ADMIN_EMAIL y ADMIN_PASSWORD
	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		created, err := userUC.EnsureAdmin(ctx, cfg.Auth.AdminName, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("crear usuario admin inicial")
		}
		if created {
			log.Info().Str("email", cfg.Auth.AdminEmail).Msg("usuario admin inicial creado")
		}
	}

	// Limiter de login compartido entre instancias si hay Redis
	var limiterStorage fiber.Storage
	if cfg.Redis.URL != "" {
		rs, err := redisstore.NewStorage(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rs.Close()
		limiterStorage = rs
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := httpRouter.NewMetrics("marketplace_admin", reg)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Component("http").Zerolog()))
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs (requiere `swag init`)
	if _, err := os.Stat(cfg.Docs.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.FilePath,
			Path:     "docs",
			Title:    "Marketplace Admin API",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := repos.ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name, "storage": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AccountUC:      accountUC,
		ProductUC:      productUC,
		OrderUC:        orderUC,
		TaskUC:         taskUC,
		UserUC:         userUC,
		ReportUC:       reportUC,
		StatsUC:        statsUC,
		AuthUC:         authUC,
		Auth:           cfg.Auth,
		RateLimit:      cfg.RateLimit,
		LimiterStorage: limiterStorage,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
