package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/marketplace-admin-api/internal/application/analytics"
	"github.com/jhoicas/marketplace-admin-api/internal/application/auth"
	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/pkg/config"
)

// Grupos de rutas que AUTH_OPEN_ROUTES puede abrir.
const (
	GroupAccounts = "accounts"
	GroupProducts = "products"
	GroupOrders   = "orders"
	GroupTasks    = "tasks"
	GroupUsers    = "users"
	GroupStats    = "stats"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AccountUC *usecase.AccountUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *usecase.OrderUseCase
	TaskUC    *usecase.TaskUseCase
	UserUC    *usecase.UserUseCase
	ReportUC  *usecase.ReportUseCase
	StatsUC   *analytics.StatsUseCase
	AuthUC    *auth.AuthUseCase

	Auth       config.AuthConfig
	RateLimit  config.RateLimitConfig
	Navigation []dto.NavAction // nil = auth.DefaultNavigation
	// LimiterStorage almacenamiento compartido del limiter de login; nil = memoria local.
	LimiterStorage fiber.Storage
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.AuthUC)

	// guard devuelve los middlewares de un grupo: vacío si quedó abierto por configuración.
	guard := func(group string) []fiber.Handler {
		if deps.Auth.IsOpen(group) {
			return nil
		}
		return []fiber.Handler{requireAuth}
	}

	// Auth: login público con rate limit; me / navigation siempre protegidos
	nav := deps.Navigation
	if nav == nil {
		nav = auth.DefaultNavigation
	}
	authHandler := NewAuthHandler(deps.AuthUC, nav)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", loginLimiter(deps.RateLimit, deps.LimiterStorage), authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)
	authGroup.Get("/navigation", requireAuth, authHandler.Navigation)

	// Accounts
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts := api.Group("/accounts", guard(GroupAccounts)...)
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/", accountHandler.List)
	accounts.Get("/:id", accountHandler.GetByID)
	accounts.Patch("/:id", accountHandler.Update)
	accounts.Patch("/:id/sync", accountHandler.Sync)
	accounts.Delete("/:id", accountHandler.Delete)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products", guard(GroupProducts)...)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Orders: rutas fijas antes de /:id
	orderHandler := NewOrderHandler(deps.OrderUC, deps.StatsUC, deps.ReportUC)
	orders := api.Group("/orders", guard(GroupOrders)...)
	orders.Get("/stats", orderHandler.Stats)
	orders.Get("/stats/tracking-status", orderHandler.TrackingStatusStats)
	orders.Get("/filter/:by", orderHandler.Filter)
	orders.Get("/export/pdf", orderHandler.ExportPDF)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	// Tasks
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks := api.Group("/tasks", guard(GroupTasks)...)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Patch("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)
	tasks.Patch("/:id/start", taskHandler.Start)
	tasks.Patch("/:id/pause", taskHandler.Pause)
	tasks.Patch("/:id/complete", taskHandler.Complete)
	tasks.Patch("/:id/fail", taskHandler.Fail)
	tasks.Patch("/:id/progress", taskHandler.Progress)
	tasks.Post("/:id/logs", taskHandler.AddLog)

	// Users: lectura con el guard del grupo; mutaciones además exigen admin
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users", guard(GroupUsers)...)
	mutate := []fiber.Handler{}
	if !deps.Auth.IsOpen(GroupUsers) {
		mutate = append(mutate, RequireRole(entity.RoleAdmin))
	}
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", append(mutate, userHandler.Create)...)
	users.Patch("/:id", append(mutate, userHandler.Update)...)
	users.Delete("/:id", append(mutate, userHandler.Delete)...)

	// Stats
	statsHandler := NewStatsHandler(deps.StatsUC)
	stats := api.Group("/stats", guard(GroupStats)...)
	stats.Get("/dashboard", statsHandler.Dashboard)
	stats.Get("/charts", statsHandler.Charts)
}

// loginLimiter limita intentos de login por IP.
func loginLimiter(cfg config.RateLimitConfig, storage fiber.Storage) fiber.Handler {
	max := cfg.LoginMax
	if max <= 0 {
		max = 10
	}
	window := cfg.LoginWindow
	if window <= 0 {
		window = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "login:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: CodeRateLimited, Message: "demasiados intentos, intente más tarde"})
		},
		Storage: storage,
	})
}
