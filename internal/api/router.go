package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/task-manager/internal/api/handler"
	"github.com/taskhive/task-manager/internal/api/middleware"
	"github.com/taskhive/task-manager/internal/core/service"
	"github.com/taskhive/task-manager/internal/core/token"
	"github.com/taskhive/task-manager/internal/infrastructure/config"
	mongodb "github.com/taskhive/task-manager/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("taskman"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	authService := service.NewAuthService(userRepo, codec)
	taskService := service.NewTaskService(taskRepo, log)
	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	authMiddleware := middleware.Auth(codec, userRepo)

	api := e.Group("/api", middleware.RateLimit(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window))

	// --- Auth routes ---
	users := api.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/me", authHandler.Me, authMiddleware)

	// --- Task routes (all protected) ---
	tasks := api.Group("/tasks", authMiddleware)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	api.GET("/health", healthHandler.Liveness)
	api.GET("/health/ready", readinessHandler.Readiness)

	return e
}
