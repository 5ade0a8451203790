package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"auth-gateway/app/port"
	"auth-gateway/app/rest/handlers"
	custommw "auth-gateway/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger              *slog.Logger
	RegistrationUsecase port.RegistrationUsecase
	LoginUsecase        port.LoginUsecase
	VerificationUsecase port.VerificationUsecase
	ReadinessChecks     map[string]handlers.ReadinessCheck
	EnableDebug         bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug

	authHandler := handlers.NewAuthHandler(config.RegistrationUsecase, config.LoginUsecase, config.Logger)
	userHandler := handlers.NewUserHandler(config.RegistrationUsecase, config.VerificationUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.ReadinessChecks, config.Logger)

	authMiddleware := custommw.NewAuthMiddleware(config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Public auth endpoints
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)

	// Everything under /user requires a bearer token
	user := v1.Group("/user", authMiddleware.RequireBearer())
	user.GET("", userHandler.GetUser)
	user.GET("/:id/is-verified", userHandler.IsVerified)
	user.POST("/:id/resend-verification-email", userHandler.ResendVerificationEmail)

	return e
}
