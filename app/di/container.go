package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"auth-gateway/app/config"
	"auth-gateway/app/driver/keycloak"
	"auth-gateway/app/driver/postgres"
	"auth-gateway/app/driver/userprofile"
	"auth-gateway/app/gateway"
	"auth-gateway/app/port"
	"auth-gateway/app/rest"
	"auth-gateway/app/rest/handlers"
	"auth-gateway/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB             *postgres.DB
	KeycloakClient *keycloak.Client
	ProfileClient  *userprofile.Client

	// Shared state
	AdminTokens port.AdminTokenSource

	// Gateways
	IdentityProvider port.IdentityProvider
	ProfileService   port.ProfileService
	Incidents        port.IncidentRecorder

	// Usecases
	RegistrationUsecase port.RegistrationUsecase
	LoginUsecase        port.LoginUsecase
	VerificationUsecase port.VerificationUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KeycloakClient, err = keycloak.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Keycloak client: %w", err)
	}

	container.ProfileClient, err = userprofile.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user profile client: %w", err)
	}

	// Process-scoped admin token cache, injected everywhere a privileged
	// IdP call is made.
	container.AdminTokens = keycloak.NewAdminTokenProvider(
		container.KeycloakClient,
		cfg.AdminTokenFreshnessMargin,
		logger,
	)

	container.IdentityProvider = gateway.NewIdentityGateway(container.KeycloakClient, container.AdminTokens, logger)
	container.ProfileService = gateway.NewProfileGateway(container.ProfileClient, logger)
	container.Incidents = postgres.NewIncidentRepository(container.DB.Pool(), logger)

	container.RegistrationUsecase = usecase.NewRegistrationUseCase(
		container.IdentityProvider,
		container.ProfileService,
		container.AdminTokens,
		container.Incidents,
		logger,
	)
	container.LoginUsecase = usecase.NewLoginUseCase(container.IdentityProvider, logger)
	container.VerificationUsecase = usecase.NewVerificationUseCase(container.IdentityProvider, logger)

	logger.Info("container initialized")
	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:              c.Logger,
		RegistrationUsecase: c.RegistrationUsecase,
		LoginUsecase:        c.LoginUsecase,
		VerificationUsecase: c.VerificationUsecase,
		ReadinessChecks: map[string]handlers.ReadinessCheck{
			"database": func(ctx context.Context) error {
				return c.DB.HealthCheck(ctx)
			},
		},
		EnableDebug: c.Config.LogLevel == "debug",
	})
}

// Close releases container resources
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
}
