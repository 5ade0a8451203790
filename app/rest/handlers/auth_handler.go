package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"auth-gateway/app/domain"
	"auth-gateway/app/port"
	"auth-gateway/app/utils/validator"
)

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Error   string            `json:"error"`
	Status  string            `json:"status,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// RegisterResponse is returned on successful registration. Warning is set
// when the verification email could not be sent; the account itself is
// complete and verification can be re-triggered later.
type RegisterResponse struct {
	Message string              `json:"message"`
	Profile *domain.UserProfile `json:"profile"`
	Warning string              `json:"warning,omitempty"`
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	registration port.RegistrationUsecase
	login        port.LoginUsecase
	logger       *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(registration port.RegistrationUsecase, login port.LoginUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		registration: registration,
		login:        login,
		logger:       logger,
	}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var creds domain.LoginCredentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	tokens, err := h.login.Login(ctx, creds)
	if err != nil {
		var verr *validator.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation failed",
				Details: verr.Errors,
			})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		default:
			h.logger.Error("login failed upstream", "error", err)
			return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "identity provider unavailable"})
		}
	}

	return c.JSON(http.StatusOK, tokens)
}

// Register handles POST /v1/auth/register. The response always states which
// outcome category occurred: rejected (nothing happened), compensated
// (partially happened, cleaned up), or compensation_failed (partially
// happened, cleanup failed).
func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.RegistrationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	outcome := h.registration.Register(ctx, &req)

	switch outcome.Status {
	case domain.SagaSucceeded:
		resp := RegisterResponse{
			Message: "user registered",
			Profile: outcome.Profile,
		}
		if outcome.VerificationWarning != nil {
			resp.Warning = "verification email could not be sent; use the resend endpoint"
		}
		return c.JSON(http.StatusCreated, resp)

	case domain.SagaRejected:
		return h.rejectResponse(c, outcome)

	case domain.SagaCompensated:
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:  "registration failed; no partial state remains",
			Status: string(domain.SagaCompensated),
		})

	case domain.SagaCompensationFailed:
		h.logger.Error("registration left an orphaned identity",
			"external_id", outcome.ExternalID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:  "registration failed and cleanup did not complete; the incident has been recorded",
			Status: string(domain.SagaCompensationFailed),
		})

	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "unknown registration outcome"})
	}
}

func (h *AuthHandler) rejectResponse(c echo.Context, outcome *domain.RegistrationOutcome) error {
	var verr *validator.ValidationError
	switch {
	case errors.As(outcome.Reason, &verr):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Status:  string(domain.SagaRejected),
			Details: verr.Errors,
		})
	case errors.Is(outcome.Reason, domain.ErrDuplicateIdentity):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error:  "an account with this email already exists",
			Status: string(domain.SagaRejected),
		})
	default:
		h.logger.Error("registration rejected upstream", "error", outcome.Reason)
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:  "registration failed; nothing was created",
			Status: string(domain.SagaRejected),
		})
	}
}
