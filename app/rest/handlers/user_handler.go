package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"auth-gateway/app/domain"
	"auth-gateway/app/port"
	"auth-gateway/app/rest/middleware"
)

// UserHandler handles user HTTP requests
type UserHandler struct {
	registration port.RegistrationUsecase
	verification port.VerificationUsecase
	logger       *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(registration port.RegistrationUsecase, verification port.VerificationUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		registration: registration,
		verification: verification,
		logger:       logger,
	}
}

// GetUser handles GET /v1/user. The profile is lazily created when the
// authenticated identity has none yet, so federated logins that never went
// through /register still end up with a profile record.
func (h *UserHandler) GetUser(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := middleware.AuthenticatedUserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	profile, err := h.registration.EnsureProfile(ctx, user)
	if err != nil {
		h.logger.Error("profile lookup failed", "external_id", user.ExternalID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "profile service unavailable"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":    user.ExternalID,
		"email": profile.Email,
	})
}

// IsVerified handles GET /v1/user/:id/is-verified
func (h *UserHandler) IsVerified(c echo.Context) error {
	ctx := c.Request().Context()

	externalID := c.Param("id")
	if externalID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user id is required"})
	}

	verified, err := h.verification.IsVerified(ctx, externalID)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		}
		h.logger.Error("verification lookup failed", "external_id", externalID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "identity provider unavailable"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"externalId": externalID,
		"verified":   verified,
	})
}

// ResendVerificationEmail handles POST /v1/user/:id/resend-verification-email
func (h *UserHandler) ResendVerificationEmail(c echo.Context) error {
	ctx := c.Request().Context()

	externalID := c.Param("id")
	if externalID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user id is required"})
	}

	if err := h.verification.Resend(ctx, externalID); err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		}
		h.logger.Error("verification resend failed", "external_id", externalID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "identity provider unavailable"})
	}

	return c.JSON(http.StatusAccepted, map[string]interface{}{
		"message": "verification email sent",
	})
}
