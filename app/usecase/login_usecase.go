package usecase

import (
	"context"
	"errors"
	"log/slog"

	"auth-gateway/app/domain"
	"auth-gateway/app/port"
	"auth-gateway/app/utils/validator"
)

// LoginUseCase delegates credentials to the IdP password grant. Pure
// passthrough plus field normalization; no retries, no credential caching.
type LoginUseCase struct {
	identity port.IdentityProvider
	validate *validator.Validator
	logger   *slog.Logger
}

// NewLoginUseCase creates a new LoginUseCase instance
func NewLoginUseCase(identity port.IdentityProvider, logger *slog.Logger) *LoginUseCase {
	return &LoginUseCase{
		identity: identity,
		validate: validator.New(),
		logger:   logger.With("component", "login_usecase"),
	}
}

// Login forwards credentials to the IdP and returns the normalized token
// response. Upstream failures surface without leaking admin credentials or
// tokens.
func (uc *LoginUseCase) Login(ctx context.Context, creds domain.LoginCredentials) (*domain.TokenResponse, error) {
	if err := uc.validate.Validate(&creds); err != nil {
		return nil, err
	}

	tokens, err := uc.identity.IssuePasswordToken(ctx, creds)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			uc.logger.Info("login rejected", "email", creds.Email)
		} else {
			uc.logger.Error("login delegation failed", "error", err)
		}
		return nil, err
	}

	return tokens, nil
}
