package usecase

import (
	"context"
	"log/slog"

	"auth-gateway/app/port"
)

// VerificationUseCase checks and re-triggers email verification state for an
// identity. Both operations run against the IdP admin API.
type VerificationUseCase struct {
	identity port.IdentityProvider
	logger   *slog.Logger
}

// NewVerificationUseCase creates a new VerificationUseCase instance
func NewVerificationUseCase(identity port.IdentityProvider, logger *slog.Logger) *VerificationUseCase {
	return &VerificationUseCase{
		identity: identity,
		logger:   logger.With("component", "verification_usecase"),
	}
}

// IsVerified reports whether the identity's email address is verified.
func (uc *VerificationUseCase) IsVerified(ctx context.Context, externalID string) (bool, error) {
	record, err := uc.identity.GetIdentity(ctx, externalID)
	if err != nil {
		return false, err
	}
	return record.EmailVerified, nil
}

// Resend triggers a fresh verification email.
func (uc *VerificationUseCase) Resend(ctx context.Context, externalID string) error {
	if err := uc.identity.SendVerificationEmail(ctx, externalID); err != nil {
		uc.logger.Error("verification email resend failed",
			"external_id", externalID,
			"error", err)
		return err
	}

	uc.logger.Info("verification email resent", "external_id", externalID)
	return nil
}
