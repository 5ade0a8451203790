package port

//go:generate mockgen -source=usecase_port.go -destination=../mocks/mock_usecase_port.go -package=mocks

import (
	"context"

	"auth-gateway/app/domain"
)

// RegistrationUsecase drives the create-with-compensation registration saga.
type RegistrationUsecase interface {
	// Register runs the saga to a terminal state. The outcome is always
	// non-nil; failures are carried inside it so the caller can tell
	// "nothing happened" from "compensated" from "compensation failed".
	Register(ctx context.Context, req *domain.RegistrationRequest) *domain.RegistrationOutcome

	// EnsureProfile lazily creates a minimal profile for an authenticated
	// user whose profile record does not exist yet, and returns it.
	EnsureProfile(ctx context.Context, user domain.AuthenticatedUser) (*domain.UserProfile, error)
}

// LoginUsecase delegates credentials to the IdP password grant.
type LoginUsecase interface {
	Login(ctx context.Context, creds domain.LoginCredentials) (*domain.TokenResponse, error)
}

// VerificationUsecase checks and re-triggers email verification state.
type VerificationUsecase interface {
	IsVerified(ctx context.Context, externalID string) (bool, error)
	Resend(ctx context.Context, externalID string) error
}
