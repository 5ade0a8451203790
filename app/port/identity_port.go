package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go -package=mocks

import (
	"context"

	"auth-gateway/app/domain"
)

// AdminTokenSource provides the cached privileged token used for every IdP
// admin call. Implementations must serialize refreshes so a cache miss
// triggers exactly one upstream token request.
type AdminTokenSource interface {
	// Token returns a token whose expiry is strictly in the future, issuing
	// a fresh one when the cache is empty or stale.
	Token(ctx context.Context) (domain.AdminToken, error)

	// Invalidate drops the cached token if it still matches the given stale
	// value. A token refreshed in the meantime is left alone.
	Invalidate(stale domain.AdminToken)
}

// IdentityProvider is the policy-level view of the IdP used by the usecases.
// Implementations own admin-token acquisition and the single
// invalidate-and-retry on upstream authorization failures.
type IdentityProvider interface {
	// IssuePasswordToken forwards user credentials to the IdP password grant
	// and returns the normalized token response.
	IssuePasswordToken(ctx context.Context, creds domain.LoginCredentials) (*domain.TokenResponse, error)

	// CreateIdentity creates the identity in the IdP and returns its
	// external id together with the admin token that created it.
	CreateIdentity(ctx context.Context, req *domain.RegistrationRequest) (*domain.ProvisionedIdentity, error)

	// DeleteIdentity removes an identity. Deleting an absent identity is
	// treated as success so compensation stays idempotent.
	DeleteIdentity(ctx context.Context, externalID string) error

	// GetIdentity fetches the IdP's view of an identity.
	GetIdentity(ctx context.Context, externalID string) (*domain.IdentityRecord, error)

	// SendVerificationEmail asks the IdP to dispatch a verification email.
	SendVerificationEmail(ctx context.Context, externalID string) error
}
