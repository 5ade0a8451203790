package gateway

import (
	"context"
	"errors"
	"log/slog"

	"auth-gateway/app/domain"
	"auth-gateway/app/port"
)

//go:generate mockgen -source=identity_gateway.go -destination=../mocks/mock_keycloak_api.go -package=mocks

// KeycloakAPI is the transport-level surface the gateway drives. Implemented
// by driver/keycloak.Client.
type KeycloakAPI interface {
	IssuePasswordToken(ctx context.Context, creds domain.LoginCredentials) (*domain.TokenResponse, error)
	CreateUser(ctx context.Context, reg *domain.RegistrationRequest, adminToken string) (string, error)
	DeleteUser(ctx context.Context, externalID, adminToken string) error
	GetUser(ctx context.Context, externalID, adminToken string) (*domain.IdentityRecord, error)
	SendVerifyEmail(ctx context.Context, externalID, adminToken string) error
}

// IdentityGateway implements port.IdentityProvider over the Keycloak driver.
// It owns admin-token acquisition for every privileged call and applies the
// one retry policy in the system: an authorization failure on a cached token
// invalidates the cache and retries exactly once with a fresh token.
type IdentityGateway struct {
	api    KeycloakAPI
	tokens port.AdminTokenSource
	logger *slog.Logger
}

// NewIdentityGateway creates a new identity gateway
func NewIdentityGateway(api KeycloakAPI, tokens port.AdminTokenSource, logger *slog.Logger) port.IdentityProvider {
	return &IdentityGateway{
		api:    api,
		tokens: tokens,
		logger: logger.With("component", "identity_gateway"),
	}
}

// IssuePasswordToken forwards credentials to the password grant. No retries,
// no caching; credentials are never stored.
func (g *IdentityGateway) IssuePasswordToken(ctx context.Context, creds domain.LoginCredentials) (*domain.TokenResponse, error) {
	return g.api.IssuePasswordToken(ctx, creds)
}

// CreateIdentity creates the identity and returns it together with the
// admin token that created it, so later saga steps reuse the same token.
func (g *IdentityGateway) CreateIdentity(ctx context.Context, req *domain.RegistrationRequest) (*domain.ProvisionedIdentity, error) {
	var externalID string

	token, err := g.withAuthRetry(ctx, func(token domain.AdminToken) error {
		var callErr error
		externalID, callErr = g.api.CreateUser(ctx, req, token.Value)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	return &domain.ProvisionedIdentity{
		ExternalID: externalID,
		AdminToken: token,
	}, nil
}

// DeleteIdentity removes an identity. An already absent identity counts as
// success: the goal state, no identity, is achieved.
func (g *IdentityGateway) DeleteIdentity(ctx context.Context, externalID string) error {
	_, err := g.withAuthRetry(ctx, func(token domain.AdminToken) error {
		return g.api.DeleteUser(ctx, externalID, token.Value)
	})
	if errors.Is(err, domain.ErrIdentityNotFound) {
		g.logger.Info("delete of absent identity treated as success", "external_id", externalID)
		return nil
	}
	return err
}

// GetIdentity fetches the IdP's record for an identity.
func (g *IdentityGateway) GetIdentity(ctx context.Context, externalID string) (*domain.IdentityRecord, error) {
	var record *domain.IdentityRecord

	_, err := g.withAuthRetry(ctx, func(token domain.AdminToken) error {
		var callErr error
		record, callErr = g.api.GetUser(ctx, externalID, token.Value)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// SendVerificationEmail triggers the IdP's verification email dispatch.
func (g *IdentityGateway) SendVerificationEmail(ctx context.Context, externalID string) error {
	_, err := g.withAuthRetry(ctx, func(token domain.AdminToken) error {
		return g.api.SendVerifyEmail(ctx, externalID, token.Value)
	})
	return err
}

// withAuthRetry runs call with a cached admin token, invalidating and
// retrying once with a fresh token when the IdP rejects it. Bounded at one
// retry so an outage cannot become a hot loop against the token endpoint.
func (g *IdentityGateway) withAuthRetry(ctx context.Context, call func(token domain.AdminToken) error) (domain.AdminToken, error) {
	token, err := g.tokens.Token(ctx)
	if err != nil {
		return domain.AdminToken{}, err
	}

	callErr := call(token)
	if !errors.Is(callErr, domain.ErrUpstreamAuth) {
		return token, callErr
	}

	g.logger.Warn("admin call rejected with cached token, refreshing once")
	g.tokens.Invalidate(token)

	token, err = g.tokens.Token(ctx)
	if err != nil {
		return domain.AdminToken{}, err
	}

	if callErr = call(token); callErr != nil {
		return token, callErr
	}
	return token, nil
}
