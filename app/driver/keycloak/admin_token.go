package keycloak

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"auth-gateway/app/domain"
)

// tokenIssuer is the slice of Client the provider needs. Narrowed for tests.
type tokenIssuer interface {
	IssueClientCredentialsToken(ctx context.Context) (domain.AdminToken, error)
}

// AdminTokenProvider caches the privileged token used for IdP admin calls.
// The cache is process-scoped, injected state; refreshes are funneled
// through a singleflight group so a cold or stale cache costs exactly one
// upstream token request no matter how many callers hit it concurrently.
type AdminTokenProvider struct {
	issuer tokenIssuer
	margin time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	current domain.AdminToken

	group singleflight.Group
}

// NewAdminTokenProvider creates a new admin token provider
func NewAdminTokenProvider(issuer tokenIssuer, margin time.Duration, logger *slog.Logger) *AdminTokenProvider {
	return &AdminTokenProvider{
		issuer: issuer,
		margin: margin,
		logger: logger.With("component", "admin_token_provider"),
	}
}

// Token returns the cached token when it is still fresh with the safety
// margin applied, otherwise issues a client-credentials grant and replaces
// the cache wholesale.
func (p *AdminTokenProvider) Token(ctx context.Context) (domain.AdminToken, error) {
	p.mu.Lock()
	cached := p.current
	p.mu.Unlock()

	if cached.Fresh(p.margin) {
		return cached, nil
	}

	result, err, shared := p.group.Do("admin-token", func() (interface{}, error) {
		// Re-check under the flight: a concurrent caller may have already
		// refreshed between our freshness check and joining the group.
		p.mu.Lock()
		cached := p.current
		p.mu.Unlock()
		if cached.Fresh(p.margin) {
			return cached, nil
		}

		token, err := p.issuer.IssueClientCredentialsToken(ctx)
		if err != nil {
			return domain.AdminToken{}, err
		}

		p.mu.Lock()
		p.current = token
		p.mu.Unlock()

		p.logger.Info("admin token refreshed", "expires_at", token.ExpiresAt)
		return token, nil
	})
	if err != nil {
		return domain.AdminToken{}, err
	}

	if shared {
		p.logger.Debug("admin token refresh shared between concurrent callers")
	}
	return result.(domain.AdminToken), nil
}

// Invalidate drops the cached token, but only if it still matches the stale
// value the caller saw. A token already replaced by a concurrent refresh
// stays.
func (p *AdminTokenProvider) Invalidate(stale domain.AdminToken) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current.Value == stale.Value {
		p.current = domain.AdminToken{}
		p.logger.Warn("admin token invalidated after upstream authorization failure")
	}
}
