package keycloak

import (
	"fmt"
	"net/http"

	"auth-gateway/app/domain"
)

// classifyTokenStatus maps a token-endpoint failure status to a domain
// error. Keycloak answers invalid grants with 400 or 401 depending on
// whether the client or the resource owner failed to authenticate; both mean
// the credentials were rejected.
func classifyTokenStatus(status int) error {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnauthorized:
		return domain.ErrInvalidCredentials
	case status >= 500:
		return fmt.Errorf("token endpoint status %d: %w", status, domain.ErrUpstreamUnavailable)
	default:
		return fmt.Errorf("token endpoint status %d: %w", status, domain.ErrMalformedUpstreamResponse)
	}
}

// classifyAdminStatus maps an admin-endpoint failure status to a domain
// error. 401/403 means the admin token was not accepted and callers may
// refresh-and-retry exactly once.
func classifyAdminStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.ErrUpstreamAuth
	case status == http.StatusConflict:
		return domain.ErrDuplicateIdentity
	case status == http.StatusNotFound:
		return domain.ErrIdentityNotFound
	case status >= 500:
		return fmt.Errorf("admin endpoint status %d: %w", status, domain.ErrUpstreamUnavailable)
	default:
		return fmt.Errorf("admin endpoint status %d: %w", status, domain.ErrMalformedUpstreamResponse)
	}
}
