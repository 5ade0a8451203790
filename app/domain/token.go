package domain

import "time"

// AdminToken is a privileged access token for the IdP admin API. It is owned
// by the admin token provider, immutable once issued and replaced wholesale
// on refresh.
type AdminToken struct {
	Value     string
	ExpiresAt time.Time
}

// Fresh reports whether the token is still usable with the given safety
// margin subtracted from its lifetime. A token about to expire within the
// margin is treated as stale so that in-flight requests do not race its
// expiry.
func (t AdminToken) Fresh(margin time.Duration) bool {
	if t.Value == "" {
		return false
	}
	return time.Now().Add(margin).Before(t.ExpiresAt)
}

// LoginCredentials are forwarded to the IdP password grant and discarded.
// They are never stored.
type LoginCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the canonical token shape returned to clients, regardless
// of the upstream field naming.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	TokenType    string `json:"tokenType"`
}
