package domain

import "time"

// UserProfile is the downstream profile record as the User Profile Service
// returns it. The gateway does not own this data model beyond the fields it
// sends.
type UserProfile struct {
	ID         string    `json:"id,omitempty"`
	ExternalID string    `json:"externalId"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName,omitempty"`
	LastName   string    `json:"lastName,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// IdentityRecord is the IdP's view of an identity, as far as the gateway
// needs it.
type IdentityRecord struct {
	ExternalID    string
	Email         string
	Enabled       bool
	EmailVerified bool
}

// AuthenticatedUser is the caller identity extracted from a bearer token by
// the auth middleware.
type AuthenticatedUser struct {
	ExternalID string
	Email      string
}
