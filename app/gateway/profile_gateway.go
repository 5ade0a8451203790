package gateway

import (
	"context"
	"log/slog"

	"auth-gateway/app/domain"
	"auth-gateway/app/port"
)

// ProfileAPI is the transport-level surface of the User Profile Service.
// Implemented by driver/userprofile.Client.
type ProfileAPI interface {
	CreateProfile(ctx context.Context, profile *domain.UserProfile, callerToken string) (*domain.UserProfile, error)
	GetProfileByExternalID(ctx context.Context, externalID string) (*domain.UserProfile, error)
}

// ProfileGateway implements port.ProfileService over the user profile
// driver. The profile service is only ever written to after the identity
// exists, so no compensation lives on this side.
type ProfileGateway struct {
	api    ProfileAPI
	logger *slog.Logger
}

// NewProfileGateway creates a new profile gateway
func NewProfileGateway(api ProfileAPI, logger *slog.Logger) port.ProfileService {
	return &ProfileGateway{
		api:    api,
		logger: logger.With("component", "profile_gateway"),
	}
}

// CreateProfile creates the downstream profile record.
func (g *ProfileGateway) CreateProfile(ctx context.Context, profile *domain.UserProfile, callerToken string) (*domain.UserProfile, error) {
	created, err := g.api.CreateProfile(ctx, profile, callerToken)
	if err != nil {
		g.logger.Error("profile creation failed",
			"external_id", profile.ExternalID,
			"error", err)
		return nil, err
	}

	g.logger.Info("profile created",
		"external_id", created.ExternalID,
		"profile_id", created.ID)
	return created, nil
}

// GetProfileByExternalID looks up the profile record for an external id.
func (g *ProfileGateway) GetProfileByExternalID(ctx context.Context, externalID string) (*domain.UserProfile, error) {
	return g.api.GetProfileByExternalID(ctx, externalID)
}
