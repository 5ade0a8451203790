package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go -package=mocks

import (
	"context"

	"auth-gateway/app/domain"
)

// ProfileService is the downstream User Profile Service at its interface
// boundary.
type ProfileService interface {
	// CreateProfile creates the profile record referencing an already
	// existing external id. callerToken is forwarded as the bearer token
	// and may be empty for the lazy self-provisioning path.
	CreateProfile(ctx context.Context, profile *domain.UserProfile, callerToken string) (*domain.UserProfile, error)

	// GetProfileByExternalID returns domain.ErrProfileNotFound when the
	// service answers 404.
	GetProfileByExternalID(ctx context.Context, externalID string) (*domain.UserProfile, error)
}

// IncidentRecorder persists orphan incidents produced by failed
// compensations.
type IncidentRecorder interface {
	RecordOrphanIncident(ctx context.Context, incident *domain.OrphanIncident) error
}
