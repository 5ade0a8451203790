package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrphanIncident records a registration attempt whose compensating delete
// failed, leaving an IdP identity with no matching profile. Incidents exist
// so remediation does not depend on log retention.
type OrphanIncident struct {
	ID                uuid.UUID
	ExternalID        string
	Email             string
	Reason            string
	CompensationError string
	CreatedAt         time.Time
}

// NewOrphanIncident builds an incident from a failed compensation.
func NewOrphanIncident(externalID, email string, original, compensation error) *OrphanIncident {
	inc := &OrphanIncident{
		ID:         uuid.New(),
		ExternalID: externalID,
		Email:      email,
		CreatedAt:  time.Now().UTC(),
	}
	if original != nil {
		inc.Reason = original.Error()
	}
	if compensation != nil {
		inc.CompensationError = compensation.Error()
	}
	return inc
}
