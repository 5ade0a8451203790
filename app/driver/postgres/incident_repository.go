package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"auth-gateway/app/domain"
	"auth-gateway/app/port"
)

// IncidentRepository implements port.IncidentRecorder for PostgreSQL.
// Orphan incidents are the durable record of compensations that failed;
// operators work this table, not the logs.
type IncidentRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewIncidentRepository creates a new PostgreSQL incident repository
func NewIncidentRepository(db DatabaseIface, logger *slog.Logger) port.IncidentRecorder {
	return &IncidentRepository{
		db:     db,
		logger: logger.With("component", "incident_repository"),
	}
}

// RecordOrphanIncident inserts one incident row.
func (r *IncidentRepository) RecordOrphanIncident(ctx context.Context, incident *domain.OrphanIncident) error {
	query := `
		INSERT INTO orphan_incidents (
			id, external_id, email, reason, compensation_error, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`

	_, err := r.db.Exec(ctx, query,
		incident.ID,
		incident.ExternalID,
		incident.Email,
		incident.Reason,
		incident.CompensationError,
		incident.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record orphan incident: %w", err)
	}

	r.logger.Info("orphan incident recorded",
		"incident_id", incident.ID,
		"external_id", incident.ExternalID)
	return nil
}
