package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"auth-gateway/app/domain"
	"auth-gateway/app/port"
	"auth-gateway/app/utils/validator"
)

// compensationTimeout bounds the compensating delete when the inbound
// request is already cancelled.
const compensationTimeout = 10 * time.Second

// RegistrationUseCase drives the create-with-compensation registration saga:
// create the identity in the IdP, create the downstream profile, and delete
// the identity again when the profile write fails. Compensation is scoped to
// the just-created identity because the IdP is the only resource with a
// cheap idempotent undo; the profile service is never written to unless the
// identity already exists.
type RegistrationUseCase struct {
	identity  port.IdentityProvider
	profiles  port.ProfileService
	tokens    port.AdminTokenSource
	incidents port.IncidentRecorder
	validate  *validator.Validator
	logger    *slog.Logger
}

// NewRegistrationUseCase creates a new RegistrationUseCase instance
func NewRegistrationUseCase(
	identity port.IdentityProvider,
	profiles port.ProfileService,
	tokens port.AdminTokenSource,
	incidents port.IncidentRecorder,
	logger *slog.Logger,
) *RegistrationUseCase {
	return &RegistrationUseCase{
		identity:  identity,
		profiles:  profiles,
		tokens:    tokens,
		incidents: incidents,
		validate:  validator.New(),
		logger:    logger.With("component", "registration_usecase"),
	}
}

// Register runs the saga to a terminal state. The returned outcome is always
// non-nil and never claims success unless both remote writes succeeded.
func (uc *RegistrationUseCase) Register(ctx context.Context, req *domain.RegistrationRequest) *domain.RegistrationOutcome {
	// Validating: reject before any remote call so malformed input never
	// costs a compensation.
	if err := uc.validate.Validate(req); err != nil {
		return &domain.RegistrationOutcome{
			Status: domain.SagaRejected,
			Reason: err,
		}
	}

	// CreatingIdentity
	provisioned, err := uc.identity.CreateIdentity(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			// Nothing was created, nothing to compensate.
			return &domain.RegistrationOutcome{
				Status: domain.SagaRejected,
				Reason: domain.NewSagaError(domain.StepCreateIdentity, "", domain.ErrDuplicateIdentity),
			}
		}
		uc.logger.Error("identity creation failed", "email", req.Email, "error", err)
		return &domain.RegistrationOutcome{
			Status: domain.SagaRejected,
			Reason: domain.NewSagaError(domain.StepCreateIdentity, "", err),
		}
	}

	uc.logger.Info("identity created", "external_id", provisioned.ExternalID)

	// CreatingProfile
	profile, err := uc.createProfile(ctx, req, provisioned)
	if err != nil {
		return uc.compensate(ctx, req, provisioned, err)
	}

	outcome := &domain.RegistrationOutcome{
		Status:     domain.SagaSucceeded,
		Profile:    profile,
		ExternalID: provisioned.ExternalID,
	}

	// SendingVerification: best-effort. The user record is complete and
	// valid; a failed send is a warning, never a rollback.
	if err := uc.identity.SendVerificationEmail(ctx, provisioned.ExternalID); err != nil {
		uc.logger.Warn("verification email dispatch failed",
			"external_id", provisioned.ExternalID,
			"error", err)
		outcome.VerificationWarning = domain.NewSagaError(domain.StepSendVerification, provisioned.ExternalID, err)
	}

	return outcome
}

// createProfile writes the downstream record using the admin token that
// created the identity. When the profile service rejects that token, the
// cache is invalidated and the call retried once with a fresh token.
func (uc *RegistrationUseCase) createProfile(ctx context.Context, req *domain.RegistrationRequest, provisioned *domain.ProvisionedIdentity) (*domain.UserProfile, error) {
	profile := &domain.UserProfile{
		ExternalID: provisioned.ExternalID,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	}

	created, err := uc.profiles.CreateProfile(ctx, profile, provisioned.AdminToken.Value)
	if !errors.Is(err, domain.ErrUpstreamAuth) {
		return created, err
	}

	uc.logger.Warn("profile service rejected admin token, refreshing once",
		"external_id", provisioned.ExternalID)
	uc.tokens.Invalidate(provisioned.AdminToken)

	fresh, tokenErr := uc.tokens.Token(ctx)
	if tokenErr != nil {
		return nil, domain.ErrUpstreamAuth
	}
	provisioned.AdminToken = fresh

	created, err = uc.profiles.CreateProfile(ctx, profile, fresh.Value)
	if errors.Is(err, domain.ErrUpstreamAuth) {
		// One refresh only; a second rejection surfaces as an auth error.
		return nil, err
	}
	return created, err
}

// compensate deletes the just-created identity after a profile failure. The
// delete runs on a detached context: cancellation of the inbound request
// must not abandon an identity that already exists upstream.
func (uc *RegistrationUseCase) compensate(ctx context.Context, req *domain.RegistrationRequest, provisioned *domain.ProvisionedIdentity, cause error) *domain.RegistrationOutcome {
	reason := domain.NewSagaError(domain.StepCreateProfile, provisioned.ExternalID, cause)

	uc.logger.Warn("profile creation failed, compensating",
		"external_id", provisioned.ExternalID,
		"error", cause)

	compCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	err := uc.identity.DeleteIdentity(compCtx, provisioned.ExternalID)
	if err != nil && !errors.Is(err, domain.ErrIdentityNotFound) {
		uc.logger.Error("COMPENSATION FAILED: orphaned identity requires operator attention",
			"external_id", provisioned.ExternalID,
			"email", req.Email,
			"original_error", cause,
			"compensation_error", err)

		uc.recordIncident(compCtx, provisioned.ExternalID, req.Email, reason, err)

		return &domain.RegistrationOutcome{
			Status:     domain.SagaCompensationFailed,
			ExternalID: provisioned.ExternalID,
			Reason:     reason,
			CompensationErr: &domain.CompensationError{
				ExternalID: provisioned.ExternalID,
				Original:   reason,
				Cause:      err,
			},
		}
	}

	uc.logger.Info("compensation succeeded, no residue",
		"external_id", provisioned.ExternalID)

	return &domain.RegistrationOutcome{
		Status:     domain.SagaCompensated,
		ExternalID: provisioned.ExternalID,
		Reason:     reason,
	}
}

// recordIncident persists the orphan for out-of-band remediation. Recording
// is best-effort and never masks the saga outcome.
func (uc *RegistrationUseCase) recordIncident(ctx context.Context, externalID, email string, original, compensation error) {
	incident := domain.NewOrphanIncident(externalID, email, original, compensation)
	if err := uc.incidents.RecordOrphanIncident(ctx, incident); err != nil {
		uc.logger.Error("failed to record orphan incident",
			"external_id", externalID,
			"error", err)
	}
}

// EnsureProfile lazily provisions a minimal profile for an authenticated
// user whose profile record does not exist yet.
func (uc *RegistrationUseCase) EnsureProfile(ctx context.Context, user domain.AuthenticatedUser) (*domain.UserProfile, error) {
	profile, err := uc.profiles.GetProfileByExternalID(ctx, user.ExternalID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	uc.logger.Info("profile missing for authenticated user, creating",
		"external_id", user.ExternalID)

	return uc.profiles.CreateProfile(ctx, &domain.UserProfile{
		ExternalID: user.ExternalID,
		Email:      user.Email,
	}, "")
}
