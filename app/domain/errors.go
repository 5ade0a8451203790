package domain

import (
	"errors"
	"fmt"
)

// Authentication and provisioning errors
var (
	// Credential errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIdpRejectedAdmin   = errors.New("identity provider rejected admin credentials")

	// Identity lifecycle errors
	ErrDuplicateIdentity = errors.New("identity already exists")
	ErrIdentityNotFound  = errors.New("identity not found")

	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileConflict = errors.New("profile already exists")

	// Upstream errors
	ErrUpstreamUnavailable       = errors.New("upstream service unavailable")
	ErrUpstreamAuth              = errors.New("upstream authorization failed")
	ErrMalformedUpstreamResponse = errors.New("malformed upstream response")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)

// Saga step names, used to say which remote call an error belongs to.
const (
	StepIssueToken       = "issue_token"
	StepCreateIdentity   = "create_identity"
	StepCreateProfile    = "create_profile"
	StepSendVerification = "send_verification"
	StepCompensate       = "compensate_delete"
)

// SagaError wraps a remote-call failure with the saga step it occurred in and
// the external id involved, when one exists yet. It lets callers distinguish
// "nothing happened" from "partially happened".
type SagaError struct {
	Step       string
	ExternalID string
	Cause      error
}

func (e *SagaError) Error() string {
	if e.ExternalID != "" {
		return fmt.Sprintf("%s (external_id=%s): %v", e.Step, e.ExternalID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Step, e.Cause)
}

func (e *SagaError) Unwrap() error {
	return e.Cause
}

// NewSagaError creates a saga step error
func NewSagaError(step, externalID string, cause error) *SagaError {
	return &SagaError{Step: step, ExternalID: externalID, Cause: cause}
}

// CompensationError reports a failed compensating delete. It carries both the
// failure that triggered compensation and the error of the delete itself,
// because this state (an IdP identity with no matching profile) needs
// operator remediation.
type CompensationError struct {
	ExternalID string
	Original   error
	Cause      error
}

func (e *CompensationError) Error() string {
	return fmt.Sprintf("compensation failed for identity %s: %v (original failure: %v)",
		e.ExternalID, e.Cause, e.Original)
}

func (e *CompensationError) Unwrap() error {
	return e.Cause
}
