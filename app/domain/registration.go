package domain

// RegistrationRequest carries the input of a registration attempt. Structural
// validation happens before any remote call so a malformed request never
// costs a compensation.
type RegistrationRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// ProvisionedIdentity is the transient mid-saga value produced by a
// successful identity creation. It lives for one registration attempt and is
// never persisted.
type ProvisionedIdentity struct {
	ExternalID string
	AdminToken AdminToken
}

// SagaStatus tags the terminal state of a registration attempt.
type SagaStatus string

const (
	// SagaSucceeded means both remote writes succeeded.
	SagaSucceeded SagaStatus = "succeeded"
	// SagaRejected means nothing was created (validation failure, duplicate
	// email, or identity creation failed outright).
	SagaRejected SagaStatus = "rejected"
	// SagaCompensated means the identity was created, the profile write
	// failed, and the compensating delete removed the identity. No residue.
	SagaCompensated SagaStatus = "compensated"
	// SagaCompensationFailed means the compensating delete itself failed: an
	// orphaned IdP identity exists with no matching profile.
	SagaCompensationFailed SagaStatus = "compensation_failed"
)

// RegistrationOutcome is the tagged result of the registration saga. Status
// must never be SagaSucceeded unless both the identity and the profile were
// created.
type RegistrationOutcome struct {
	Status  SagaStatus
	Profile *UserProfile

	// ExternalID of the identity involved, when one was created.
	ExternalID string

	// Reason carries the failure for non-success outcomes, or the original
	// profile failure for compensated ones.
	Reason error

	// CompensationErr is set only when Status is SagaCompensationFailed.
	CompensationErr error

	// VerificationWarning is set when identity and profile creation both
	// succeeded but the verification email could not be sent. It does not
	// affect Status.
	VerificationWarning error
}

// Succeeded reports whether the attempt fully succeeded, possibly with a
// verification warning attached.
func (o RegistrationOutcome) Succeeded() bool {
	return o.Status == SagaSucceeded
}

// Orphaned reports whether the attempt left an identity behind that
// compensation could not remove.
func (o RegistrationOutcome) Orphaned() bool {
	return o.Status == SagaCompensationFailed
}
