package model

import (
	"errors"
	"time"
)

// RequestClaims is the full context of an in-flight membership request,
// embedded in the request token. There is no server-side row behind it; the
// token is the persisted state. Values are never mutated after encoding.
type RequestClaims struct {
	JobID string `json:"job_id"`
	// OrchestratorRef correlates the optional follow-up queue item. Empty
	// means no follow-up step was invoked.
	OrchestratorRef string    `json:"orchestrator_ref,omitempty"`
	ProjectKey      string    `json:"project_key"`
	User            string    `json:"user"`
	Environment     string    `json:"environment"`
	Role            string    `json:"role"`
	InitiatedAt     time.Time `json:"initiated_at"`
	InitiatedBy     string    `json:"initiated_by"`
}

// Validate checks the required-field invariants. A failure here is a
// programming error in the caller, not a runtime condition.
func (c RequestClaims) Validate() error {
	switch {
	case c.JobID == "":
		return errors.New("request claims: job id is required")
	case c.ProjectKey == "":
		return errors.New("request claims: project key is required")
	case c.User == "":
		return errors.New("request claims: user is required")
	case c.Environment == "":
		return errors.New("request claims: environment is required")
	case c.Role == "":
		return errors.New("request claims: role is required")
	case c.InitiatedAt.IsZero():
		return errors.New("request claims: initiated at is required")
	case c.InitiatedBy == "":
		return errors.New("request claims: initiated by is required")
	}
	return nil
}

// AddUserToProjectRequest is the business-level input for creating a
// membership request.
type AddUserToProjectRequest struct {
	User        string `json:"user"`
	Role        string `json:"role"`
	Environment string `json:"environment"`
}

// MembershipRequestResponse acknowledges an accepted membership request. The
// RequestID is the opaque request token the client polls with.
type MembershipRequestResponse struct {
	RequestID   string        `json:"request_id"`
	Project     string        `json:"project"`
	User        string        `json:"user"`
	Role        string        `json:"role"`
	Environment string        `json:"environment"`
	Status      RequestStatus `json:"status"`
	Message     string        `json:"message"`
}
