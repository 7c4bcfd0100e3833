package model

// RequestStatus is the client-facing lifecycle of a membership request.
type RequestStatus string

const (
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusCompleted  RequestStatus = "COMPLETED"
)

// MembershipRequestStatusResponse is the unified status returned to a
// polling client.
//
// Invariants: Completed == false implies Status == IN_PROGRESS and
// Successful == false; Completed == true implies Status == COMPLETED.
type MembershipRequestStatusResponse struct {
	RequestID    string        `json:"request_id"`
	Project      string        `json:"project"`
	User         string        `json:"user"`
	Environment  string        `json:"environment"`
	Status       RequestStatus `json:"status"`
	Completed    bool          `json:"completed"`
	Successful   bool          `json:"successful"`
	Message      string        `json:"message"`
	ErrorDetails *string       `json:"error_details,omitempty"`
}
