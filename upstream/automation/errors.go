package automation

import "fmt"

// JobNotFoundError is returned when the platform has no job for the given ID.
// Callers that need to distinguish "unknown job" from transport failures
// should match it with errors.As.
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("workflow job %q not found", e.JobID)
}
