package automation

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a workflow job on the automation platform.
type Status string

const (
	StatusPending    Status = "pending"
	StatusRunning    Status = "running"
	StatusSuccessful Status = "successful"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusError      Status = "error"
)

// ParseStatus maps an upstream status string to a Status. The platform has
// used both "canceled" and "cancelled" across versions; anything
// unrecognized is treated as an error state rather than silently pending.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending", "new", "waiting":
		return StatusPending
	case "running":
		return StatusRunning
	case "successful":
		return StatusSuccessful
	case "failed":
		return StatusFailed
	case "canceled", "cancelled":
		return StatusCancelled
	default:
		return StatusError
	}
}

// Terminal reports whether no further transition is expected from s.
func (s Status) Terminal() bool {
	switch s {
	case StatusSuccessful, StatusFailed, StatusCancelled, StatusError:
		return true
	}
	return false
}

// JobStatus is the normalized status of a workflow job.
type JobStatus struct {
	JobID         string
	Status        Status
	StatusMessage string
	CreatedAt     *time.Time
	StartedAt     *time.Time
	FinishedAt    *time.Time
	Result        map[string]any
	ErrorMessage  string
}

// ExecutionResult describes a workflow launch.
type ExecutionResult struct {
	JobID   string
	Status  string
	Message string
}
