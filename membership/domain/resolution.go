package domain

import (
	"fmt"

	"encore.app/membership/model"
	"encore.app/upstream/automation"
	"encore.app/upstream/orchestrator"
)

// Messages shown to polling clients.
const (
	MsgStillProcessing = "membership request is still being processed"
	MsgCompleted       = "membership request completed"
)

// Resolution is the outcome of reconciling the two upstream systems for one
// poll. It is pure data; the aggregator copies it into the API response.
type Resolution struct {
	Status       model.RequestStatus
	Completed    bool
	Successful   bool
	Message      string
	ErrorDetails string
}

func inProgress() Resolution {
	return Resolution{
		Status:  model.RequestStatusInProgress,
		Message: MsgStillProcessing,
	}
}

func completed(successful bool, message, errorDetails string) Resolution {
	return Resolution{
		Status:       model.RequestStatusCompleted,
		Completed:    true,
		Successful:   successful,
		Message:      message,
		ErrorDetails: errorDetails,
	}
}

// ResolvePrimary decides a poll from the primary workflow job alone. The
// returned bool is true when the primary step succeeded and the secondary
// system must be consulted; a non-terminal or failed primary never reaches
// the secondary system.
func ResolvePrimary(job automation.JobStatus) (Resolution, bool) {
	if !job.Status.Terminal() {
		return inProgress(), false
	}
	if job.Status != automation.StatusSuccessful {
		return completed(false,
			fmt.Sprintf("automation workflow failed: %s", job.StatusMessage),
			fmt.Sprintf("automation status: %s", job.Status),
		), false
	}
	return Resolution{}, true
}

// ResolveSecondary maps the normalized queue outcome to a resolution, on the
// premise that the primary step already succeeded.
func ResolveSecondary(result orchestrator.QueueItemResult) Resolution {
	switch result.Status {
	case orchestrator.ResultNoReference, orchestrator.ResultSuccess:
		return completed(true, MsgCompleted, "")
	case orchestrator.ResultInProgress:
		return inProgress()
	default:
		// NotFound, Failure and Error are all terminal failures; the
		// outcome's own message and details are authoritative.
		return completed(false, result.Message, result.ErrorDetails)
	}
}

// UpstreamFailure is the resolution for a poll where a gateway call itself
// failed. The request is reported as completed-unsuccessful rather than
// surfacing a server error; the client's next poll starts fresh.
func UpstreamFailure(err error) Resolution {
	return completed(false, "failed to retrieve request status", err.Error())
}
