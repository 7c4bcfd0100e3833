package orchestrator

import "fmt"

// ResultStatus is the normalized outcome of checking a queue item by
// reference.
type ResultStatus string

const (
	// ResultNoReference means no reference was supplied; the follow-up
	// step was never invoked, which counts as success.
	ResultNoReference ResultStatus = "NO_REFERENCE"
	ResultNotFound    ResultStatus = "NOT_FOUND"
	ResultInProgress  ResultStatus = "IN_PROGRESS"
	ResultSuccess     ResultStatus = "SUCCESS"
	ResultFailure     ResultStatus = "FAILURE"
	ResultError       ResultStatus = "ERROR"
)

// QueueItemResult is the normalized result of a queue item lookup. It is
// always a value, never an error: transport and decoding failures are folded
// into ResultError so status polling stays total.
type QueueItemResult struct {
	Status       ResultStatus
	ItemStatus   QueueItemStatus
	Message      string
	ErrorDetails string
	Item         *QueueItem
}

func NoReferenceResult() QueueItemResult {
	return QueueItemResult{
		Status:  ResultNoReference,
		Message: "no orchestrator reference provided",
	}
}

func NotFoundResult(reference string) QueueItemResult {
	return QueueItemResult{
		Status:       ResultNotFound,
		Message:      "orchestrator queue item not found",
		ErrorDetails: fmt.Sprintf("no queue item found for reference %q", reference),
	}
}

func InProgressResult(item QueueItem) QueueItemResult {
	status := item.StatusEnum()
	return QueueItemResult{
		Status:     ResultInProgress,
		ItemStatus: status,
		Message:    fmt.Sprintf("orchestrator process is %s", status),
		Item:       &item,
	}
}

func SuccessResult(item QueueItem) QueueItemResult {
	return QueueItemResult{
		Status:     ResultSuccess,
		ItemStatus: item.StatusEnum(),
		Message:    "orchestrator process completed successfully",
		Item:       &item,
	}
}

func FailureResult(item QueueItem) QueueItemResult {
	status := item.StatusEnum()
	return QueueItemResult{
		Status:       ResultFailure,
		ItemStatus:   status,
		Message:      fmt.Sprintf("orchestrator process failed with status %s", status),
		ErrorDetails: fmt.Sprintf("orchestrator status: %s", status),
		Item:         &item,
	}
}

func ErrorResult(message, errorDetails string) QueueItemResult {
	return QueueItemResult{
		Status:       ResultError,
		Message:      message,
		ErrorDetails: errorDetails,
	}
}

// Final reports whether the result will not change on a later poll.
func (r QueueItemResult) Final() bool {
	return r.Status != ResultInProgress
}

// Success reports whether the result is a successful terminal outcome.
func (r QueueItemResult) Success() bool {
	return r.Status == ResultSuccess || r.Status == ResultNoReference
}

// Failure reports whether the result is a failing terminal outcome.
func (r QueueItemResult) Failure() bool {
	return r.Status == ResultNotFound || r.Status == ResultFailure || r.Status == ResultError
}
