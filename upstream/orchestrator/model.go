package orchestrator

import (
	"strings"
	"time"
)

// QueueItemStatus mirrors the orchestrator's queue item states.
type QueueItemStatus string

const (
	QueueItemNew        QueueItemStatus = "New"
	QueueItemInProgress QueueItemStatus = "InProgress"
	QueueItemSuccessful QueueItemStatus = "Successful"
	QueueItemFailed     QueueItemStatus = "Failed"
	QueueItemAbandoned  QueueItemStatus = "Abandoned"
	QueueItemRetried    QueueItemStatus = "Retried"
	QueueItemDeleted    QueueItemStatus = "Deleted"
	QueueItemUnknown    QueueItemStatus = "Unknown"
)

// ParseQueueItemStatus normalizes a status string from the orchestrator API.
func ParseQueueItemStatus(raw string) QueueItemStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "NEW":
		return QueueItemNew
	case "INPROGRESS", "IN_PROGRESS":
		return QueueItemInProgress
	case "SUCCESSFUL":
		return QueueItemSuccessful
	case "FAILED":
		return QueueItemFailed
	case "ABANDONED":
		return QueueItemAbandoned
	case "RETRIED":
		return QueueItemRetried
	case "DELETED":
		return QueueItemDeleted
	default:
		return QueueItemUnknown
	}
}

// Final reports whether the queue item will not be processed further.
func (s QueueItemStatus) Final() bool {
	switch s {
	case QueueItemSuccessful, QueueItemFailed, QueueItemAbandoned, QueueItemDeleted:
		return true
	}
	return false
}

// Failure reports whether the queue item ended without succeeding.
func (s QueueItemStatus) Failure() bool {
	switch s {
	case QueueItemFailed, QueueItemAbandoned, QueueItemDeleted:
		return true
	}
	return false
}

// QueueItem is a queue item as returned by the orchestrator OData API.
type QueueItem struct {
	ID                  int64          `json:"Id"`
	Reference           string         `json:"Reference"`
	Status              string         `json:"Status"`
	Priority            string         `json:"Priority"`
	CreationTime        *time.Time     `json:"CreationTime"`
	StartProcessing     *time.Time     `json:"StartProcessing"`
	EndProcessing       *time.Time     `json:"EndProcessing"`
	SpecificContent     map[string]any `json:"SpecificContent"`
	Output              map[string]any `json:"Output"`
	ProcessingException map[string]any `json:"ProcessingException"`
}

// StatusEnum returns the parsed status of the item.
func (q QueueItem) StatusEnum() QueueItemStatus {
	return ParseQueueItemStatus(q.Status)
}

// QueueItemRequest describes a queue item to enqueue.
type QueueItemRequest struct {
	QueueName       string
	Reference       string
	Priority        string
	SpecificContent map[string]any
}
