package orchestrator

import "context"

//go:generate mockgen -destination=../../membership/mocks/upstream/orchestrator_gw/mock_gateway.go -package=orchestrator_gw encore.app/upstream/orchestrator Gateway

// Gateway is the consumed interface of the orchestrator's queue.
type Gateway interface {
	// CheckQueueItemByReference returns the normalized outcome for the
	// queue item correlated by reference. An empty reference yields a
	// NoReference result without any network call. The method is total:
	// lookup failures are folded into a ResultError outcome.
	CheckQueueItemByReference(ctx context.Context, reference string) QueueItemResult

	// AddQueueItem enqueues a new queue item.
	AddQueueItem(ctx context.Context, req QueueItemRequest) (QueueItem, error)
}
