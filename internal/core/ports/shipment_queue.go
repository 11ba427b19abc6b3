package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// ShipmentQueue is the messaging contract between shipment creation and the
// deadline resolution worker. Creation publishes the shipping identifier
// after the store transaction commits; the worker polls identifiers back in
// batches and resolves each shipment against its deadline.
//
// Delivery is at least once. Consumers must tolerate duplicate identifiers,
// which the lifecycle absorbs by writing terminal statuses as idempotent
// overwrites.
type ShipmentQueue interface {
	// Publish enqueues the shipping identifier and returns the broker's
	// message identifier for logging.
	Publish(ctx context.Context, id kernel.UUID) (string, error)

	// Poll dequeues up to max shipping identifiers. Returns an empty slice
	// when the queue is drained. Malformed messages are skipped, not
	// returned as errors.
	Poll(ctx context.Context, max int) ([]kernel.UUID, error)
}
