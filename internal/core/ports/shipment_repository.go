// Package ports defines the persistence and messaging interfaces of the
// shipment lifecycle core. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no shipment with the given
	// identifier exists.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// UpdateStatus writes the lifecycle status of an existing shipment.
	// The write is an unconditional overwrite of the status column, which
	// keeps terminal transitions idempotent under redelivery. Returns
	// errs.ObjectNotFoundError when no shipment with the given identifier
	// exists.
	UpdateStatus(ctx context.Context, id kernel.UUID, status shipment.Status) error
}
