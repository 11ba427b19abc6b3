package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
)

// ErrQueueUnavailable wraps queue publish failures. When it is returned the
// shipment record is already committed in InProgress status but no message
// reached the broker, so the deadline resolution worker will never see it.
var ErrQueueUnavailable = errors.New("shipment queue is unavailable")

// CreateShipmentCommandHandler handles the business logic for shipment
// registration. Persists the shipment, accepts it for shipping and publishes
// the shipping identifier for deadline resolution.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	queue      ports.ShipmentQueue
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
// Requires a ShipmentUoWFactory for transactional persistence and a
// ShipmentQueue for handing the shipment to the resolution worker.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory, queue ports.ShipmentQueue,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the shipment registration command and returns the new
// shipping identifier.
//
// The shipment is stored in Created status, immediately accepted and stored
// again as InProgress within the same transaction, so callers only ever
// observe InProgress. After the transaction commits the shipping identifier
// is published to the queue. Store and queue are separate systems: a publish
// failure after commit leaves a persisted shipment no worker will resolve,
// and is reported as ErrQueueUnavailable.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context, cmd CreateShipmentCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	id := kernel.NewUUID()
	aggregate, err := shipment.NewShipment(id, cmd.ShippingType(), cmd.OrderID(), cmd.ProductIDs(), cmd.DueAt())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	if err = shipmentRepo.Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = aggregate.Accept(); err != nil {
		return kernel.UUID{}, err
	}

	if err = shipmentRepo.UpdateStatus(ctx, id, aggregate.Status()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	if _, err = h.queue.Publish(ctx, id); err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ErrQueueUnavailable, err)
	}

	return id, nil
}
