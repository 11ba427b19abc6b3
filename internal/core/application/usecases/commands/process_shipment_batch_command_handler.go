package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
)

// ShipmentResolution reports the outcome of resolving one polled shipment.
// Status is Unknown when Err is set.
type ShipmentResolution struct {
	ShippingID kernel.UUID
	Status     shipment.Status
	Err        error
}

// ProcessShipmentBatchCommandHandler drives the deadline resolution worker.
// Polls a batch of shipping identifiers from the queue and resolves each
// shipment in its own transaction, so one bad message does not block the
// rest of the batch.
type ProcessShipmentBatchCommandHandler struct {
	uowFactory ShipmentUoWFactory
	queue      ports.ShipmentQueue
}

// NewProcessShipmentBatchCommandHandler creates a handler for batch deadline
// resolution.
func NewProcessShipmentBatchCommandHandler(
	uowFactory ShipmentUoWFactory, queue ports.ShipmentQueue,
) ProcessShipmentBatchCommandHandler {
	return ProcessShipmentBatchCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle polls up to BatchSize shipping identifiers and resolves each against
// its deadline: Failed when the due date has passed, Completed otherwise.
// Returns one resolution per polled identifier. A poll failure is the only
// error returned directly; per-shipment failures are reported in the
// resolutions and do not stop the batch.
func (h *ProcessShipmentBatchCommandHandler) Handle(
	ctx context.Context, cmd ProcessShipmentBatchCommand,
) ([]ShipmentResolution, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ids, err := h.queue.Poll(ctx, cmd.BatchSize())
	if err != nil {
		return nil, err
	}

	resolutions := make([]ShipmentResolution, 0, len(ids))
	for _, id := range ids {
		status, resolveErr := h.resolveOne(ctx, id)
		resolutions = append(resolutions, ShipmentResolution{
			ShippingID: id,
			Status:     status,
			Err:        resolveErr,
		})
	}

	return resolutions, nil
}

func (h *ProcessShipmentBatchCommandHandler) resolveOne(
	ctx context.Context, id kernel.UUID,
) (shipment.Status, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, id)
	if err != nil {
		return shipment.Unknown, err
	}

	status := aggregate.ResolveByDeadline(time.Now().UTC())
	if err = shipmentRepo.UpdateStatus(ctx, id, status); err != nil {
		return shipment.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.Unknown, err
	}

	return status, nil
}
