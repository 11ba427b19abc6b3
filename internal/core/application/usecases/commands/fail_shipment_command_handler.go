package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// FailShipmentCommandHandler handles manual failure of shipments.
// The status write is an unconditional overwrite, matching how the deadline
// resolution worker writes terminal statuses.
type FailShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewFailShipmentCommandHandler creates a handler for manual shipment failure.
func NewFailShipmentCommandHandler(uowFactory ShipmentUoWFactory) FailShipmentCommandHandler {
	return FailShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle forces the shipment to Failed status.
func (h *FailShipmentCommandHandler) Handle(ctx context.Context, cmd FailShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRepository().UpdateStatus(ctx, cmd.ShippingID(), shipment.Failed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
