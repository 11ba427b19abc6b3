package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// CompleteShipmentCommandHandler handles manual completion of shipments.
// The status write is an unconditional overwrite, matching how the deadline
// resolution worker writes terminal statuses.
type CompleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCompleteShipmentCommandHandler creates a handler for manual shipment
// completion.
func NewCompleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) CompleteShipmentCommandHandler {
	return CompleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle forces the shipment to Completed status.
func (h *CompleteShipmentCommandHandler) Handle(ctx context.Context, cmd CompleteShipmentCommand) error {
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

	if err := uow.ShipmentRepository().UpdateStatus(ctx, cmd.ShippingID(), shipment.Completed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
