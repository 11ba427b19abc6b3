package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteShipmentCommandIsNotConstructed = errors.New(
	"CompleteShipmentCommand must be created via NewCompleteShipmentCommand constructor",
)

// CompleteShipmentCommand represents a manual operator request to mark a
// shipment as delivered regardless of its current status.
type CompleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shippingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteShipmentCommand creates a command to force a shipment to
// Completed status.
func NewCompleteShipmentCommand(shippingID kernel.UUID) (CompleteShipmentCommand, error) {
	command := CompleteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setShippingID(shippingID); err != nil {
		return CompleteShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteShipmentCommandIsNotConstructed)
}

// ShippingID returns the identifier of the shipment to complete.
func (c CompleteShipmentCommand) ShippingID() kernel.UUID {
	return c.shippingID
}

func (c *CompleteShipmentCommand) setShippingID(shippingID kernel.UUID) error {
	if err := shippingID.Validate(); err != nil {
		return err
	}

	c.shippingID = shippingID
	return nil
}
