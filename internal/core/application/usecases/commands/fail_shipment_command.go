package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrFailShipmentCommandIsNotConstructed = errors.New(
	"FailShipmentCommand must be created via NewFailShipmentCommand constructor",
)

// FailShipmentCommand represents a manual operator request to mark a
// shipment as failed regardless of its current status.
type FailShipmentCommand struct { //nolint:recvcheck //using for validation
	shippingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFailShipmentCommand creates a command to force a shipment to Failed
// status.
func NewFailShipmentCommand(shippingID kernel.UUID) (FailShipmentCommand, error) {
	command := FailShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setShippingID(shippingID); err != nil {
		return FailShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FailShipmentCommand) Validate() error {
	return c.guard.Validate(ErrFailShipmentCommandIsNotConstructed)
}

// ShippingID returns the identifier of the shipment to fail.
func (c FailShipmentCommand) ShippingID() kernel.UUID {
	return c.shippingID
}

func (c *FailShipmentCommand) setShippingID(shippingID kernel.UUID) error {
	if err := shippingID.Validate(); err != nil {
		return err
	}

	c.shippingID = shippingID
	return nil
}
