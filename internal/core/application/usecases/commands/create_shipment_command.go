package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a shipment for an
// order whose stock is already reserved. Carries the carrier, the originating
// order, the reserved product identifiers and the delivery deadline.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shippingType shipment.Type
	orderID      string
	productIDs   []string
	dueAt        time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates that the carrier is one of the available shipping types and that
// the order identifier is present. The due date is validated against the
// clock by the shipment aggregate, not here.
func NewCreateShipmentCommand(
	shippingType shipment.Type,
	orderID string,
	productIDs []string,
	dueAt time.Time,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShippingType(shippingType),
		command.setOrderID(orderID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	command.productIDs = append([]string(nil), productIDs...)
	command.dueAt = dueAt
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShippingType returns the carrier for the shipment.
func (c CreateShipmentCommand) ShippingType() shipment.Type {
	return c.shippingType
}

// OrderID returns the identifier of the order being fulfilled.
func (c CreateShipmentCommand) OrderID() string {
	return c.orderID
}

// ProductIDs returns the reserved product identifiers.
func (c CreateShipmentCommand) ProductIDs() []string {
	return append([]string(nil), c.productIDs...)
}

// DueAt returns the delivery deadline.
func (c CreateShipmentCommand) DueAt() time.Time {
	return c.dueAt
}

func (c *CreateShipmentCommand) setShippingType(shippingType shipment.Type) error {
	if err := shippingType.Validate(); err != nil {
		return err
	}

	c.shippingType = shippingType
	return nil
}

func (c *CreateShipmentCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}
