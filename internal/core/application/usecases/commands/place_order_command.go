package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrEmptyCart = errors.New("cart has no items to place an order with")
)

// PlaceOrderCommand represents a request to turn a staged cart into an order
// with a shipment. The order identifier and due date are optional: a missing
// order identifier is generated, a zero due date falls back to the default
// offset from the current time.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	cart         *cart.Cart
	shippingType string
	orderID      string
	dueAt        time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order from a cart.
// The carrier name is carried as the raw string the caller supplied and is
// validated against the available shipping types during handling, after the
// cart is committed.
func NewPlaceOrderCommand(
	reservationCart *cart.Cart,
	shippingType string,
	orderID string,
	dueAt time.Time,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCart(reservationCart),
		command.setShippingType(shippingType),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	command.orderID = orderID
	command.dueAt = dueAt
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Cart returns the staged cart the order is placed from.
func (c PlaceOrderCommand) Cart() *cart.Cart {
	return c.cart
}

// ShippingType returns the requested carrier name as supplied by the caller.
func (c PlaceOrderCommand) ShippingType() string {
	return c.shippingType
}

// OrderID returns the caller-supplied order identifier, empty when one
// should be generated.
func (c PlaceOrderCommand) OrderID() string {
	return c.orderID
}

// DueAt returns the requested delivery deadline, zero when the default
// should apply.
func (c PlaceOrderCommand) DueAt() time.Time {
	return c.dueAt
}

func (c *PlaceOrderCommand) setCart(reservationCart *cart.Cart) error {
	if reservationCart == nil {
		return errs.NewValueIsRequiredError("cart")
	}

	c.cart = reservationCart
	return nil
}

func (c *PlaceOrderCommand) setShippingType(shippingType string) error {
	if shippingType == "" {
		return errs.NewValueIsRequiredError("shippingType")
	}

	c.shippingType = shippingType
	return nil
}
