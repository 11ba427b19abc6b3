package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// DefaultDueOffset is the delivery deadline applied when an order is placed
// without an explicit due date.
const DefaultDueOffset = 3 * time.Second

// PlaceOrderCommandHandler validates a staged cart, commits its reservations
// and registers a shipment for the resulting order. This is the entry point
// of the fulfillment flow.
type PlaceOrderCommandHandler struct {
	createShipment CreateShipmentCommandHandler
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Delegates shipment registration to the given CreateShipmentCommandHandler.
func NewPlaceOrderCommandHandler(createShipment CreateShipmentCommandHandler) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		createShipment: createShipment,
	}
}

// Handle processes the order placement command and returns the shipping
// identifier of the registered shipment.
//
// The cart is committed before the carrier name is resolved. Cart commit is
// not transactional across products: when shipment registration fails
// afterwards, the reservations already taken stay taken. Defaults are applied
// at handling time: a generated order identifier when none was supplied and
// DefaultDueOffset from now when the due date is zero.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	reservationCart := cmd.Cart()
	if reservationCart.IsEmpty() {
		return kernel.UUID{}, ErrEmptyCart
	}

	productIDs, err := reservationCart.Commit()
	if err != nil {
		return kernel.UUID{}, err
	}

	shippingType, err := shipment.TypeFromString(cmd.ShippingType())
	if err != nil {
		return kernel.UUID{}, err
	}

	orderID := cmd.OrderID()
	if orderID == "" {
		orderID = kernel.NewUUID().String()
	}

	dueAt := cmd.DueAt()
	if dueAt.IsZero() {
		dueAt = time.Now().UTC().Add(DefaultDueOffset)
	}

	createCmd, err := NewCreateShipmentCommand(shippingType, orderID, productIDs, dueAt)
	if err != nil {
		return kernel.UUID{}, err
	}

	return h.createShipment.Handle(ctx, createCmd)
}
