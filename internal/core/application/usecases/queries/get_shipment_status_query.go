// Package queries contains read-only operations over the fulfillment store.
// Implements the Query side of the CQRS architecture: handlers read directly
// from the database, bypassing the domain aggregates.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/guard"
)

var ErrGetShipmentStatusQueryIsNotConstructed = errors.New(
	"GetShipmentStatusQuery must be created via NewGetShipmentStatusQuery constructor",
)

// GetShipmentStatusQuery retrieves the current lifecycle status of one
// shipment by its shipping identifier.
type GetShipmentStatusQuery struct {
	shippingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentStatusQuery creates a query for the status of the given
// shipment.
func NewGetShipmentStatusQuery(shippingID kernel.UUID) (GetShipmentStatusQuery, error) {
	if err := shippingID.Validate(); err != nil {
		return GetShipmentStatusQuery{}, err
	}

	return GetShipmentStatusQuery{
		shippingID: shippingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatusQueryIsNotConstructed)
}

// ShippingID returns the identifier of the queried shipment.
func (q GetShipmentStatusQuery) ShippingID() kernel.UUID {
	return q.shippingID
}

// GetShipmentStatusQueryResponse carries the queried shipment's current
// status.
type GetShipmentStatusQueryResponse struct {
	ShippingID kernel.UUID
	Status     shipment.Status
}
