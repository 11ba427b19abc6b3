package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// ListShippingTypesQueryHandler returns the enumerated carriers. The set is
// fixed in the domain model, so no storage is involved.
type ListShippingTypesQueryHandler struct{}

// NewListShippingTypesQueryHandler creates a handler for carrier list queries.
func NewListShippingTypesQueryHandler() ListShippingTypesQueryHandler {
	return ListShippingTypesQueryHandler{}
}

// Handle executes the query and returns the carrier names in a stable order.
func (h ListShippingTypesQueryHandler) Handle(
	_ context.Context,
	query ListShippingTypesQuery,
) (ListShippingTypesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListShippingTypesQueryResponse{}, err
	}

	types := shipment.AvailableTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}

	return ListShippingTypesQueryResponse{ShippingTypes: names}, nil
}
