package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrListShippingTypesQueryIsNotConstructed = errors.New(
	"ListShippingTypesQuery must be created via NewListShippingTypesQuery constructor",
)

// ListShippingTypesQuery retrieves the carriers an order can be shipped with.
type ListShippingTypesQuery struct {
	guard guard.ConstructorGuard
}

// NewListShippingTypesQuery creates a query for the available carriers.
// This is a parameterless query.
func NewListShippingTypesQuery() ListShippingTypesQuery {
	return ListShippingTypesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListShippingTypesQuery) Validate() error {
	return q.guard.Validate(ErrListShippingTypesQueryIsNotConstructed)
}

// ListShippingTypesQueryResponse carries the available carrier names in a
// stable order.
type ListShippingTypesQueryResponse struct {
	ShippingTypes []string
}
