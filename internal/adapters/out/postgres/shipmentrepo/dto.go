// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern for
// the shipment domain aggregate, handling the conversion between domain
// entities and database representations.
package shipmentrepo

import (
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Indexed by status so the deadline resolution worker and status
// queries stay cheap.
type ShipmentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShippingType string
	OrderID      string `gorm:"index"`
	ProductIDs   string `gorm:"type:text"`
	Status       int    `gorm:"index"`
	CreatedAt    time.Time
	DueAt        time.Time
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// productIDSeparator joins reserved product identifiers into a single text
// column. Identifiers are product names and never contain the separator.
const productIDSeparator = ","

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:           aggregate.ID().Bytes(),
		ShippingType: aggregate.ShippingType().String(),
		OrderID:      aggregate.OrderID(),
		ProductIDs:   strings.Join(aggregate.ProductIDs(), productIDSeparator),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		DueAt:        aggregate.DueAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shippingType, err := shipment.TypeFromString(dto.ShippingType)
	if err != nil {
		return nil, err
	}

	var productIDs []string
	if dto.ProductIDs != "" {
		productIDs = strings.Split(dto.ProductIDs, productIDSeparator)
	}

	return shipment.RestoreShipment(
		id,
		shippingType,
		dto.OrderID,
		productIDs,
		shipment.Status(dto.Status),
		dto.CreatedAt,
		dto.DueAt,
	)
}
