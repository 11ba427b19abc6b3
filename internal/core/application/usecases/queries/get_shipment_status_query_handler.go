package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentStatusQueryHandler reads a shipment's status straight from the
// database. This is the polling endpoint clients hit while waiting for
// deadline resolution, so it stays a single-column read.
type GetShipmentStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentStatusQueryHandler creates a handler for shipment status
// queries. Requires a GORM database connection for query execution.
func NewGetShipmentStatusQueryHandler(db *gorm.DB) GetShipmentStatusQueryHandler {
	return GetShipmentStatusQueryHandler{db: db}
}

// Handle executes the status query. Returns errs.ObjectNotFoundError when no
// shipment with the queried identifier exists.
func (h GetShipmentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentStatusQuery,
) (GetShipmentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	var status int
	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM shipments
		WHERE id = ?
	`, query.ShippingID().Bytes()).Row()

	if err := row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetShipmentStatusQueryResponse{},
				errs.NewObjectNotFoundError("shipment", query.ShippingID().String())
		}
		return GetShipmentStatusQueryResponse{}, err
	}

	return GetShipmentStatusQueryResponse{
		ShippingID: query.ShippingID(),
		Status:     shipment.Status(status),
	}, nil
}
