package shipment

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrInvalidDueDate is returned when a shipment's due date is not strictly
	// in the future at validation time.
	ErrInvalidDueDate = errors.New("due date must be in the future")
)

// Shipment is the aggregate root tracking one shipment's identity, carrier,
// originating order, product identifiers, deadline and lifecycle status.
//
// Shipment follows these invariants:
//   - Must have a valid unique identifier and a valid carrier type
//   - Must reference the order it ships and carry the ordered product ids
//   - A new shipment's due date is strictly after the creation time
//   - Status transitions follow the lifecycle in Status; terminal statuses
//     are written as idempotent overwrites
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	// id is the unique shipping identifier
	id kernel.UUID

	// shippingType is the carrier the shipment travels with
	shippingType Type

	// orderID references the order this shipment fulfills
	orderID string

	// productIDs holds the reserved product identifiers in commit order
	productIDs []string

	// status is the current lifecycle state
	status Status

	// createdAt is the UTC creation timestamp
	createdAt time.Time

	// dueAt is the UTC delivery deadline
	dueAt time.Time

	// isConstructed ensures the shipment was created via a constructor
	isConstructed bool
}

// NewShipment creates a new Shipment in Created status with validation.
//
// Parameters:
//   - id: Unique shipping identifier (must be a valid UUID)
//   - shippingType: Carrier (must be a member of AvailableTypes)
//   - orderID: The order being fulfilled (required)
//   - productIDs: Reserved product identifiers, in commit order
//   - dueAt: Delivery deadline; must be strictly after the current UTC time,
//     otherwise ErrInvalidDueDate is returned
//
// The creation timestamp is taken from the clock at construction. The caller
// is expected to accept the shipment (Accept) as part of the same creation
// flow, so Created is never observed outside of it.
func NewShipment(
	id kernel.UUID,
	shippingType Type,
	orderID string,
	productIDs []string,
	dueAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Created,
		isConstructed: true,
	}

	now := time.Now().UTC()
	if err := errors.Join(
		s.setID(id),
		s.setShippingType(shippingType),
		s.setOrderID(orderID),
		s.setDueAt(dueAt, now),
	); err != nil {
		return nil, err
	}

	s.productIDs = append([]string(nil), productIDs...)
	s.createdAt = now
	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence. Unlike
// NewShipment it does not require the due date to be in the future, since
// stored shipments legitimately outlive their deadlines. The status must be
// a valid lifecycle state.
func RestoreShipment(
	id kernel.UUID,
	shippingType Type,
	orderID string,
	productIDs []string,
	status Status,
	createdAt time.Time,
	dueAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setShippingType(shippingType),
		s.setOrderID(orderID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	s.productIDs = append([]string(nil), productIDs...)
	s.status = status
	s.createdAt = createdAt.UTC()
	s.dueAt = dueAt.UTC()
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the unique shipping identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// ShippingType returns the carrier the shipment travels with.
func (s *Shipment) ShippingType() Type {
	return s.shippingType
}

// OrderID returns the order this shipment fulfills.
func (s *Shipment) OrderID() string {
	return s.orderID
}

// ProductIDs returns the reserved product identifiers in commit order.
// The returned slice is a copy.
func (s *Shipment) ProductIDs() []string {
	return append([]string(nil), s.productIDs...)
}

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt returns the UTC creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// DueAt returns the UTC delivery deadline.
func (s *Shipment) DueAt() time.Time {
	return s.dueAt
}

// Accept transitions the shipment from Created to InProgress, marking it
// accepted for shipping. Called within the creation flow immediately after
// the record is persisted.
func (s *Shipment) Accept() error {
	newStatus, err := s.status.Accept()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// ResolveByDeadline resolves the shipment against its deadline at the given
// evaluation time and returns the resulting terminal status: Failed when the
// due date has passed, Completed otherwise.
//
// The write is an idempotent overwrite; re-resolving an already-terminal
// shipment applies whichever branch the deadline check yields at this
// evaluation.
func (s *Shipment) ResolveByDeadline(now time.Time) Status {
	s.status = ResolveByDeadline(s.dueAt, now)
	return s.status
}

// ForceComplete forces the status to Completed regardless of the current
// state. Manual operator override.
func (s *Shipment) ForceComplete() {
	s.status = Completed
}

// ForceFail forces the status to Failed regardless of the current state.
// Manual operator override.
func (s *Shipment) ForceFail() {
	s.status = Failed
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setShippingType(shippingType Type) error {
	if err := shippingType.Validate(); err != nil {
		return err
	}
	s.shippingType = shippingType
	return nil
}

func (s *Shipment) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setDueAt(dueAt, now time.Time) error {
	if !dueAt.After(now) {
		return ErrInvalidDueDate
	}
	s.dueAt = dueAt.UTC()
	return nil
}
