// Package shipment provides the shipment aggregate and its lifecycle state
// machine for the fulfillment system.
//
// The package includes:
//   - Shipment: the aggregate root tracking one shipment's carrier, order,
//     products, deadline and status
//   - Status: the lifecycle state machine
//   - Type: the enumerated carrier a shipment travels with
//
// Key business rules:
//   - A shipment is created in Created status and accepted into InProgress
//     within the same creation flow; callers never observe Created
//   - Batch resolution compares the due date against the current time and
//     resolves the shipment to Failed (deadline missed) or Completed
//   - Completed and Failed are terminal, but terminal transitions are
//     idempotent overwrites rather than guarded moves: the work queue
//     delivers at least once, so re-applying a resolution must not error
//   - Manual overrides force a terminal status regardless of current state
package shipment
